package pricing

import "testing"

func TestFor_TableDurations(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{30, 1.00},
		{60, 2.00},
		{90, 3.00},
		{120, 4.00},
		{150, 5.00},
		{180, 6.00},
	}

	for _, tt := range tests {
		if got := For(tt.minutes); got != tt.want {
			t.Errorf("For(%d) = %.2f, want %.2f", tt.minutes, got, tt.want)
		}
	}
}

func TestFor_RoundsUpToWholeHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{1, 2.00},
		{59, 2.00},
		{61, 4.00},
		{119, 4.00},
		{121, 6.00},
		{181, 8.00},
		{240, 8.00},
		{1440, 48.00},
	}

	for _, tt := range tests {
		if got := For(tt.minutes); got != tt.want {
			t.Errorf("For(%d) = %.2f, want %.2f", tt.minutes, got, tt.want)
		}
	}
}

func TestFor_NonPositiveDurationIsFree(t *testing.T) {
	// Documented policy: the function stays total and returns 0.00; the
	// duration handler refuses non-positive input before a session can
	// carry it.
	for _, minutes := range []int{0, -1, -60} {
		if got := For(minutes); got != 0 {
			t.Errorf("For(%d) = %.2f, want 0.00", minutes, got)
		}
	}
}

func TestDurations_MatchTable(t *testing.T) {
	ds := Durations()
	if len(ds) != len(Table) {
		t.Fatalf("Durations() has %d entries, table has %d", len(ds), len(Table))
	}
	for i, d := range ds {
		if _, ok := Table[d]; !ok {
			t.Errorf("Durations()[%d] = %d not in table", i, d)
		}
		if i > 0 && ds[i-1] >= d {
			t.Errorf("Durations() not ascending at index %d", i)
		}
	}
}
