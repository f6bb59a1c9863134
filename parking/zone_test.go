package parking

import "testing"

func TestResolve_KnownZone(t *testing.T) {
	tests := []struct {
		code     string
		wantName string
		wantCity string
	}{
		{"75001", "Paris 1er - Louvre", "Paris"},
		{"92800", "Puteaux - La Défense", "Puteaux"},
		{"78000", "Versailles - Centre", "Versailles"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			z := Resolve(tt.code)
			if z.Name != tt.wantName {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.code, z.Name, tt.wantName)
			}
			if z.City != tt.wantCity {
				t.Errorf("Resolve(%q).City = %q, want %q", tt.code, z.City, tt.wantCity)
			}
		})
	}
}

func TestResolve_UnknownZoneFallsBack(t *testing.T) {
	z := Resolve("00000")
	if z.Name != "Zone 00000" {
		t.Errorf("Name = %q, want %q", z.Name, "Zone 00000")
	}
	if z.City != "Ville" {
		t.Errorf("City = %q, want %q", z.City, "Ville")
	}
}

func TestResolve_EmptyCode(t *testing.T) {
	z := Resolve("")
	if z.Name != "Zone " {
		t.Errorf("Name = %q, want %q", z.Name, "Zone ")
	}
}
