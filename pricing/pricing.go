// Package pricing computes parking fees from the requested duration.
package pricing

import "math"

// HourlyRate is the per-hour price in euros for durations outside the table.
const HourlyRate = 2.00

// Table lists the canonical durations offered on the duration page, with
// their exact prices in euros.
var Table = map[int]float64{
	30:  1.00,
	60:  2.00,
	90:  3.00,
	120: 4.00,
	150: 5.00,
	180: 6.00,
}

// Durations returns the canonical durations in ascending order.
func Durations() []int {
	return []int{30, 60, 90, 120, 150, 180}
}

// For returns the price in euros for a parking duration in minutes.
// Durations outside the table are rounded up to whole hours. Non-positive
// durations price at 0.00; the HTTP layer rejects them before they reach a
// session.
func For(durationMinutes int) float64 {
	if p, ok := Table[durationMinutes]; ok {
		return p
	}
	if durationMinutes <= 0 {
		return 0
	}
	hours := math.Ceil(float64(durationMinutes) / 60)
	return hours * HourlyRate
}
