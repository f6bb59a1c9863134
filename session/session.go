// Package session holds the in-memory table of parking sessions.
package session

import "time"

// Session is one user's parking-payment flow instance, from zone entry
// through payment confirmation.
type Session struct {
	ID              string     `json:"id"`
	ZoneCode        string     `json:"zone_code"`
	ZoneName        string     `json:"zone_name"`
	Plate           string     `json:"plate"`
	VehicleType     string     `json:"vehicle_type"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration_minutes"`
	Price           float64    `json:"price"`
	CreatedAt       time.Time  `json:"created_at"`
	EndTime         *time.Time `json:"end_time"`
	Paid            bool       `json:"paid"`
}

// Stats aggregates the store for the admin dashboard.
type Stats struct {
	TotalSessions  int     `json:"total_sessions"`
	PaidSessions   int     `json:"paid_sessions"`
	ActiveSessions int     `json:"active_sessions"`
	TotalRevenue   float64 `json:"total_revenue"`
	DistinctZones  int     `json:"zones_count"`
}
