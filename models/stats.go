package models

// SystemStats is the admin dashboard aggregate.
type SystemStats struct {
	TotalUsers     int64   `json:"total_users"`
	TotalOwners    int64   `json:"total_owners"`
	ActiveBookings int64   `json:"active_bookings"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// OwnerStats is the owner dashboard aggregate.
type OwnerStats struct {
	TotalSlots      int64   `json:"total_slots"`
	OccupiedSlots   int64   `json:"occupied_slots"`
	PendingRequests int64   `json:"pending_requests"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
}
