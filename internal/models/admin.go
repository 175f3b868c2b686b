package models

// DashboardStats are the platform-wide counters shown on the admin overview tab.
type DashboardStats struct {
	TotalUsers        int `json:"total_users"`
	TotalEquipment    int `json:"total_equipment"`
	TotalBookings     int `json:"total_bookings"`
	PendingEquipment  int `json:"pending_equipment"`
	ApprovedEquipment int `json:"approved_equipment"`
	BannedUsers       int `json:"banned_users"`
}

// RecentActivity is the most-recent slice of each admin dataset.
type RecentActivity struct {
	Users     []User          `json:"users"`
	Equipment []EquipmentItem `json:"equipment"`
	Bookings  []Booking       `json:"bookings"`
}

// Page carries the server's pagination envelope for admin list endpoints.
type Page struct {
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"current_page"`
}
