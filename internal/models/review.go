package models

// Review is a completed-booking review covering both the equipment and its owner.
type Review struct {
	ID              int    `json:"id"`
	BookingID       int    `json:"booking_id"`
	EquipmentID     int    `json:"equipment_id"`
	ReviewerID      int    `json:"reviewer_id"`
	ReviewerName    string `json:"reviewer_name,omitempty"`
	EquipmentRating int    `json:"equipment_rating"`
	OwnerRating     int    `json:"owner_rating"`
	EquipmentReview string `json:"equipment_review,omitempty"`
	OwnerReview     string `json:"owner_review,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}
