package models

// BookingStatus is the server-side lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a rental booking as returned by the server. The server is
// authoritative for all derived amounts (total_cost, deposit_amount).
type Booking struct {
	ID            int           `json:"id"`
	EquipmentID   int           `json:"equipment_id"`
	RenterID      int           `json:"renter_id"`
	StartDate     string        `json:"start_date"` // YYYY-MM-DD
	EndDate       string        `json:"end_date"`   // YYYY-MM-DD
	TotalDays     int           `json:"total_days"`
	DailyRate     float64       `json:"daily_rate"`
	TotalCost     float64       `json:"total_cost"`
	DepositAmount float64       `json:"deposit_amount"`
	Status        BookingStatus `json:"status"`
	HasReview     bool          `json:"has_review,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`

	Equipment *EquipmentItem `json:"equipment,omitempty"`
	Renter    *User          `json:"renter,omitempty"`
}

// PaymentIntent is the hand-off from the server to the payment widget.
type PaymentIntent struct {
	ClientSecret    string  `json:"client_secret"`
	PaymentIntentID string  `json:"payment_intent_id"`
	Amount          float64 `json:"amount,omitempty"`
}

// Payment is a recorded payment against a booking.
type Payment struct {
	ID          int     `json:"id"`
	BookingID   int     `json:"booking_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type,omitempty"` // rental, deposit
	Status      string  `json:"status,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
