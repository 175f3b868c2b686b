package models

// Message is a single message in an equipment-scoped thread. Append-only
// from the client's perspective.
type Message struct {
	ID          int    `json:"id"`
	EquipmentID int    `json:"equipment_id"`
	SenderID    int    `json:"sender_id"`
	ReceiverID  int    `json:"receiver_id"`
	SenderName  string `json:"sender_name,omitempty"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Conversation is the server-aggregated view of a message thread, keyed by
// (equipment id, partner id). It is derived, never persisted by the client.
type Conversation struct {
	EquipmentID     int    `json:"equipment_id"`
	EquipmentName   string `json:"equipment_name,omitempty"`
	PartnerID       int    `json:"partner_id"`
	PartnerName     string `json:"partner_name,omitempty"`
	LastMessage     string `json:"last_message,omitempty"`
	LastMessageTime string `json:"last_message_time,omitempty"`
	UnreadCount     int    `json:"unread_count"`
}
