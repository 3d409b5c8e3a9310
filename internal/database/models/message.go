package models

import "time"

// Message is a direct message between two users, optionally about a listing
type Message struct {
	ID         uint      `gorm:"column:message_id;primaryKey;autoIncrement" json:"id"`
	SenderID   uint      `gorm:"column:sender_id;not null" json:"sender_id"`
	ReceiverID uint      `gorm:"column:receiver_id;not null" json:"receiver_id"`
	ListingID  *uint     `gorm:"column:listing_id" json:"listing_id,omitempty"`
	Text       string    `gorm:"column:message_text;not null" json:"text"`
	Timestamp  time.Time `gorm:"column:timestamp" json:"timestamp"` // Assigned by the store on insert

	// Relationships
	Sender   User     `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
	Receiver User     `gorm:"foreignKey:ReceiverID;references:ID" json:"receiver,omitempty"`
	Listing  *Listing `gorm:"foreignKey:ListingID;references:ID" json:"listing,omitempty"`
}

// TableName overrides the table name
func (Message) TableName() string {
	return "messages"
}

// ListingTitle returns the related listing's title, or fallback when the
// message is not tied to a listing.
func (m *Message) ListingTitle(fallback string) string {
	if m.Listing == nil || m.Listing.Title == "" {
		return fallback
	}
	return m.Listing.Title
}

// Partner describes a user the current user has exchanged messages with
type Partner struct {
	ID    uint   `gorm:"column:user_id" json:"id"`
	Name  string `gorm:"column:name" json:"name"`
	Email string `gorm:"column:email" json:"email"`
}
