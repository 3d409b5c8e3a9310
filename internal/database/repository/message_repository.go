package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	Create(message *models.Message) error
	Conversation(userID, partnerID uint) ([]models.Message, error)
	Partners(userID uint) ([]models.Partner, error)
	Sent(userID uint) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts the message and reads back the timestamp the store assigned
func (r *messageRepository) Create(message *models.Message) error {
	if err := r.db.Omit(clause.Associations, "timestamp").Create(message).Error; err != nil {
		return err
	}
	return r.db.Where("message_id = ?", message.ID).First(message).Error
}

// Conversation returns every message exchanged between the two users in
// chronological order, regardless of listing.
func (r *messageRepository) Conversation(userID, partnerID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Sender").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("timestamp ASC, message_id ASC").
		Find(&messages).Error
	return messages, err
}

// Partners returns the distinct users who sent to or received from userID
func (r *messageRepository) Partners(userID uint) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.Raw(`
		SELECT DISTINCT u.user_id, u.name, u.email
		FROM users u
		JOIN messages m ON u.user_id IN (m.sender_id, m.receiver_id)
		WHERE ? IN (m.sender_id, m.receiver_id) AND u.user_id <> ?
		ORDER BY u.name ASC, u.user_id ASC`,
		userID, userID,
	).Scan(&partners).Error
	return partners, err
}

// Sent returns all messages sent by userID, most recent first
func (r *messageRepository) Sent(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Receiver").
		Preload("Listing").
		Where("sender_id = ?", userID).
		Order("timestamp DESC, message_id DESC").
		Find(&messages).Error
	return messages, err
}
