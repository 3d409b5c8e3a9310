package service

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
)

// MessageService defines the interface for direct messaging
type MessageService interface {
	// Send resolves recipientEmail and stores a message, optionally tied to
	// the listing id given as raw form text.
	Send(senderID uint, recipientEmail, text, listingID string) (*models.Message, error)
	// Reply stores a message to a known partner without a listing.
	Reply(senderID, partnerID uint, text string) (*models.Message, error)
	Partners(userID uint) ([]models.Partner, error)
	Conversation(userID, partnerID uint) ([]models.Message, error)
	Sent(userID uint) ([]models.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// NewMessageService creates a new message service instance
func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	logger *slog.Logger,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
		logger:      logger,
	}
}

func (s *messageService) Send(senderID uint, recipientEmail, text, listingID string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	recipientEmail = strings.TrimSpace(recipientEmail)
	listingID = strings.TrimSpace(listingID)

	s.logger.Info("✉️ [MessageService] Sending message", "sender_id", senderID, "recipient", recipientEmail)

	if text == "" {
		return nil, ErrEmptyMessage
	}
	if recipientEmail == "" {
		return nil, ErrRecipientRequired
	}

	recipient, err := s.userRepo.FindByEmail(recipientEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [MessageService] Recipient not found", "recipient", recipientEmail)
			return nil, ErrRecipientNotFound
		}
		s.logger.Error("❌ [MessageService] Failed to resolve recipient", "error", err)
		return nil, err
	}
	// Threads are between two different users; a self-addressed
	// message would never show up in the inbox.
	if recipient.ID == senderID {
		s.logger.Warn("⚠️ [MessageService] Message addressed to sender", "sender_id", senderID)
		return nil, ErrSelfRecipient
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: recipient.ID,
		Text:       text,
	}

	if listingID != "" {
		id, err := strconv.ParseUint(listingID, 10, 64)
		if err != nil || id == 0 {
			return nil, ErrInvalidListingID
		}
		listing, err := s.listingRepo.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return nil, ErrListingNotFound
			}
			s.logger.Error("❌ [MessageService] Failed to load listing", "listing_id", id, "error", err)
			return nil, err
		}
		message.ListingID = &listing.ID
	}

	return s.store(message)
}

func (s *messageService) Reply(senderID, partnerID uint, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	s.logger.Info("↩️ [MessageService] Replying", "sender_id", senderID, "partner_id", partnerID)

	if text == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.userRepo.FindByID(partnerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	return s.store(&models.Message{
		SenderID:   senderID,
		ReceiverID: partnerID,
		Text:       text,
	})
}

func (s *messageService) store(message *models.Message) (*models.Message, error) {
	if err := s.messageRepo.Create(message); err != nil {
		s.logger.Error("❌ [MessageService] Failed to store message", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [MessageService] Message sent", "message_id", message.ID)
	return message, nil
}

func (s *messageService) Partners(userID uint) ([]models.Partner, error) {
	return s.messageRepo.Partners(userID)
}

func (s *messageService) Conversation(userID, partnerID uint) ([]models.Message, error) {
	return s.messageRepo.Conversation(userID, partnerID)
}

func (s *messageService) Sent(userID uint) ([]models.Message, error) {
	return s.messageRepo.Sent(userID)
}
