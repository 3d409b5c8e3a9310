package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
)

// PictureChecker confirms that a file can be shown as a profile picture
type PictureChecker interface {
	Check(path string) error
}

// UserService defines the interface for profile reads and edits
type UserService interface {
	GetUser(userID uint) (*models.User, error)
	UpdateProfile(userID uint, name, email, location string) (*models.User, error)
	UpdatePicture(userID uint, path string) error
}

type userService struct {
	userRepo repository.UserRepository
	pictures PictureChecker
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	pictures PictureChecker,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		pictures: pictures,
		logger:   logger,
	}
}

func (s *userService) GetUser(userID uint) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *userService) UpdateProfile(userID uint, name, email, location string) (*models.User, error) {
	email = strings.TrimSpace(email)
	s.logger.Info("👤 [UserService] Updating profile", "user_id", userID)

	if name == "" || email == "" || location == "" {
		return nil, ErrMissingFields
	}

	if err := s.userRepo.UpdateProfile(userID, name, email, location); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			s.logger.Warn("⚠️ [UserService] Email already registered", "user_id", userID, "email", email)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Profile updated", "user_id", userID)
	return s.userRepo.FindByID(userID)
}

// UpdatePicture stores path as the profile picture once it decodes as an
// image. It commits separately from UpdateProfile.
func (s *userService) UpdatePicture(userID uint, path string) error {
	path = strings.TrimSpace(path)
	s.logger.Info("🖼️ [UserService] Updating profile picture", "user_id", userID, "path", path)

	if path == "" {
		return ErrMissingFields
	}

	if s.pictures != nil {
		if err := s.pictures.Check(path); err != nil {
			s.logger.Warn("⚠️ [UserService] Unusable profile picture", "path", path, "error", err)
			return fmt.Errorf("%w: %v", ErrPictureUnavailable, err)
		}
	}

	if err := s.userRepo.UpdatePicture(userID, path); err != nil {
		s.logger.Error("❌ [UserService] Failed to store profile picture", "user_id", userID, "error", err)
		return err
	}

	s.logger.Info("✅ [UserService] Profile picture updated", "user_id", userID)
	return nil
}
