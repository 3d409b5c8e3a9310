package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/credentials"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
)

// AuthService defines the interface for signup and login
type AuthService interface {
	Register(name, email, password, location string) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   *credentials.Hasher
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	userRepo repository.UserRepository,
	hasher *credentials.Hasher,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (s *authService) Register(name, email, password, location string) (*models.User, error) {
	email = strings.TrimSpace(email)
	s.logger.Info("📝 [AuthService] Registration attempt", "email", email)

	if name == "" || email == "" || password == "" || location == "" {
		s.logger.Warn("⚠️ [AuthService] Registration missing fields", "email", email)
		return nil, ErrMissingFields
	}

	hashedPassword, err := s.hasher.Hash(password)
	if errors.Is(err, credentials.ErrPasswordTooLong) {
		s.logger.Warn("⚠️ [AuthService] Password too long", "email", email, "bytes", len(password))
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Location:     location,
	}

	// The UNIQUE index decides; no read-then-write race.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return user, nil
}
