package service_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
)

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	if len(args) > 1 && args.Get(0) != nil {
		user.ID = args.Get(0).(uint)
	}
	return args.Error(len(args) - 1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(id uint, name, email, location string) error {
	args := m.Called(id, name, email, location)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePicture(id uint, path string) error {
	args := m.Called(id, path)
	return args.Error(0)
}

// MockPictureChecker implements service.PictureChecker for testing
type MockPictureChecker struct {
	mock.Mock
}

func (m *MockPictureChecker) Check(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
