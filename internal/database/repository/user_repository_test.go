package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
)

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	tests := []struct {
		name    string
		user    *models.User
		wantErr error
	}{
		{
			name: "success",
			user: &models.User{
				Name:         "Test",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Location:     "Springfield",
			},
		},
		{
			name: "duplicate email",
			user: &models.User{
				Name:         "Other",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Location:     "Shelbyville",
			},
			wantErr: repository.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	createUser(t, db, "find")

	tests := []struct {
		name      string
		email     string
		wantErr   error
		wantEmail string
	}{
		{
			name:      "found",
			email:     "find@example.com",
			wantEmail: "find@example.com",
		},
		{
			name:    "not found",
			email:   "nonexistent@example.com",
			wantErr: repository.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.FindByEmail(tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantEmail, user.Email)
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	testUser := createUser(t, db, "byid")

	user, err := repo.FindByID(testUser.ID)
	require.NoError(t, err)
	assert.Equal(t, "byid", user.Name)
	assert.Nil(t, user.ProfilePicture)

	user, err = repo.FindByID(99999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	ann := createUser(t, db, "ann")
	bob := createUser(t, db, "bob")

	t.Run("success", func(t *testing.T) {
		require.NoError(t, repo.UpdateProfile(ann.ID, "Ann B", "ann.b@example.com", "Capital City"))

		user, err := repo.FindByID(ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann B", user.Name)
		assert.Equal(t, "ann.b@example.com", user.Email)
		assert.Equal(t, "Capital City", user.Location)
		assert.Equal(t, "hashedpassword", user.PasswordHash)
	})

	t.Run("email owned by another user", func(t *testing.T) {
		err := repo.UpdateProfile(ann.ID, "Ann", bob.Email, "Springfield")
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := repo.UpdateProfile(99999, "Ghost", "ghost@example.com", "Nowhere")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_UpdatePicture(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	ann := createUser(t, db, "ann")

	require.NoError(t, repo.UpdatePicture(ann.ID, "/tmp/ann.png"))

	user, err := repo.FindByID(ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ann.png", user.PicturePath())

	assert.ErrorIs(t, repo.UpdatePicture(99999, "/tmp/x.png"), repository.ErrUserNotFound)
}
