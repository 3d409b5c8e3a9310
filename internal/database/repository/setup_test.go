package repository_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SoyOusa/localcommunitymarketplace/internal/config"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
)

// setupTestDB creates a new in-memory SQLite database with the marketplace schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := database.Open(&config.Config{DatabasePath: ":memory:"}, logger)
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "hashedpassword",
		Location:     "Springfield",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
