package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SoyOusa/localcommunitymarketplace/internal/config"
	"github.com/SoyOusa/localcommunitymarketplace/internal/credentials"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHasher() *credentials.Hasher {
	return credentials.NewHasher(bcrypt.MinCost)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{DatabasePath: ":memory:"}, testLogger())
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
