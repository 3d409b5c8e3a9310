package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/service"
)

func newListingFixture(t *testing.T) (service.ListingService, *models.User, func() int64) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	auth := service.NewAuthService(userRepo, testHasher(), testLogger())

	seller, err := auth.Register("Sam", "sam@example.com", "pw", "Shelbyville")
	require.NoError(t, err)

	count := func() int64 {
		n, err := listingRepo.Count()
		require.NoError(t, err)
		return n
	}
	return service.NewListingService(listingRepo, userRepo, testLogger()), seller, count
}

func TestListingService_Post(t *testing.T) {
	svc, seller, count := newListingFixture(t)

	tests := []struct {
		name    string
		input   service.ListingInput
		wantErr error
	}{
		{
			name:    "non-numeric price",
			input:   service.ListingInput{Title: "Bike", Price: "abc", Category: "sports"},
			wantErr: service.ErrInvalidPrice,
		},
		{
			name:    "negative price",
			input:   service.ListingInput{Title: "Bike", Price: "-1", Category: "sports"},
			wantErr: service.ErrInvalidPrice,
		},
		{
			name:    "infinite price",
			input:   service.ListingInput{Title: "Bike", Price: "Inf", Category: "sports"},
			wantErr: service.ErrInvalidPrice,
		},
		{
			name:    "missing title",
			input:   service.ListingInput{Title: "  ", Price: "1", Category: "sports"},
			wantErr: service.ErrListingFields,
		},
		{
			name:    "missing category",
			input:   service.ListingInput{Title: "Bike", Price: "1"},
			wantErr: service.ErrListingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := svc.Post(seller.ID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, listing)
			assert.Zero(t, count())
		})
	}

	t.Run("success", func(t *testing.T) {
		listing, err := svc.Post(seller.ID, service.ListingInput{
			Title:       "Bike",
			Description: "Red, barely used",
			Price:       "19.99",
			Category:    "sports",
			ImagePath:   "/pics/bike.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, 19.99, listing.Price)
		assert.Equal(t, "Shelbyville", listing.Location)
		assert.Equal(t, seller.ID, listing.SellerID)
		assert.Equal(t, int64(1), count())
	})
}

func TestListingService_PostUnknownSeller(t *testing.T) {
	svc, _, count := newListingFixture(t)

	_, err := svc.Post(99999, service.ListingInput{Title: "Bike", Price: "5", Category: "sports"})
	assert.ErrorIs(t, err, service.ErrLocationUnavailable)
	assert.Zero(t, count())
}

func TestListingService_Browse(t *testing.T) {
	svc, seller, _ := newListingFixture(t)

	for i := 0; i < 12; i++ {
		_, err := svc.Post(seller.ID, service.ListingInput{
			Title:    fmt.Sprintf("Item %d", i),
			Price:    fmt.Sprintf("%d", i),
			Category: "misc",
		})
		require.NoError(t, err)
	}

	tests := []struct {
		page     int
		wantRows int
		wantNext bool
	}{
		{page: 0, wantRows: 5, wantNext: true},
		{page: 1, wantRows: 5, wantNext: true},
		{page: 2, wantRows: 2, wantNext: false},
		{page: 3, wantRows: 0, wantNext: false},
		{page: -1, wantRows: 5, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			page, err := svc.Browse(repository.SortByPrice, tt.page)
			require.NoError(t, err)
			assert.Len(t, page.Listings, tt.wantRows)
			assert.Equal(t, int64(12), page.Total)
			assert.Equal(t, tt.wantNext, page.HasNext())
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "19.99", want: 19.99},
		{raw: " 0 ", want: 0},
		{raw: "1e3", want: 1000},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "-0.01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := service.ParsePrice(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
