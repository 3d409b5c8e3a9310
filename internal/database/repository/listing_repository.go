package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
)

// SortKey selects the ordering used when paging through listings. Only the
// keys declared here can reach the ORDER BY clause.
type SortKey int

const (
	SortByPrice SortKey = iota
	SortByTitle
	SortByCategory
	SortByNewest
)

var sortClauses = map[SortKey]string{
	SortByPrice:    "listings.price ASC, listings.listing_id ASC",
	SortByTitle:    "listings.title ASC, listings.listing_id ASC",
	SortByCategory: "listings.category ASC, listings.listing_id ASC",
	SortByNewest:   "listings.listing_id DESC",
}

var sortNames = map[SortKey]string{
	SortByPrice:    "price",
	SortByTitle:    "title",
	SortByCategory: "category",
	SortByNewest:   "newest",
}

// SortKeys lists every supported ordering in display order
func SortKeys() []SortKey {
	return []SortKey{SortByPrice, SortByTitle, SortByCategory, SortByNewest}
}

// ParseSortKey maps a sort name back to its key
func ParseSortKey(name string) (SortKey, bool) {
	for key, n := range sortNames {
		if n == name {
			return key, true
		}
	}
	return SortByPrice, false
}

func (k SortKey) String() string {
	if name, ok := sortNames[k]; ok {
		return name
	}
	return "price"
}

// orderClause falls back to price ordering for unknown keys
func (k SortKey) orderClause() string {
	if c, ok := sortClauses[k]; ok {
		return c
	}
	return sortClauses[SortByPrice]
}

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	Create(listing *models.Listing) error
	FindByID(id uint) (*models.Listing, error)
	Page(sort SortKey, limit, offset int) ([]models.Listing, error)
	Count() (int64, error)
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository instance
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *models.Listing) error {
	return r.db.Omit(clause.Associations).Create(listing).Error
}

func (r *listingRepository) FindByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Where("listing_id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// Page returns one page of listings with their sellers loaded
func (r *listingRepository) Page(sort SortKey, limit, offset int) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Preload("Seller").
		Order(sort.orderClause()).
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Listing{}).Count(&count).Error
	return count, err
}
