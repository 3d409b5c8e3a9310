package service

import (
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
)

// PageSize is the number of listings shown per browse page
const PageSize = 5

// ListingInput carries the raw form values of a new listing
type ListingInput struct {
	Title       string
	Description string
	Price       string
	Category    string
	ImagePath   string
}

// ListingPage is one page of browse results
type ListingPage struct {
	Listings []models.Listing
	Page     int
	Total    int64
}

// HasNext reports whether a page after this one has rows
func (p *ListingPage) HasNext() bool {
	return int64((p.Page+1)*PageSize) < p.Total
}

// ListingService defines the interface for posting and browsing listings
type ListingService interface {
	Post(sellerID uint, input ListingInput) (*models.Listing, error)
	Browse(sort repository.SortKey, page int) (*ListingPage, error)
	Count() (int64, error)
}

type listingService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ParsePrice accepts finite, non-negative decimal numbers
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidPrice
	}
	return price, nil
}

func (s *listingService) Post(sellerID uint, input ListingInput) (*models.Listing, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	rawPrice := strings.TrimSpace(input.Price)

	s.logger.Info("📦 [ListingService] Posting listing", "seller_id", sellerID, "title", title)

	if title == "" || rawPrice == "" || category == "" {
		return nil, ErrListingFields
	}

	price, err := ParsePrice(rawPrice)
	if err != nil {
		s.logger.Warn("⚠️ [ListingService] Invalid price", "price", rawPrice)
		return nil, err
	}

	seller, err := s.userRepo.FindByID(sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [ListingService] Seller not found", "seller_id", sellerID)
			return nil, ErrLocationUnavailable
		}
		s.logger.Error("❌ [ListingService] Failed to load seller", "seller_id", sellerID, "error", err)
		return nil, err
	}

	listing := &models.Listing{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Price:       price,
		Category:    category,
		SellerID:    seller.ID,
		Location:    seller.Location,
		ImagePath:   strings.TrimSpace(input.ImagePath),
	}

	if err := s.listingRepo.Create(listing); err != nil {
		s.logger.Error("❌ [ListingService] Failed to create listing", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ListingService] Listing posted", "listing_id", listing.ID)
	return listing, nil
}

func (s *listingService) Browse(sort repository.SortKey, page int) (*ListingPage, error) {
	if page < 0 {
		page = 0
	}

	total, err := s.listingRepo.Count()
	if err != nil {
		s.logger.Error("❌ [ListingService] Failed to count listings", "error", err)
		return nil, err
	}

	listings, err := s.listingRepo.Page(sort, PageSize, page*PageSize)
	if err != nil {
		s.logger.Error("❌ [ListingService] Failed to load listings", "page", page, "sort", sort.String(), "error", err)
		return nil, err
	}

	s.logger.Debug("🔎 [ListingService] Listings page loaded", "page", page, "sort", sort.String(), "rows", len(listings))
	return &ListingPage{Listings: listings, Page: page, Total: total}, nil
}

func (s *listingService) Count() (int64, error) {
	return s.listingRepo.Count()
}
