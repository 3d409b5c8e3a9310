// Package session tracks who is logged in and where they are in the
// listing browser. A Session is owned by the screen controller and passed
// explicitly; there is no package-level state.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/service"
)

var ErrNotAuthenticated = errors.New("not logged in")

type Session struct {
	userID *uint
	id     uuid.UUID
	page   int
	sort   repository.SortKey
}

func New() *Session {
	return &Session{}
}

// Login records userID as authenticated and starts a fresh browse state
func (s *Session) Login(userID uint) {
	id := userID
	s.userID = &id
	s.id = uuid.New()
	s.page = 0
	s.sort = repository.SortByPrice
}

// Logout forgets the user and every piece of per-user state
func (s *Session) Logout() {
	s.userID = nil
	s.id = uuid.Nil
	s.page = 0
	s.sort = repository.SortByPrice
}

func (s *Session) Authenticated() bool {
	return s.userID != nil
}

// RequireUser returns the current user id or ErrNotAuthenticated
func (s *Session) RequireUser() (uint, error) {
	if s.userID == nil {
		return 0, ErrNotAuthenticated
	}
	return *s.userID, nil
}

// ID identifies the current login for log correlation; uuid.Nil when
// logged out.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Page() int {
	return s.page
}

func (s *Session) Sort() repository.SortKey {
	return s.sort
}

// SetSort changes the listing order and rewinds to the first page
func (s *Session) SetSort(key repository.SortKey) {
	s.sort = key
	s.page = 0
}

// NextPage advances only while the next page would contain rows.
func (s *Session) NextPage(total int64) bool {
	if int64((s.page+1)*service.PageSize) >= total {
		return false
	}
	s.page++
	return true
}

// PreviousPage steps back, stopping at the first page
func (s *Session) PreviousPage() bool {
	if s.page == 0 {
		return false
	}
	s.page--
	return true
}
