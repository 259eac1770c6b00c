// Package usecase wires the domain rules to the adapters. Each use
// case receives its dependencies through constructor injection and
// talks to the outside world only through the interfaces below.
package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// ErrForbidden is returned when an actor may not touch a resource.
var ErrForbidden = errors.New("operation not permitted")

// Actor identifies the authenticated caller of a use case.
type Actor struct {
	UserID string
	Role   domain.UserRole
}

// CanManage reports whether the actor may modify a listing owned by
// dealerID. Admins manage everything; dealers only their own stock.
func (a Actor) CanManage(dealerID string) bool {
	return a.Role == domain.RoleAdmin || a.UserID == dealerID
}

// ListingCache is a read-through cache for single listings.
type ListingCache interface {
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Set(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher emits listing lifecycle events for other services.
type EventPublisher interface {
	ListingCreated(ctx context.Context, listing *domain.Listing) error
	ListingUpdated(ctx context.Context, listing *domain.Listing) error
	ListingDeleted(ctx context.Context, id string) error
	ListingStatusChanged(ctx context.Context, listing *domain.Listing, previous domain.ListingStatus) error
}

// PhotoStorage stores listing photos and returns their public URL.
type PhotoStorage interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectURL string) error
}

// Mailer sends transactional notifications. Failures are logged, not
// surfaced, so mail outages never fail a write.
type Mailer interface {
	SendListingSold(to string, listing *domain.Listing) error
	SendDealerDecision(to string, dealer *domain.Dealer, approved bool) error
}
