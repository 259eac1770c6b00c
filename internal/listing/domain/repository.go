package domain

import "context"

// ListingRepository is the narrow contract the core depends on; the
// backing document store is an implementation detail of the adapter.
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, listing *Listing) error
	UpdateStatus(ctx context.Context, id string, status ListingStatus, listing *Listing) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	// FindAll returns every listing ordered by creation time descending.
	FindAll(ctx context.Context) ([]*Listing, error)
	FindByDealer(ctx context.Context, dealerID string) ([]*Listing, error)
	// FindByIDs returns the listings in unspecified order; callers
	// needing a display order must re-sort.
	FindByIDs(ctx context.Context, ids []string) ([]*Listing, error)
	DeleteByDealer(ctx context.Context, dealerID string) (int64, error)
}

type DealerRepository interface {
	Create(ctx context.Context, dealer *Dealer) error
	Update(ctx context.Context, dealer *Dealer) error
	UpdateStatus(ctx context.Context, id string, status DealerStatus) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Dealer, error)
	FindApproved(ctx context.Context) ([]*Dealer, error)
	FindAll(ctx context.Context) ([]*Dealer, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *UserProfile) error
	FindByID(ctx context.Context, id string) (*UserProfile, error)
	FindAll(ctx context.Context) ([]*UserProfile, error)
	UpdateStatus(ctx context.Context, id string, status UserStatus) error
	Delete(ctx context.Context, id string) error
	Favorites(ctx context.Context, userID string) ([]string, error)
	// AddFavorite and RemoveFavorite are idempotent set operations.
	AddFavorite(ctx context.Context, userID, listingID string) error
	RemoveFavorite(ctx context.Context, userID, listingID string) error
}

// RecentRepository tracks the last few listings a client looked at.
type RecentRepository interface {
	Record(ctx context.Context, clientID, listingID string) error
	// List returns at most 5 listing IDs, most recent first.
	List(ctx context.Context, clientID string) ([]string, error)
}
