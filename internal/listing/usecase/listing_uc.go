package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
	"github.com/autogy/listing-service/internal/listing/lifecycle"
)

// ListingUseCase covers dealer-side stock management. Writes go
// straight to the store and fail loudly; there is no fixture fallback
// on this path.
type ListingUseCase struct {
	listingRepo domain.ListingRepository
	dealerRepo  domain.DealerRepository
	cache       ListingCache
	publisher   EventPublisher
	mailer      Mailer
	now         func() time.Time
	logger      *zap.Logger
}

func NewListingUseCase(
	listingRepo domain.ListingRepository,
	dealerRepo domain.DealerRepository,
	listingCache ListingCache,
	publisher EventPublisher,
	mailer Mailer,
	logger *zap.Logger,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		dealerRepo:  dealerRepo,
		cache:       listingCache,
		publisher:   publisher,
		mailer:      mailer,
		now:         time.Now,
		logger:      logger,
	}
}

// Create stores a new listing for the acting dealer. With publish set
// the listing goes live immediately, otherwise it is saved as a draft.
func (uc *ListingUseCase) Create(ctx context.Context, actor Actor, listing *domain.Listing, publish bool) (*domain.Listing, error) {
	if err := validateListing(listing); err != nil {
		return nil, err
	}

	action := lifecycle.ActionSaveDraft
	if publish {
		action = lifecycle.ActionSubmit
	}
	status, _, err := lifecycle.Next(domain.StatusDraft, action, time.Time{}, uc.now())
	if err != nil {
		return nil, fmt.Errorf("ListingUseCase.Create: %w", err)
	}

	now := uc.now()
	listing.DealerID = actor.UserID
	listing.Status = status
	listing.Images = lifecycle.EnsureCoverImage(listing.Images, status)
	listing.CreatedAt = now
	listing.UpdatedAt = now
	listing.SoldAt = time.Time{}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("ListingUseCase.Create: failed to create listing: %w", err)
	}

	if err := uc.publisher.ListingCreated(ctx, listing); err != nil {
		uc.logger.Warn("ListingUseCase.Create: failed to publish event",
			zap.String("listing_id", listing.ID), zap.Error(err))
	}
	uc.logger.Info("listing created",
		zap.String("listing_id", listing.ID),
		zap.String("dealer_id", listing.DealerID),
		zap.String("status", string(listing.Status)))
	return listing, nil
}

// Update replaces the editable fields of a listing. Submitting a draft
// publishes it; submitting a live listing keeps its current status.
func (uc *ListingUseCase) Update(ctx context.Context, actor Actor, listing *domain.Listing, publish bool) (*domain.Listing, error) {
	current, err := uc.authorize(ctx, actor, listing.ID)
	if err != nil {
		return nil, err
	}
	if err := validateListing(listing); err != nil {
		return nil, err
	}

	action := lifecycle.ActionSaveDraft
	if publish {
		action = lifecycle.ActionSubmit
	}
	status, soldAt, err := lifecycle.Next(current.Status, action, current.SoldAt, uc.now())
	if err != nil {
		return nil, fmt.Errorf("ListingUseCase.Update: %w", err)
	}

	listing.DealerID = current.DealerID
	listing.Status = status
	listing.SoldAt = soldAt
	listing.Images = lifecycle.EnsureCoverImage(listing.Images, status)
	listing.CreatedAt = current.CreatedAt
	listing.UpdatedAt = uc.now()

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("ListingUseCase.Update: failed to update listing %s: %w", listing.ID, err)
	}
	uc.invalidate(ctx, listing.ID)

	if err := uc.publisher.ListingUpdated(ctx, listing); err != nil {
		uc.logger.Warn("ListingUseCase.Update: failed to publish event",
			zap.String("listing_id", listing.ID), zap.Error(err))
	}
	return listing, nil
}

// ChangeStatus applies a lifecycle action (mark sold, restore,
// archive, back to draft) to a listing.
func (uc *ListingUseCase) ChangeStatus(ctx context.Context, actor Actor, id string, action lifecycle.Action) (*domain.Listing, error) {
	listing, err := uc.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	previous := listing.Status
	status, soldAt, err := lifecycle.Next(listing.Status, action, listing.SoldAt, uc.now())
	if err != nil {
		return nil, fmt.Errorf("ListingUseCase.ChangeStatus: %w", err)
	}

	listing.Status = status
	listing.SoldAt = soldAt
	listing.Images = lifecycle.EnsureCoverImage(listing.Images, status)
	listing.UpdatedAt = uc.now()

	if err := uc.listingRepo.UpdateStatus(ctx, id, status, listing); err != nil {
		return nil, fmt.Errorf("ListingUseCase.ChangeStatus: failed to update listing %s: %w", id, err)
	}
	uc.invalidate(ctx, id)

	if err := uc.publisher.ListingStatusChanged(ctx, listing, previous); err != nil {
		uc.logger.Warn("ListingUseCase.ChangeStatus: failed to publish event",
			zap.String("listing_id", id), zap.Error(err))
	}

	if action == lifecycle.ActionMarkSold {
		uc.notifySold(ctx, listing)
	}

	uc.logger.Info("listing status changed",
		zap.String("listing_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(status)))
	return listing, nil
}

// Delete permanently removes a listing.
func (uc *ListingUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := uc.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("ListingUseCase.Delete: failed to delete listing %s: %w", id, err)
	}
	uc.invalidate(ctx, id)

	if err := uc.publisher.ListingDeleted(ctx, id); err != nil {
		uc.logger.Warn("ListingUseCase.Delete: failed to publish event",
			zap.String("listing_id", id), zap.Error(err))
	}
	return nil
}

// MyListings returns every listing of the acting dealer, drafts and
// archived stock included.
func (uc *ListingUseCase) MyListings(ctx context.Context, actor Actor) ([]*domain.Listing, error) {
	listings, err := uc.listingRepo.FindByDealer(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("ListingUseCase.MyListings: failed to load listings: %w", err)
	}
	return listings, nil
}

func (uc *ListingUseCase) authorize(ctx context.Context, actor Actor, id string) (*domain.Listing, error) {
	listing, err := uc.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("ListingUseCase: failed to load listing %s: %w", id, err)
	}
	if !actor.CanManage(listing.DealerID) {
		return nil, ErrForbidden
	}
	return listing, nil
}

func (uc *ListingUseCase) invalidate(ctx context.Context, id string) {
	if err := uc.cache.Delete(ctx, id); err != nil {
		uc.logger.Warn("failed to invalidate listing cache", zap.String("listing_id", id), zap.Error(err))
	}
}

func (uc *ListingUseCase) notifySold(ctx context.Context, listing *domain.Listing) {
	dealer, err := uc.dealerRepo.FindByID(ctx, listing.DealerID)
	if err != nil {
		uc.logger.Warn("ListingUseCase.notifySold: failed to load dealer",
			zap.String("dealer_id", listing.DealerID), zap.Error(err))
		return
	}
	if err := uc.mailer.SendListingSold(dealer.Email, listing); err != nil {
		uc.logger.Warn("ListingUseCase.notifySold: failed to send mail",
			zap.String("dealer_id", dealer.ID), zap.Error(err))
	}
}

func validateListing(l *domain.Listing) error {
	switch {
	case strings.TrimSpace(l.Make) == "":
		return fmt.Errorf("%w: make is required", domain.ErrInvalidListing)
	case strings.TrimSpace(l.Model) == "":
		return fmt.Errorf("%w: model is required", domain.ErrInvalidListing)
	case l.Year < 1950 || l.Year > time.Now().Year()+1:
		return fmt.Errorf("%w: year %d is out of range", domain.ErrInvalidListing, l.Year)
	case l.Price < 0:
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidListing)
	case l.Mileage < 0:
		return fmt.Errorf("%w: mileage cannot be negative", domain.ErrInvalidListing)
	}
	return nil
}
