package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// FavoriteUseCase manages a user's saved listings. SetFavorite is
// deliberately stated as a desired end state rather than a toggle, so
// repeated or reordered requests converge instead of flip-flopping.
type FavoriteUseCase struct {
	profileRepo domain.ProfileRepository
	listingRepo domain.ListingRepository
	logger      *zap.Logger
}

func NewFavoriteUseCase(profileRepo domain.ProfileRepository, listingRepo domain.ListingRepository, logger *zap.Logger) *FavoriteUseCase {
	return &FavoriteUseCase{profileRepo: profileRepo, listingRepo: listingRepo, logger: logger}
}

// SetFavorite makes listingID present or absent in the user's
// favorites. It is idempotent in both directions.
func (uc *FavoriteUseCase) SetFavorite(ctx context.Context, userID, listingID string, desired bool) error {
	var err error
	if desired {
		err = uc.profileRepo.AddFavorite(ctx, userID, listingID)
	} else {
		err = uc.profileRepo.RemoveFavorite(ctx, userID, listingID)
	}
	if err != nil {
		return fmt.Errorf("FavoriteUseCase.SetFavorite: failed to update favorites: %w", err)
	}
	uc.logger.Debug("favorite updated",
		zap.String("user_id", userID),
		zap.String("listing_id", listingID),
		zap.Bool("favorited", desired))
	return nil
}

// FavoriteIDs returns the raw set of saved listing IDs.
func (uc *FavoriteUseCase) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := uc.profileRepo.Favorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("FavoriteUseCase.FavoriteIDs: failed to load favorites: %w", err)
	}
	return ids, nil
}

// Favorites resolves the user's saved listings. Listings deleted since
// they were saved are silently dropped.
func (uc *FavoriteUseCase) Favorites(ctx context.Context, userID string) ([]*domain.Listing, error) {
	ids, err := uc.profileRepo.Favorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("FavoriteUseCase.Favorites: failed to load favorites: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	listings, err := uc.listingRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("FavoriteUseCase.Favorites: failed to load listings: %w", err)
	}
	return listings, nil
}
