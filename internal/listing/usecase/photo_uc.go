package usecase

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// MaxPhotosPerListing caps the gallery size of a single listing.
const MaxPhotosPerListing = 12

// PhotoUseCase uploads listing photos to object storage and attaches
// their URLs to the listing gallery.
type PhotoUseCase struct {
	listingRepo domain.ListingRepository
	storage     PhotoStorage
	cache       ListingCache
	logger      *zap.Logger
}

func NewPhotoUseCase(listingRepo domain.ListingRepository, storage PhotoStorage, listingCache ListingCache, logger *zap.Logger) *PhotoUseCase {
	return &PhotoUseCase{listingRepo: listingRepo, storage: storage, cache: listingCache, logger: logger}
}

// Upload stores one photo and appends its URL to the listing. The
// first photo ever attached becomes the cover image.
func (uc *PhotoUseCase) Upload(ctx context.Context, actor Actor, listingID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	listing, err := uc.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return "", fmt.Errorf("PhotoUseCase.Upload: failed to load listing %s: %w", listingID, err)
	}
	if !actor.CanManage(listing.DealerID) {
		return "", ErrForbidden
	}
	if len(listing.Images) >= MaxPhotosPerListing {
		return "", fmt.Errorf("%w: listing already has %d photos", domain.ErrInvalidListing, MaxPhotosPerListing)
	}

	url, err := uc.storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return "", fmt.Errorf("PhotoUseCase.Upload: failed to store photo: %w", err)
	}

	listing.Images = append(listing.Images, url)
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		// Best effort cleanup; the orphaned object is harmless if this
		// fails too.
		if rmErr := uc.storage.Remove(ctx, url); rmErr != nil {
			uc.logger.Warn("PhotoUseCase.Upload: failed to remove orphaned photo",
				zap.String("url", url), zap.Error(rmErr))
		}
		return "", fmt.Errorf("PhotoUseCase.Upload: failed to attach photo to listing %s: %w", listingID, err)
	}
	if err := uc.cache.Delete(ctx, listingID); err != nil {
		uc.logger.Warn("PhotoUseCase.Upload: failed to invalidate cache",
			zap.String("listing_id", listingID), zap.Error(err))
	}

	uc.logger.Info("photo uploaded",
		zap.String("listing_id", listingID),
		zap.String("url", url),
		zap.Int64("size", size))
	return url, nil
}

// RemovePhoto detaches a photo URL from the listing and deletes the
// underlying object.
func (uc *PhotoUseCase) RemovePhoto(ctx context.Context, actor Actor, listingID, url string) error {
	listing, err := uc.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return fmt.Errorf("PhotoUseCase.RemovePhoto: failed to load listing %s: %w", listingID, err)
	}
	if !actor.CanManage(listing.DealerID) {
		return ErrForbidden
	}

	kept := make([]string, 0, len(listing.Images))
	for _, img := range listing.Images {
		if img != url {
			kept = append(kept, img)
		}
	}
	if len(kept) == len(listing.Images) {
		return nil
	}
	listing.Images = kept

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return fmt.Errorf("PhotoUseCase.RemovePhoto: failed to update listing %s: %w", listingID, err)
	}
	if err := uc.cache.Delete(ctx, listingID); err != nil {
		uc.logger.Warn("PhotoUseCase.RemovePhoto: failed to invalidate cache",
			zap.String("listing_id", listingID), zap.Error(err))
	}
	if err := uc.storage.Remove(ctx, url); err != nil {
		uc.logger.Warn("PhotoUseCase.RemovePhoto: failed to delete object",
			zap.String("url", url), zap.Error(err))
	}
	return nil
}
