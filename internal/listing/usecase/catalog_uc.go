package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/adapter/repository/cache"
	"github.com/autogy/listing-service/internal/listing/compare"
	"github.com/autogy/listing-service/internal/listing/domain"
	"github.com/autogy/listing-service/internal/listing/fixtures"
	"github.com/autogy/listing-service/internal/listing/lifecycle"
	"github.com/autogy/listing-service/internal/listing/search"
	"github.com/autogy/listing-service/internal/listing/selection"
)

// CatalogUseCase serves the public, read-only side of the marketplace.
// Reads are bounded by readTimeout and degrade to the fixture catalog
// when the store is unreachable, so browsing never hard-fails.
type CatalogUseCase struct {
	listingRepo domain.ListingRepository
	dealerRepo  domain.DealerRepository
	recentRepo  domain.RecentRepository
	cache       ListingCache
	readTimeout time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

func NewCatalogUseCase(
	listingRepo domain.ListingRepository,
	dealerRepo domain.DealerRepository,
	recentRepo domain.RecentRepository,
	listingCache ListingCache,
	readTimeout time.Duration,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		listingRepo: listingRepo,
		dealerRepo:  dealerRepo,
		recentRepo:  recentRepo,
		cache:       listingCache,
		readTimeout: readTimeout,
		now:         time.Now,
		logger:      logger,
	}
}

// Search returns visible listings matching the filter, price-sorted if
// requested. Store failures fall back to the fixture catalog.
func (uc *CatalogUseCase) Search(ctx context.Context, filter search.Filter, order search.SortOrder) ([]*domain.Listing, error) {
	listings := uc.allListings(ctx)
	visible := lifecycle.Visible(listings, uc.now())
	return search.SortByPrice(filter.Apply(visible), order), nil
}

// Featured returns the newest visible listings for the home page.
func (uc *CatalogUseCase) Featured(ctx context.Context, limit int) ([]*domain.Listing, error) {
	visible := lifecycle.Visible(uc.allListings(ctx), uc.now())
	if limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}
	return visible, nil
}

// GetListing resolves a single listing, cache first. Absence is
// reported as domain.ErrListingNotFound; store outages fall back to
// the fixture catalog before giving up.
func (uc *CatalogUseCase) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	if cached, err := uc.cache.Get(ctx, id); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrNotFound) {
		uc.logger.Warn("CatalogUseCase.GetListing: cache read failed", zap.String("id", id), zap.Error(err))
	}

	readCtx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()

	listing, err := uc.listingRepo.FindByID(readCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, domain.ErrListingNotFound
		}
		uc.logger.Warn("CatalogUseCase.GetListing: store unavailable, trying fixtures",
			zap.String("id", id), zap.Error(err))
		if fallback, ok := fixtures.ListingByID(id); ok {
			return fallback, nil
		}
		return nil, fmt.Errorf("CatalogUseCase.GetListing: failed to load listing %s: %w", id, err)
	}

	if err := uc.cache.Set(ctx, listing); err != nil {
		uc.logger.Warn("CatalogUseCase.GetListing: cache write failed", zap.String("id", id), zap.Error(err))
	}
	return listing, nil
}

// CompareByIDs builds a comparison table for the given selection. IDs
// beyond the compare cap are rejected; unknown IDs are skipped. The
// table preserves the caller's selection order.
func (uc *CatalogUseCase) CompareByIDs(ctx context.Context, ids []string) (*compare.Table, error) {
	if len(ids) > selection.MaxCompare {
		return nil, selection.ErrCompareFull
	}
	if len(ids) == 0 {
		return compare.Build(nil), nil
	}

	readCtx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()

	found, err := uc.listingRepo.FindByIDs(readCtx, ids)
	if err != nil {
		return nil, fmt.Errorf("CatalogUseCase.CompareByIDs: failed to load listings: %w", err)
	}

	byID := make(map[string]*domain.Listing, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}
	ordered := make([]*domain.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			ordered = append(ordered, l)
		}
	}
	return compare.Build(ordered), nil
}

// RecordView notes that a client looked at a listing.
func (uc *CatalogUseCase) RecordView(ctx context.Context, clientID, listingID string) error {
	if err := uc.recentRepo.Record(ctx, clientID, listingID); err != nil {
		return fmt.Errorf("CatalogUseCase.RecordView: failed to record view: %w", err)
	}
	return nil
}

// RecentlyViewed returns the client's last viewed listings, most
// recent first. Listings that have since disappeared are dropped.
func (uc *CatalogUseCase) RecentlyViewed(ctx context.Context, clientID string) ([]*domain.Listing, error) {
	ids, err := uc.recentRepo.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("CatalogUseCase.RecentlyViewed: failed to load history: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	readCtx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()

	found, err := uc.listingRepo.FindByIDs(readCtx, ids)
	if err != nil {
		return nil, fmt.Errorf("CatalogUseCase.RecentlyViewed: failed to load listings: %w", err)
	}
	byID := make(map[string]*domain.Listing, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}
	ordered := make([]*domain.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			ordered = append(ordered, l)
		}
	}
	return ordered, nil
}

// ApprovedDealers lists the public dealer directory, falling back to
// fixtures when the store is down.
func (uc *CatalogUseCase) ApprovedDealers(ctx context.Context) ([]*domain.Dealer, error) {
	readCtx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()

	dealers, err := uc.dealerRepo.FindApproved(readCtx)
	if err != nil {
		uc.logger.Warn("CatalogUseCase.ApprovedDealers: store unavailable, serving fixtures", zap.Error(err))
		return fixtures.Dealers(), nil
	}
	return dealers, nil
}

// Home bundles the landing page: newest visible listings plus the
// approved dealer directory.
func (uc *CatalogUseCase) Home(ctx context.Context, limit int) ([]*domain.Listing, []*domain.Dealer, error) {
	featured, err := uc.Featured(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	dealers, err := uc.ApprovedDealers(ctx)
	if err != nil {
		return nil, nil, err
	}
	return featured, dealers, nil
}

// DealerPage returns an approved dealer together with its visible
// listings, filtered and sorted like the main search.
func (uc *CatalogUseCase) DealerPage(ctx context.Context, dealerID string, filter search.Filter, order search.SortOrder) (*domain.Dealer, []*domain.Listing, error) {
	readCtx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()

	dealer, err := uc.dealerRepo.FindByID(readCtx, dealerID)
	if err != nil {
		if errors.Is(err, domain.ErrDealerNotFound) {
			return nil, nil, domain.ErrDealerNotFound
		}
		return nil, nil, fmt.Errorf("CatalogUseCase.DealerPage: failed to load dealer %s: %w", dealerID, err)
	}
	if dealer.Status != domain.DealerApproved {
		return nil, nil, domain.ErrDealerNotFound
	}

	listings, err := uc.listingRepo.FindByDealer(readCtx, dealerID)
	if err != nil {
		return nil, nil, fmt.Errorf("CatalogUseCase.DealerPage: failed to load listings: %w", err)
	}
	showcase := filter.Apply(lifecycle.Visible(listings, uc.now()))
	return dealer, search.SortByPrice(showcase, order), nil
}

// allListings loads the catalog with the read timeout applied,
// degrading to fixtures on any store failure.
func (uc *CatalogUseCase) allListings(ctx context.Context) []*domain.Listing {
	readCtx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()

	listings, err := uc.listingRepo.FindAll(readCtx)
	if err != nil {
		uc.logger.Warn("CatalogUseCase: store unavailable, serving fixtures", zap.Error(err))
		return fixtures.Listings()
	}
	return listings
}
