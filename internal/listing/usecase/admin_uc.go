package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// AdminUseCase covers moderation: dealer approval, account
// suspension and full account purges. Every method assumes the HTTP
// layer has already verified the admin role.
type AdminUseCase struct {
	dealerRepo  domain.DealerRepository
	profileRepo domain.ProfileRepository
	listingRepo domain.ListingRepository
	cache       ListingCache
	mailer      Mailer
	logger      *zap.Logger
}

func NewAdminUseCase(
	dealerRepo domain.DealerRepository,
	profileRepo domain.ProfileRepository,
	listingRepo domain.ListingRepository,
	listingCache ListingCache,
	mailer Mailer,
	logger *zap.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		dealerRepo:  dealerRepo,
		profileRepo: profileRepo,
		listingRepo: listingRepo,
		cache:       listingCache,
		mailer:      mailer,
		logger:      logger,
	}
}

// ApproveDealer moves a dealer to approved and notifies them by mail.
func (uc *AdminUseCase) ApproveDealer(ctx context.Context, dealerID string) error {
	return uc.decideDealer(ctx, dealerID, domain.DealerApproved)
}

// RejectDealer marks a dealer application rejected.
func (uc *AdminUseCase) RejectDealer(ctx context.Context, dealerID string) error {
	return uc.decideDealer(ctx, dealerID, domain.DealerRejected)
}

// SuspendDealer takes an approved dealer off the public directory.
// Their listings stay in the store but the dealer page disappears.
func (uc *AdminUseCase) SuspendDealer(ctx context.Context, dealerID string) error {
	if err := uc.dealerRepo.UpdateStatus(ctx, dealerID, domain.DealerSuspended); err != nil {
		return fmt.Errorf("AdminUseCase.SuspendDealer: failed to update dealer %s: %w", dealerID, err)
	}
	uc.logger.Info("dealer suspended", zap.String("dealer_id", dealerID))
	return nil
}

func (uc *AdminUseCase) decideDealer(ctx context.Context, dealerID string, status domain.DealerStatus) error {
	dealer, err := uc.dealerRepo.FindByID(ctx, dealerID)
	if err != nil {
		return fmt.Errorf("AdminUseCase: failed to load dealer %s: %w", dealerID, err)
	}
	if err := uc.dealerRepo.UpdateStatus(ctx, dealerID, status); err != nil {
		return fmt.Errorf("AdminUseCase: failed to update dealer %s: %w", dealerID, err)
	}
	dealer.Status = status

	if err := uc.mailer.SendDealerDecision(dealer.Email, dealer, status == domain.DealerApproved); err != nil {
		uc.logger.Warn("AdminUseCase: failed to send decision mail",
			zap.String("dealer_id", dealerID), zap.Error(err))
	}
	uc.logger.Info("dealer decision applied",
		zap.String("dealer_id", dealerID),
		zap.String("status", string(status)))
	return nil
}

// SuspendUser blocks a user account.
func (uc *AdminUseCase) SuspendUser(ctx context.Context, userID string) error {
	if err := uc.profileRepo.UpdateStatus(ctx, userID, domain.UserSuspended); err != nil {
		return fmt.Errorf("AdminUseCase.SuspendUser: failed to update user %s: %w", userID, err)
	}
	uc.logger.Info("user suspended", zap.String("user_id", userID))
	return nil
}

// ReinstateUser lifts a suspension.
func (uc *AdminUseCase) ReinstateUser(ctx context.Context, userID string) error {
	if err := uc.profileRepo.UpdateStatus(ctx, userID, domain.UserActive); err != nil {
		return fmt.Errorf("AdminUseCase.ReinstateUser: failed to update user %s: %w", userID, err)
	}
	return nil
}

// PurgeUser removes a user account and, when the user is also a
// dealer, their dealership and entire stock. The profile goes last so
// a partial failure leaves the account discoverable for a retry.
func (uc *AdminUseCase) PurgeUser(ctx context.Context, userID string) error {
	removed, err := uc.listingRepo.DeleteByDealer(ctx, userID)
	if err != nil {
		return fmt.Errorf("AdminUseCase.PurgeUser: failed to delete listings of %s: %w", userID, err)
	}

	if err := uc.dealerRepo.Delete(ctx, userID); err != nil && !isNotFound(err) {
		return fmt.Errorf("AdminUseCase.PurgeUser: failed to delete dealer %s: %w", userID, err)
	}
	if err := uc.profileRepo.Delete(ctx, userID); err != nil && !isNotFound(err) {
		return fmt.Errorf("AdminUseCase.PurgeUser: failed to delete profile %s: %w", userID, err)
	}

	uc.logger.Info("user purged",
		zap.String("user_id", userID),
		zap.Int64("listings_removed", removed))
	return nil
}

// Dealers lists every dealer regardless of status.
func (uc *AdminUseCase) Dealers(ctx context.Context) ([]*domain.Dealer, error) {
	dealers, err := uc.dealerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("AdminUseCase.Dealers: failed to load dealers: %w", err)
	}
	return dealers, nil
}

// Users lists every profile.
func (uc *AdminUseCase) Users(ctx context.Context) ([]*domain.UserProfile, error) {
	users, err := uc.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("AdminUseCase.Users: failed to load profiles: %w", err)
	}
	return users, nil
}

// Listings returns the full catalog including drafts and archived
// stock, for the moderation view.
func (uc *AdminUseCase) Listings(ctx context.Context) ([]*domain.Listing, error) {
	listings, err := uc.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("AdminUseCase.Listings: failed to load listings: %w", err)
	}
	return listings, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrDealerNotFound) || errors.Is(err, domain.ErrProfileNotFound)
}
