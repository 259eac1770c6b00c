package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// DealerUseCase handles dealership registration and profile upkeep.
// New dealerships start pending and only surface publicly once an
// admin approves them.
type DealerUseCase struct {
	dealerRepo  domain.DealerRepository
	profileRepo domain.ProfileRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewDealerUseCase(dealerRepo domain.DealerRepository, profileRepo domain.ProfileRepository, logger *zap.Logger) *DealerUseCase {
	return &DealerUseCase{
		dealerRepo:  dealerRepo,
		profileRepo: profileRepo,
		now:         time.Now,
		logger:      logger,
	}
}

// Register files a dealership application for the acting user. The
// dealer record shares the user's ID so ownership checks stay a
// string comparison.
func (uc *DealerUseCase) Register(ctx context.Context, actor Actor, dealer *domain.Dealer) (*domain.Dealer, error) {
	if strings.TrimSpace(dealer.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business name is required", domain.ErrInvalidListing)
	}

	dealer.ID = actor.UserID
	dealer.Status = domain.DealerPending
	dealer.CreatedAt = uc.now()

	if err := uc.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, fmt.Errorf("DealerUseCase.Register: failed to create dealer: %w", err)
	}
	uc.logger.Info("dealer application filed",
		zap.String("dealer_id", dealer.ID),
		zap.String("business_name", dealer.BusinessName))
	return dealer, nil
}

// UpdateProfile edits a dealership's public details. Status is not
// editable here; approval stays an admin operation.
func (uc *DealerUseCase) UpdateProfile(ctx context.Context, actor Actor, dealer *domain.Dealer) (*domain.Dealer, error) {
	current, err := uc.dealerRepo.FindByID(ctx, dealer.ID)
	if err != nil {
		return nil, fmt.Errorf("DealerUseCase.UpdateProfile: failed to load dealer %s: %w", dealer.ID, err)
	}
	if !actor.CanManage(current.ID) {
		return nil, ErrForbidden
	}

	dealer.Status = current.Status
	dealer.CreatedAt = current.CreatedAt

	if err := uc.dealerRepo.Update(ctx, dealer); err != nil {
		return nil, fmt.Errorf("DealerUseCase.UpdateProfile: failed to update dealer %s: %w", dealer.ID, err)
	}
	return dealer, nil
}

// EnsureProfile creates the marketplace profile for a newly seen
// identity. Existing profiles are returned untouched.
func (uc *DealerUseCase) EnsureProfile(ctx context.Context, actor Actor, email, displayName string) (*domain.UserProfile, error) {
	existing, err := uc.profileRepo.FindByID(ctx, actor.UserID)
	if err == nil {
		return existing, nil
	}
	// Only genuine absence triggers creation; a store outage must not
	// spawn a duplicate profile write.
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("DealerUseCase.EnsureProfile: failed to load profile: %w", err)
	}

	profile := &domain.UserProfile{
		ID:          actor.UserID,
		Email:       email,
		DisplayName: displayName,
		Role:        domain.RoleUser,
		Status:      domain.UserActive,
		CreatedAt:   uc.now(),
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("DealerUseCase.EnsureProfile: failed to create profile: %w", err)
	}
	return profile, nil
}
