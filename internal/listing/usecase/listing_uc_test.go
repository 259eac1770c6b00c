package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
	"github.com/autogy/listing-service/internal/listing/lifecycle"
)

func newListingFixture(t *testing.T) (*ListingUseCase, *MockListingRepository, *MockDealerRepository, *MockListingCache, *MockEventPublisher, *MockMailer) {
	t.Helper()
	listingRepo := new(MockListingRepository)
	dealerRepo := new(MockDealerRepository)
	listingCache := new(MockListingCache)
	publisher := new(MockEventPublisher)
	mailer := new(MockMailer)
	uc := NewListingUseCase(listingRepo, dealerRepo, listingCache, publisher, mailer, zap.NewNop())
	return uc, listingRepo, dealerRepo, listingCache, publisher, mailer
}

func validDraft() *domain.Listing {
	return &domain.Listing{
		ID: "l1", Make: "Toyota", Model: "Premio", Year: 2018, Price: 3200000,
	}
}

var dealer = Actor{UserID: "dealer-1", Role: domain.RoleDealer}

func TestCreate_PublishedListingGetsPlaceholderCover(t *testing.T) {
	uc, listingRepo, _, _, publisher, _ := newListingFixture(t)

	listingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	publisher.On("ListingCreated", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Create(context.Background(), dealer, validDraft(), true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, "dealer-1", got.DealerID)
	assert.Equal(t, []string{lifecycle.PlaceholderImage}, got.Images)
}

func TestCreate_DraftStaysImageless(t *testing.T) {
	uc, listingRepo, _, _, publisher, _ := newListingFixture(t)

	listingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	publisher.On("ListingCreated", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Create(context.Background(), dealer, validDraft(), false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, got.Status)
	assert.Empty(t, got.Images)
}

func TestCreate_RejectsInvalidListing(t *testing.T) {
	uc, listingRepo, _, _, _, _ := newListingFixture(t)

	bad := validDraft()
	bad.Make = "  "
	_, err := uc.Create(context.Background(), dealer, bad, true)
	assert.ErrorIs(t, err, domain.ErrInvalidListing)
	listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_ForbiddenForOtherDealer(t *testing.T) {
	uc, listingRepo, _, _, _, _ := newListingFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "someone-else", Status: domain.StatusActive,
	}, nil)

	_, err := uc.Update(context.Background(), dealer, validDraft(), true)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_AdminMayEditAnyListing(t *testing.T) {
	uc, listingRepo, _, listingCache, publisher, _ := newListingFixture(t)
	admin := Actor{UserID: "admin-1", Role: domain.RoleAdmin}

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1", Status: domain.StatusActive, CreatedAt: time.Now(),
	}, nil)
	listingRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	listingCache.On("Delete", mock.Anything, "l1").Return(nil)
	publisher.On("ListingUpdated", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Update(context.Background(), admin, validDraft(), true)
	require.NoError(t, err)
	assert.Equal(t, "dealer-1", got.DealerID, "ownership must not transfer to the editor")
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestChangeStatus_MarkSoldStampsSoldAtAndMails(t *testing.T) {
	uc, listingRepo, dealerRepo, listingCache, publisher, mailer := newListingFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1", Status: domain.StatusActive,
		Images: []string{"a.jpg"},
	}, nil)
	listingRepo.On("UpdateStatus", mock.Anything, "l1", domain.StatusSold, mock.Anything).Return(nil)
	listingCache.On("Delete", mock.Anything, "l1").Return(nil)
	publisher.On("ListingStatusChanged", mock.Anything, mock.Anything, domain.StatusActive).Return(nil)
	dealerRepo.On("FindByID", mock.Anything, "dealer-1").Return(&domain.Dealer{
		ID: "dealer-1", Email: "sales@autogymotors.gy",
	}, nil)
	mailer.On("SendListingSold", "sales@autogymotors.gy", mock.Anything).Return(nil)

	got, err := uc.ChangeStatus(context.Background(), dealer, "l1", lifecycle.ActionMarkSold)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSold, got.Status)
	assert.False(t, got.SoldAt.IsZero())
	mailer.AssertExpectations(t)
}

func TestChangeStatus_InvalidTransitionSurfaces(t *testing.T) {
	uc, listingRepo, _, _, _, _ := newListingFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1", Status: domain.StatusDraft,
	}, nil)

	_, err := uc.ChangeStatus(context.Background(), dealer, "l1", lifecycle.ActionMarkSold)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	listingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeStatus_RestoreClearsSoldAt(t *testing.T) {
	uc, listingRepo, _, listingCache, publisher, _ := newListingFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1", Status: domain.StatusSold,
		SoldAt: time.Now().Add(-time.Hour), Images: []string{"a.jpg"},
	}, nil)
	listingRepo.On("UpdateStatus", mock.Anything, "l1", domain.StatusActive, mock.Anything).Return(nil)
	listingCache.On("Delete", mock.Anything, "l1").Return(nil)
	publisher.On("ListingStatusChanged", mock.Anything, mock.Anything, domain.StatusSold).Return(nil)

	got, err := uc.ChangeStatus(context.Background(), dealer, "l1", lifecycle.ActionRestore)
	require.NoError(t, err)
	assert.True(t, got.SoldAt.IsZero())
}

func TestDelete_InvalidatesCacheAndPublishes(t *testing.T) {
	uc, listingRepo, _, listingCache, publisher, _ := newListingFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1",
	}, nil)
	listingRepo.On("Delete", mock.Anything, "l1").Return(nil)
	listingCache.On("Delete", mock.Anything, "l1").Return(nil)
	publisher.On("ListingDeleted", mock.Anything, "l1").Return(nil)

	require.NoError(t, uc.Delete(context.Background(), dealer, "l1"))
	listingCache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
