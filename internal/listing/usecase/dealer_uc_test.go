package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

func newDealerFixture(t *testing.T) (*DealerUseCase, *MockDealerRepository, *MockProfileRepository) {
	t.Helper()
	dealerRepo := new(MockDealerRepository)
	profileRepo := new(MockProfileRepository)
	uc := NewDealerUseCase(dealerRepo, profileRepo, zap.NewNop())
	return uc, dealerRepo, profileRepo
}

func TestRegister_StartsPendingWithActorID(t *testing.T) {
	uc, dealerRepo, _ := newDealerFixture(t)

	dealerRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Register(context.Background(), dealer, &domain.Dealer{
		BusinessName: "Berbice Wheels",
	})
	require.NoError(t, err)
	assert.Equal(t, dealer.UserID, got.ID)
	assert.Equal(t, domain.DealerPending, got.Status)
}

func TestEnsureProfile_ReturnsExisting(t *testing.T) {
	uc, _, profileRepo := newDealerFixture(t)
	existing := &domain.UserProfile{ID: dealer.UserID}

	profileRepo.On("FindByID", mock.Anything, dealer.UserID).Return(existing, nil)

	got, err := uc.EnsureProfile(context.Background(), dealer, "x@y.gy", "X")
	require.NoError(t, err)
	assert.Same(t, existing, got)
	profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureProfile_CreatesOnAbsence(t *testing.T) {
	uc, _, profileRepo := newDealerFixture(t)

	profileRepo.On("FindByID", mock.Anything, dealer.UserID).Return(nil, domain.ErrProfileNotFound)
	profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
		return p.ID == dealer.UserID && p.Role == domain.RoleUser && p.Status == domain.UserActive
	})).Return(nil)

	got, err := uc.EnsureProfile(context.Background(), dealer, "x@y.gy", "X")
	require.NoError(t, err)
	assert.Equal(t, dealer.UserID, got.ID)
	profileRepo.AssertExpectations(t)
}

func TestEnsureProfile_StoreOutageDoesNotCreate(t *testing.T) {
	uc, _, profileRepo := newDealerFixture(t)

	profileRepo.On("FindByID", mock.Anything, dealer.UserID).Return(nil, errors.New("connection refused"))

	_, err := uc.EnsureProfile(context.Background(), dealer, "x@y.gy", "X")
	assert.Error(t, err)
	profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
