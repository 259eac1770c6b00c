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

func newAdminFixture(t *testing.T) (*AdminUseCase, *MockDealerRepository, *MockProfileRepository, *MockListingRepository, *MockMailer) {
	t.Helper()
	dealerRepo := new(MockDealerRepository)
	profileRepo := new(MockProfileRepository)
	listingRepo := new(MockListingRepository)
	mailer := new(MockMailer)
	uc := NewAdminUseCase(dealerRepo, profileRepo, listingRepo, new(MockListingCache), mailer, zap.NewNop())
	return uc, dealerRepo, profileRepo, listingRepo, mailer
}

func TestApproveDealer_UpdatesStatusAndMails(t *testing.T) {
	uc, dealerRepo, _, _, mailer := newAdminFixture(t)

	dealerRepo.On("FindByID", mock.Anything, "d1").Return(&domain.Dealer{
		ID: "d1", Email: "info@berbicewheels.gy", Status: domain.DealerPending,
	}, nil)
	dealerRepo.On("UpdateStatus", mock.Anything, "d1", domain.DealerApproved).Return(nil)
	mailer.On("SendDealerDecision", "info@berbicewheels.gy", mock.Anything, true).Return(nil)

	require.NoError(t, uc.ApproveDealer(context.Background(), "d1"))
	dealerRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestApproveDealer_MailFailureDoesNotFailApproval(t *testing.T) {
	uc, dealerRepo, _, _, mailer := newAdminFixture(t)

	dealerRepo.On("FindByID", mock.Anything, "d1").Return(&domain.Dealer{ID: "d1"}, nil)
	dealerRepo.On("UpdateStatus", mock.Anything, "d1", domain.DealerApproved).Return(nil)
	mailer.On("SendDealerDecision", mock.Anything, mock.Anything, true).Return(errors.New("smtp down"))

	assert.NoError(t, uc.ApproveDealer(context.Background(), "d1"))
}

func TestPurgeUser_CascadesListingsAndDealer(t *testing.T) {
	uc, dealerRepo, profileRepo, listingRepo, _ := newAdminFixture(t)

	listingRepo.On("DeleteByDealer", mock.Anything, "u1").Return(int64(3), nil)
	dealerRepo.On("Delete", mock.Anything, "u1").Return(nil)
	profileRepo.On("Delete", mock.Anything, "u1").Return(nil)

	require.NoError(t, uc.PurgeUser(context.Background(), "u1"))
	listingRepo.AssertExpectations(t)
	dealerRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestPurgeUser_ToleratesPlainUserWithoutDealer(t *testing.T) {
	uc, dealerRepo, profileRepo, listingRepo, _ := newAdminFixture(t)

	listingRepo.On("DeleteByDealer", mock.Anything, "u1").Return(int64(0), nil)
	dealerRepo.On("Delete", mock.Anything, "u1").Return(domain.ErrDealerNotFound)
	profileRepo.On("Delete", mock.Anything, "u1").Return(nil)

	assert.NoError(t, uc.PurgeUser(context.Background(), "u1"))
}

func TestPurgeUser_StopsWhenListingCascadeFails(t *testing.T) {
	uc, dealerRepo, profileRepo, listingRepo, _ := newAdminFixture(t)

	listingRepo.On("DeleteByDealer", mock.Anything, "u1").Return(int64(0), errors.New("write failed"))

	err := uc.PurgeUser(context.Background(), "u1")
	assert.Error(t, err)
	dealerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	profileRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
