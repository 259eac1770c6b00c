package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/autogy/listing-service/internal/listing/domain"
)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) UpdateStatus(ctx context.Context, id string, status domain.ListingStatus, listing *domain.Listing) error {
	args := m.Called(ctx, id, status, listing)
	return args.Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) FindAll(ctx context.Context) ([]*domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByDealer(ctx context.Context, dealerID string) ([]*domain.Listing, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Listing, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) DeleteByDealer(ctx context.Context, dealerID string) (int64, error) {
	args := m.Called(ctx, dealerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDealerRepository struct {
	mock.Mock
}

func (m *MockDealerRepository) Create(ctx context.Context, dealer *domain.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}

func (m *MockDealerRepository) Update(ctx context.Context, dealer *domain.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}

func (m *MockDealerRepository) UpdateStatus(ctx context.Context, id string, status domain.DealerStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDealerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDealerRepository) FindByID(ctx context.Context, id string) (*domain.Dealer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dealer), args.Error(1)
}

func (m *MockDealerRepository) FindApproved(ctx context.Context) ([]*domain.Dealer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Dealer), args.Error(1)
}

func (m *MockDealerRepository) FindAll(ctx context.Context) ([]*domain.Dealer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Dealer), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context) ([]*domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) Favorites(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProfileRepository) AddFavorite(ctx context.Context, userID, listingID string) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}

func (m *MockProfileRepository) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}

type MockRecentRepository struct {
	mock.Mock
}

func (m *MockRecentRepository) Record(ctx context.Context, clientID, listingID string) error {
	args := m.Called(ctx, clientID, listingID)
	return args.Error(0)
}

func (m *MockRecentRepository) List(ctx context.Context, clientID string) ([]string, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) Get(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingCache) Set(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingCache) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) ListingCreated(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockEventPublisher) ListingUpdated(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockEventPublisher) ListingDeleted(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventPublisher) ListingStatusChanged(ctx context.Context, listing *domain.Listing, previous domain.ListingStatus) error {
	args := m.Called(ctx, listing, previous)
	return args.Error(0)
}

type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, filename, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStorage) Remove(ctx context.Context, objectURL string) error {
	args := m.Called(ctx, objectURL)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendListingSold(to string, listing *domain.Listing) error {
	args := m.Called(to, listing)
	return args.Error(0)
}

func (m *MockMailer) SendDealerDecision(to string, dealer *domain.Dealer, approved bool) error {
	args := m.Called(to, dealer, approved)
	return args.Error(0)
}
