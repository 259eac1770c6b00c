package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

func newPhotoFixture(t *testing.T) (*PhotoUseCase, *MockListingRepository, *MockPhotoStorage, *MockListingCache) {
	t.Helper()
	listingRepo := new(MockListingRepository)
	storage := new(MockPhotoStorage)
	listingCache := new(MockListingCache)
	uc := NewPhotoUseCase(listingRepo, storage, listingCache, zap.NewNop())
	return uc, listingRepo, storage, listingCache
}

func TestPhotoUpload_AppendsURLAndInvalidatesCache(t *testing.T) {
	uc, listingRepo, storage, listingCache := newPhotoFixture(t)
	body := strings.NewReader("jpeg bytes")

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1", Images: []string{"first.jpg"},
	}, nil)
	storage.On("Upload", mock.Anything, "car.jpg", body, int64(9), "image/jpeg").
		Return("https://cdn.example.com/photos/abc.jpg", nil)
	listingRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return len(l.Images) == 2 && l.Images[1] == "https://cdn.example.com/photos/abc.jpg"
	})).Return(nil)
	listingCache.On("Delete", mock.Anything, "l1").Return(nil)

	url, err := uc.Upload(context.Background(), dealer, "l1", "car.jpg", body, 9, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photos/abc.jpg", url)
	listingCache.AssertExpectations(t)
}

func TestPhotoUpload_ForbiddenForOtherDealer(t *testing.T) {
	uc, listingRepo, storage, _ := newPhotoFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "someone-else",
	}, nil)

	_, err := uc.Upload(context.Background(), dealer, "l1", "car.jpg", strings.NewReader(""), 0, "image/jpeg")
	assert.ErrorIs(t, err, ErrForbidden)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPhotoUpload_RejectsFullGallery(t *testing.T) {
	uc, listingRepo, _, _ := newPhotoFixture(t)

	images := make([]string, MaxPhotosPerListing)
	for i := range images {
		images[i] = "img.jpg"
	}
	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1", Images: images,
	}, nil)

	_, err := uc.Upload(context.Background(), dealer, "l1", "car.jpg", strings.NewReader(""), 0, "image/jpeg")
	assert.ErrorIs(t, err, domain.ErrInvalidListing)
}

func TestPhotoUpload_RemovesOrphanOnAttachFailure(t *testing.T) {
	uc, listingRepo, storage, _ := newPhotoFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1",
	}, nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/photos/abc.jpg", nil)
	listingRepo.On("Update", mock.Anything, mock.Anything).Return(errors.New("write failed"))
	storage.On("Remove", mock.Anything, "https://cdn.example.com/photos/abc.jpg").Return(nil)

	_, err := uc.Upload(context.Background(), dealer, "l1", "car.jpg", strings.NewReader(""), 0, "image/jpeg")
	assert.Error(t, err)
	storage.AssertExpectations(t)
}

func TestRemovePhoto_MissingURLIsNoOp(t *testing.T) {
	uc, listingRepo, storage, _ := newPhotoFixture(t)

	listingRepo.On("FindByID", mock.Anything, "l1").Return(&domain.Listing{
		ID: "l1", DealerID: "dealer-1", Images: []string{"keep.jpg"},
	}, nil)

	err := uc.RemovePhoto(context.Background(), dealer, "l1", "gone.jpg")
	require.NoError(t, err)
	listingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	storage.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
