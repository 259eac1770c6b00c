package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

type ProfileRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewProfileRepository(db *mongo.Database, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		collection: db.Collection(profilesCollection),
		logger:     logger,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	if _, err := r.collection.InsertOne(ctx, toProfileDocument(profile)); err != nil {
		return fmt.Errorf("ProfileRepository.Create: insert failed: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var doc profileDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("ProfileRepository.FindByID: query failed: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]*domain.UserProfile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ProfileRepository.FindAll: query failed: %w", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			r.logger.Warn("failed to close cursor", zap.Error(err))
		}
	}()

	var profiles []*domain.UserProfile
	for cursor.Next(ctx) {
		var doc profileDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("ProfileRepository.FindAll: decode failed: %w", err)
		}
		profiles = append(profiles, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("ProfileRepository.FindAll: cursor failed: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("ProfileRepository.UpdateStatus: update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("ProfileRepository.Delete: delete failed: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) Favorites(ctx context.Context, userID string) ([]string, error) {
	profile, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.Favorites, nil
}

// AddFavorite uses $addToSet so repeated adds converge to a single
// membership.
func (r *ProfileRepository) AddFavorite(ctx context.Context, userID, listingID string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"favorites": listingID}})
	if err != nil {
		return fmt.Errorf("ProfileRepository.AddFavorite: update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// RemoveFavorite uses $pull; removing an absent entry matches the
// profile and changes nothing.
func (r *ProfileRepository) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"favorites": listingID}})
	if err != nil {
		return fmt.Errorf("ProfileRepository.RemoveFavorite: update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
