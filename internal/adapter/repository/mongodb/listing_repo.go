package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

type ListingRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewListingRepository(db *mongo.Database, logger *zap.Logger) *ListingRepository {
	return &ListingRepository{
		collection: db.Collection(listingsCollection),
		logger:     logger,
	}
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	doc, err := toListingDocument(listing)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("ListingRepository.Create: insert failed: %w", err)
	}
	listing.ID = doc.ID.Hex()
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	doc, err := toListingDocument(listing)
	if err != nil {
		return err
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("ListingRepository.Update: replace failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id string, status domain.ListingStatus, listing *domain.Listing) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrListingNotFound
	}

	update := bson.M{
		"status":     string(status),
		"images":     listing.Images,
		"updated_at": listing.UpdatedAt,
	}
	if listing.SoldAt.IsZero() {
		result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
			"$set":   update,
			"$unset": bson.M{"sold_at": ""},
		})
		if err != nil {
			return fmt.Errorf("ListingRepository.UpdateStatus: update failed: %w", err)
		}
		if result.MatchedCount == 0 {
			return domain.ErrListingNotFound
		}
		return nil
	}

	update["sold_at"] = listing.SoldAt
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("ListingRepository.UpdateStatus: update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrListingNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("ListingRepository.Delete: delete failed: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrListingNotFound
	}

	var doc listingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("ListingRepository.FindByID: query failed: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *ListingRepository) FindAll(ctx context.Context) ([]*domain.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *ListingRepository) FindByDealer(ctx context.Context, dealerID string) ([]*domain.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"dealer_id": dealerID}, opts)
}

func (r *ListingRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Listing, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// Unknown IDs are skipped, not fatal.
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
}

func (r *ListingRepository) DeleteByDealer(ctx context.Context, dealerID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"dealer_id": dealerID})
	if err != nil {
		return 0, fmt.Errorf("ListingRepository.DeleteByDealer: delete failed: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *ListingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Listing, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository: query failed: %w", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			r.logger.Warn("failed to close cursor", zap.Error(err))
		}
	}()

	var listings []*domain.Listing
	for cursor.Next(ctx) {
		var doc listingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("ListingRepository: decode failed: %w", err)
		}
		listings = append(listings, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("ListingRepository: cursor failed: %w", err)
	}
	return listings, nil
}
