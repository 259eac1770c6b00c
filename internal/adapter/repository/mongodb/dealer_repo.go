package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

type DealerRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewDealerRepository(db *mongo.Database, logger *zap.Logger) *DealerRepository {
	return &DealerRepository{
		collection: db.Collection(dealersCollection),
		logger:     logger,
	}
}

func (r *DealerRepository) Create(ctx context.Context, dealer *domain.Dealer) error {
	if _, err := r.collection.InsertOne(ctx, toDealerDocument(dealer)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("DealerRepository.Create: dealer %s already registered: %w", dealer.ID, err)
		}
		return fmt.Errorf("DealerRepository.Create: insert failed: %w", err)
	}
	return nil
}

func (r *DealerRepository) Update(ctx context.Context, dealer *domain.Dealer) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": dealer.ID}, toDealerDocument(dealer))
	if err != nil {
		return fmt.Errorf("DealerRepository.Update: replace failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrDealerNotFound
	}
	return nil
}

func (r *DealerRepository) UpdateStatus(ctx context.Context, id string, status domain.DealerStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("DealerRepository.UpdateStatus: update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrDealerNotFound
	}
	return nil
}

func (r *DealerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("DealerRepository.Delete: delete failed: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrDealerNotFound
	}
	return nil
}

func (r *DealerRepository) FindByID(ctx context.Context, id string) (*domain.Dealer, error) {
	var doc dealerDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDealerNotFound
		}
		return nil, fmt.Errorf("DealerRepository.FindByID: query failed: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *DealerRepository) FindApproved(ctx context.Context) ([]*domain.Dealer, error) {
	return r.find(ctx, bson.M{"status": string(domain.DealerApproved)})
}

func (r *DealerRepository) FindAll(ctx context.Context) ([]*domain.Dealer, error) {
	return r.find(ctx, bson.M{})
}

func (r *DealerRepository) find(ctx context.Context, filter bson.M) ([]*domain.Dealer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "business_name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("DealerRepository: query failed: %w", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			r.logger.Warn("failed to close cursor", zap.Error(err))
		}
	}()

	var dealers []*domain.Dealer
	for cursor.Next(ctx) {
		var doc dealerDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("DealerRepository: decode failed: %w", err)
		}
		dealers = append(dealers, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("DealerRepository: cursor failed: %w", err)
	}
	return dealers, nil
}
