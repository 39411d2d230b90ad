package businessRepo

import (
	"context"
	"fmt"
	"time"

	"servana/database"
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	coll := database.Collection("businesses")
	repo := &MongoBusinessRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a business by its unique ID.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &b, nil
}

// GetByOwner retrieves the business registered by an owner account.
func (r *MongoBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Business
	if err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business for owner %s: %w", ownerID, err)
	}
	return &b, nil
}

// GetByIDs retrieves the businesses whose IDs appear in ids.
func (r *MongoBusinessRepo) GetByIDs(ids []string) ([]models.Business, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("failed to decode businesses: %w", err)
	}
	return businesses, nil
}

// Create inserts a new business document.
func (r *MongoBusinessRepo) Create(b *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// Update modifies an existing business document.
func (r *MongoBusinessRepo) Update(b *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": b})
	if err != nil {
		return fmt.Errorf("failed to update business with id %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", b.ID)
	}
	return nil
}

// Delete removes a business document by its ID.
func (r *MongoBusinessRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete business with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}
