package promotionRepo

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

// MongoPromotionRepo implements PromotionRepository using MongoDB.
type MongoPromotionRepo struct {
	coll *mongo.Collection
}

// NewMongoPromotionRepo creates a new instance of PromotionRepository using MongoDB.
func NewMongoPromotionRepo() PromotionRepository {
	coll := database.Collection("promotions")
	repo := &MongoPromotionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPromotionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "valid_until", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a promotion by its unique ID.
func (r *MongoPromotionRepo) GetByID(id string) (*models.Promotion, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Promotion
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch promotion with id %s: %w", id, err)
	}
	return &p, nil
}

// GetByCode retrieves a promotion by its promo code.
func (r *MongoPromotionRepo) GetByCode(code string) (*models.Promotion, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Promotion
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch promotion with code %s: %w", code, err)
	}
	return &p, nil
}

// ListActive retrieves promotions whose validity window contains now.
func (r *MongoPromotionRepo) ListActive() ([]models.Promotion, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"valid_from":  bson.M{"$lte": now},
		"valid_until": bson.M{"$gte": now},
	}
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "valid_until", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list active promotions: %w", err)
	}
	defer cursor.Close(ctx)

	var promotions []models.Promotion
	if err := cursor.All(ctx, &promotions); err != nil {
		return nil, fmt.Errorf("failed to decode promotions: %w", err)
	}
	return promotions, nil
}

// Create inserts a new promotion document.
func (r *MongoPromotionRepo) Create(p *models.Promotion) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// Delete removes a promotion document by its ID.
func (r *MongoPromotionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete promotion with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("promotion with id %s not found", id)
	}
	return nil
}
