package businessRepo

import (
	"fmt"
	"time"

	"servana/database"
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAddOnRepo implements AddOnRepository using MongoDB.
type MongoAddOnRepo struct {
	coll *mongo.Collection
}

// NewMongoAddOnRepo creates a new instance of AddOnRepository using MongoDB.
func NewMongoAddOnRepo() AddOnRepository {
	coll := database.Collection("add_ons")
	repo := &MongoAddOnRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAddOnRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "active", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListActiveByBusiness retrieves a business's active add-ons.
func (r *MongoAddOnRepo) ListActiveByBusiness(businessID string) ([]models.AddOn, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list add-ons for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var addOns []models.AddOn
	if err := cursor.All(ctx, &addOns); err != nil {
		return nil, fmt.Errorf("failed to decode add-ons: %w", err)
	}
	return addOns, nil
}

// GetByID retrieves an add-on by its unique ID.
func (r *MongoAddOnRepo) GetByID(id string) (*models.AddOn, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.AddOn
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch add-on with id %s: %w", id, err)
	}
	return &a, nil
}

// Create inserts a new add-on document.
func (r *MongoAddOnRepo) Create(a *models.AddOn) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create add-on: %w", err)
	}
	return nil
}

// Update modifies an existing add-on document.
func (r *MongoAddOnRepo) Update(a *models.AddOn) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": a.ID}, bson.M{"$set": a})
	if err != nil {
		return fmt.Errorf("failed to update add-on with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("add-on with id %s not found", a.ID)
	}
	return nil
}

// Delete removes an add-on document by its ID.
func (r *MongoAddOnRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete add-on with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("add-on with id %s not found", id)
	}
	return nil
}
