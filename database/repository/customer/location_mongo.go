package customerRepo

import (
	"fmt"
	"time"

	"servana/database"
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLocationRepo implements LocationRepository using MongoDB.
type MongoLocationRepo struct {
	coll *mongo.Collection
}

// NewMongoLocationRepo creates a new instance of LocationRepository using MongoDB.
func NewMongoLocationRepo() LocationRepository {
	coll := database.Collection("customer_locations")
	repo := &MongoLocationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLocationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a location by its unique ID.
func (r *MongoLocationRepo) GetByID(id string) (*models.CustomerLocation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var l models.CustomerLocation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&l); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch location with id %s: %w", id, err)
	}
	return &l, nil
}

// ListByCustomer retrieves a customer's saved locations, primary first.
func (r *MongoLocationRepo) ListByCustomer(customerID string) ([]models.CustomerLocation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "is_primary", Value: -1},
		{Key: "created_at", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var locations []models.CustomerLocation
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locations, nil
}

// GetPrimary retrieves the customer's primary location, or nil when none is set.
func (r *MongoLocationRepo) GetPrimary(customerID string) (*models.CustomerLocation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var l models.CustomerLocation
	err := r.coll.FindOne(ctx, bson.M{"customer_id": customerID, "is_primary": true}).Decode(&l)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch primary location for customer %s: %w", customerID, err)
	}
	return &l, nil
}

// Create inserts a new location document.
func (r *MongoLocationRepo) Create(l *models.CustomerLocation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// Update modifies an existing location document. The customer scope is part
// of the filter so one customer cannot rewrite another's address.
func (r *MongoLocationRepo) Update(l *models.CustomerLocation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	l.UpdatedAt = time.Now()
	filter := bson.M{"id": l.ID, "customer_id": l.CustomerID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": l})
	if err != nil {
		return fmt.Errorf("failed to update location with id %s: %w", l.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("location with id %s not found", l.ID)
	}
	return nil
}

// Delete removes a location document scoped to its owner.
func (r *MongoLocationRepo) Delete(id, customerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "customer_id": customerID})
	if err != nil {
		return fmt.Errorf("failed to delete location with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("location with id %s not found", id)
	}
	return nil
}

// SetPrimary marks exactly one of the customer's locations as primary. A
// single UpdateMany with an aggregation-pipeline $set flips every row in one
// atomic write, so there is no window where zero or two primaries exist.
func (r *MongoLocationRepo) SetPrimary(customerID, locationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"is_primary": bson.M{"$eq": bson.A{"$id", locationID}},
			"updated_at": time.Now(),
		}},
	}
	result, err := r.coll.UpdateMany(ctx, bson.M{"customer_id": customerID}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to set primary location for customer %s: %w", customerID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer %s has no saved locations", customerID)
	}
	return nil
}
