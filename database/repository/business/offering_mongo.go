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

// MongoOfferingRepo implements OfferingRepository using MongoDB.
type MongoOfferingRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferingRepo creates a new instance of OfferingRepository using MongoDB.
func NewMongoOfferingRepo() OfferingRepository {
	coll := database.Collection("service_offerings")
	repo := &MongoOfferingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoOfferingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// One offering per (business, service) pair.
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "service_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "service_id", Value: 1}, {Key: "active", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListActiveByBusiness retrieves a business's active offerings.
func (r *MongoOfferingRepo) ListActiveByBusiness(businessID string) ([]models.ServiceOffering, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var offerings []models.ServiceOffering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, fmt.Errorf("failed to decode offerings: %w", err)
	}
	return offerings, nil
}

// GetByBusinessAndService retrieves the one offering for a (business, service) pair.
func (r *MongoOfferingRepo) GetByBusinessAndService(businessID, serviceID string) (*models.ServiceOffering, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var o models.ServiceOffering
	err := r.coll.FindOne(ctx, bson.M{"business_id": businessID, "service_id": serviceID}).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch offering for business %s service %s: %w", businessID, serviceID, err)
	}
	return &o, nil
}

// ListBusinessIDsOffering retrieves the IDs of businesses with an active
// offering for the service.
func (r *MongoOfferingRepo) ListBusinessIDsOffering(serviceID string) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "business_id", bson.M{"service_id": serviceID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses offering service %s: %w", serviceID, err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Upsert inserts or replaces the offering for its (business, service) pair.
func (r *MongoOfferingRepo) Upsert(o *models.ServiceOffering) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	filter := bson.M{"business_id": o.BusinessID, "service_id": o.ServiceID}
	_, err := r.coll.ReplaceOne(ctx, filter, o, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert offering: %w", err)
	}
	return nil
}

// Delete removes an offering by its ID.
func (r *MongoOfferingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete offering with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("offering with id %s not found", id)
	}
	return nil
}
