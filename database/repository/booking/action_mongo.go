package bookingRepo

import (
	"fmt"
	"time"

	"servana/database"
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoActionRepo implements ActionRepository using MongoDB. Rows are only
// ever inserted; there is no update path.
type MongoActionRepo struct {
	coll *mongo.Collection
}

// NewMongoActionRepo creates a new instance of ActionRepository using MongoDB.
func NewMongoActionRepo() ActionRepository {
	coll := database.Collection("booking_actions")
	repo := &MongoActionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoActionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "booking_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Append inserts an audit row.
func (r *MongoActionRepo) Append(a *models.BookingAction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to append booking action: %w", err)
	}
	return nil
}

// ListByBooking retrieves a booking's audit trail in write order.
func (r *MongoActionRepo) ListByBooking(bookingID string) ([]models.BookingAction, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list actions for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var actions []models.BookingAction
	if err := cursor.All(ctx, &actions); err != nil {
		return nil, fmt.Errorf("failed to decode booking actions: %w", err)
	}
	return actions, nil
}
