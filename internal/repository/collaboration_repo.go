package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/validation"
	"portfolio-api/pkg/metrics"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const CollaborationsCollection = "collaborations"

type CollaborationRepo struct {
	collection *mongo.Collection
}

func NewCollaborationRepo(db *mongo.Database) *CollaborationRepo {
	return &CollaborationRepo{
		collection: db.Collection(CollaborationsCollection),
	}
}

// Create validates and inserts a collaboration request, stamping SubmittedAt
// and filling ID on success. Invalid records are rejected with validation.Errors.
func (r *CollaborationRepo) Create(ctx context.Context, c *models.Collaboration) (err error) {
	if err := validation.Struct(c); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.
			WithLabelValues(CollaborationsCollection, "insert", metrics.StatusLabel(err)).
			Observe(metrics.MeasureDuration(start))
	}()

	c.ID = bson.ObjectID{}
	c.SubmittedAt = now()
	result, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert collaboration: %w", err)
	}
	c.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// EnsureIndexes creates necessary indexes for the collaborations collection
func (r *CollaborationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	})
	return err
}
