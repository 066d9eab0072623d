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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const GuestbookCollection = "guestbooks"

type GuestbookRepo struct {
	collection *mongo.Collection
}

func NewGuestbookRepo(db *mongo.Database) *GuestbookRepo {
	return &GuestbookRepo{
		collection: db.Collection(GuestbookCollection),
	}
}

// ListOptions narrows a guestbook listing.
type ListOptions struct {
	ApprovedOnly bool
}

// Create inserts a new, unapproved entry.
func (r *GuestbookRepo) Create(ctx context.Context, entry *models.GuestbookEntry) (err error) {
	if err := validation.Struct(entry); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.
			WithLabelValues(GuestbookCollection, "insert", metrics.StatusLabel(err)).
			Observe(metrics.MeasureDuration(start))
	}()

	entry.ID = bson.ObjectID{}
	entry.Approved = false
	entry.SubmittedAt = now()
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("insert guestbook entry: %w", err)
	}
	entry.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// List returns entries newest first. The result is never nil.
func (r *GuestbookRepo) List(ctx context.Context, opts ListOptions) (entries []models.GuestbookEntry, err error) {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.
			WithLabelValues(GuestbookCollection, "find", metrics.StatusLabel(err)).
			Observe(metrics.MeasureDuration(start))
	}()

	filter := bson.M{}
	if opts.ApprovedOnly {
		filter["approved"] = true
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find guestbook entries: %w", err)
	}

	entries = []models.GuestbookEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode guestbook entries: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates necessary indexes for the guestbook collection
func (r *GuestbookRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "approved", Value: 1}, {Key: "date", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
