package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

const collectionAssertions = "assertions"

type AssertionRepository struct {
	col *mongo.Collection
}

func NewAssertionRepository(db *mongo.Database) *AssertionRepository {
	return &AssertionRepository{col: db.Collection(collectionAssertions)}
}

// Create inserts a new assertion document.
func (r *AssertionRepository) Create(ctx context.Context, a *domain.Assertion) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

// FindByEntityID retrieves an assertion by its entity id.
func (r *AssertionRepository) FindByEntityID(ctx context.Context, entityID string) (*domain.Assertion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Assertion
	err := r.col.FindOne(ctx, bson.M{"_id": entityID}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssertionNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns a page of assertions matching the filter, newest first,
// together with the total count.
func (r *AssertionRepository) List(ctx context.Context, filter ports.ListAssertionsFilter) ([]*domain.Assertion, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.BadgeClassID != "" {
		query["badgeclass_id"] = filter.BadgeClassID
	}
	if filter.IssuerID != "" {
		query["issuer_id"] = filter.IssuerID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var assertions []*domain.Assertion
	if err := cur.All(ctx, &assertions); err != nil {
		return nil, 0, err
	}
	return assertions, total, nil
}

// Revoke atomically marks the assertion revoked with the given reason.
func (r *AssertionRepository) Revoke(ctx context.Context, entityID, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"revoked":           true,
		"revocation_reason": reason,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": entityID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrAssertionNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the assertions collection.
func (r *AssertionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "badgeclass_id", Value: 1}}},
		{Keys: bson.D{{Key: "issuer_id", Value: 1}}},
		{Keys: bson.D{{Key: "recipient.identity", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
