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

const collectionIssuers = "issuers"

type IssuerRepository struct {
	col *mongo.Collection
}

func NewIssuerRepository(db *mongo.Database) *IssuerRepository {
	return &IssuerRepository{col: db.Collection(collectionIssuers)}
}

// Create inserts a new issuer document.
func (r *IssuerRepository) Create(ctx context.Context, issuer *domain.Issuer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, issuer)
	return err
}

// FindByEntityID retrieves an issuer by its entity id.
func (r *IssuerRepository) FindByEntityID(ctx context.Context, entityID string) (*domain.Issuer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var issuer domain.Issuer
	err := r.col.FindOne(ctx, bson.M{"_id": entityID}).Decode(&issuer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIssuerNotFound
		}
		return nil, err
	}
	return &issuer, nil
}

// List returns a page of issuers ordered by creation time, newest first,
// together with the total count.
func (r *IssuerRepository) List(ctx context.Context, filter ports.ListIssuersFilter) ([]*domain.Issuer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var issuers []*domain.Issuer
	if err := cur.All(ctx, &issuers); err != nil {
		return nil, 0, err
	}
	return issuers, total, nil
}

// Update replaces the stored issuer document.
func (r *IssuerRepository) Update(ctx context.Context, issuer *domain.Issuer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": issuer.EntityID}, issuer)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrIssuerNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the issuers collection.
func (r *IssuerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "staff.user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
