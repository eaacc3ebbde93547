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

const collectionBadgeClasses = "badge_classes"

type BadgeClassRepository struct {
	col *mongo.Collection
}

func NewBadgeClassRepository(db *mongo.Database) *BadgeClassRepository {
	return &BadgeClassRepository{col: db.Collection(collectionBadgeClasses)}
}

// Create inserts a new badge class document.
func (r *BadgeClassRepository) Create(ctx context.Context, bc *domain.BadgeClass) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, bc)
	return err
}

// FindByEntityID retrieves a badge class by its entity id.
func (r *BadgeClassRepository) FindByEntityID(ctx context.Context, entityID string) (*domain.BadgeClass, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var bc domain.BadgeClass
	err := r.col.FindOne(ctx, bson.M{"_id": entityID}).Decode(&bc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBadgeClassNotFound
		}
		return nil, err
	}
	return &bc, nil
}

// List returns a page of badge classes matching the filter, newest first,
// together with the total count.
func (r *BadgeClassRepository) List(ctx context.Context, filter ports.ListBadgeClassesFilter) ([]*domain.BadgeClass, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
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

	var classes []*domain.BadgeClass
	if err := cur.All(ctx, &classes); err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

// Update replaces the stored badge class document.
func (r *BadgeClassRepository) Update(ctx context.Context, bc *domain.BadgeClass) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": bc.EntityID}, bc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrBadgeClassNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the badge_classes collection.
func (r *BadgeClassRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "issuer_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
