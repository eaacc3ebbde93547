package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

const collectionApplicationInfo = "application_info"

// ApplicationRepository reads and rewrites registered application records.
// It backs the manifest-domain backfill command.
type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplicationInfo)}
}

// ForEach streams every application document through fn. Iteration stops at
// the first error.
func (r *ApplicationRepository) ForEach(ctx context.Context, fn func(app *domain.ApplicationInfo) error) error {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var app domain.ApplicationInfo
		if err := cur.Decode(&app); err != nil {
			return err
		}
		if err := fn(&app); err != nil {
			return err
		}
	}
	return cur.Err()
}

// SetManifestDomain rewrites the manifest domain of a single application.
func (r *ApplicationRepository) SetManifestDomain(ctx context.Context, id, domainName string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"manifest_domain": domainName}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("application not found: " + id)
	}
	return nil
}

// Count returns the number of registered applications.
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
