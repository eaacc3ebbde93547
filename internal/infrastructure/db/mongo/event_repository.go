package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{db: db}
}

// InsertEvent persists a badge event to the badge_events audit collection.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.BadgeEvent) error {
	doc := bson.M{
		"assertion_id":  event.AssertionID,
		"badgeclass_id": event.BadgeClassID,
		"issuer_id":     event.IssuerID,
		"recipient": bson.M{
			"identity": event.Recipient.Identity,
			"type":     string(event.Recipient.Type),
		},
		"action":       string(event.Action),
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection("badge_events").InsertOne(ctx, doc)
	return err
}
