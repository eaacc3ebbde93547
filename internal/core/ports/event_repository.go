package ports

import (
	"context"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

// EventRepository persists badge events to the audit trail.
type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.BadgeEvent) error
}
