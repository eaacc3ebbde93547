package ports

import (
	"context"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

// ListBadgeClassesFilter carries query parameters for listing badge classes.
type ListBadgeClassesFilter struct {
	IssuerID string // empty = all issuers
	Page     int    // 1-based
	Limit    int
}

// BadgeClassRepository defines persistence operations for badge classes.
type BadgeClassRepository interface {
	Create(ctx context.Context, bc *domain.BadgeClass) error
	FindByEntityID(ctx context.Context, entityID string) (*domain.BadgeClass, error)
	// List returns a page of badge classes matching filter and the total count.
	List(ctx context.Context, filter ListBadgeClassesFilter) ([]*domain.BadgeClass, int64, error)
	Update(ctx context.Context, bc *domain.BadgeClass) error
}
