package ports

import (
	"context"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

// ListAssertionsFilter carries query parameters for listing assertions.
type ListAssertionsFilter struct {
	BadgeClassID string // empty = no filter
	IssuerID     string // empty = no filter
	Page         int    // 1-based
	Limit        int
}

// AssertionRepository defines persistence operations for assertions.
type AssertionRepository interface {
	Create(ctx context.Context, a *domain.Assertion) error
	FindByEntityID(ctx context.Context, entityID string) (*domain.Assertion, error)
	// List returns a page of assertions matching filter and the total count.
	List(ctx context.Context, filter ListAssertionsFilter) ([]*domain.Assertion, int64, error)
	// Revoke atomically marks the assertion revoked with the given reason.
	Revoke(ctx context.Context, entityID, reason string) error
}
