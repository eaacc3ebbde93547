package ports

import (
	"context"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

// ListIssuersFilter carries query parameters for listing issuers.
type ListIssuersFilter struct {
	Page  int // 1-based
	Limit int
}

// IssuerRepository defines persistence operations for issuers.
type IssuerRepository interface {
	Create(ctx context.Context, issuer *domain.Issuer) error
	FindByEntityID(ctx context.Context, entityID string) (*domain.Issuer, error)
	// List returns a page of issuers and the total count.
	List(ctx context.Context, filter ListIssuersFilter) ([]*domain.Issuer, int64, error)
	Update(ctx context.Context, issuer *domain.Issuer) error
}
