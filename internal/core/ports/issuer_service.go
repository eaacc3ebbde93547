package ports

import (
	"context"
	"time"
)

// StaffInput associates a user with an issuer under a role.
type StaffInput struct {
	UserID string
	Role   string
}

// CreateIssuerInput carries all data needed to create a new issuer.
// Image, when non-empty, is a base64 data URI; the service stores it and
// records the generated filename.
type CreateIssuerInput struct {
	Name        string
	Image       string
	Email       string
	URL         string
	Description string
	Staff       []StaffInput
	CreatedBy   string
}

// UpdateIssuerInput carries the mutable issuer fields. An empty Image leaves
// the stored image untouched.
type UpdateIssuerInput struct {
	Name        string
	Image       string
	Email       string
	URL         string
	Description string
	Staff       []StaffInput
}

// StaffItem is a staff entry in issuer views.
type StaffItem struct {
	UserID string
	Role   string
}

// IssuerDetail is the full issuer view returned by the service.
type IssuerDetail struct {
	EntityID    string
	Name        string
	Image       string
	Email       string
	URL         string
	Description string
	Staff       []StaffItem
	CreatedAt   time.Time
	CreatedBy   string
}

// ListIssuersInput carries pagination for the issuer list endpoint.
type ListIssuersInput struct {
	Page  int
	Limit int
}

// ListIssuersResult is returned by ListIssuers.
type ListIssuersResult struct {
	Items      []IssuerDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// IssuerService defines use-case operations for issuers.
type IssuerService interface {
	CreateIssuer(ctx context.Context, input CreateIssuerInput) (*IssuerDetail, error)
	GetIssuer(ctx context.Context, entityID string) (*IssuerDetail, error)
	ListIssuers(ctx context.Context, input ListIssuersInput) (*ListIssuersResult, error)
	UpdateIssuer(ctx context.Context, entityID string, input UpdateIssuerInput) (*IssuerDetail, error)
}
