package ports

import (
	"context"
	"time"
)

// AlignmentInput describes an external objective or standard a badge class
// aligns to.
type AlignmentInput struct {
	TargetName        string
	TargetURL         string
	TargetDescription string
	TargetFramework   string
	TargetCode        string
}

// CreateBadgeClassInput carries all data needed to create a badge class.
// IssuerID is the payload-supplied owner reference; ContextIssuerID is the
// owner implied by the call context (URL path). Payload wins when both are
// present; absence of both is a validation error.
type CreateBadgeClassInput struct {
	IssuerID        string
	ContextIssuerID string

	Name              string
	Image             string
	Description       string
	CriteriaURL       string
	CriteriaNarrative string
	Tags              []string
	Alignments        []AlignmentInput
	CreatedBy         string
}

// UpdateBadgeClassInput carries the mutable badge class fields. Any owner
// reference submitted alongside an update is discarded: the owning issuer is
// fixed at creation.
type UpdateBadgeClassInput struct {
	IssuerID string // ignored

	Name              string
	Image             string
	Description       string
	CriteriaURL       string
	CriteriaNarrative string
	Tags              []string
	Alignments        []AlignmentInput
}

// AlignmentItem is an alignment entry in badge class views.
type AlignmentItem struct {
	TargetName        string
	TargetURL         string
	TargetDescription string
	TargetFramework   string
	TargetCode        string
}

// BadgeClassDetail is the full badge class view returned by the service.
type BadgeClassDetail struct {
	EntityID          string
	IssuerID          string
	Name              string
	Image             string
	Description       string
	CriteriaURL       string
	CriteriaNarrative string
	Tags              []string
	Alignments        []AlignmentItem
	CreatedAt         time.Time
	CreatedBy         string
}

// ListBadgeClassesInput carries parameters for the badge class list endpoint.
type ListBadgeClassesInput struct {
	IssuerID string // optional: scope to one issuer
	Page     int
	Limit    int
}

// ListBadgeClassesResult is returned by ListBadgeClasses.
type ListBadgeClassesResult struct {
	Items      []BadgeClassDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BadgeClassService defines use-case operations for badge classes.
type BadgeClassService interface {
	CreateBadgeClass(ctx context.Context, input CreateBadgeClassInput) (*BadgeClassDetail, error)
	GetBadgeClass(ctx context.Context, entityID string) (*BadgeClassDetail, error)
	ListBadgeClasses(ctx context.Context, input ListBadgeClassesInput) (*ListBadgeClassesResult, error)
	UpdateBadgeClass(ctx context.Context, entityID string, input UpdateBadgeClassInput) (*BadgeClassDetail, error)
}
