package ports

import (
	"context"
	"time"
)

// RecipientInput identifies the awardee. Type defaults to "email" when empty.
type RecipientInput struct {
	Identity string
	Type     string
}

// EvidenceInput is one piece of supporting material.
type EvidenceInput struct {
	URL       string
	Narrative string
}

// IssueAssertionInput carries all data needed to award a badge. BadgeClassID
// is the payload-supplied reference; ContextBadgeClassID comes from the call
// context (URL path). Payload wins; absence of both is a validation error.
// The owning issuer is always derived from the resolved badge class.
type IssueAssertionInput struct {
	BadgeClassID        string
	ContextBadgeClassID string

	Recipient RecipientInput
	IssuedOn  time.Time // zero value defaults to now
	Narrative string
	Evidence  []EvidenceInput
	CreatedBy string
}

// UpdateAssertionInput mirrors the issue payload. Assertions are write-once,
// so every field here is accepted and discarded.
type UpdateAssertionInput struct {
	Recipient RecipientInput
	IssuedOn  time.Time
	Narrative string
	Evidence  []EvidenceInput
}

// RecipientItem is the recipient in assertion views.
type RecipientItem struct {
	Identity string
	Type     string
}

// EvidenceItem is an evidence entry in assertion views.
type EvidenceItem struct {
	URL       string
	Narrative string
}

// AssertionDetail is the full assertion view returned by the service.
type AssertionDetail struct {
	EntityID         string
	BadgeClassID     string
	IssuerID         string
	Recipient        RecipientItem
	Image            string
	IssuedOn         time.Time
	Narrative        string
	Evidence         []EvidenceItem
	Revoked          bool
	RevocationReason string
	CreatedAt        time.Time
	CreatedBy        string
}

// ListAssertionsInput carries parameters for the assertion list endpoint.
type ListAssertionsInput struct {
	BadgeClassID string // optional: scope to one badge class
	IssuerID     string // optional: scope to one issuer
	Page         int
	Limit        int
}

// ListAssertionsResult is returned by ListAssertions.
type ListAssertionsResult struct {
	Items      []AssertionDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AssertionService defines use-case operations for awarded badges.
type AssertionService interface {
	IssueAssertion(ctx context.Context, input IssueAssertionInput) (*AssertionDetail, error)
	GetAssertion(ctx context.Context, entityID string) (*AssertionDetail, error)
	ListAssertions(ctx context.Context, input ListAssertionsInput) (*ListAssertionsResult, error)
	// UpdateAssertion is a deliberate no-op: it returns the stored assertion
	// unchanged regardless of the submitted payload.
	UpdateAssertion(ctx context.Context, entityID string, input UpdateAssertionInput) (*AssertionDetail, error)
	RevokeAssertion(ctx context.Context, entityID, reason string) (*AssertionDetail, error)
}
