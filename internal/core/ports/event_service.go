package ports

import (
	"context"
	"time"
)

// BadgeEventInput is the DTO passed from the issuing services to the audit
// pipeline.
type BadgeEventInput struct {
	AssertionID       string
	BadgeClassID      string
	IssuerID          string
	RecipientIdentity string
	RecipientType     string
	Action            string // "issued" or "revoked"
	Timestamp         time.Time
}

// EventService processes badge issuance and revocation events.
type EventService interface {
	Process(ctx context.Context, event BadgeEventInput) error
}
