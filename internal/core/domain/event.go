package domain

import "time"

// BadgeEventAction is what happened to an assertion.
type BadgeEventAction string

const (
	EventIssued  BadgeEventAction = "issued"
	EventRevoked BadgeEventAction = "revoked"
)

// BadgeEvent records an issuance or revocation for the audit trail.
type BadgeEvent struct {
	AssertionID  string
	BadgeClassID string
	IssuerID     string
	Recipient    Recipient
	Action       BadgeEventAction
	Timestamp    time.Time
}
