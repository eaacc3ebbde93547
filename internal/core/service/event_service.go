package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, assertionID, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, assertionID, action string, ts time.Time) error
}

type eventService struct {
	eventRepo ports.EventRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewEventService returns an EventService implementation that writes the
// issuance audit trail.
func NewEventService(eventRepo ports.EventRepository, dedup DedupChecker, log zerolog.Logger) ports.EventService {
	return &eventService{eventRepo: eventRepo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single badge event.
func (s *eventService) Process(ctx context.Context, in ports.BadgeEventInput) error {
	// Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.AssertionID, in.Action, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("assertion_id", in.AssertionID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("assertion_id", in.AssertionID).Str("action", in.Action).Msg("duplicate event skipped")
		return nil
	}

	// Mark before writing so a retry after a partial failure does not double
	// the audit trail.
	if markErr := s.dedup.Mark(ctx, in.AssertionID, in.Action, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("assertion_id", in.AssertionID).Msg("failed to set dedup key")
	}

	event := &domain.BadgeEvent{
		AssertionID:  in.AssertionID,
		BadgeClassID: in.BadgeClassID,
		IssuerID:     in.IssuerID,
		Recipient: domain.Recipient{
			Identity: in.RecipientIdentity,
			Type:     domain.RecipientType(in.RecipientType),
		},
		Action:    domain.BadgeEventAction(in.Action),
		Timestamp: in.Timestamp,
	}
	if err := s.eventRepo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	s.log.Info().
		Str("assertion_id", in.AssertionID).
		Str("action", in.Action).
		Msg("badge event recorded")

	return nil
}
