package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// EventEnqueuer hands badge events to the audit pipeline.
type EventEnqueuer interface {
	Enqueue(event ports.BadgeEventInput)
}

type AssertionService struct {
	repo       ports.AssertionRepository
	bcRepo     ports.BadgeClassRepository
	cache      BadgeClassCache
	dispatcher EventEnqueuer
	logger     zerolog.Logger
}

func NewAssertionService(
	repo ports.AssertionRepository,
	bcRepo ports.BadgeClassRepository,
	cache BadgeClassCache,
	dispatcher EventEnqueuer,
	logger zerolog.Logger,
) *AssertionService {
	return &AssertionService{repo: repo, bcRepo: bcRepo, cache: cache, dispatcher: dispatcher, logger: logger}
}

// IssueAssertion awards a badge. The badge class is resolved payload first,
// then call context; the owning issuer is always derived from the resolved
// badge class. Recipient and evidence are format-validated before any write.
func (s *AssertionService) IssueAssertion(ctx context.Context, input ports.IssueAssertionInput) (*ports.AssertionDetail, error) {
	badgeClassID := input.BadgeClassID
	if badgeClassID == "" {
		badgeClassID = input.ContextBadgeClassID
	}
	if badgeClassID == "" {
		return nil, domain.NewFieldError("badgeclass", "This field is required")
	}

	bc, err := s.resolveBadgeClass(ctx, badgeClassID)
	if err != nil {
		if errors.Is(err, domain.ErrBadgeClassNotFound) {
			return nil, domain.NewFieldError("badgeclass", "unknown badgeclass")
		}
		return nil, err
	}

	recipient := domain.Recipient{
		Identity: input.Recipient.Identity,
		Type:     domain.RecipientType(input.Recipient.Type),
	}
	if recipient.Type == "" {
		recipient.Type = domain.DefaultRecipientType
	}
	if err := recipient.Validate(); err != nil {
		return nil, err
	}

	evidence := make([]domain.Evidence, len(input.Evidence))
	for i, ev := range input.Evidence {
		item := domain.Evidence{URL: ev.URL, Narrative: ev.Narrative}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		evidence[i] = item
	}

	issuedOn := input.IssuedOn
	if issuedOn.IsZero() {
		issuedOn = time.Now().UTC()
	}

	assertion := &domain.Assertion{
		EntityID:     newEntityID(),
		BadgeClassID: bc.EntityID,
		IssuerID:     bc.IssuerID,
		Recipient:    recipient,
		Image:        bc.Image,
		IssuedOn:     issuedOn,
		Narrative:    input.Narrative,
		Evidence:     evidence,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    input.CreatedBy,
	}

	if err := s.repo.Create(ctx, assertion); err != nil {
		s.logger.Error().Err(err).Msg("failed to create assertion")
		return nil, err
	}

	s.dispatcher.Enqueue(ports.BadgeEventInput{
		AssertionID:       assertion.EntityID,
		BadgeClassID:      assertion.BadgeClassID,
		IssuerID:          assertion.IssuerID,
		RecipientIdentity: recipient.Identity,
		RecipientType:     string(recipient.Type),
		Action:            string(domain.EventIssued),
		Timestamp:         assertion.IssuedOn,
	})

	s.logger.Info().
		Str("entity_id", assertion.EntityID).
		Str("badgeclass_id", assertion.BadgeClassID).
		Str("issuer_id", assertion.IssuerID).
		Msg("assertion issued")

	return assertionDetail(assertion), nil
}

// GetAssertion returns the full view of one assertion.
func (s *AssertionService) GetAssertion(ctx context.Context, entityID string) (*ports.AssertionDetail, error) {
	a, err := s.repo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return assertionDetail(a), nil
}

// ListAssertions returns a page of assertions, optionally scoped to one badge
// class or issuer.
func (s *AssertionService) ListAssertions(ctx context.Context, input ports.ListAssertionsInput) (*ports.ListAssertionsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	assertions, total, err := s.repo.List(ctx, ports.ListAssertionsFilter{
		BadgeClassID: input.BadgeClassID,
		IssuerID:     input.IssuerID,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.AssertionDetail, len(assertions))
	for i, a := range assertions {
		items[i] = *assertionDetail(a)
	}

	return &ports.ListAssertionsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateAssertion is a no-op: assertions are write-once, so the stored record
// is returned unchanged regardless of the submitted payload.
func (s *AssertionService) UpdateAssertion(ctx context.Context, entityID string, _ ports.UpdateAssertionInput) (*ports.AssertionDetail, error) {
	a, err := s.repo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("entity_id", entityID).Msg("assertion update ignored")
	return assertionDetail(a), nil
}

// RevokeAssertion marks the assertion revoked. Revoking twice fails.
func (s *AssertionService) RevokeAssertion(ctx context.Context, entityID, reason string) (*ports.AssertionDetail, error) {
	a, err := s.repo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if a.Revoked {
		return nil, domain.ErrAlreadyRevoked
	}

	if err := s.repo.Revoke(ctx, entityID, reason); err != nil {
		s.logger.Error().Err(err).Str("entity_id", entityID).Msg("failed to revoke assertion")
		return nil, err
	}

	a.Revoked = true
	a.RevocationReason = reason

	s.dispatcher.Enqueue(ports.BadgeEventInput{
		AssertionID:       a.EntityID,
		BadgeClassID:      a.BadgeClassID,
		IssuerID:          a.IssuerID,
		RecipientIdentity: a.Recipient.Identity,
		RecipientType:     string(a.Recipient.Type),
		Action:            string(domain.EventRevoked),
		Timestamp:         time.Now().UTC(),
	})

	s.logger.Info().Str("entity_id", entityID).Str("reason", reason).Msg("assertion revoked")

	return assertionDetail(a), nil
}

// resolveBadgeClass reads through the cache, falling back to the repository.
func (s *AssertionService) resolveBadgeClass(ctx context.Context, entityID string) (*domain.BadgeClass, error) {
	if bc, err := s.cache.Get(ctx, entityID); err == nil && bc != nil {
		return bc, nil
	}

	bc, err := s.bcRepo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, bc); err != nil {
		s.logger.Warn().Err(err).Str("entity_id", entityID).Msg("failed to prime badgeclass cache")
	}
	return bc, nil
}

func assertionDetail(a *domain.Assertion) *ports.AssertionDetail {
	evidence := make([]ports.EvidenceItem, len(a.Evidence))
	for i, ev := range a.Evidence {
		evidence[i] = ports.EvidenceItem{URL: ev.URL, Narrative: ev.Narrative}
	}
	return &ports.AssertionDetail{
		EntityID:     a.EntityID,
		BadgeClassID: a.BadgeClassID,
		IssuerID:     a.IssuerID,
		Recipient: ports.RecipientItem{
			Identity: a.Recipient.Identity,
			Type:     string(a.Recipient.Type),
		},
		Image:            a.Image,
		IssuedOn:         a.IssuedOn,
		Narrative:        a.Narrative,
		Evidence:         evidence,
		Revoked:          a.Revoked,
		RevocationReason: a.RevocationReason,
		CreatedAt:        a.CreatedAt,
		CreatedBy:        a.CreatedBy,
	}
}
