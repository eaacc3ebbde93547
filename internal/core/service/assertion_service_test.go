package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAssertionRepo struct {
	byID      map[string]*domain.Assertion
	createErr error
}

func newStubAssertionRepo() *stubAssertionRepo {
	return &stubAssertionRepo{byID: make(map[string]*domain.Assertion)}
}

func (r *stubAssertionRepo) Create(_ context.Context, a *domain.Assertion) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *a
	r.byID[a.EntityID] = &clone
	return nil
}

func (r *stubAssertionRepo) FindByEntityID(_ context.Context, entityID string) (*domain.Assertion, error) {
	a, ok := r.byID[entityID]
	if !ok {
		return nil, domain.ErrAssertionNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssertionRepo) List(_ context.Context, f ports.ListAssertionsFilter) ([]*domain.Assertion, int64, error) {
	var matched []*domain.Assertion
	for _, a := range r.byID {
		if f.BadgeClassID != "" && a.BadgeClassID != f.BadgeClassID {
			continue
		}
		if f.IssuerID != "" && a.IssuerID != f.IssuerID {
			continue
		}
		clone := *a
		matched = append(matched, &clone)
	}
	return pageSlice(matched, f.Page, f.Limit), int64(len(matched)), nil
}

func (r *stubAssertionRepo) Revoke(_ context.Context, entityID, reason string) error {
	a, ok := r.byID[entityID]
	if !ok {
		return domain.ErrAssertionNotFound
	}
	a.Revoked = true
	a.RevocationReason = reason
	return nil
}

type stubDispatcher struct {
	events []ports.BadgeEventInput
}

func (d *stubDispatcher) Enqueue(event ports.BadgeEventInput) {
	d.events = append(d.events, event)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func assertionFixture(t *testing.T) (*AssertionService, *stubAssertionRepo, *stubBadgeClassRepo, *stubDispatcher) {
	t.Helper()
	repo := newStubAssertionRepo()
	bcRepo := newStubBadgeClassRepo()
	dispatcher := &stubDispatcher{}
	svc := NewAssertionService(repo, bcRepo, newStubBadgeClassCache(), dispatcher, zerolog.Nop())
	return svc, repo, bcRepo, dispatcher
}

func seedBadgeClass(repo *stubBadgeClassRepo, entityID, issuerID string) {
	repo.byID[entityID] = &domain.BadgeClass{
		EntityID:    entityID,
		IssuerID:    issuerID,
		Name:        "Code Reviewer",
		Image:       "badgeclass_seed.png",
		Description: "seed",
	}
}

func minimalIssueInput(badgeClassID string) ports.IssueAssertionInput {
	return ports.IssueAssertionInput{
		BadgeClassID: badgeClassID,
		Recipient:    ports.RecipientInput{Identity: "learner@example.com", Type: "email"},
	}
}

// ---------------------------------------------------------------------------
// IssueAssertion tests
// ---------------------------------------------------------------------------

func TestAssertionService_Issue_BadgeClassFromPayload(t *testing.T) {
	svc, repo, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	detail, err := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.BadgeClassID != "bc-1" {
		t.Errorf("expected bc-1, got %q", detail.BadgeClassID)
	}
	if _, ok := repo.byID[detail.EntityID]; !ok {
		t.Error("assertion not stored")
	}
}

func TestAssertionService_Issue_BadgeClassFromContext(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-ctx", "issuer-1")

	input := minimalIssueInput("")
	input.ContextBadgeClassID = "bc-ctx"

	detail, err := svc.IssueAssertion(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.BadgeClassID != "bc-ctx" {
		t.Errorf("expected bc-ctx, got %q", detail.BadgeClassID)
	}
}

func TestAssertionService_Issue_MissingBadgeClassRejected(t *testing.T) {
	svc, _, _, _ := assertionFixture(t)

	_, err := svc.IssueAssertion(context.Background(), minimalIssueInput(""))

	var fe domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["badgeclass"] != "This field is required" {
		t.Errorf("expected required-badgeclass message, got %v", fe)
	}
}

func TestAssertionService_Issue_InheritsIssuerFromBadgeClass(t *testing.T) {
	svc, repo, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-42")

	detail, err := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.IssuerID != "issuer-42" {
		t.Errorf("issuer must derive from badgeclass: got %q", detail.IssuerID)
	}
	if repo.byID[detail.EntityID].IssuerID != "issuer-42" {
		t.Error("stored issuer differs from badgeclass issuer")
	}
}

func TestAssertionService_Issue_RecipientTypeDefaultsToEmail(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	input := minimalIssueInput("bc-1")
	input.Recipient = ports.RecipientInput{Identity: "learner@example.com"}

	detail, err := svc.IssueAssertion(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Recipient.Type != "email" {
		t.Errorf("expected default type email, got %q", detail.Recipient.Type)
	}
}

func TestAssertionService_Issue_InvalidRecipientRejected(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	cases := []struct {
		name     string
		rtype    string
		identity string
	}{
		{"bad email", "email", "not-an-email"},
		{"bad url", "url", "not a url"},
		{"bad id", "id", "plain-string"},
		{"bad telephone", "telephone", "call-me"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := minimalIssueInput("bc-1")
			input.Recipient = ports.RecipientInput{Identity: tc.identity, Type: tc.rtype}

			_, err := svc.IssueAssertion(context.Background(), input)
			var fe domain.FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if _, ok := fe["recipient.identity"]; !ok {
				t.Errorf("expected error keyed by recipient.identity, got %v", fe)
			}
		})
	}
}

func TestAssertionService_Issue_EmptyEvidenceItemRejected(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	input := minimalIssueInput("bc-1")
	input.Evidence = []ports.EvidenceInput{{}}

	_, err := svc.IssueAssertion(context.Background(), input)
	var fe domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fe["evidence"]; !ok {
		t.Errorf("expected error keyed by evidence, got %v", fe)
	}
}

func TestAssertionService_Issue_EvidenceEitherFieldAccepted(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	for _, ev := range []ports.EvidenceInput{
		{URL: "https://example.com/proof"},
		{Narrative: "Completed the capstone project."},
	} {
		input := minimalIssueInput("bc-1")
		input.Evidence = []ports.EvidenceInput{ev}
		if _, err := svc.IssueAssertion(context.Background(), input); err != nil {
			t.Errorf("evidence %+v should be accepted, got %v", ev, err)
		}
	}
}

func TestAssertionService_Issue_DefaultsIssuedOn(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	before := time.Now().UTC()
	detail, err := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.IssuedOn.Before(before) {
		t.Errorf("issuedOn must default to now, got %v", detail.IssuedOn)
	}
}

func TestAssertionService_Issue_EnqueuesEvent(t *testing.T) {
	svc, _, bcRepo, dispatcher := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	detail, err := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dispatcher.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(dispatcher.events))
	}
	event := dispatcher.events[0]
	if event.AssertionID != detail.EntityID || event.Action != "issued" {
		t.Errorf("unexpected event: %+v", event)
	}
}

// ---------------------------------------------------------------------------
// UpdateAssertion (write-once) tests
// ---------------------------------------------------------------------------

func TestAssertionService_Update_IsNoOp(t *testing.T) {
	svc, repo, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	input := minimalIssueInput("bc-1")
	input.Narrative = "original narrative"
	created, err := svc.IssueAssertion(context.Background(), input)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.UpdateAssertion(context.Background(), created.EntityID, ports.UpdateAssertionInput{
		Recipient: ports.RecipientInput{Identity: "other@example.com", Type: "email"},
		Narrative: "rewritten narrative",
		Evidence:  []ports.EvidenceInput{{URL: "https://example.com/new"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Recipient.Identity != "learner@example.com" {
		t.Errorf("recipient changed: %q", updated.Recipient.Identity)
	}
	if updated.Narrative != "original narrative" {
		t.Errorf("narrative changed: %q", updated.Narrative)
	}
	if len(updated.Evidence) != 0 {
		t.Errorf("evidence changed: %+v", updated.Evidence)
	}
	if stored := repo.byID[created.EntityID]; stored.Narrative != "original narrative" {
		t.Error("stored record mutated by update")
	}
}

func TestAssertionService_Update_NotFound(t *testing.T) {
	svc, _, _, _ := assertionFixture(t)

	_, err := svc.UpdateAssertion(context.Background(), "missing", ports.UpdateAssertionInput{})
	if !errors.Is(err, domain.ErrAssertionNotFound) {
		t.Errorf("expected ErrAssertionNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// RevokeAssertion tests
// ---------------------------------------------------------------------------

func TestAssertionService_Revoke_SetsFlagAndReason(t *testing.T) {
	svc, repo, bcRepo, dispatcher := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	created, _ := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-1"))
	dispatcher.events = nil

	revoked, err := svc.RevokeAssertion(context.Background(), created.EntityID, "awarded in error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revoked.Revoked || revoked.RevocationReason != "awarded in error" {
		t.Errorf("revocation not applied: %+v", revoked)
	}
	if !repo.byID[created.EntityID].Revoked {
		t.Error("stored record not revoked")
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].Action != "revoked" {
		t.Errorf("expected a revoked event, got %+v", dispatcher.events)
	}
}

func TestAssertionService_Revoke_TwiceFails(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")

	created, _ := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-1"))

	if _, err := svc.RevokeAssertion(context.Background(), created.EntityID, "first"); err != nil {
		t.Fatalf("first revoke failed: %v", err)
	}
	_, err := svc.RevokeAssertion(context.Background(), created.EntityID, "second")
	if !errors.Is(err, domain.ErrAlreadyRevoked) {
		t.Errorf("expected ErrAlreadyRevoked, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListAssertions tests
// ---------------------------------------------------------------------------

func TestAssertionService_List_ScopedToBadgeClass(t *testing.T) {
	svc, _, bcRepo, _ := assertionFixture(t)
	seedBadgeClass(bcRepo, "bc-1", "issuer-1")
	seedBadgeClass(bcRepo, "bc-2", "issuer-1")

	if _, err := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-1")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.IssueAssertion(context.Background(), minimalIssueInput("bc-2")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := svc.ListAssertions(context.Background(), ports.ListAssertionsInput{BadgeClassID: "bc-1", Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 {
		t.Errorf("expected 1 assertion for bc-1, got %d", res.Total)
	}
}
