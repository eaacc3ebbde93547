package handler

import (
	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// --- Request → Service input ---

func toIssueAssertionInput(req issueAssertionRequest, contextBadgeClassID, createdBy string) ports.IssueAssertionInput {
	return ports.IssueAssertionInput{
		BadgeClassID:        req.BadgeClass,
		ContextBadgeClassID: contextBadgeClassID,
		Recipient: ports.RecipientInput{
			Identity: req.Recipient.Identity,
			Type:     req.Recipient.Type,
		},
		IssuedOn:  req.IssuedOn,
		Narrative: req.Narrative,
		Evidence:  toEvidenceInputs(req.Evidence),
		CreatedBy: createdBy,
	}
}

func toUpdateAssertionInput(req updateAssertionRequest) ports.UpdateAssertionInput {
	return ports.UpdateAssertionInput{
		Recipient: ports.RecipientInput{
			Identity: req.Recipient.Identity,
			Type:     req.Recipient.Type,
		},
		IssuedOn:  req.IssuedOn,
		Narrative: req.Narrative,
		Evidence:  toEvidenceInputs(req.Evidence),
	}
}

func toEvidenceInputs(evidence []evidenceRequest) []ports.EvidenceInput {
	out := make([]ports.EvidenceInput, len(evidence))
	for i, e := range evidence {
		out[i] = ports.EvidenceInput{URL: e.URL, Narrative: e.Narrative}
	}
	return out
}

// --- Service result → HTTP response ---

func toAssertionResponse(d *ports.AssertionDetail, publicURL string) assertionResponse {
	evidence := make([]evidenceResponse, len(d.Evidence))
	for i, e := range d.Evidence {
		evidence[i] = evidenceResponse{URL: e.URL, Narrative: e.Narrative}
	}
	return assertionResponse{
		EntityID:    d.EntityID,
		EntityType:  string(domain.EntityTypeAssertion),
		OpenBadgeID: publicURL + "/public/assertions/" + d.EntityID,
		BadgeClass:  d.BadgeClassID,
		Issuer:      d.IssuerID,
		Recipient: recipientResponse{
			Identity: d.Recipient.Identity,
			Type:     d.Recipient.Type,
		},
		Image:            d.Image,
		IssuedOn:         d.IssuedOn.UTC(),
		Narrative:        d.Narrative,
		Evidence:         evidence,
		Revoked:          d.Revoked,
		RevocationReason: d.RevocationReason,
		CreatedAt:        d.CreatedAt.UTC(),
		CreatedBy:        d.CreatedBy,
	}
}

func toListAssertionsResponse(r *ports.ListAssertionsResult, publicURL string) listAssertionsResponse {
	items := make([]assertionResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toAssertionResponse(&r.Items[i], publicURL)
	}
	return listAssertionsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
