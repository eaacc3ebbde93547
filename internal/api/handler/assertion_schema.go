package handler

import "time"

// --- Request types ---

type recipientRequest struct {
	Identity string `json:"identity" validate:"required"`
	Type     string `json:"type"     validate:"omitempty,oneof=email url id telephone"`
}

type evidenceRequest struct {
	URL       string `json:"url"       validate:"omitempty,url,max=1024"`
	Narrative string `json:"narrative"`
}

type issueAssertionRequest struct {
	// Badgeclass may be omitted when the assertion is issued under a badge
	// class path; the handler supplies the path param as the context
	// reference. Recipient format rules depend on the recipient type, so they
	// live in the service layer rather than in struct tags.
	BadgeClass string            `json:"badgeclass"`
	Recipient  recipientRequest  `json:"recipient" validate:"required"`
	IssuedOn   time.Time         `json:"issuedOn"`
	Narrative  string            `json:"narrative"`
	Evidence   []evidenceRequest `json:"evidence"  validate:"omitempty,dive"`
}

// updateAssertionRequest mirrors the issue payload. Assertions are
// write-once; the whole body is accepted and discarded.
type updateAssertionRequest struct {
	BadgeClass string            `json:"badgeclass"`
	Recipient  recipientRequest  `json:"recipient"`
	IssuedOn   time.Time         `json:"issuedOn"`
	Narrative  string            `json:"narrative"`
	Evidence   []evidenceRequest `json:"evidence"`
}

type revokeAssertionRequest struct {
	RevocationReason string `json:"revocationReason" validate:"required,max=1024"`
}

// --- Response types ---

type recipientResponse struct {
	Identity string `json:"identity"`
	Type     string `json:"type"`
}

type evidenceResponse struct {
	URL       string `json:"url,omitempty"`
	Narrative string `json:"narrative,omitempty"`
}

type assertionResponse struct {
	EntityID         string             `json:"entityId"`
	EntityType       string             `json:"entityType"`
	OpenBadgeID      string             `json:"openBadgeId"`
	BadgeClass       string             `json:"badgeclass"`
	Issuer           string             `json:"issuer"`
	Recipient        recipientResponse  `json:"recipient"`
	Image            string             `json:"image,omitempty"`
	IssuedOn         time.Time          `json:"issuedOn"`
	Narrative        string             `json:"narrative,omitempty"`
	Evidence         []evidenceResponse `json:"evidence"`
	Revoked          bool               `json:"revoked"`
	RevocationReason string             `json:"revocationReason,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	CreatedBy        string             `json:"createdBy,omitempty"`
}

type listAssertionsResponse struct {
	Data       []assertionResponse `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}
