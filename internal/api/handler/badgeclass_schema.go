package handler

import "time"

// --- Request types ---

type alignmentRequest struct {
	TargetName        string `json:"targetName"        validate:"required,max=1024"`
	TargetURL         string `json:"targetUrl"         validate:"required,url,max=1024"`
	TargetDescription string `json:"targetDescription" validate:"omitempty,max=1024"`
	TargetFramework   string `json:"targetFramework"   validate:"omitempty,max=1024"`
	TargetCode        string `json:"targetCode"        validate:"omitempty,max=1024"`
}

type createBadgeClassRequest struct {
	// Issuer may be omitted when the badge class is created under an issuer
	// path; the handler supplies the path param as the context reference.
	Issuer            string             `json:"issuer"`
	Name              string             `json:"name"              validate:"required,max=1024"`
	Image             string             `json:"image"             validate:"omitempty,datauri"`
	Description       string             `json:"description"       validate:"required,max=1024"`
	CriteriaURL       string             `json:"criteriaUrl"       validate:"omitempty,url,max=1024"`
	CriteriaNarrative string             `json:"criteriaNarrative" validate:"omitempty"`
	Tags              []string           `json:"tags"              validate:"omitempty,dive,max=1024"`
	Alignments        []alignmentRequest `json:"alignments"        validate:"omitempty,dive"`
}

type updateBadgeClassRequest struct {
	// Accepted and discarded: the owning issuer is fixed at creation.
	Issuer            string             `json:"issuer"`
	Name              string             `json:"name"              validate:"required,max=1024"`
	Image             string             `json:"image"             validate:"omitempty,datauri"`
	Description       string             `json:"description"       validate:"required,max=1024"`
	CriteriaURL       string             `json:"criteriaUrl"       validate:"omitempty,url,max=1024"`
	CriteriaNarrative string             `json:"criteriaNarrative" validate:"omitempty"`
	Tags              []string           `json:"tags"              validate:"omitempty,dive,max=1024"`
	Alignments        []alignmentRequest `json:"alignments"        validate:"omitempty,dive"`
}

// --- Response types ---

type alignmentResponse struct {
	TargetName        string `json:"targetName"`
	TargetURL         string `json:"targetUrl"`
	TargetDescription string `json:"targetDescription,omitempty"`
	TargetFramework   string `json:"targetFramework,omitempty"`
	TargetCode        string `json:"targetCode,omitempty"`
}

type badgeClassResponse struct {
	EntityID          string              `json:"entityId"`
	EntityType        string              `json:"entityType"`
	OpenBadgeID       string              `json:"openBadgeId"`
	Issuer            string              `json:"issuer"`
	Name              string              `json:"name"`
	Image             string              `json:"image"`
	Description       string              `json:"description"`
	CriteriaURL       string              `json:"criteriaUrl,omitempty"`
	CriteriaNarrative string              `json:"criteriaNarrative,omitempty"`
	Tags              []string            `json:"tags"`
	Alignments        []alignmentResponse `json:"alignments"`
	CreatedAt         time.Time           `json:"createdAt"`
	CreatedBy         string              `json:"createdBy,omitempty"`
}

type listBadgeClassesResponse struct {
	Data       []badgeClassResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}
