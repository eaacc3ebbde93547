package handler

import "time"

// --- Request types ---

type staffRequest struct {
	User string `json:"user" validate:"required"`
	Role string `json:"role" validate:"required,oneof=staff editor owner"`
}

type createIssuerRequest struct {
	Name        string         `json:"name"        validate:"required,max=1024"`
	Image       string         `json:"image"       validate:"omitempty,datauri"`
	Email       string         `json:"email"       validate:"required,email,max=255"`
	URL         string         `json:"url"         validate:"required,url,max=1024"`
	Description string         `json:"description" validate:"required,max=1024"`
	Staff       []staffRequest `json:"staff"       validate:"omitempty,dive"`
}

type updateIssuerRequest struct {
	Name        string         `json:"name"        validate:"required,max=1024"`
	Image       string         `json:"image"       validate:"omitempty,datauri"`
	Email       string         `json:"email"       validate:"required,email,max=255"`
	URL         string         `json:"url"         validate:"required,url,max=1024"`
	Description string         `json:"description" validate:"required,max=1024"`
	Staff       []staffRequest `json:"staff"       validate:"omitempty,dive"`
}

// --- Response types ---
// Response types are owned by the transport layer so the JSON contract is not
// coupled to internal service changes.

type staffResponse struct {
	User string `json:"user"`
	Role string `json:"role"`
}

type issuerResponse struct {
	EntityID    string          `json:"entityId"`
	EntityType  string          `json:"entityType"`
	OpenBadgeID string          `json:"openBadgeId"`
	Name        string          `json:"name"`
	Image       string          `json:"image,omitempty"`
	Email       string          `json:"email"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Staff       []staffResponse `json:"staff"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy,omitempty"`
}

type listIssuersResponse struct {
	Data       []issuerResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
