package handler

import (
	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateIssuerInput(req createIssuerRequest, createdBy string) ports.CreateIssuerInput {
	return ports.CreateIssuerInput{
		Name:        req.Name,
		Image:       req.Image,
		Email:       req.Email,
		URL:         req.URL,
		Description: req.Description,
		Staff:       toStaffInputs(req.Staff),
		CreatedBy:   createdBy,
	}
}

func toUpdateIssuerInput(req updateIssuerRequest) ports.UpdateIssuerInput {
	return ports.UpdateIssuerInput{
		Name:        req.Name,
		Image:       req.Image,
		Email:       req.Email,
		URL:         req.URL,
		Description: req.Description,
		Staff:       toStaffInputs(req.Staff),
	}
}

// toStaffInputs keeps nil distinct from empty: an omitted staff field means
// "leave the stored staff alone", an explicit [] replaces it.
func toStaffInputs(staff []staffRequest) []ports.StaffInput {
	if staff == nil {
		return nil
	}
	out := make([]ports.StaffInput, len(staff))
	for i, s := range staff {
		out[i] = ports.StaffInput{UserID: s.User, Role: s.Role}
	}
	return out
}

// --- Service result → HTTP response ---

func toIssuerResponse(d *ports.IssuerDetail, publicURL string) issuerResponse {
	staff := make([]staffResponse, len(d.Staff))
	for i, s := range d.Staff {
		staff[i] = staffResponse{User: s.UserID, Role: s.Role}
	}
	return issuerResponse{
		EntityID:    d.EntityID,
		EntityType:  string(domain.EntityTypeIssuer),
		OpenBadgeID: publicURL + "/public/issuers/" + d.EntityID,
		Name:        d.Name,
		Image:       d.Image,
		Email:       d.Email,
		URL:         d.URL,
		Description: d.Description,
		Staff:       staff,
		CreatedAt:   d.CreatedAt.UTC(),
		CreatedBy:   d.CreatedBy,
	}
}

func toListIssuersResponse(r *ports.ListIssuersResult, publicURL string) listIssuersResponse {
	items := make([]issuerResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toIssuerResponse(&r.Items[i], publicURL)
	}
	return listIssuersResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
