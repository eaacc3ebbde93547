package handler

import (
	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateBadgeClassInput(req createBadgeClassRequest, contextIssuerID, createdBy string) ports.CreateBadgeClassInput {
	return ports.CreateBadgeClassInput{
		IssuerID:          req.Issuer,
		ContextIssuerID:   contextIssuerID,
		Name:              req.Name,
		Image:             req.Image,
		Description:       req.Description,
		CriteriaURL:       req.CriteriaURL,
		CriteriaNarrative: req.CriteriaNarrative,
		Tags:              req.Tags,
		Alignments:        toAlignmentInputs(req.Alignments),
		CreatedBy:         createdBy,
	}
}

func toUpdateBadgeClassInput(req updateBadgeClassRequest) ports.UpdateBadgeClassInput {
	return ports.UpdateBadgeClassInput{
		IssuerID:          req.Issuer,
		Name:              req.Name,
		Image:             req.Image,
		Description:       req.Description,
		CriteriaURL:       req.CriteriaURL,
		CriteriaNarrative: req.CriteriaNarrative,
		Tags:              req.Tags,
		Alignments:        toAlignmentInputs(req.Alignments),
	}
}

func toAlignmentInputs(alignments []alignmentRequest) []ports.AlignmentInput {
	out := make([]ports.AlignmentInput, len(alignments))
	for i, a := range alignments {
		out[i] = ports.AlignmentInput{
			TargetName:        a.TargetName,
			TargetURL:         a.TargetURL,
			TargetDescription: a.TargetDescription,
			TargetFramework:   a.TargetFramework,
			TargetCode:        a.TargetCode,
		}
	}
	return out
}

// --- Service result → HTTP response ---

func toBadgeClassResponse(d *ports.BadgeClassDetail, publicURL string) badgeClassResponse {
	alignments := make([]alignmentResponse, len(d.Alignments))
	for i, a := range d.Alignments {
		alignments[i] = alignmentResponse{
			TargetName:        a.TargetName,
			TargetURL:         a.TargetURL,
			TargetDescription: a.TargetDescription,
			TargetFramework:   a.TargetFramework,
			TargetCode:        a.TargetCode,
		}
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return badgeClassResponse{
		EntityID:          d.EntityID,
		EntityType:        string(domain.EntityTypeBadgeClass),
		OpenBadgeID:       publicURL + "/public/badges/" + d.EntityID,
		Issuer:            d.IssuerID,
		Name:              d.Name,
		Image:             d.Image,
		Description:       d.Description,
		CriteriaURL:       d.CriteriaURL,
		CriteriaNarrative: d.CriteriaNarrative,
		Tags:              tags,
		Alignments:        alignments,
		CreatedAt:         d.CreatedAt.UTC(),
		CreatedBy:         d.CreatedBy,
	}
}

func toListBadgeClassesResponse(r *ports.ListBadgeClassesResult, publicURL string) listBadgeClassesResponse {
	items := make([]badgeClassResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toBadgeClassResponse(&r.Items[i], publicURL)
	}
	return listBadgeClassesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
