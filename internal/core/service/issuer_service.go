package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// issuerImagePrefix is the filename prefix for stored issuer logos.
const issuerImagePrefix = "issuer_logo"

type IssuerService struct {
	repo   ports.IssuerRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewIssuerService(repo ports.IssuerRepository, images ports.ImageStore, logger zerolog.Logger) *IssuerService {
	return &IssuerService{repo: repo, images: images, logger: logger}
}

// CreateIssuer stores a new issuer. An uploaded image is renamed to a fresh
// random filename (original extension preserved) before persistence.
func (s *IssuerService) CreateIssuer(ctx context.Context, input ports.CreateIssuerInput) (*ports.IssuerDetail, error) {
	staff, err := toStaff(input.Staff)
	if err != nil {
		return nil, err
	}

	image := ""
	if input.Image != "" {
		image, err = s.images.Save(ctx, issuerImagePrefix, input.Image)
		if err != nil {
			return nil, domain.NewFieldError("image", err.Error())
		}
	}

	issuer := &domain.Issuer{
		EntityID:    newEntityID(),
		Name:        input.Name,
		Image:       image,
		Email:       input.Email,
		URL:         input.URL,
		Description: input.Description,
		Staff:       staff,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   input.CreatedBy,
	}

	if err := s.repo.Create(ctx, issuer); err != nil {
		s.logger.Error().Err(err).Msg("failed to create issuer")
		return nil, err
	}

	s.logger.Info().Str("entity_id", issuer.EntityID).Str("name", issuer.Name).Msg("issuer created")

	return issuerDetail(issuer), nil
}

// GetIssuer returns the full view of one issuer.
func (s *IssuerService) GetIssuer(ctx context.Context, entityID string) (*ports.IssuerDetail, error) {
	issuer, err := s.repo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return issuerDetail(issuer), nil
}

// ListIssuers returns a page of issuers.
func (s *IssuerService) ListIssuers(ctx context.Context, input ports.ListIssuersInput) (*ports.ListIssuersResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	issuers, total, err := s.repo.List(ctx, ports.ListIssuersFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	items := make([]ports.IssuerDetail, len(issuers))
	for i, issuer := range issuers {
		items[i] = *issuerDetail(issuer)
	}

	return &ports.ListIssuersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateIssuer applies the mutable fields. An omitted image keeps the stored
// one; a new upload is renamed the same way as on create.
func (s *IssuerService) UpdateIssuer(ctx context.Context, entityID string, input ports.UpdateIssuerInput) (*ports.IssuerDetail, error) {
	issuer, err := s.repo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	staff, err := toStaff(input.Staff)
	if err != nil {
		return nil, err
	}

	if input.Image != "" {
		image, err := s.images.Save(ctx, issuerImagePrefix, input.Image)
		if err != nil {
			return nil, domain.NewFieldError("image", err.Error())
		}
		issuer.Image = image
	}

	issuer.Name = input.Name
	issuer.Email = input.Email
	issuer.URL = input.URL
	issuer.Description = input.Description
	if staff != nil {
		issuer.Staff = staff
	}

	if err := s.repo.Update(ctx, issuer); err != nil {
		s.logger.Error().Err(err).Str("entity_id", entityID).Msg("failed to update issuer")
		return nil, err
	}

	return issuerDetail(issuer), nil
}

func toStaff(items []ports.StaffInput) ([]domain.StaffMember, error) {
	if items == nil {
		return nil, nil
	}
	staff := make([]domain.StaffMember, len(items))
	for i, m := range items {
		role := domain.StaffRole(m.Role)
		if !role.Valid() {
			return nil, domain.NewFieldError("staff.role", "must be one of: staff, editor, owner")
		}
		staff[i] = domain.StaffMember{UserID: m.UserID, Role: role}
	}
	return staff, nil
}

func issuerDetail(issuer *domain.Issuer) *ports.IssuerDetail {
	staff := make([]ports.StaffItem, len(issuer.Staff))
	for i, m := range issuer.Staff {
		staff[i] = ports.StaffItem{UserID: m.UserID, Role: string(m.Role)}
	}
	return &ports.IssuerDetail{
		EntityID:    issuer.EntityID,
		Name:        issuer.Name,
		Image:       issuer.Image,
		Email:       issuer.Email,
		URL:         issuer.URL,
		Description: issuer.Description,
		Staff:       staff,
		CreatedAt:   issuer.CreatedAt,
		CreatedBy:   issuer.CreatedBy,
	}
}
