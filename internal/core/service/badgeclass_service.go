package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

const badgeClassImagePrefix = "badgeclass"

// BadgeClassCache caches badge class lookups keyed by entityId. Implemented
// by the Redis layer; the service works with a cold cache.
type BadgeClassCache interface {
	Get(ctx context.Context, entityID string) (*domain.BadgeClass, error)
	Set(ctx context.Context, bc *domain.BadgeClass) error
	Invalidate(ctx context.Context, entityID string) error
}

type BadgeClassService struct {
	repo       ports.BadgeClassRepository
	issuerRepo ports.IssuerRepository
	images     ports.ImageStore
	cache      BadgeClassCache
	logger     zerolog.Logger
}

func NewBadgeClassService(
	repo ports.BadgeClassRepository,
	issuerRepo ports.IssuerRepository,
	images ports.ImageStore,
	cache BadgeClassCache,
	logger zerolog.Logger,
) *BadgeClassService {
	return &BadgeClassService{repo: repo, issuerRepo: issuerRepo, images: images, cache: cache, logger: logger}
}

// CreateBadgeClass stores a new badge class. The owning issuer is resolved
// from the payload reference first, then the call context; neither present is
// a validation error.
func (s *BadgeClassService) CreateBadgeClass(ctx context.Context, input ports.CreateBadgeClassInput) (*ports.BadgeClassDetail, error) {
	issuerID := input.IssuerID
	if issuerID == "" {
		issuerID = input.ContextIssuerID
	}
	if issuerID == "" {
		return nil, domain.NewFieldError("issuer", "This field is required")
	}

	if _, err := s.issuerRepo.FindByEntityID(ctx, issuerID); err != nil {
		if errors.Is(err, domain.ErrIssuerNotFound) {
			return nil, domain.NewFieldError("issuer", "unknown issuer")
		}
		return nil, err
	}

	if input.Image == "" {
		return nil, domain.NewFieldError("image", "This field is required")
	}
	image, err := s.images.Save(ctx, badgeClassImagePrefix, input.Image)
	if err != nil {
		return nil, domain.NewFieldError("image", err.Error())
	}

	bc := &domain.BadgeClass{
		EntityID:          newEntityID(),
		IssuerID:          issuerID,
		Name:              input.Name,
		Image:             image,
		Description:       input.Description,
		CriteriaURL:       input.CriteriaURL,
		CriteriaNarrative: input.CriteriaNarrative,
		Tags:              input.Tags,
		Alignments:        toAlignments(input.Alignments),
		CreatedAt:         time.Now().UTC(),
		CreatedBy:         input.CreatedBy,
	}

	if err := s.repo.Create(ctx, bc); err != nil {
		s.logger.Error().Err(err).Msg("failed to create badgeclass")
		return nil, err
	}

	if err := s.cache.Set(ctx, bc); err != nil {
		s.logger.Warn().Err(err).Str("entity_id", bc.EntityID).Msg("failed to prime badgeclass cache")
	}

	s.logger.Info().Str("entity_id", bc.EntityID).Str("issuer_id", issuerID).Msg("badgeclass created")

	return badgeClassDetail(bc), nil
}

// GetBadgeClass returns the full view of one badge class.
func (s *BadgeClassService) GetBadgeClass(ctx context.Context, entityID string) (*ports.BadgeClassDetail, error) {
	bc, err := s.resolve(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return badgeClassDetail(bc), nil
}

// ListBadgeClasses returns a page of badge classes, optionally scoped to one
// issuer.
func (s *BadgeClassService) ListBadgeClasses(ctx context.Context, input ports.ListBadgeClassesInput) (*ports.ListBadgeClassesResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	classes, total, err := s.repo.List(ctx, ports.ListBadgeClassesFilter{
		IssuerID: input.IssuerID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.BadgeClassDetail, len(classes))
	for i, bc := range classes {
		items[i] = *badgeClassDetail(bc)
	}

	return &ports.ListBadgeClassesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateBadgeClass applies the mutable fields. Any owner reference in the
// payload is silently discarded: the owning issuer never changes.
func (s *BadgeClassService) UpdateBadgeClass(ctx context.Context, entityID string, input ports.UpdateBadgeClassInput) (*ports.BadgeClassDetail, error) {
	bc, err := s.repo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	if input.IssuerID != "" && input.IssuerID != bc.IssuerID {
		s.logger.Debug().
			Str("entity_id", entityID).
			Str("submitted_issuer", input.IssuerID).
			Msg("issuer change discarded on badgeclass update")
	}

	if input.Image != "" {
		image, err := s.images.Save(ctx, badgeClassImagePrefix, input.Image)
		if err != nil {
			return nil, domain.NewFieldError("image", err.Error())
		}
		bc.Image = image
	}

	bc.Name = input.Name
	bc.Description = input.Description
	bc.CriteriaURL = input.CriteriaURL
	bc.CriteriaNarrative = input.CriteriaNarrative
	bc.Tags = input.Tags
	bc.Alignments = toAlignments(input.Alignments)

	if err := s.repo.Update(ctx, bc); err != nil {
		s.logger.Error().Err(err).Str("entity_id", entityID).Msg("failed to update badgeclass")
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, entityID); err != nil {
		s.logger.Warn().Err(err).Str("entity_id", entityID).Msg("failed to invalidate badgeclass cache")
	}

	return badgeClassDetail(bc), nil
}

// resolve reads through the cache: hit returns directly, miss falls back to
// the repository and primes the cache.
func (s *BadgeClassService) resolve(ctx context.Context, entityID string) (*domain.BadgeClass, error) {
	if bc, err := s.cache.Get(ctx, entityID); err == nil && bc != nil {
		return bc, nil
	}

	bc, err := s.repo.FindByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, bc); err != nil {
		s.logger.Warn().Err(err).Str("entity_id", entityID).Msg("failed to prime badgeclass cache")
	}
	return bc, nil
}

func toAlignments(items []ports.AlignmentInput) []domain.Alignment {
	if items == nil {
		return nil
	}
	alignments := make([]domain.Alignment, len(items))
	for i, a := range items {
		alignments[i] = domain.Alignment{
			TargetName:        a.TargetName,
			TargetURL:         a.TargetURL,
			TargetDescription: a.TargetDescription,
			TargetFramework:   a.TargetFramework,
			TargetCode:        a.TargetCode,
		}
	}
	return alignments
}

func badgeClassDetail(bc *domain.BadgeClass) *ports.BadgeClassDetail {
	alignments := make([]ports.AlignmentItem, len(bc.Alignments))
	for i, a := range bc.Alignments {
		alignments[i] = ports.AlignmentItem{
			TargetName:        a.TargetName,
			TargetURL:         a.TargetURL,
			TargetDescription: a.TargetDescription,
			TargetFramework:   a.TargetFramework,
			TargetCode:        a.TargetCode,
		}
	}
	return &ports.BadgeClassDetail{
		EntityID:          bc.EntityID,
		IssuerID:          bc.IssuerID,
		Name:              bc.Name,
		Image:             bc.Image,
		Description:       bc.Description,
		CriteriaURL:       bc.CriteriaURL,
		CriteriaNarrative: bc.CriteriaNarrative,
		Tags:              bc.Tags,
		Alignments:        alignments,
		CreatedAt:         bc.CreatedAt,
		CreatedBy:         bc.CreatedBy,
	}
}
