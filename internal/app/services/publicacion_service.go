package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

// PublicacionRepository is the persistence surface the publication registry needs
type PublicacionRepository interface {
	Create(ctx context.Context, publicacion *models.Publicacion) error
	GetByID(ctx context.Context, id int64) (*models.Publicacion, error)
	GetAll(ctx context.Context, anio *int, estado *string, offset, limit int) ([]*models.Publicacion, error)
	Update(ctx context.Context, publicacion *models.Publicacion) error
	Delete(ctx context.Context, id int64) error
}

// PublicacionService manages the registry of research publications
type PublicacionService struct {
	publicacionRepo PublicacionRepository
	personalRepo    PersonalExistenceChecker
}

// NewPublicacionService creates a new publication registry service
func NewPublicacionService(publicacionRepo PublicacionRepository, personalRepo PersonalExistenceChecker) *PublicacionService {
	return &PublicacionService{
		publicacionRepo: publicacionRepo,
		personalRepo:    personalRepo,
	}
}

// Publication years outside this window are rejected as typos.
const (
	minAnioPublicacion = 1900
)

func validateAnio(anio *int) error {
	if anio == nil {
		return nil
	}
	if *anio < minAnioPublicacion || *anio > time.Now().Year()+1 {
		return apperrors.NewValidationError("anio fuera de rango")
	}
	return nil
}

func (s *PublicacionService) validateAuthors(ctx context.Context, authors []models.Autor) error {
	for _, autor := range authors {
		if autor.PersonalID == nil {
			continue
		}
		exists, err := s.personalRepo.Exists(ctx, *autor.PersonalID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrPersonalNotFound
		}
	}
	return nil
}

// CreatePublicacion registers a publication. Authors that reference a
// directory entry must reference an existing one; external authors carry
// only a name.
func (s *PublicacionService) CreatePublicacion(ctx context.Context, req *dto.CreatePublicacionRequest) (*models.Publicacion, error) {
	if err := validateAnio(req.Anio); err != nil {
		return nil, err
	}
	if err := s.validateAuthors(ctx, req.Authors); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	publicacion := &models.Publicacion{
		Titulo:         req.Titulo,
		CitaFormateada: req.CitaFormateada,
		DOIURL:         req.DOIURL,
		EnlacePDF:      req.EnlacePDF,
		Anio:           req.Anio,
		Estado:         req.Estado,
		FechaRegistro:  now,
		Authors:        req.Authors,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.publicacionRepo.Create(ctx, publicacion); err != nil {
		return nil, err
	}

	return publicacion, nil
}

// GetPublicacion retrieves a publication by ID
func (s *PublicacionService) GetPublicacion(ctx context.Context, id int64) (*models.Publicacion, error) {
	publicacion, err := s.publicacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publicacion == nil {
		return nil, apperrors.ErrPublicacionNotFound
	}
	return publicacion, nil
}

// ListPublicaciones retrieves publications, optionally filtered by anio and estado
func (s *PublicacionService) ListPublicaciones(ctx context.Context, anio *int, estado *string, offset, limit int) ([]*models.Publicacion, error) {
	return s.publicacionRepo.GetAll(ctx, anio, estado, offset, limit)
}

// UpdatePublicacion applies a partial update to a publication. A non-nil
// Authors slice replaces the whole list and is validated like on creation.
func (s *PublicacionService) UpdatePublicacion(ctx context.Context, id int64, req *dto.UpdatePublicacionRequest) (*models.Publicacion, error) {
	publicacion, err := s.publicacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publicacion == nil {
		return nil, apperrors.ErrPublicacionNotFound
	}

	if err := validateAnio(req.Anio); err != nil {
		return nil, err
	}

	if req.Authors != nil {
		if err := s.validateAuthors(ctx, *req.Authors); err != nil {
			return nil, err
		}
		publicacion.Authors = *req.Authors
	}

	if req.Titulo != nil {
		publicacion.Titulo = *req.Titulo
	}
	if req.CitaFormateada != nil {
		publicacion.CitaFormateada = req.CitaFormateada
	}
	if req.DOIURL != nil {
		publicacion.DOIURL = req.DOIURL
	}
	if req.EnlacePDF != nil {
		publicacion.EnlacePDF = req.EnlacePDF
	}
	if req.Anio != nil {
		publicacion.Anio = req.Anio
	}
	if req.Estado != nil {
		publicacion.Estado = req.Estado
	}
	publicacion.UpdatedAt = time.Now().UTC()

	if err := s.publicacionRepo.Update(ctx, publicacion); err != nil {
		return nil, err
	}

	return publicacion, nil
}

// DeletePublicacion removes a publication
func (s *PublicacionService) DeletePublicacion(ctx context.Context, id int64) error {
	publicacion, err := s.publicacionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if publicacion == nil {
		return apperrors.ErrPublicacionNotFound
	}

	return s.publicacionRepo.Delete(ctx, id)
}
