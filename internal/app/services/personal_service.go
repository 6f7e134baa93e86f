package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

// DefaultRol is assigned to a membership edge created without an explicit rol
const DefaultRol = "Investigador"

// PersonalRepository is the persistence surface the directory service needs
type PersonalRepository interface {
	Create(ctx context.Context, personal *models.Personal) error
	GetByID(ctx context.Context, id int64) (*models.Personal, error)
	GetAll(ctx context.Context, soloActivos bool, offset, limit int) ([]*models.Personal, error)
	Update(ctx context.Context, personal *models.Personal) error
	SoftDeleteWithUnlinks(ctx context.Context, id int64, fechaBaja time.Time) error
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProyectoExistenceChecker validates project references from other services
type ProyectoExistenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// PersonalProyectoRepository is the persistence surface for membership edges
type PersonalProyectoRepository interface {
	ListByPersonal(ctx context.Context, personalID int64) ([]*models.PersonalProyecto, error)
	ListByProyecto(ctx context.Context, proyectoID int64) ([]*models.PersonalProyecto, error)
	UpsertBatch(ctx context.Context, edges []*models.PersonalProyecto) error
	ReplaceForProyecto(ctx context.Context, proyectoID int64, edges []*models.PersonalProyecto, now time.Time) error
}

// PersonalService manages the staff directory and its project memberships
type PersonalService struct {
	personalRepo PersonalRepository
	proyectoRepo ProyectoExistenceChecker
	edgeRepo     PersonalProyectoRepository
}

// NewPersonalService creates a new staff directory service
func NewPersonalService(personalRepo PersonalRepository, proyectoRepo ProyectoExistenceChecker, edgeRepo PersonalProyectoRepository) *PersonalService {
	return &PersonalService{
		personalRepo: personalRepo,
		proyectoRepo: proyectoRepo,
		edgeRepo:     edgeRepo,
	}
}

// CreatePersonal registers a new directory entry. Emails are unique across
// the directory; fecha_alta defaults to the creation time.
func (s *PersonalService) CreatePersonal(ctx context.Context, req *dto.CreatePersonalRequest) (*models.Personal, error) {
	if req.Email != nil {
		taken, err := s.personalRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	now := time.Now().UTC()
	fechaAlta := req.FechaAlta
	if fechaAlta == nil {
		fechaAlta = &now
	}

	personal := &models.Personal{
		Nombre:      req.Nombre,
		Cargo:       req.Cargo,
		Descripcion: req.Descripcion,
		FotoURL:     req.FotoURL,
		CVURL:       req.CVURL,
		ORCID:       req.ORCID,
		Email:       req.Email,
		FechaAlta:   fechaAlta,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.personalRepo.Create(ctx, personal); err != nil {
		return nil, err
	}

	return personal, nil
}

// GetPersonal retrieves a directory entry by ID
func (s *PersonalService) GetPersonal(ctx context.Context, id int64) (*models.Personal, error) {
	personal, err := s.personalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if personal == nil {
		return nil, apperrors.ErrPersonalNotFound
	}
	return personal, nil
}

// ListPersonal retrieves directory entries; soloActivos skips deactivated ones
func (s *PersonalService) ListPersonal(ctx context.Context, soloActivos bool, offset, limit int) ([]*models.Personal, error) {
	return s.personalRepo.GetAll(ctx, soloActivos, offset, limit)
}

// UpdatePersonal applies a partial update to a directory entry. Changing the
// email to one already in use is a conflict. There is no reactivation path;
// fecha_baja is only ever set by DeletePersonal.
func (s *PersonalService) UpdatePersonal(ctx context.Context, id int64, req *dto.UpdatePersonalRequest) (*models.Personal, error) {
	personal, err := s.personalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if personal == nil {
		return nil, apperrors.ErrPersonalNotFound
	}

	if req.Email != nil && (personal.Email == nil || *personal.Email != *req.Email) {
		taken, err := s.personalRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		personal.Email = req.Email
	}

	if req.Nombre != nil {
		personal.Nombre = *req.Nombre
	}
	if req.Cargo != nil {
		personal.Cargo = req.Cargo
	}
	if req.Descripcion != nil {
		personal.Descripcion = req.Descripcion
	}
	if req.FotoURL != nil {
		personal.FotoURL = req.FotoURL
	}
	if req.CVURL != nil {
		personal.CVURL = req.CVURL
	}
	if req.ORCID != nil {
		personal.ORCID = req.ORCID
	}
	if req.FechaAlta != nil {
		personal.FechaAlta = req.FechaAlta
	}
	personal.UpdatedAt = time.Now().UTC()

	if err := s.personalRepo.Update(ctx, personal); err != nil {
		return nil, err
	}

	return personal, nil
}

// DeletePersonal deactivates a directory entry. The row is kept with
// fecha_baja set, and every project membership of the entry is removed in
// the same transaction.
func (s *PersonalService) DeletePersonal(ctx context.Context, id int64) error {
	exists, err := s.personalRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrPersonalNotFound
	}

	return s.personalRepo.SoftDeleteWithUnlinks(ctx, id, time.Now().UTC())
}

// VincularProyectos links a directory entry to a batch of proyectos and
// returns the complete membership set afterwards. Linking an existing pair
// updates its rol in place.
func (s *PersonalService) VincularProyectos(ctx context.Context, personalID int64, req *dto.VincularProyectosRequest) ([]*models.PersonalProyecto, error) {
	exists, err := s.personalRepo.Exists(ctx, personalID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrPersonalNotFound
	}

	now := time.Now().UTC()
	edges := make([]*models.PersonalProyecto, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProyectoID == nil {
			return nil, apperrors.ErrMissingProyectoID
		}

		ok, err := s.proyectoRepo.Exists(ctx, *item.ProyectoID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrProyectoNotFound
		}

		rol := item.Rol
		if rol == nil {
			defaultRol := DefaultRol
			rol = &defaultRol
		}

		edges = append(edges, &models.PersonalProyecto{
			PersonalID: personalID,
			ProyectoID: *item.ProyectoID,
			Rol:        rol,
			CreatedAt:  now,
		})
	}

	if err := s.edgeRepo.UpsertBatch(ctx, edges); err != nil {
		return nil, err
	}

	return s.edgeRepo.ListByPersonal(ctx, personalID)
}

// ListProyectosDePersonal retrieves the membership edges of a directory
// entry. An unknown entry yields an empty list, not an error.
func (s *PersonalService) ListProyectosDePersonal(ctx context.Context, personalID int64) ([]*models.PersonalProyecto, error) {
	return s.edgeRepo.ListByPersonal(ctx, personalID)
}
