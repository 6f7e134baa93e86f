package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

// ProyectoRepository is the persistence surface the project service needs
type ProyectoRepository interface {
	Create(ctx context.Context, proyecto *models.Proyecto) error
	GetByID(ctx context.Context, id int64) (*models.Proyecto, error)
	GetAll(ctx context.Context, offset, limit int) ([]*models.Proyecto, error)
	Update(ctx context.Context, proyecto *models.Proyecto) error
	DeleteWithAsignaciones(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// PersonalExistenceChecker validates directory references from other services
type PersonalExistenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ProyectoService manages research projects and their staff assignments
type ProyectoService struct {
	proyectoRepo ProyectoRepository
	personalRepo PersonalExistenceChecker
	edgeRepo     PersonalProyectoRepository
}

// NewProyectoService creates a new project service
func NewProyectoService(proyectoRepo ProyectoRepository, personalRepo PersonalExistenceChecker, edgeRepo PersonalProyectoRepository) *ProyectoService {
	return &ProyectoService{
		proyectoRepo: proyectoRepo,
		personalRepo: personalRepo,
		edgeRepo:     edgeRepo,
	}
}

func validateDateRange(inicio, fin *time.Time) error {
	if inicio != nil && fin != nil && inicio.After(*fin) {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// CreateProyecto registers a new research project
func (s *ProyectoService) CreateProyecto(ctx context.Context, req *dto.CreateProyectoRequest) (*models.Proyecto, error) {
	if err := validateDateRange(req.FechaInicio, req.FechaFin); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	proyecto := &models.Proyecto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		Financiador: req.Financiador,
		Presupuesto: req.Presupuesto,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.proyectoRepo.Create(ctx, proyecto); err != nil {
		return nil, err
	}

	return proyecto, nil
}

// GetProyecto retrieves a project by ID
func (s *ProyectoService) GetProyecto(ctx context.Context, id int64) (*models.Proyecto, error) {
	proyecto, err := s.proyectoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.ErrProyectoNotFound
	}
	return proyecto, nil
}

// ListProyectos retrieves projects with pagination
func (s *ProyectoService) ListProyectos(ctx context.Context, offset, limit int) ([]*models.Proyecto, error) {
	return s.proyectoRepo.GetAll(ctx, offset, limit)
}

// UpdateProyecto applies a partial update to a project. The date range is
// validated over the effective values after the patch.
func (s *ProyectoService) UpdateProyecto(ctx context.Context, id int64, req *dto.UpdateProyectoRequest) (*models.Proyecto, error) {
	proyecto, err := s.proyectoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.ErrProyectoNotFound
	}

	fechaInicio := proyecto.FechaInicio
	if req.FechaInicio != nil {
		fechaInicio = req.FechaInicio
	}
	fechaFin := proyecto.FechaFin
	if req.FechaFin != nil {
		fechaFin = req.FechaFin
	}
	if err := validateDateRange(fechaInicio, fechaFin); err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		proyecto.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		proyecto.Descripcion = req.Descripcion
	}
	if req.Financiador != nil {
		proyecto.Financiador = req.Financiador
	}
	if req.Presupuesto != nil {
		proyecto.Presupuesto = req.Presupuesto
	}
	proyecto.FechaInicio = fechaInicio
	proyecto.FechaFin = fechaFin
	proyecto.UpdatedAt = time.Now().UTC()

	if err := s.proyectoRepo.Update(ctx, proyecto); err != nil {
		return nil, err
	}

	return proyecto, nil
}

// DeleteProyecto removes a project and all of its staff assignments
func (s *ProyectoService) DeleteProyecto(ctx context.Context, id int64) error {
	exists, err := s.proyectoRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrProyectoNotFound
	}

	return s.proyectoRepo.DeleteWithAsignaciones(ctx, id)
}

// AsignarPersonal links a batch of directory entries to a project and
// returns the complete assignment set afterwards. Assigning an existing pair
// updates its rol in place.
func (s *ProyectoService) AsignarPersonal(ctx context.Context, proyectoID int64, req *dto.AsignarPersonalRequest) ([]*models.PersonalProyecto, error) {
	exists, err := s.proyectoRepo.Exists(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrProyectoNotFound
	}

	now := time.Now().UTC()
	edges := make([]*models.PersonalProyecto, 0, len(req.Items))
	for _, item := range req.Items {
		if item.PersonalID == nil {
			return nil, apperrors.ErrMissingPersonalID
		}

		ok, err := s.personalRepo.Exists(ctx, *item.PersonalID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrPersonalNotFound
		}

		rol := item.Rol
		if rol == nil {
			defaultRol := DefaultRol
			rol = &defaultRol
		}

		edges = append(edges, &models.PersonalProyecto{
			PersonalID: *item.PersonalID,
			ProyectoID: proyectoID,
			Rol:        rol,
			CreatedAt:  now,
		})
	}

	if err := s.edgeRepo.UpsertBatch(ctx, edges); err != nil {
		return nil, err
	}

	return s.edgeRepo.ListByProyecto(ctx, proyectoID)
}

// ReemplazarPersonal replaces the entire assignment set of a project. Every
// new member is validated before the old set is touched, so a failed request
// leaves the existing assignments intact.
func (s *ProyectoService) ReemplazarPersonal(ctx context.Context, proyectoID int64, req *dto.ReemplazarPersonalRequest) ([]*models.PersonalProyecto, error) {
	exists, err := s.proyectoRepo.Exists(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrProyectoNotFound
	}

	edges := make([]*models.PersonalProyecto, 0, len(req.Items))
	for _, item := range req.Items {
		if item.PersonalID == nil {
			return nil, apperrors.ErrMissingPersonalID
		}

		ok, err := s.personalRepo.Exists(ctx, *item.PersonalID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrPersonalNotFound
		}

		rol := item.Rol
		if rol == nil {
			defaultRol := DefaultRol
			rol = &defaultRol
		}

		edges = append(edges, &models.PersonalProyecto{
			PersonalID: *item.PersonalID,
			ProyectoID: proyectoID,
			Rol:        rol,
		})
	}

	if err := s.edgeRepo.ReplaceForProyecto(ctx, proyectoID, edges, time.Now().UTC()); err != nil {
		return nil, err
	}

	return s.edgeRepo.ListByProyecto(ctx, proyectoID)
}

// ListPersonalDeProyecto retrieves the assignment edges of a project. An
// unknown project yields an empty list, not an error.
func (s *ProyectoService) ListPersonalDeProyecto(ctx context.Context, proyectoID int64) ([]*models.PersonalProyecto, error) {
	return s.edgeRepo.ListByProyecto(ctx, proyectoID)
}
