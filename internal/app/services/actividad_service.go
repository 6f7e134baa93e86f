package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

// ActividadRepository is the persistence surface the activity log needs
type ActividadRepository interface {
	Create(ctx context.Context, actividad *models.Actividad) error
	GetByID(ctx context.Context, id int64) (*models.Actividad, error)
	GetAll(ctx context.Context, tipo *string, offset, limit int) ([]*models.Actividad, error)
	Update(ctx context.Context, actividad *models.Actividad) error
	DeleteWithVinculos(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// EquipamientoActividadLinker manages the actividad side of equipment edges
type EquipamientoActividadLinker interface {
	LinkBatch(ctx context.Context, edges []*models.EquipamientoActividad, now time.Time) error
	ListByActividad(ctx context.Context, actividadID int64) ([]*models.EquipamientoActividad, error)
	ListByEquipamiento(ctx context.Context, equipamientoID int64) ([]*models.EquipamientoActividad, error)
	Unlink(ctx context.Context, equipamientoID, actividadID int64) error
}

// ActividadService manages the log of activities performed with lab equipment
type ActividadService struct {
	actividadRepo    ActividadRepository
	equipamientoRepo EquipamientoExistenceChecker
	edgeRepo         EquipamientoActividadLinker
}

// NewActividadService creates a new activity log service
func NewActividadService(actividadRepo ActividadRepository, equipamientoRepo EquipamientoExistenceChecker, edgeRepo EquipamientoActividadLinker) *ActividadService {
	return &ActividadService{
		actividadRepo:    actividadRepo,
		equipamientoRepo: equipamientoRepo,
		edgeRepo:         edgeRepo,
	}
}

// CreateActividad registers a new activity
func (s *ActividadService) CreateActividad(ctx context.Context, req *dto.CreateActividadRequest) (*models.Actividad, error) {
	now := time.Now().UTC()
	actividad := &models.Actividad{
		Tipo:         req.Tipo,
		Descripcion:  req.Descripcion,
		Fecha:        req.Fecha,
		ResultadoURL: req.ResultadoURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.actividadRepo.Create(ctx, actividad); err != nil {
		return nil, err
	}

	return actividad, nil
}

// GetActividad retrieves an activity by ID
func (s *ActividadService) GetActividad(ctx context.Context, id int64) (*models.Actividad, error) {
	actividad, err := s.actividadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, apperrors.ErrActividadNotFound
	}
	return actividad, nil
}

// ListActividades retrieves activities, optionally filtered by tipo
func (s *ActividadService) ListActividades(ctx context.Context, tipo *string, offset, limit int) ([]*models.Actividad, error) {
	return s.actividadRepo.GetAll(ctx, tipo, offset, limit)
}

// UpdateActividad applies a partial update to an activity
func (s *ActividadService) UpdateActividad(ctx context.Context, id int64, req *dto.UpdateActividadRequest) (*models.Actividad, error) {
	actividad, err := s.actividadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, apperrors.ErrActividadNotFound
	}

	if req.Tipo != nil {
		actividad.Tipo = req.Tipo
	}
	if req.Descripcion != nil {
		actividad.Descripcion = req.Descripcion
	}
	if req.Fecha != nil {
		actividad.Fecha = req.Fecha
	}
	if req.ResultadoURL != nil {
		actividad.ResultadoURL = req.ResultadoURL
	}
	actividad.UpdatedAt = time.Now().UTC()

	if err := s.actividadRepo.Update(ctx, actividad); err != nil {
		return nil, err
	}

	return actividad, nil
}

// DeleteActividad removes an activity and its equipment edges
func (s *ActividadService) DeleteActividad(ctx context.Context, id int64) error {
	exists, err := s.actividadRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrActividadNotFound
	}

	return s.actividadRepo.DeleteWithVinculos(ctx, id)
}

// VincularEquipamientos links an activity to a batch of equipment and
// returns the resulting edge set. Existing pairs are skipped.
func (s *ActividadService) VincularEquipamientos(ctx context.Context, actividadID int64, req *dto.VincularEquipamientosRequest) ([]*models.EquipamientoActividad, error) {
	exists, err := s.actividadRepo.Exists(ctx, actividadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrActividadNotFound
	}

	edges := make([]*models.EquipamientoActividad, 0, len(req.EquipamientoIDs))
	for _, equipamientoID := range req.EquipamientoIDs {
		ok, err := s.equipamientoRepo.Exists(ctx, equipamientoID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrEquipamientoNotFound
		}

		edges = append(edges, &models.EquipamientoActividad{
			EquipamientoID: equipamientoID,
			ActividadID:    actividadID,
		})
	}

	if err := s.edgeRepo.LinkBatch(ctx, edges, time.Now().UTC()); err != nil {
		return nil, err
	}

	return s.edgeRepo.ListByActividad(ctx, actividadID)
}

// DesvincularEquipamiento removes a single equipment edge from an activity
func (s *ActividadService) DesvincularEquipamiento(ctx context.Context, actividadID, equipamientoID int64) error {
	exists, err := s.actividadRepo.Exists(ctx, actividadID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrActividadNotFound
	}

	edges, err := s.edgeRepo.ListByActividad(ctx, actividadID)
	if err != nil {
		return err
	}
	linked := false
	for _, edge := range edges {
		if edge.EquipamientoID == equipamientoID {
			linked = true
			break
		}
	}
	if !linked {
		return apperrors.NewResourceNotFoundError("el equipamiento no está vinculado a la actividad")
	}

	return s.edgeRepo.Unlink(ctx, equipamientoID, actividadID)
}

// ListEquipamientosDeActividad retrieves the equipment edges of an activity.
// Unknown activities yield an empty list, not an error.
func (s *ActividadService) ListEquipamientosDeActividad(ctx context.Context, actividadID int64) ([]*models.EquipamientoActividad, error) {
	return s.edgeRepo.ListByActividad(ctx, actividadID)
}

// ListActividadesDeEquipamiento retrieves the activity edges of a piece of
// equipment. Unknown equipment yields an empty list, not an error.
func (s *ActividadService) ListActividadesDeEquipamiento(ctx context.Context, equipamientoID int64) ([]*models.EquipamientoActividad, error) {
	return s.edgeRepo.ListByEquipamiento(ctx, equipamientoID)
}
