package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

// ServicioRepository is the persistence surface the service catalog needs
type ServicioRepository interface {
	CreateWithEquipamientos(ctx context.Context, servicio *models.Servicio, equipamientoIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Servicio, error)
	GetAll(ctx context.Context, offset, limit int) ([]*models.Servicio, error)
	Update(ctx context.Context, servicio *models.Servicio) error
	DeleteWithEquipamientos(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// EquipamientoExistenceChecker validates equipment references from other services
type EquipamientoExistenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ServicioEquipamientoEdges manages the servicio side of equipment edges
type ServicioEquipamientoEdges interface {
	ListByServicio(ctx context.Context, servicioID int64) ([]*models.ServicioEquipamiento, error)
	LinkBatch(ctx context.Context, edges []*models.ServicioEquipamiento, now time.Time) error
	Unlink(ctx context.Context, servicioID, equipamientoID int64) error
}

// ServicioService manages the catalog of services offered to third parties.
// A servicio exists only together with the equipment that backs it.
type ServicioService struct {
	servicioRepo     ServicioRepository
	equipamientoRepo EquipamientoExistenceChecker
	edgeRepo         ServicioEquipamientoEdges
}

// NewServicioService creates a new service catalog service
func NewServicioService(servicioRepo ServicioRepository, equipamientoRepo EquipamientoExistenceChecker, edgeRepo ServicioEquipamientoEdges) *ServicioService {
	return &ServicioService{
		servicioRepo:     servicioRepo,
		equipamientoRepo: equipamientoRepo,
		edgeRepo:         edgeRepo,
	}
}

// CreateServicio registers a servicio together with its backing equipment
// set, atomically. The set must be non-empty, the tarifa non-negative and
// every referenced equipamiento must exist.
func (s *ServicioService) CreateServicio(ctx context.Context, req *dto.CreateServicioRequest) (*models.Servicio, error) {
	if len(req.EquipamientoIDs) == 0 {
		return nil, apperrors.ErrEmptyEquipamientoSet
	}
	if req.Tarifa != nil && *req.Tarifa < 0 {
		return nil, apperrors.ErrNegativeTarifa
	}

	for _, equipamientoID := range req.EquipamientoIDs {
		exists, err := s.equipamientoRepo.Exists(ctx, equipamientoID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrEquipamientoNotFound
		}
	}

	now := time.Now().UTC()
	servicio := &models.Servicio{
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		PublicoObjetivo: req.PublicoObjetivo,
		Tarifa:          req.Tarifa,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.servicioRepo.CreateWithEquipamientos(ctx, servicio, req.EquipamientoIDs); err != nil {
		return nil, err
	}

	edges, err := s.edgeRepo.ListByServicio(ctx, servicio.ID)
	if err != nil {
		return nil, err
	}
	servicio.Equipamientos = edges

	return servicio, nil
}

// GetServicio retrieves a servicio with its equipment edges populated
func (s *ServicioService) GetServicio(ctx context.Context, id int64) (*models.Servicio, error) {
	servicio, err := s.servicioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, apperrors.ErrServicioNotFound
	}

	edges, err := s.edgeRepo.ListByServicio(ctx, id)
	if err != nil {
		return nil, err
	}
	servicio.Equipamientos = edges

	return servicio, nil
}

// ListServicios retrieves servicios with pagination
func (s *ServicioService) ListServicios(ctx context.Context, offset, limit int) ([]*models.Servicio, error) {
	return s.servicioRepo.GetAll(ctx, offset, limit)
}

// UpdateServicio applies a partial update to a servicio. The equipment set
// is not touched here.
func (s *ServicioService) UpdateServicio(ctx context.Context, id int64, req *dto.UpdateServicioRequest) (*models.Servicio, error) {
	servicio, err := s.servicioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, apperrors.ErrServicioNotFound
	}

	if req.Tarifa != nil {
		if *req.Tarifa < 0 {
			return nil, apperrors.ErrNegativeTarifa
		}
		servicio.Tarifa = req.Tarifa
	}

	if req.Nombre != nil {
		servicio.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		servicio.Descripcion = req.Descripcion
	}
	if req.PublicoObjetivo != nil {
		servicio.PublicoObjetivo = req.PublicoObjetivo
	}
	servicio.UpdatedAt = time.Now().UTC()

	if err := s.servicioRepo.Update(ctx, servicio); err != nil {
		return nil, err
	}

	return servicio, nil
}

// AgregarEquipamientos links a batch of equipment to a servicio and returns
// the complete edge set afterwards. Existing pairs are skipped.
func (s *ServicioService) AgregarEquipamientos(ctx context.Context, servicioID int64, req *dto.VincularEquipamientosRequest) ([]*models.ServicioEquipamiento, error) {
	exists, err := s.servicioRepo.Exists(ctx, servicioID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrServicioNotFound
	}

	edges := make([]*models.ServicioEquipamiento, 0, len(req.EquipamientoIDs))
	for _, equipamientoID := range req.EquipamientoIDs {
		ok, err := s.equipamientoRepo.Exists(ctx, equipamientoID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrEquipamientoNotFound
		}

		edges = append(edges, &models.ServicioEquipamiento{
			ServicioID:     servicioID,
			EquipamientoID: equipamientoID,
		})
	}

	if err := s.edgeRepo.LinkBatch(ctx, edges, time.Now().UTC()); err != nil {
		return nil, err
	}

	return s.edgeRepo.ListByServicio(ctx, servicioID)
}

// QuitarEquipamiento removes a single equipment edge from a servicio. The
// non-empty equipment set is only enforced at creation time.
func (s *ServicioService) QuitarEquipamiento(ctx context.Context, servicioID, equipamientoID int64) error {
	exists, err := s.servicioRepo.Exists(ctx, servicioID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrServicioNotFound
	}

	edges, err := s.edgeRepo.ListByServicio(ctx, servicioID)
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
		return apperrors.NewResourceNotFoundError("el equipamiento no está vinculado al servicio")
	}

	return s.edgeRepo.Unlink(ctx, servicioID, equipamientoID)
}

// DeleteServicio removes a servicio and its equipment edges
func (s *ServicioService) DeleteServicio(ctx context.Context, id int64) error {
	exists, err := s.servicioRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrServicioNotFound
	}

	return s.servicioRepo.DeleteWithEquipamientos(ctx, id)
}
