package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

// EquipamientoRepository is the persistence surface the equipment registry needs
type EquipamientoRepository interface {
	Create(ctx context.Context, equipamiento *models.Equipamiento) error
	GetByID(ctx context.Context, id int64) (*models.Equipamiento, error)
	GetAll(ctx context.Context, estado *string, offset, limit int) ([]*models.Equipamiento, error)
	Update(ctx context.Context, equipamiento *models.Equipamiento) error
	Delete(ctx context.Context, id int64) error
	CountLinks(ctx context.Context, id int64) (int, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// ServicioExistenceChecker validates servicio references from other services
type ServicioExistenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ServicioEquipamientoLinker manages the servicio side of equipment edges
type ServicioEquipamientoLinker interface {
	LinkBatch(ctx context.Context, edges []*models.ServicioEquipamiento, now time.Time) error
	ListServiciosDeEquipamiento(ctx context.Context, equipamientoID int64) ([]*dto.ServicioDeEquipamiento, error)
}

// EquipamientoService manages the lab equipment registry
type EquipamientoService struct {
	equipamientoRepo EquipamientoRepository
	servicioRepo     ServicioExistenceChecker
	servicioEdges    ServicioEquipamientoLinker
}

// NewEquipamientoService creates a new equipment registry service
func NewEquipamientoService(equipamientoRepo EquipamientoRepository, servicioRepo ServicioExistenceChecker, servicioEdges ServicioEquipamientoLinker) *EquipamientoService {
	return &EquipamientoService{
		equipamientoRepo: equipamientoRepo,
		servicioRepo:     servicioRepo,
		servicioEdges:    servicioEdges,
	}
}

// CreateEquipamiento registers a new piece of equipment
func (s *EquipamientoService) CreateEquipamiento(ctx context.Context, req *dto.CreateEquipamientoRequest) (*models.Equipamiento, error) {
	now := time.Now().UTC()
	equipamiento := &models.Equipamiento{
		Nombre:                  req.Nombre,
		Marca:                   req.Marca,
		Modelo:                  req.Modelo,
		NSerie:                  req.NSerie,
		HojaEspecificacionesURL: req.HojaEspecificacionesURL,
		FechaAdquisicion:        req.FechaAdquisicion,
		Estado:                  req.Estado,
		Ubicacion:               req.Ubicacion,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := s.equipamientoRepo.Create(ctx, equipamiento); err != nil {
		return nil, err
	}

	return equipamiento, nil
}

// GetEquipamiento retrieves a piece of equipment by ID
func (s *EquipamientoService) GetEquipamiento(ctx context.Context, id int64) (*models.Equipamiento, error) {
	equipamiento, err := s.equipamientoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipamiento == nil {
		return nil, apperrors.ErrEquipamientoNotFound
	}
	return equipamiento, nil
}

// ListEquipamientos retrieves equipment, optionally filtered by estado
func (s *EquipamientoService) ListEquipamientos(ctx context.Context, estado *string, offset, limit int) ([]*models.Equipamiento, error) {
	return s.equipamientoRepo.GetAll(ctx, estado, offset, limit)
}

// UpdateEquipamiento applies a partial update to a piece of equipment
func (s *EquipamientoService) UpdateEquipamiento(ctx context.Context, id int64, req *dto.UpdateEquipamientoRequest) (*models.Equipamiento, error) {
	equipamiento, err := s.equipamientoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipamiento == nil {
		return nil, apperrors.ErrEquipamientoNotFound
	}

	if req.Nombre != nil {
		equipamiento.Nombre = *req.Nombre
	}
	if req.Marca != nil {
		equipamiento.Marca = req.Marca
	}
	if req.Modelo != nil {
		equipamiento.Modelo = req.Modelo
	}
	if req.NSerie != nil {
		equipamiento.NSerie = req.NSerie
	}
	if req.HojaEspecificacionesURL != nil {
		equipamiento.HojaEspecificacionesURL = req.HojaEspecificacionesURL
	}
	if req.FechaAdquisicion != nil {
		equipamiento.FechaAdquisicion = req.FechaAdquisicion
	}
	if req.Estado != nil {
		equipamiento.Estado = req.Estado
	}
	if req.Ubicacion != nil {
		equipamiento.Ubicacion = req.Ubicacion
	}
	equipamiento.UpdatedAt = time.Now().UTC()

	if err := s.equipamientoRepo.Update(ctx, equipamiento); err != nil {
		return nil, err
	}

	return equipamiento, nil
}

// DeleteEquipamiento removes a piece of equipment. Equipment still
// referenced by an actividad or a servicio cannot be deleted.
func (s *EquipamientoService) DeleteEquipamiento(ctx context.Context, id int64) error {
	exists, err := s.equipamientoRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrEquipamientoNotFound
	}

	links, err := s.equipamientoRepo.CountLinks(ctx, id)
	if err != nil {
		return err
	}
	if links > 0 {
		return apperrors.ErrEquipamientoInUse
	}

	return s.equipamientoRepo.Delete(ctx, id)
}

// AsignarServicios links a piece of equipment to a batch of servicios and
// returns the resulting servicio list. Existing pairs are skipped.
func (s *EquipamientoService) AsignarServicios(ctx context.Context, equipamientoID int64, req *dto.AsignarServiciosRequest) ([]*dto.ServicioDeEquipamiento, error) {
	exists, err := s.equipamientoRepo.Exists(ctx, equipamientoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrEquipamientoNotFound
	}

	edges := make([]*models.ServicioEquipamiento, 0, len(req.ServicioIDs))
	for _, servicioID := range req.ServicioIDs {
		ok, err := s.servicioRepo.Exists(ctx, servicioID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrServicioNotFound
		}

		edges = append(edges, &models.ServicioEquipamiento{
			ServicioID:     servicioID,
			EquipamientoID: equipamientoID,
		})
	}

	if err := s.servicioEdges.LinkBatch(ctx, edges, time.Now().UTC()); err != nil {
		return nil, err
	}

	return s.servicioEdges.ListServiciosDeEquipamiento(ctx, equipamientoID)
}

// ListServiciosDeEquipamiento retrieves the servicios backed by a piece of
// equipment. Unknown equipment yields an empty list, not an error.
func (s *EquipamientoService) ListServiciosDeEquipamiento(ctx context.Context, equipamientoID int64) ([]*dto.ServicioDeEquipamiento, error) {
	return s.servicioEdges.ListServiciosDeEquipamiento(ctx, equipamientoID)
}
