// Package services implements the business rules of the department site.
// Services validate before mutating, map missing rows to domain errors and
// leave persistence details to the repositories.
package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

// CarreraRepository is the persistence surface the academic service needs
// for carreras.
type CarreraRepository interface {
	Create(ctx context.Context, carrera *models.Carrera) error
	GetByID(ctx context.Context, id int64) (*models.Carrera, error)
	GetAll(ctx context.Context, offset, limit int) ([]*models.Carrera, error)
	Update(ctx context.Context, carrera *models.Carrera) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// MateriaRepository is the persistence surface the academic service needs
// for materias.
type MateriaRepository interface {
	Create(ctx context.Context, materia *models.Materia) error
	GetByID(ctx context.Context, id int64) (*models.Materia, error)
	GetAll(ctx context.Context, carreraID *int64, semestre *int, offset, limit int) ([]*models.Materia, error)
	Update(ctx context.Context, materia *models.Materia) error
	DeleteWithRequisitos(ctx context.Context, id int64) error
	CountByCarrera(ctx context.Context, carreraID int64) (int, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// RequisitoRepository is the persistence surface the academic service needs
// for course-graph edges.
type RequisitoRepository interface {
	Create(ctx context.Context, requisito *models.Requisito) error
	GetByID(ctx context.Context, id int64) (*models.Requisito, error)
	GetByPair(ctx context.Context, idMateria, idMateriaRequisito int64) (*models.Requisito, error)
	GetAll(ctx context.Context, materiaID *int64, offset, limit int) ([]*models.Requisito, error)
	Update(ctx context.Context, requisito *models.Requisito) error
	Delete(ctx context.Context, id int64) error
}

// AcademicoService manages the course catalog: carreras, materias and the
// requisito graph between materias.
type AcademicoService struct {
	carreraRepo   CarreraRepository
	materiaRepo   MateriaRepository
	requisitoRepo RequisitoRepository
}

// NewAcademicoService creates a new academic catalog service
func NewAcademicoService(carreraRepo CarreraRepository, materiaRepo MateriaRepository, requisitoRepo RequisitoRepository) *AcademicoService {
	return &AcademicoService{
		carreraRepo:   carreraRepo,
		materiaRepo:   materiaRepo,
		requisitoRepo: requisitoRepo,
	}
}

// CreateCarrera registers a new degree program
func (s *AcademicoService) CreateCarrera(ctx context.Context, req *dto.CreateCarreraRequest) (*models.Carrera, error) {
	now := time.Now().UTC()
	carrera := &models.Carrera{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		TituloOtorgado: req.TituloOtorgado,
		DuracionAnios:  req.DuracionAnios,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.carreraRepo.Create(ctx, carrera); err != nil {
		return nil, err
	}

	return carrera, nil
}

// GetCarrera retrieves a carrera by ID
func (s *AcademicoService) GetCarrera(ctx context.Context, id int64) (*models.Carrera, error) {
	carrera, err := s.carreraRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if carrera == nil {
		return nil, apperrors.ErrCarreraNotFound
	}
	return carrera, nil
}

// ListCarreras retrieves carreras with pagination
func (s *AcademicoService) ListCarreras(ctx context.Context, offset, limit int) ([]*models.Carrera, error) {
	return s.carreraRepo.GetAll(ctx, offset, limit)
}

// UpdateCarrera applies a partial update to a carrera
func (s *AcademicoService) UpdateCarrera(ctx context.Context, id int64, req *dto.UpdateCarreraRequest) (*models.Carrera, error) {
	carrera, err := s.carreraRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if carrera == nil {
		return nil, apperrors.ErrCarreraNotFound
	}

	if req.Nombre != nil {
		carrera.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		carrera.Descripcion = req.Descripcion
	}
	if req.TituloOtorgado != nil {
		carrera.TituloOtorgado = req.TituloOtorgado
	}
	if req.DuracionAnios != nil {
		carrera.DuracionAnios = req.DuracionAnios
	}
	carrera.UpdatedAt = time.Now().UTC()

	if err := s.carreraRepo.Update(ctx, carrera); err != nil {
		return nil, err
	}

	return carrera, nil
}

// DeleteCarrera removes a carrera. A carrera that still has materias cannot
// be deleted.
func (s *AcademicoService) DeleteCarrera(ctx context.Context, id int64) error {
	exists, err := s.carreraRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCarreraNotFound
	}

	count, err := s.materiaRepo.CountByCarrera(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflictError("la carrera tiene materias asociadas")
	}

	return s.carreraRepo.Delete(ctx, id)
}

// CreateMateria registers a new course inside an existing carrera
func (s *AcademicoService) CreateMateria(ctx context.Context, req *dto.CreateMateriaRequest) (*models.Materia, error) {
	exists, err := s.carreraRepo.Exists(ctx, req.IDCarrera)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCarreraNotFound
	}

	now := time.Now().UTC()
	materia := &models.Materia{
		Nombre:         req.Nombre,
		Codigo:         req.Codigo,
		Descripcion:    req.Descripcion,
		Semestre:       req.Semestre,
		Creditos:       req.Creditos,
		ProgramaPDFURL: req.ProgramaPDFURL,
		IDCarrera:      req.IDCarrera,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.materiaRepo.Create(ctx, materia); err != nil {
		return nil, err
	}

	return materia, nil
}

// GetMateria retrieves a materia by ID
func (s *AcademicoService) GetMateria(ctx context.Context, id int64) (*models.Materia, error) {
	materia, err := s.materiaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if materia == nil {
		return nil, apperrors.ErrMateriaNotFound
	}
	return materia, nil
}

// ListMaterias retrieves materias, optionally filtered by carrera and semestre
func (s *AcademicoService) ListMaterias(ctx context.Context, carreraID *int64, semestre *int, offset, limit int) ([]*models.Materia, error) {
	return s.materiaRepo.GetAll(ctx, carreraID, semestre, offset, limit)
}

// UpdateMateria applies a partial update to a materia. A new carrera
// reference is validated for existence.
func (s *AcademicoService) UpdateMateria(ctx context.Context, id int64, req *dto.UpdateMateriaRequest) (*models.Materia, error) {
	materia, err := s.materiaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if materia == nil {
		return nil, apperrors.ErrMateriaNotFound
	}

	if req.IDCarrera != nil {
		exists, err := s.carreraRepo.Exists(ctx, *req.IDCarrera)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrCarreraNotFound
		}
		materia.IDCarrera = *req.IDCarrera
	}

	if req.Nombre != nil {
		materia.Nombre = *req.Nombre
	}
	if req.Codigo != nil {
		materia.Codigo = *req.Codigo
	}
	if req.Descripcion != nil {
		materia.Descripcion = req.Descripcion
	}
	if req.Semestre != nil {
		materia.Semestre = *req.Semestre
	}
	if req.Creditos != nil {
		materia.Creditos = req.Creditos
	}
	if req.ProgramaPDFURL != nil {
		materia.ProgramaPDFURL = req.ProgramaPDFURL
	}
	materia.UpdatedAt = time.Now().UTC()

	if err := s.materiaRepo.Update(ctx, materia); err != nil {
		return nil, err
	}

	return materia, nil
}

// DeleteMateria removes a materia together with every requisito edge that
// references it, on either side of the relation.
func (s *AcademicoService) DeleteMateria(ctx context.Context, id int64) error {
	exists, err := s.materiaRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrMateriaNotFound
	}

	return s.materiaRepo.DeleteWithRequisitos(ctx, id)
}

// CreateRequisito adds a directed edge to the course graph. Self-loops are
// rejected, both endpoints must exist and the ordered pair must not already
// carry an edge. Cycles across multiple edges are not checked.
func (s *AcademicoService) CreateRequisito(ctx context.Context, req *dto.CreateRequisitoRequest) (*models.Requisito, error) {
	tipo := req.Tipo
	if tipo == "" {
		tipo = models.TipoPrerequisito
	}
	if !tipo.IsValid() {
		return nil, apperrors.NewValidationError("tipo de requisito desconocido: " + string(tipo))
	}

	if req.IDMateria == req.IDMateriaRequisito {
		return nil, apperrors.ErrRequisitoSelfLoop
	}

	for _, materiaID := range []int64{req.IDMateria, req.IDMateriaRequisito} {
		exists, err := s.materiaRepo.Exists(ctx, materiaID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrMateriaNotFound
		}
	}

	existing, err := s.requisitoRepo.GetByPair(ctx, req.IDMateria, req.IDMateriaRequisito)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrRequisitoAlreadyExists
	}

	now := time.Now().UTC()
	requisito := &models.Requisito{
		IDMateria:          req.IDMateria,
		IDMateriaRequisito: req.IDMateriaRequisito,
		Tipo:               tipo,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.requisitoRepo.Create(ctx, requisito); err != nil {
		return nil, err
	}

	return requisito, nil
}

// GetRequisito retrieves an edge by ID
func (s *AcademicoService) GetRequisito(ctx context.Context, id int64) (*models.Requisito, error) {
	requisito, err := s.requisitoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requisito == nil {
		return nil, apperrors.ErrRequisitoNotFound
	}
	return requisito, nil
}

// ListRequisitos retrieves edges, optionally restricted to those of one materia
func (s *AcademicoService) ListRequisitos(ctx context.Context, materiaID *int64, offset, limit int) ([]*models.Requisito, error) {
	return s.requisitoRepo.GetAll(ctx, materiaID, offset, limit)
}

// UpdateRequisito applies a partial update to an edge. Endpoint fields in
// the patch are validated for existence, and the self-loop check runs over
// the effective endpoints after the patch.
func (s *AcademicoService) UpdateRequisito(ctx context.Context, id int64, req *dto.UpdateRequisitoRequest) (*models.Requisito, error) {
	requisito, err := s.requisitoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requisito == nil {
		return nil, apperrors.ErrRequisitoNotFound
	}

	idMateria := requisito.IDMateria
	if req.IDMateria != nil {
		idMateria = *req.IDMateria
	}
	idMateriaRequisito := requisito.IDMateriaRequisito
	if req.IDMateriaRequisito != nil {
		idMateriaRequisito = *req.IDMateriaRequisito
	}

	if idMateria == idMateriaRequisito {
		return nil, apperrors.ErrRequisitoSelfLoop
	}

	if req.IDMateria != nil {
		exists, err := s.materiaRepo.Exists(ctx, *req.IDMateria)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrMateriaNotFound
		}
	}
	if req.IDMateriaRequisito != nil {
		exists, err := s.materiaRepo.Exists(ctx, *req.IDMateriaRequisito)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrMateriaNotFound
		}
	}

	if req.Tipo != nil {
		if !req.Tipo.IsValid() {
			return nil, apperrors.NewValidationError("tipo de requisito desconocido: " + string(*req.Tipo))
		}
		requisito.Tipo = *req.Tipo
	}

	requisito.IDMateria = idMateria
	requisito.IDMateriaRequisito = idMateriaRequisito
	requisito.UpdatedAt = time.Now().UTC()

	if err := s.requisitoRepo.Update(ctx, requisito); err != nil {
		return nil, err
	}

	return requisito, nil
}

// DeleteRequisito removes an edge from the course graph
func (s *AcademicoService) DeleteRequisito(ctx context.Context, id int64) error {
	requisito, err := s.requisitoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if requisito == nil {
		return apperrors.ErrRequisitoNotFound
	}

	return s.requisitoRepo.Delete(ctx, id)
}
