package services

import (
	"context"
	"io"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
	"github.com/grupoidi/deptoweb/internal/pkg/filestorage"
	"github.com/grupoidi/deptoweb/internal/pkg/logger"
)

// MaxFileSize caps uploads at 50 MiB
const MaxFileSize = 50 << 20

// ArchivoRepository is the persistence surface for uploaded file metadata
type ArchivoRepository interface {
	Create(ctx context.Context, archivo *models.Archivo) error
	GetByID(ctx context.Context, id int64) (*models.Archivo, error)
	GetAll(ctx context.Context, offset, limit int) ([]*models.Archivo, error)
	Delete(ctx context.Context, id int64) error
}

// ArchivoService manages file uploads: the blob goes to storage under an
// opaque key, the metadata to the database.
type ArchivoService struct {
	archivoRepo ArchivoRepository
	storage     filestorage.Storage
}

// NewArchivoService creates a new file upload service
func NewArchivoService(archivoRepo ArchivoRepository, storage filestorage.Storage) *ArchivoService {
	return &ArchivoService{
		archivoRepo: archivoRepo,
		storage:     storage,
	}
}

// Upload stores a file and records its metadata. The size is checked before
// anything touches disk.
func (s *ArchivoService) Upload(ctx context.Context, filename string, size int64, contentType *string, content io.Reader) (*models.Archivo, error) {
	if size > MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	key, err := s.storage.Save(filename, content)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	archivo := &models.Archivo{
		Nombre:      filename,
		Ruta:        key,
		Tipo:        contentType,
		Tamano:      &size,
		FechaSubida: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.archivoRepo.Create(ctx, archivo); err != nil {
		if cleanupErr := s.storage.Delete(key); cleanupErr != nil {
			logger.Error().Err(cleanupErr).Str("key", key).Msg("Failed to clean up blob after metadata error")
		}
		return nil, err
	}

	return archivo, nil
}

// GetArchivo retrieves file metadata by ID
func (s *ArchivoService) GetArchivo(ctx context.Context, id int64) (*models.Archivo, error) {
	archivo, err := s.archivoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if archivo == nil {
		return nil, apperrors.ErrArchivoNotFound
	}
	return archivo, nil
}

// ListArchivos retrieves file metadata newest first
func (s *ArchivoService) ListArchivos(ctx context.Context, offset, limit int) ([]*models.Archivo, error) {
	return s.archivoRepo.GetAll(ctx, offset, limit)
}

// Open returns a reader over the stored blob of a file
func (s *ArchivoService) Open(ctx context.Context, id int64) (*models.Archivo, io.ReadCloser, error) {
	archivo, err := s.GetArchivo(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storage.Open(archivo.Ruta)
	if err != nil {
		if err == filestorage.ErrFileNotFound {
			return nil, nil, apperrors.ErrArchivoNotFound
		}
		return nil, nil, err
	}

	return archivo, reader, nil
}

// DeleteArchivo removes a file. A blob that fails to delete is logged and
// the metadata row is removed anyway.
func (s *ArchivoService) DeleteArchivo(ctx context.Context, id int64) error {
	archivo, err := s.archivoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if archivo == nil {
		return apperrors.ErrArchivoNotFound
	}

	if err := s.storage.Delete(archivo.Ruta); err != nil {
		logger.Error().Err(err).Str("key", archivo.Ruta).Msg("Failed to delete blob, removing metadata anyway")
	}

	return s.archivoRepo.Delete(ctx, id)
}
