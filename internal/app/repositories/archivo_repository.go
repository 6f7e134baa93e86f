package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// ArchivoRepository handles database operations for uploaded file metadata
type ArchivoRepository struct {
	db *db.PostgresDB
}

// NewArchivoRepository creates a new archivo repository
func NewArchivoRepository(database *db.PostgresDB) *ArchivoRepository {
	return &ArchivoRepository{db: database}
}

// Create inserts a new archivo record and fills in its assigned id
func (r *ArchivoRepository) Create(ctx context.Context, archivo *models.Archivo) error {
	query := `
		INSERT INTO archivos (nombre, ruta, tipo, tamano, fecha_subida, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		archivo.Nombre, archivo.Ruta, archivo.Tipo, archivo.Tamano,
		archivo.FechaSubida, archivo.CreatedAt, archivo.UpdatedAt,
	).Scan(&archivo.ID)
	if err != nil {
		return fmt.Errorf("error creating archivo: %w", err)
	}

	return nil
}

// GetByID retrieves an archivo by ID; returns (nil, nil) when absent
func (r *ArchivoRepository) GetByID(ctx context.Context, id int64) (*models.Archivo, error) {
	query := `
		SELECT id, nombre, ruta, tipo, tamano, fecha_subida, created_at, updated_at
		FROM archivos
		WHERE id = $1
	`

	var archivo models.Archivo
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&archivo.ID,
		&archivo.Nombre,
		&archivo.Ruta,
		&archivo.Tipo,
		&archivo.Tamano,
		&archivo.FechaSubida,
		&archivo.CreatedAt,
		&archivo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving archivo: %w", err)
	}

	return &archivo, nil
}

// GetAll retrieves archivos newest first
func (r *ArchivoRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Archivo, error) {
	query := `
		SELECT id, nombre, ruta, tipo, tamano, fecha_subida, created_at, updated_at
		FROM archivos
		ORDER BY fecha_subida DESC, id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var archivos []*models.Archivo
	for rows.Next() {
		var archivo models.Archivo
		if err := rows.Scan(
			&archivo.ID,
			&archivo.Nombre,
			&archivo.Ruta,
			&archivo.Tipo,
			&archivo.Tamano,
			&archivo.FechaSubida,
			&archivo.CreatedAt,
			&archivo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		archivos = append(archivos, &archivo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return archivos, nil
}

// Delete removes an archivo record by ID
func (r *ArchivoRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM archivos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting archivo: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
