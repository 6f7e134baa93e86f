package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// CarreraRepository handles database operations for carreras
type CarreraRepository struct {
	db *db.PostgresDB
}

// NewCarreraRepository creates a new carrera repository
func NewCarreraRepository(database *db.PostgresDB) *CarreraRepository {
	return &CarreraRepository{db: database}
}

// Create inserts a new carrera and fills in its assigned id
func (r *CarreraRepository) Create(ctx context.Context, carrera *models.Carrera) error {
	query := `
		INSERT INTO carreras (nombre, descripcion, titulo_otorgado, duracion_anios, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		carrera.Nombre, carrera.Descripcion, carrera.TituloOtorgado, carrera.DuracionAnios,
		carrera.CreatedAt, carrera.UpdatedAt,
	).Scan(&carrera.ID)
	if err != nil {
		return fmt.Errorf("error creating carrera: %w", err)
	}

	return nil
}

// GetByID retrieves a carrera by ID; returns (nil, nil) when absent
func (r *CarreraRepository) GetByID(ctx context.Context, id int64) (*models.Carrera, error) {
	query := `
		SELECT id, nombre, descripcion, titulo_otorgado, duracion_anios, created_at, updated_at
		FROM carreras
		WHERE id = $1
	`

	var carrera models.Carrera
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&carrera.ID,
		&carrera.Nombre,
		&carrera.Descripcion,
		&carrera.TituloOtorgado,
		&carrera.DuracionAnios,
		&carrera.CreatedAt,
		&carrera.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving carrera: %w", err)
	}

	return &carrera, nil
}

// GetAll retrieves carreras with offset/limit pagination
func (r *CarreraRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Carrera, error) {
	query := `
		SELECT id, nombre, descripcion, titulo_otorgado, duracion_anios, created_at, updated_at
		FROM carreras
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carreras []*models.Carrera
	for rows.Next() {
		var carrera models.Carrera
		if err := rows.Scan(
			&carrera.ID,
			&carrera.Nombre,
			&carrera.Descripcion,
			&carrera.TituloOtorgado,
			&carrera.DuracionAnios,
			&carrera.CreatedAt,
			&carrera.UpdatedAt,
		); err != nil {
			return nil, err
		}
		carreras = append(carreras, &carrera)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return carreras, nil
}

// Update persists all mutable fields of an existing carrera
func (r *CarreraRepository) Update(ctx context.Context, carrera *models.Carrera) error {
	query := `
		UPDATE carreras
		SET nombre = $1, descripcion = $2, titulo_otorgado = $3, duracion_anios = $4, updated_at = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		carrera.Nombre, carrera.Descripcion, carrera.TituloOtorgado, carrera.DuracionAnios,
		carrera.UpdatedAt, carrera.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating carrera: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// Delete removes a carrera by ID
func (r *CarreraRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM carreras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting carrera: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// Exists checks whether a carrera row exists
func (r *CarreraRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM carreras WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking carrera existence: %w", err)
	}
	return exists, nil
}
