package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// ActividadRepository handles database operations for actividades
type ActividadRepository struct {
	db *db.PostgresDB
}

// NewActividadRepository creates a new actividad repository
func NewActividadRepository(database *db.PostgresDB) *ActividadRepository {
	return &ActividadRepository{db: database}
}

// Create inserts a new actividad and fills in its assigned id
func (r *ActividadRepository) Create(ctx context.Context, actividad *models.Actividad) error {
	query := `
		INSERT INTO actividades (tipo, descripcion, fecha, resultado_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		actividad.Tipo, actividad.Descripcion, actividad.Fecha, actividad.ResultadoURL,
		actividad.CreatedAt, actividad.UpdatedAt,
	).Scan(&actividad.ID)
	if err != nil {
		return fmt.Errorf("error creating actividad: %w", err)
	}

	return nil
}

// GetByID retrieves an actividad by ID; returns (nil, nil) when absent
func (r *ActividadRepository) GetByID(ctx context.Context, id int64) (*models.Actividad, error) {
	query := `
		SELECT id, tipo, descripcion, fecha, resultado_url, created_at, updated_at
		FROM actividades
		WHERE id = $1
	`

	var actividad models.Actividad
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&actividad.ID,
		&actividad.Tipo,
		&actividad.Descripcion,
		&actividad.Fecha,
		&actividad.ResultadoURL,
		&actividad.CreatedAt,
		&actividad.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving actividad: %w", err)
	}

	return &actividad, nil
}

// GetAll retrieves actividades, optionally filtered by tipo, newest first
func (r *ActividadRepository) GetAll(ctx context.Context, tipo *string, offset, limit int) ([]*models.Actividad, error) {
	builder := sq.Select("id", "tipo", "descripcion", "fecha", "resultado_url", "created_at", "updated_at").
		From("actividades").
		OrderBy("fecha DESC NULLS LAST", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if tipo != nil {
		builder = builder.Where(sq.Eq{"tipo": *tipo})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building actividades query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actividades []*models.Actividad
	for rows.Next() {
		var actividad models.Actividad
		if err := rows.Scan(
			&actividad.ID,
			&actividad.Tipo,
			&actividad.Descripcion,
			&actividad.Fecha,
			&actividad.ResultadoURL,
			&actividad.CreatedAt,
			&actividad.UpdatedAt,
		); err != nil {
			return nil, err
		}
		actividades = append(actividades, &actividad)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actividades, nil
}

// Update persists all mutable fields of an existing actividad
func (r *ActividadRepository) Update(ctx context.Context, actividad *models.Actividad) error {
	query := `
		UPDATE actividades
		SET tipo = $1, descripcion = $2, fecha = $3, resultado_url = $4, updated_at = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		actividad.Tipo, actividad.Descripcion, actividad.Fecha, actividad.ResultadoURL,
		actividad.UpdatedAt, actividad.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating actividad: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// DeleteWithVinculos removes an actividad and its equipamiento edges in a
// single transaction.
func (r *ActividadRepository) DeleteWithVinculos(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM equipamiento_actividad WHERE actividad_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting vinculos of actividad: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM actividades WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting actividad: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNoRowsAffected
		}

		return nil
	})
}

// Exists checks whether an actividad row exists
func (r *ActividadRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM actividades WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking actividad existence: %w", err)
	}
	return exists, nil
}
