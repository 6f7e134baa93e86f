package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// ProyectoRepository handles database operations for proyectos
type ProyectoRepository struct {
	db *db.PostgresDB
}

// NewProyectoRepository creates a new proyecto repository
func NewProyectoRepository(database *db.PostgresDB) *ProyectoRepository {
	return &ProyectoRepository{db: database}
}

// Create inserts a new proyecto and fills in its assigned id
func (r *ProyectoRepository) Create(ctx context.Context, proyecto *models.Proyecto) error {
	query := `
		INSERT INTO proyectos (nombre, descripcion, fecha_inicio, fecha_fin, financiador, presupuesto, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		proyecto.Nombre, proyecto.Descripcion, proyecto.FechaInicio, proyecto.FechaFin,
		proyecto.Financiador, proyecto.Presupuesto, proyecto.CreatedAt, proyecto.UpdatedAt,
	).Scan(&proyecto.ID)
	if err != nil {
		return fmt.Errorf("error creating proyecto: %w", err)
	}

	return nil
}

// GetByID retrieves a proyecto by ID; returns (nil, nil) when absent
func (r *ProyectoRepository) GetByID(ctx context.Context, id int64) (*models.Proyecto, error) {
	query := `
		SELECT id, nombre, descripcion, fecha_inicio, fecha_fin, financiador, presupuesto, created_at, updated_at
		FROM proyectos
		WHERE id = $1
	`

	var proyecto models.Proyecto
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&proyecto.ID,
		&proyecto.Nombre,
		&proyecto.Descripcion,
		&proyecto.FechaInicio,
		&proyecto.FechaFin,
		&proyecto.Financiador,
		&proyecto.Presupuesto,
		&proyecto.CreatedAt,
		&proyecto.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving proyecto: %w", err)
	}

	return &proyecto, nil
}

// GetAll retrieves proyectos ordered by most recent start date first
func (r *ProyectoRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Proyecto, error) {
	query := `
		SELECT id, nombre, descripcion, fecha_inicio, fecha_fin, financiador, presupuesto, created_at, updated_at
		FROM proyectos
		ORDER BY fecha_inicio DESC NULLS LAST, id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proyectos []*models.Proyecto
	for rows.Next() {
		var proyecto models.Proyecto
		if err := rows.Scan(
			&proyecto.ID,
			&proyecto.Nombre,
			&proyecto.Descripcion,
			&proyecto.FechaInicio,
			&proyecto.FechaFin,
			&proyecto.Financiador,
			&proyecto.Presupuesto,
			&proyecto.CreatedAt,
			&proyecto.UpdatedAt,
		); err != nil {
			return nil, err
		}
		proyectos = append(proyectos, &proyecto)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return proyectos, nil
}

// Update persists all mutable fields of an existing proyecto
func (r *ProyectoRepository) Update(ctx context.Context, proyecto *models.Proyecto) error {
	query := `
		UPDATE proyectos
		SET nombre = $1, descripcion = $2, fecha_inicio = $3, fecha_fin = $4,
		    financiador = $5, presupuesto = $6, updated_at = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		proyecto.Nombre, proyecto.Descripcion, proyecto.FechaInicio, proyecto.FechaFin,
		proyecto.Financiador, proyecto.Presupuesto, proyecto.UpdatedAt, proyecto.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating proyecto: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// DeleteWithAsignaciones removes a proyecto and all of its personal
// memberships in a single transaction.
func (r *ProyectoRepository) DeleteWithAsignaciones(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM personal_proyecto WHERE proyecto_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting asignaciones of proyecto: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM proyectos WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting proyecto: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNoRowsAffected
		}

		return nil
	})
}

// Exists checks whether a proyecto row exists
func (r *ProyectoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM proyectos WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking proyecto existence: %w", err)
	}
	return exists, nil
}
