package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// ServicioRepository handles database operations for servicios
type ServicioRepository struct {
	db *db.PostgresDB
}

// NewServicioRepository creates a new servicio repository
func NewServicioRepository(database *db.PostgresDB) *ServicioRepository {
	return &ServicioRepository{db: database}
}

// CreateWithEquipamientos inserts a servicio together with its equipamiento
// edges in a single transaction and fills in the assigned id.
func (r *ServicioRepository) CreateWithEquipamientos(ctx context.Context, servicio *models.Servicio, equipamientoIDs []int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO servicios (nombre, descripcion, publico_objetivo, tarifa, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err := tx.QueryRow(ctx, query,
			servicio.Nombre, servicio.Descripcion, servicio.PublicoObjetivo, servicio.Tarifa,
			servicio.CreatedAt, servicio.UpdatedAt,
		).Scan(&servicio.ID)
		if err != nil {
			return fmt.Errorf("error creating servicio: %w", err)
		}

		edgeQuery := `
			INSERT INTO servicio_equipamiento (servicio_id, equipamiento_id, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (servicio_id, equipamiento_id) DO NOTHING
		`
		for _, equipamientoID := range equipamientoIDs {
			if _, err := tx.Exec(ctx, edgeQuery, servicio.ID, equipamientoID, servicio.CreatedAt); err != nil {
				return fmt.Errorf("error linking equipamiento to servicio: %w", err)
			}
		}

		return nil
	})
}

// GetByID retrieves a servicio by ID; returns (nil, nil) when absent
func (r *ServicioRepository) GetByID(ctx context.Context, id int64) (*models.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, publico_objetivo, tarifa, created_at, updated_at
		FROM servicios
		WHERE id = $1
	`

	var servicio models.Servicio
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&servicio.ID,
		&servicio.Nombre,
		&servicio.Descripcion,
		&servicio.PublicoObjetivo,
		&servicio.Tarifa,
		&servicio.CreatedAt,
		&servicio.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving servicio: %w", err)
	}

	return &servicio, nil
}

// GetAll retrieves servicios ordered by nombre
func (r *ServicioRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, publico_objetivo, tarifa, created_at, updated_at
		FROM servicios
		ORDER BY nombre
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servicios []*models.Servicio
	for rows.Next() {
		var servicio models.Servicio
		if err := rows.Scan(
			&servicio.ID,
			&servicio.Nombre,
			&servicio.Descripcion,
			&servicio.PublicoObjetivo,
			&servicio.Tarifa,
			&servicio.CreatedAt,
			&servicio.UpdatedAt,
		); err != nil {
			return nil, err
		}
		servicios = append(servicios, &servicio)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return servicios, nil
}

// Update persists all mutable fields of an existing servicio
func (r *ServicioRepository) Update(ctx context.Context, servicio *models.Servicio) error {
	query := `
		UPDATE servicios
		SET nombre = $1, descripcion = $2, publico_objetivo = $3, tarifa = $4, updated_at = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		servicio.Nombre, servicio.Descripcion, servicio.PublicoObjetivo, servicio.Tarifa,
		servicio.UpdatedAt, servicio.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating servicio: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// DeleteWithEquipamientos removes a servicio and its equipamiento edges in
// a single transaction.
func (r *ServicioRepository) DeleteWithEquipamientos(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM servicio_equipamiento WHERE servicio_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting equipamientos of servicio: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM servicios WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting servicio: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNoRowsAffected
		}

		return nil
	})
}

// Exists checks whether a servicio row exists
func (r *ServicioRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM servicios WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking servicio existence: %w", err)
	}
	return exists, nil
}
