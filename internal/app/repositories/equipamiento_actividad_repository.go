package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// EquipamientoActividadRepository handles the usage edges between
// equipamientos and actividades. Linking an existing pair again is a no-op.
type EquipamientoActividadRepository struct {
	db *db.PostgresDB
}

// NewEquipamientoActividadRepository creates a new equipamiento/actividad edge repository
func NewEquipamientoActividadRepository(database *db.PostgresDB) *EquipamientoActividadRepository {
	return &EquipamientoActividadRepository{db: database}
}

// ListByEquipamiento retrieves every usage edge of an equipamiento
func (r *EquipamientoActividadRepository) ListByEquipamiento(ctx context.Context, equipamientoID int64) ([]*models.EquipamientoActividad, error) {
	query := `
		SELECT equipamiento_id, actividad_id, created_at
		FROM equipamiento_actividad
		WHERE equipamiento_id = $1
		ORDER BY actividad_id
	`
	return r.list(ctx, query, equipamientoID)
}

// ListByActividad retrieves every usage edge of an actividad
func (r *EquipamientoActividadRepository) ListByActividad(ctx context.Context, actividadID int64) ([]*models.EquipamientoActividad, error) {
	query := `
		SELECT equipamiento_id, actividad_id, created_at
		FROM equipamiento_actividad
		WHERE actividad_id = $1
		ORDER BY equipamiento_id
	`
	return r.list(ctx, query, actividadID)
}

func (r *EquipamientoActividadRepository) list(ctx context.Context, query string, arg int64) ([]*models.EquipamientoActividad, error) {
	rows, err := r.db.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []*models.EquipamientoActividad
	for rows.Next() {
		var edge models.EquipamientoActividad
		if err := rows.Scan(&edge.EquipamientoID, &edge.ActividadID, &edge.CreatedAt); err != nil {
			return nil, err
		}
		edges = append(edges, &edge)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}

// LinkBatch inserts a batch of usage edges in a single transaction,
// skipping pairs that already exist.
func (r *EquipamientoActividadRepository) LinkBatch(ctx context.Context, edges []*models.EquipamientoActividad, now time.Time) error {
	if len(edges) == 0 {
		return nil
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO equipamiento_actividad (equipamiento_id, actividad_id, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (equipamiento_id, actividad_id) DO NOTHING
		`
		for _, edge := range edges {
			if _, err := tx.Exec(ctx, query, edge.EquipamientoID, edge.ActividadID, now); err != nil {
				return fmt.Errorf("error linking equipamiento to actividad: %w", err)
			}
		}
		return nil
	})
}

// Unlink removes a single usage edge
func (r *EquipamientoActividadRepository) Unlink(ctx context.Context, equipamientoID, actividadID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM equipamiento_actividad WHERE equipamiento_id = $1 AND actividad_id = $2`,
		equipamientoID, actividadID)
	if err != nil {
		return fmt.Errorf("error unlinking equipamiento from actividad: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
