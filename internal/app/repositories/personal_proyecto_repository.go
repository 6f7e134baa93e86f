package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// PersonalProyectoRepository handles the membership edges between personal
// and proyectos. The pair (personal_id, proyecto_id) is the primary key, so
// linking the same pair twice updates the rol in place.
type PersonalProyectoRepository struct {
	db *db.PostgresDB
}

// NewPersonalProyectoRepository creates a new personal/proyecto membership repository
func NewPersonalProyectoRepository(database *db.PostgresDB) *PersonalProyectoRepository {
	return &PersonalProyectoRepository{db: database}
}

// ListByPersonal retrieves every membership edge of a personal record
func (r *PersonalProyectoRepository) ListByPersonal(ctx context.Context, personalID int64) ([]*models.PersonalProyecto, error) {
	query := `
		SELECT personal_id, proyecto_id, rol, created_at
		FROM personal_proyecto
		WHERE personal_id = $1
		ORDER BY proyecto_id
	`
	return r.list(ctx, query, personalID)
}

// ListByProyecto retrieves every membership edge of a proyecto
func (r *PersonalProyectoRepository) ListByProyecto(ctx context.Context, proyectoID int64) ([]*models.PersonalProyecto, error) {
	query := `
		SELECT personal_id, proyecto_id, rol, created_at
		FROM personal_proyecto
		WHERE proyecto_id = $1
		ORDER BY personal_id
	`
	return r.list(ctx, query, proyectoID)
}

func (r *PersonalProyectoRepository) list(ctx context.Context, query string, arg int64) ([]*models.PersonalProyecto, error) {
	rows, err := r.db.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []*models.PersonalProyecto
	for rows.Next() {
		var edge models.PersonalProyecto
		if err := rows.Scan(&edge.PersonalID, &edge.ProyectoID, &edge.Rol, &edge.CreatedAt); err != nil {
			return nil, err
		}
		edges = append(edges, &edge)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}

// UpsertBatch inserts or updates a batch of membership edges in a single
// transaction. Existing pairs keep their created_at and get the new rol.
func (r *PersonalProyectoRepository) UpsertBatch(ctx context.Context, edges []*models.PersonalProyecto) error {
	if len(edges) == 0 {
		return nil
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO personal_proyecto (personal_id, proyecto_id, rol, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (personal_id, proyecto_id) DO UPDATE SET rol = EXCLUDED.rol
		`
		for _, edge := range edges {
			if _, err := tx.Exec(ctx, query, edge.PersonalID, edge.ProyectoID, edge.Rol, edge.CreatedAt); err != nil {
				return fmt.Errorf("error upserting personal_proyecto edge: %w", err)
			}
		}
		return nil
	})
}

// ReplaceForProyecto replaces the whole membership set of a proyecto with the
// given edges, deleting the old set and inserting the new one in a single
// transaction. Callers must validate the new members before calling.
func (r *PersonalProyectoRepository) ReplaceForProyecto(ctx context.Context, proyectoID int64, edges []*models.PersonalProyecto, now time.Time) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM personal_proyecto WHERE proyecto_id = $1`, proyectoID); err != nil {
			return fmt.Errorf("error clearing asignaciones of proyecto: %w", err)
		}

		query := `
			INSERT INTO personal_proyecto (personal_id, proyecto_id, rol, created_at)
			VALUES ($1, $2, $3, $4)
		`
		for _, edge := range edges {
			if _, err := tx.Exec(ctx, query, edge.PersonalID, proyectoID, edge.Rol, now); err != nil {
				return fmt.Errorf("error inserting personal_proyecto edge: %w", err)
			}
		}
		return nil
	})
}
