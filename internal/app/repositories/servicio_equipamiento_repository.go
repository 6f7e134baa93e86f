package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/db"
)

// ServicioEquipamientoRepository handles the edges between servicios and the
// equipamientos they rely on. Linking an existing pair again is a no-op.
type ServicioEquipamientoRepository struct {
	db *db.PostgresDB
}

// NewServicioEquipamientoRepository creates a new servicio/equipamiento edge repository
func NewServicioEquipamientoRepository(database *db.PostgresDB) *ServicioEquipamientoRepository {
	return &ServicioEquipamientoRepository{db: database}
}

// ListByServicio retrieves every equipamiento edge of a servicio
func (r *ServicioEquipamientoRepository) ListByServicio(ctx context.Context, servicioID int64) ([]*models.ServicioEquipamiento, error) {
	query := `
		SELECT servicio_id, equipamiento_id, created_at
		FROM servicio_equipamiento
		WHERE servicio_id = $1
		ORDER BY equipamiento_id
	`

	rows, err := r.db.Pool.Query(ctx, query, servicioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []*models.ServicioEquipamiento
	for rows.Next() {
		var edge models.ServicioEquipamiento
		if err := rows.Scan(&edge.ServicioID, &edge.EquipamientoID, &edge.CreatedAt); err != nil {
			return nil, err
		}
		edges = append(edges, &edge)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}

// ListServiciosDeEquipamiento retrieves the servicios that rely on an
// equipamiento, joined with their names and tarifas.
func (r *ServicioEquipamientoRepository) ListServiciosDeEquipamiento(ctx context.Context, equipamientoID int64) ([]*dto.ServicioDeEquipamiento, error) {
	query := `
		SELECT s.id, s.nombre, s.descripcion, se.created_at
		FROM servicio_equipamiento se
		JOIN servicios s ON s.id = se.servicio_id
		WHERE se.equipamiento_id = $1
		ORDER BY s.nombre
	`

	rows, err := r.db.Pool.Query(ctx, query, equipamientoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servicios []*dto.ServicioDeEquipamiento
	for rows.Next() {
		var servicio dto.ServicioDeEquipamiento
		if err := rows.Scan(&servicio.ServicioID, &servicio.Nombre, &servicio.Descripcion, &servicio.CreatedAt); err != nil {
			return nil, err
		}
		servicios = append(servicios, &servicio)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return servicios, nil
}

// LinkBatch inserts a batch of edges in a single transaction, skipping
// pairs that already exist.
func (r *ServicioEquipamientoRepository) LinkBatch(ctx context.Context, edges []*models.ServicioEquipamiento, now time.Time) error {
	if len(edges) == 0 {
		return nil
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO servicio_equipamiento (servicio_id, equipamiento_id, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (servicio_id, equipamiento_id) DO NOTHING
		`
		for _, edge := range edges {
			if _, err := tx.Exec(ctx, query, edge.ServicioID, edge.EquipamientoID, now); err != nil {
				return fmt.Errorf("error linking servicio to equipamiento: %w", err)
			}
		}
		return nil
	})
}

// Unlink removes a single edge
func (r *ServicioEquipamientoRepository) Unlink(ctx context.Context, servicioID, equipamientoID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM servicio_equipamiento WHERE servicio_id = $1 AND equipamiento_id = $2`,
		servicioID, equipamientoID)
	if err != nil {
		return fmt.Errorf("error unlinking servicio from equipamiento: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
