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

// EquipamientoRepository handles database operations for equipamientos
type EquipamientoRepository struct {
	db *db.PostgresDB
}

// NewEquipamientoRepository creates a new equipamiento repository
func NewEquipamientoRepository(database *db.PostgresDB) *EquipamientoRepository {
	return &EquipamientoRepository{db: database}
}

// Create inserts a new equipamiento and fills in its assigned id
func (r *EquipamientoRepository) Create(ctx context.Context, equipamiento *models.Equipamiento) error {
	query := `
		INSERT INTO equipamientos (nombre, marca, modelo, n_serie, hoja_especificaciones_url, fecha_adquisicion, estado, ubicacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		equipamiento.Nombre, equipamiento.Marca, equipamiento.Modelo, equipamiento.NSerie,
		equipamiento.HojaEspecificacionesURL, equipamiento.FechaAdquisicion,
		equipamiento.Estado, equipamiento.Ubicacion,
		equipamiento.CreatedAt, equipamiento.UpdatedAt,
	).Scan(&equipamiento.ID)
	if err != nil {
		return fmt.Errorf("error creating equipamiento: %w", err)
	}

	return nil
}

// GetByID retrieves an equipamiento by ID; returns (nil, nil) when absent
func (r *EquipamientoRepository) GetByID(ctx context.Context, id int64) (*models.Equipamiento, error) {
	query := `
		SELECT id, nombre, marca, modelo, n_serie, hoja_especificaciones_url, fecha_adquisicion, estado, ubicacion, created_at, updated_at
		FROM equipamientos
		WHERE id = $1
	`

	var equipamiento models.Equipamiento
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&equipamiento.ID,
		&equipamiento.Nombre,
		&equipamiento.Marca,
		&equipamiento.Modelo,
		&equipamiento.NSerie,
		&equipamiento.HojaEspecificacionesURL,
		&equipamiento.FechaAdquisicion,
		&equipamiento.Estado,
		&equipamiento.Ubicacion,
		&equipamiento.CreatedAt,
		&equipamiento.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving equipamiento: %w", err)
	}

	return &equipamiento, nil
}

// GetAll retrieves equipamientos, optionally filtered by estado
func (r *EquipamientoRepository) GetAll(ctx context.Context, estado *string, offset, limit int) ([]*models.Equipamiento, error) {
	builder := sq.Select("id", "nombre", "marca", "modelo", "n_serie", "hoja_especificaciones_url",
		"fecha_adquisicion", "estado", "ubicacion", "created_at", "updated_at").
		From("equipamientos").
		OrderBy("nombre").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if estado != nil {
		builder = builder.Where(sq.Eq{"estado": *estado})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building equipamientos query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipamientos []*models.Equipamiento
	for rows.Next() {
		var equipamiento models.Equipamiento
		if err := rows.Scan(
			&equipamiento.ID,
			&equipamiento.Nombre,
			&equipamiento.Marca,
			&equipamiento.Modelo,
			&equipamiento.NSerie,
			&equipamiento.HojaEspecificacionesURL,
			&equipamiento.FechaAdquisicion,
			&equipamiento.Estado,
			&equipamiento.Ubicacion,
			&equipamiento.CreatedAt,
			&equipamiento.UpdatedAt,
		); err != nil {
			return nil, err
		}
		equipamientos = append(equipamientos, &equipamiento)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return equipamientos, nil
}

// Update persists all mutable fields of an existing equipamiento
func (r *EquipamientoRepository) Update(ctx context.Context, equipamiento *models.Equipamiento) error {
	query := `
		UPDATE equipamientos
		SET nombre = $1, marca = $2, modelo = $3, n_serie = $4, hoja_especificaciones_url = $5,
		    fecha_adquisicion = $6, estado = $7, ubicacion = $8, updated_at = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		equipamiento.Nombre, equipamiento.Marca, equipamiento.Modelo, equipamiento.NSerie,
		equipamiento.HojaEspecificacionesURL, equipamiento.FechaAdquisicion,
		equipamiento.Estado, equipamiento.Ubicacion,
		equipamiento.UpdatedAt, equipamiento.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating equipamiento: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// Delete removes an equipamiento by ID
func (r *EquipamientoRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM equipamientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting equipamiento: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// CountLinks returns how many actividad and servicio edges reference an
// equipamiento. Used as a delete guard.
func (r *EquipamientoRepository) CountLinks(ctx context.Context, id int64) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM equipamiento_actividad WHERE equipamiento_id = $1) +
			(SELECT COUNT(*) FROM servicio_equipamiento WHERE equipamiento_id = $1)
	`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting equipamiento links: %w", err)
	}
	return count, nil
}

// Exists checks whether an equipamiento row exists
func (r *EquipamientoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM equipamientos WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking equipamiento existence: %w", err)
	}
	return exists, nil
}
