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

// RequisitoRepository handles database operations for requisito edges
type RequisitoRepository struct {
	db *db.PostgresDB
}

// NewRequisitoRepository creates a new requisito repository
func NewRequisitoRepository(database *db.PostgresDB) *RequisitoRepository {
	return &RequisitoRepository{db: database}
}

// Create inserts a new requisito edge and fills in its assigned id
func (r *RequisitoRepository) Create(ctx context.Context, requisito *models.Requisito) error {
	query := `
		INSERT INTO requisitos (id_materia, id_materia_requisito, tipo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		requisito.IDMateria, requisito.IDMateriaRequisito, requisito.Tipo,
		requisito.CreatedAt, requisito.UpdatedAt,
	).Scan(&requisito.ID)
	if err != nil {
		return fmt.Errorf("error creating requisito: %w", err)
	}

	return nil
}

// GetByID retrieves a requisito by ID; returns (nil, nil) when absent
func (r *RequisitoRepository) GetByID(ctx context.Context, id int64) (*models.Requisito, error) {
	query := `
		SELECT id, id_materia, id_materia_requisito, tipo, created_at, updated_at
		FROM requisitos
		WHERE id = $1
	`

	var requisito models.Requisito
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&requisito.ID,
		&requisito.IDMateria,
		&requisito.IDMateriaRequisito,
		&requisito.Tipo,
		&requisito.CreatedAt,
		&requisito.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving requisito: %w", err)
	}

	return &requisito, nil
}

// GetByPair retrieves the edge with the given ordered endpoints; (nil, nil) when absent
func (r *RequisitoRepository) GetByPair(ctx context.Context, idMateria, idMateriaRequisito int64) (*models.Requisito, error) {
	query := `
		SELECT id, id_materia, id_materia_requisito, tipo, created_at, updated_at
		FROM requisitos
		WHERE id_materia = $1 AND id_materia_requisito = $2
	`

	var requisito models.Requisito
	err := r.db.Pool.QueryRow(ctx, query, idMateria, idMateriaRequisito).Scan(
		&requisito.ID,
		&requisito.IDMateria,
		&requisito.IDMateriaRequisito,
		&requisito.Tipo,
		&requisito.CreatedAt,
		&requisito.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving requisito by pair: %w", err)
	}

	return &requisito, nil
}

// GetAll retrieves requisito edges, optionally filtered by the dependent materia
func (r *RequisitoRepository) GetAll(ctx context.Context, materiaID *int64, offset, limit int) ([]*models.Requisito, error) {
	builder := sq.Select("id", "id_materia", "id_materia_requisito", "tipo", "created_at", "updated_at").
		From("requisitos").
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if materiaID != nil {
		builder = builder.Where(sq.Eq{"id_materia": *materiaID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building requisitos query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requisitos []*models.Requisito
	for rows.Next() {
		var requisito models.Requisito
		if err := rows.Scan(
			&requisito.ID,
			&requisito.IDMateria,
			&requisito.IDMateriaRequisito,
			&requisito.Tipo,
			&requisito.CreatedAt,
			&requisito.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requisitos = append(requisitos, &requisito)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requisitos, nil
}

// Update persists all mutable fields of an existing requisito edge
func (r *RequisitoRepository) Update(ctx context.Context, requisito *models.Requisito) error {
	query := `
		UPDATE requisitos
		SET id_materia = $1, id_materia_requisito = $2, tipo = $3, updated_at = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		requisito.IDMateria, requisito.IDMateriaRequisito, requisito.Tipo,
		requisito.UpdatedAt, requisito.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating requisito: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// Delete removes a requisito edge by ID
func (r *RequisitoRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM requisitos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting requisito: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
