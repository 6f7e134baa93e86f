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

// MateriaRepository handles database operations for materias
type MateriaRepository struct {
	db *db.PostgresDB
}

// NewMateriaRepository creates a new materia repository
func NewMateriaRepository(database *db.PostgresDB) *MateriaRepository {
	return &MateriaRepository{db: database}
}

// Create inserts a new materia and fills in its assigned id
func (r *MateriaRepository) Create(ctx context.Context, materia *models.Materia) error {
	query := `
		INSERT INTO materias (nombre, codigo, descripcion, semestre, creditos, programa_pdf_url, id_carrera, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		materia.Nombre, materia.Codigo, materia.Descripcion, materia.Semestre,
		materia.Creditos, materia.ProgramaPDFURL, materia.IDCarrera,
		materia.CreatedAt, materia.UpdatedAt,
	).Scan(&materia.ID)
	if err != nil {
		return fmt.Errorf("error creating materia: %w", err)
	}

	return nil
}

// GetByID retrieves a materia by ID; returns (nil, nil) when absent
func (r *MateriaRepository) GetByID(ctx context.Context, id int64) (*models.Materia, error) {
	query := `
		SELECT id, nombre, codigo, descripcion, semestre, creditos, programa_pdf_url, id_carrera, created_at, updated_at
		FROM materias
		WHERE id = $1
	`

	var materia models.Materia
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&materia.ID,
		&materia.Nombre,
		&materia.Codigo,
		&materia.Descripcion,
		&materia.Semestre,
		&materia.Creditos,
		&materia.ProgramaPDFURL,
		&materia.IDCarrera,
		&materia.CreatedAt,
		&materia.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving materia: %w", err)
	}

	return &materia, nil
}

// GetAll retrieves materias, optionally filtered by carrera and semestre
func (r *MateriaRepository) GetAll(ctx context.Context, carreraID *int64, semestre *int, offset, limit int) ([]*models.Materia, error) {
	builder := sq.Select("id", "nombre", "codigo", "descripcion", "semestre", "creditos",
		"programa_pdf_url", "id_carrera", "created_at", "updated_at").
		From("materias").
		OrderBy("semestre", "nombre").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if carreraID != nil {
		builder = builder.Where(sq.Eq{"id_carrera": *carreraID})
	}
	if semestre != nil {
		builder = builder.Where(sq.Eq{"semestre": *semestre})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building materias query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materias []*models.Materia
	for rows.Next() {
		var materia models.Materia
		if err := rows.Scan(
			&materia.ID,
			&materia.Nombre,
			&materia.Codigo,
			&materia.Descripcion,
			&materia.Semestre,
			&materia.Creditos,
			&materia.ProgramaPDFURL,
			&materia.IDCarrera,
			&materia.CreatedAt,
			&materia.UpdatedAt,
		); err != nil {
			return nil, err
		}
		materias = append(materias, &materia)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materias, nil
}

// Update persists all mutable fields of an existing materia
func (r *MateriaRepository) Update(ctx context.Context, materia *models.Materia) error {
	query := `
		UPDATE materias
		SET nombre = $1, codigo = $2, descripcion = $3, semestre = $4, creditos = $5,
		    programa_pdf_url = $6, id_carrera = $7, updated_at = $8
		WHERE id = $9
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		materia.Nombre, materia.Codigo, materia.Descripcion, materia.Semestre,
		materia.Creditos, materia.ProgramaPDFURL, materia.IDCarrera,
		materia.UpdatedAt, materia.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating materia: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// DeleteWithRequisitos removes a materia together with every requisito edge
// that references it on either side, in a single transaction.
func (r *MateriaRepository) DeleteWithRequisitos(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`DELETE FROM requisitos WHERE id_materia = $1 OR id_materia_requisito = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting requisitos of materia: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM materias WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting materia: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNoRowsAffected
		}

		return nil
	})
}

// CountByCarrera returns how many materias belong to a carrera
func (r *MateriaRepository) CountByCarrera(ctx context.Context, carreraID int64) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM materias WHERE id_carrera = $1`, carreraID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting materias of carrera: %w", err)
	}
	return count, nil
}

// Exists checks whether a materia row exists
func (r *MateriaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM materias WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking materia existence: %w", err)
	}
	return exists, nil
}
