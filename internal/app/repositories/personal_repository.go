package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// PersonalRepository handles database operations for personal records
type PersonalRepository struct {
	db *db.PostgresDB
}

// NewPersonalRepository creates a new personal repository
func NewPersonalRepository(database *db.PostgresDB) *PersonalRepository {
	return &PersonalRepository{db: database}
}

// Create inserts a new personal record and fills in its assigned id
func (r *PersonalRepository) Create(ctx context.Context, personal *models.Personal) error {
	query := `
		INSERT INTO personal (nombre, cargo, descripcion, foto_url, cv_url, orcid, email, fecha_alta, fecha_baja, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		personal.Nombre, personal.Cargo, personal.Descripcion, personal.FotoURL,
		personal.CVURL, personal.ORCID, personal.Email, personal.FechaAlta,
		personal.FechaBaja, personal.CreatedAt, personal.UpdatedAt,
	).Scan(&personal.ID)
	if err != nil {
		return fmt.Errorf("error creating personal: %w", err)
	}

	return nil
}

// GetByID retrieves a personal record by ID; returns (nil, nil) when absent
func (r *PersonalRepository) GetByID(ctx context.Context, id int64) (*models.Personal, error) {
	query := `
		SELECT id, nombre, cargo, descripcion, foto_url, cv_url, orcid, email, fecha_alta, fecha_baja, created_at, updated_at
		FROM personal
		WHERE id = $1
	`

	var personal models.Personal
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&personal.ID,
		&personal.Nombre,
		&personal.Cargo,
		&personal.Descripcion,
		&personal.FotoURL,
		&personal.CVURL,
		&personal.ORCID,
		&personal.Email,
		&personal.FechaAlta,
		&personal.FechaBaja,
		&personal.CreatedAt,
		&personal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving personal: %w", err)
	}

	return &personal, nil
}

// GetAll retrieves personal records; soloActivos limits to rows without fecha_baja
func (r *PersonalRepository) GetAll(ctx context.Context, soloActivos bool, offset, limit int) ([]*models.Personal, error) {
	builder := sq.Select("id", "nombre", "cargo", "descripcion", "foto_url", "cv_url",
		"orcid", "email", "fecha_alta", "fecha_baja", "created_at", "updated_at").
		From("personal").
		OrderBy("nombre").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if soloActivos {
		builder = builder.Where(sq.Eq{"fecha_baja": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building personal query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personas []*models.Personal
	for rows.Next() {
		var personal models.Personal
		if err := rows.Scan(
			&personal.ID,
			&personal.Nombre,
			&personal.Cargo,
			&personal.Descripcion,
			&personal.FotoURL,
			&personal.CVURL,
			&personal.ORCID,
			&personal.Email,
			&personal.FechaAlta,
			&personal.FechaBaja,
			&personal.CreatedAt,
			&personal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		personas = append(personas, &personal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return personas, nil
}

// Update persists all mutable fields of an existing personal record
func (r *PersonalRepository) Update(ctx context.Context, personal *models.Personal) error {
	query := `
		UPDATE personal
		SET nombre = $1, cargo = $2, descripcion = $3, foto_url = $4, cv_url = $5,
		    orcid = $6, email = $7, fecha_alta = $8, updated_at = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		personal.Nombre, personal.Cargo, personal.Descripcion, personal.FotoURL,
		personal.CVURL, personal.ORCID, personal.Email, personal.FechaAlta,
		personal.UpdatedAt, personal.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating personal: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// SoftDeleteWithUnlinks marks a personal record as inactive and removes its
// project memberships in a single transaction. The row itself is kept.
func (r *PersonalRepository) SoftDeleteWithUnlinks(ctx context.Context, id int64, fechaBaja time.Time) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE personal SET fecha_baja = $1, updated_at = $2 WHERE id = $3`,
			fechaBaja, fechaBaja, id)
		if err != nil {
			return fmt.Errorf("error deactivating personal: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNoRowsAffected
		}

		_, err = tx.Exec(ctx, `DELETE FROM personal_proyecto WHERE personal_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error unlinking proyectos of personal: %w", err)
		}

		return nil
	})
}

// Exists checks whether a personal row exists
func (r *PersonalRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM personal WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking personal existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks whether a personal row with the given email exists
func (r *PersonalRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM personal WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking personal email: %w", err)
	}
	return exists, nil
}
