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

// PublicacionRepository handles database operations for publicaciones.
// Authors are stored as a jsonb array on the row.
type PublicacionRepository struct {
	db *db.PostgresDB
}

// NewPublicacionRepository creates a new publicacion repository
func NewPublicacionRepository(database *db.PostgresDB) *PublicacionRepository {
	return &PublicacionRepository{db: database}
}

// Create inserts a new publicacion and fills in its assigned id
func (r *PublicacionRepository) Create(ctx context.Context, publicacion *models.Publicacion) error {
	query := `
		INSERT INTO publicaciones (titulo, cita_formateada, doi_url, enlace_pdf, anio, estado, fecha_registro, authors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		publicacion.Titulo, publicacion.CitaFormateada, publicacion.DOIURL,
		publicacion.EnlacePDF, publicacion.Anio, publicacion.Estado,
		publicacion.FechaRegistro, publicacion.Authors,
		publicacion.CreatedAt, publicacion.UpdatedAt,
	).Scan(&publicacion.ID)
	if err != nil {
		return fmt.Errorf("error creating publicacion: %w", err)
	}

	return nil
}

// GetByID retrieves a publicacion by ID; returns (nil, nil) when absent
func (r *PublicacionRepository) GetByID(ctx context.Context, id int64) (*models.Publicacion, error) {
	query := `
		SELECT id, titulo, cita_formateada, doi_url, enlace_pdf, anio, estado, fecha_registro, authors, created_at, updated_at
		FROM publicaciones
		WHERE id = $1
	`

	var publicacion models.Publicacion
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&publicacion.ID,
		&publicacion.Titulo,
		&publicacion.CitaFormateada,
		&publicacion.DOIURL,
		&publicacion.EnlacePDF,
		&publicacion.Anio,
		&publicacion.Estado,
		&publicacion.FechaRegistro,
		&publicacion.Authors,
		&publicacion.CreatedAt,
		&publicacion.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving publicacion: %w", err)
	}

	return &publicacion, nil
}

// GetAll retrieves publicaciones, optionally filtered by anio and estado,
// newest year first.
func (r *PublicacionRepository) GetAll(ctx context.Context, anio *int, estado *string, offset, limit int) ([]*models.Publicacion, error) {
	builder := sq.Select("id", "titulo", "cita_formateada", "doi_url", "enlace_pdf",
		"anio", "estado", "fecha_registro", "authors", "created_at", "updated_at").
		From("publicaciones").
		OrderBy("anio DESC NULLS LAST", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if anio != nil {
		builder = builder.Where(sq.Eq{"anio": *anio})
	}
	if estado != nil {
		builder = builder.Where(sq.Eq{"estado": *estado})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building publicaciones query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publicaciones []*models.Publicacion
	for rows.Next() {
		var publicacion models.Publicacion
		if err := rows.Scan(
			&publicacion.ID,
			&publicacion.Titulo,
			&publicacion.CitaFormateada,
			&publicacion.DOIURL,
			&publicacion.EnlacePDF,
			&publicacion.Anio,
			&publicacion.Estado,
			&publicacion.FechaRegistro,
			&publicacion.Authors,
			&publicacion.CreatedAt,
			&publicacion.UpdatedAt,
		); err != nil {
			return nil, err
		}
		publicaciones = append(publicaciones, &publicacion)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return publicaciones, nil
}

// Update persists all mutable fields of an existing publicacion
func (r *PublicacionRepository) Update(ctx context.Context, publicacion *models.Publicacion) error {
	query := `
		UPDATE publicaciones
		SET titulo = $1, cita_formateada = $2, doi_url = $3, enlace_pdf = $4,
		    anio = $5, estado = $6, authors = $7, updated_at = $8
		WHERE id = $9
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		publicacion.Titulo, publicacion.CitaFormateada, publicacion.DOIURL,
		publicacion.EnlacePDF, publicacion.Anio, publicacion.Estado,
		publicacion.Authors, publicacion.UpdatedAt, publicacion.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating publicacion: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// Delete removes a publicacion by ID
func (r *PublicacionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM publicaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting publicacion: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
