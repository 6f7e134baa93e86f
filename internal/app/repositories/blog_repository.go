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

// BlogRepository handles database operations for blog posts
type BlogRepository struct {
	db *db.PostgresDB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(database *db.PostgresDB) *BlogRepository {
	return &BlogRepository{db: database}
}

// Create inserts a new blog post and fills in its assigned id
func (r *BlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (titulo, contenido, resumen, imagen_url, autor, fecha_publicacion, tags, publicado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		post.Titulo, post.Contenido, post.Resumen, post.ImagenURL, post.Autor,
		post.FechaPublicacion, post.Tags, post.Publicado,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("error creating blog post: %w", err)
	}

	return nil
}

// GetByID retrieves a blog post by ID; returns (nil, nil) when absent
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	query := `
		SELECT id, titulo, contenido, resumen, imagen_url, autor, fecha_publicacion, tags, publicado, created_at, updated_at
		FROM blog_posts
		WHERE id = $1
	`

	var post models.BlogPost
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Titulo,
		&post.Contenido,
		&post.Resumen,
		&post.ImagenURL,
		&post.Autor,
		&post.FechaPublicacion,
		&post.Tags,
		&post.Publicado,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving blog post: %w", err)
	}

	return &post, nil
}

// GetAll retrieves blog posts newest first. When soloPublicados is set only
// published posts are returned; tag filters on the comma separated tag list.
func (r *BlogRepository) GetAll(ctx context.Context, tag *string, soloPublicados bool, offset, limit int) ([]*models.BlogPost, error) {
	builder := sq.Select("id", "titulo", "contenido", "resumen", "imagen_url", "autor",
		"fecha_publicacion", "tags", "publicado", "created_at", "updated_at").
		From("blog_posts").
		OrderBy("fecha_publicacion DESC", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if soloPublicados {
		builder = builder.Where(sq.Eq{"publicado": true})
	}
	if tag != nil {
		builder = builder.Where(sq.ILike{"tags": "%" + *tag + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building blog posts query: %w", err)
	}

	return r.queryPosts(ctx, query, args...)
}

// Buscar retrieves published posts whose title, content or summary matches
// the term, case insensitive.
func (r *BlogRepository) Buscar(ctx context.Context, termino string, offset, limit int) ([]*models.BlogPost, error) {
	pattern := "%" + termino + "%"

	builder := sq.Select("id", "titulo", "contenido", "resumen", "imagen_url", "autor",
		"fecha_publicacion", "tags", "publicado", "created_at", "updated_at").
		From("blog_posts").
		Where(sq.Eq{"publicado": true}).
		Where(sq.Or{sq.ILike{"titulo": pattern}, sq.ILike{"contenido": pattern}, sq.ILike{"resumen": pattern}}).
		OrderBy("fecha_publicacion DESC", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building blog search query: %w", err)
	}

	return r.queryPosts(ctx, query, args...)
}

func (r *BlogRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*models.BlogPost, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		var post models.BlogPost
		if err := rows.Scan(
			&post.ID,
			&post.Titulo,
			&post.Contenido,
			&post.Resumen,
			&post.ImagenURL,
			&post.Autor,
			&post.FechaPublicacion,
			&post.Tags,
			&post.Publicado,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Update persists all mutable fields of an existing blog post
func (r *BlogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET titulo = $1, contenido = $2, resumen = $3, imagen_url = $4, autor = $5,
		    fecha_publicacion = $6, tags = $7, publicado = $8, updated_at = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		post.Titulo, post.Contenido, post.Resumen, post.ImagenURL, post.Autor,
		post.FechaPublicacion, post.Tags, post.Publicado,
		post.UpdatedAt, post.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating blog post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// Delete removes a blog post by ID
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting blog post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
