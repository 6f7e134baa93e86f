package dto

import "time"

// CreateBlogPostRequest is the payload for creating a blog post. When
// Publicado is left nil it defaults to true, matching the historic behavior
// of the blog; FechaPublicacion defaults to now.
type CreateBlogPostRequest struct {
	Titulo           string     `json:"titulo" binding:"required"`
	Contenido        string     `json:"contenido" binding:"required"`
	Resumen          *string    `json:"resumen"`
	ImagenURL        *string    `json:"imagen_url"`
	Autor            *string    `json:"autor"`
	FechaPublicacion *time.Time `json:"fecha_publicacion"`
	Tags             *string    `json:"tags"`
	Publicado        *bool      `json:"publicado"`
}

// UpdateBlogPostRequest is a typed patch: only non-nil fields are applied.
type UpdateBlogPostRequest struct {
	Titulo           *string    `json:"titulo"`
	Contenido        *string    `json:"contenido"`
	Resumen          *string    `json:"resumen"`
	ImagenURL        *string    `json:"imagen_url"`
	Autor            *string    `json:"autor"`
	FechaPublicacion *time.Time `json:"fecha_publicacion"`
	Tags             *string    `json:"tags"`
	Publicado        *bool      `json:"publicado"`
}

// SubscribeRequest registers a blog notification recipient.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
