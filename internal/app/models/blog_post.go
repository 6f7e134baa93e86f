package models

import "time"

// BlogPost represents an entry of the department blog.
type BlogPost struct {
	ID               int64     `json:"id"`
	Titulo           string    `json:"titulo"`
	Contenido        string    `json:"contenido"`
	Resumen          *string   `json:"resumen,omitempty"`
	ImagenURL        *string   `json:"imagen_url,omitempty"`
	Autor            *string   `json:"autor,omitempty"`
	FechaPublicacion time.Time `json:"fecha_publicacion"`
	Tags             *string   `json:"tags,omitempty"` // comma-separated
	Publicado        bool      `json:"publicado"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Subscriber is a blog notification recipient. Email is unique.
type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
