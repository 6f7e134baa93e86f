package models

import "time"

// Materia represents a course belonging to a carrera.
type Materia struct {
	ID             int64   `json:"id"`
	Nombre         string  `json:"nombre"`
	Codigo         string  `json:"codigo"`
	Descripcion    *string `json:"descripcion,omitempty"`
	Semestre       int     `json:"semestre"`
	Creditos       *int    `json:"creditos,omitempty"`
	ProgramaPDFURL *string `json:"programa_pdf_url,omitempty"`
	IDCarrera      int64   `json:"id_carrera"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations (populated when needed)
	Carrera *Carrera `json:"carrera,omitempty"`
}
