package models

import "time"

// Carrera represents an academic program offered by the department.
type Carrera struct {
	ID             int64     `json:"id"`
	Nombre         string    `json:"nombre"`
	Descripcion    *string   `json:"descripcion,omitempty"`
	TituloOtorgado *string   `json:"titulo_otorgado,omitempty"`
	DuracionAnios  *int      `json:"duracion_anios,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
