package models

import "time"

// Autor is one entry of a publicacion's author list. PersonalID, when set,
// must reference an existing personal row.
type Autor struct {
	Nombre     string `json:"nombre,omitempty"`
	PersonalID *int64 `json:"personal_id,omitempty"`
}

// Publicacion represents an academic publication.
type Publicacion struct {
	ID             int64     `json:"id"`
	Titulo         string    `json:"titulo"`
	CitaFormateada *string   `json:"cita_formateada,omitempty"`
	DOIURL         *string   `json:"doi_url,omitempty"`
	EnlacePDF      *string   `json:"enlace_pdf,omitempty"`
	Anio           *int      `json:"anio,omitempty"`
	Estado         *string   `json:"estado,omitempty"`
	FechaRegistro  time.Time `json:"fecha_registro"`
	Authors        []Autor   `json:"authors"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
