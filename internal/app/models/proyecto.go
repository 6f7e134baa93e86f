package models

import "time"

// Proyecto represents a research project.
type Proyecto struct {
	ID          int64      `json:"id"`
	Nombre      string     `json:"nombre"`
	Descripcion *string    `json:"descripcion,omitempty"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`
	Financiador *string    `json:"financiador,omitempty"`
	Presupuesto *float64   `json:"presupuesto,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PersonalProyecto is the association row linking a personal entry to a
// proyecto, carrying the role the person plays in it. At most one row exists
// per (PersonalID, ProyectoID) pair; re-linking updates Rol in place.
type PersonalProyecto struct {
	PersonalID int64     `json:"personal_id"`
	ProyectoID int64     `json:"proyecto_id"`
	Rol        *string   `json:"rol,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
