package dto

import "time"

// CreateProyectoRequest is the payload for creating a research project.
type CreateProyectoRequest struct {
	Nombre      string     `json:"nombre" binding:"required"`
	Descripcion *string    `json:"descripcion"`
	FechaInicio *time.Time `json:"fecha_inicio"`
	FechaFin    *time.Time `json:"fecha_fin"`
	Financiador *string    `json:"financiador"`
	Presupuesto *float64   `json:"presupuesto"`
}

// UpdateProyectoRequest is a typed patch: only non-nil fields are applied.
type UpdateProyectoRequest struct {
	Nombre      *string    `json:"nombre"`
	Descripcion *string    `json:"descripcion"`
	FechaInicio *time.Time `json:"fecha_inicio"`
	FechaFin    *time.Time `json:"fecha_fin"`
	Financiador *string    `json:"financiador"`
	Presupuesto *float64   `json:"presupuesto"`
}

// PersonalAsignacion is one item of a batch link request from the project side.
type PersonalAsignacion struct {
	PersonalID *int64  `json:"personal_id"`
	Rol        *string `json:"rol"`
}

// AsignarPersonalRequest links a proyecto to a set of personal entries.
type AsignarPersonalRequest struct {
	Items []PersonalAsignacion `json:"items" binding:"required"`
}

// ReemplazarPersonalRequest replaces a proyecto's entire personal edge set.
type ReemplazarPersonalRequest struct {
	Items []PersonalAsignacion `json:"items" binding:"required"`
}
