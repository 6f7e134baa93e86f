package dto

import "time"

// CreatePersonalRequest is the payload for creating a directory entry.
type CreatePersonalRequest struct {
	Nombre      string     `json:"nombre" binding:"required"`
	Cargo       *string    `json:"cargo"`
	Descripcion *string    `json:"descripcion"`
	FotoURL     *string    `json:"foto_url"`
	CVURL       *string    `json:"cv_url"`
	ORCID       *string    `json:"orcid"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	FechaAlta   *time.Time `json:"fecha_alta"`
}

// UpdatePersonalRequest is a typed patch: only non-nil fields are applied.
// FechaBaja is deliberately absent; deactivation happens only through the
// delete operation and there is no reactivation path.
type UpdatePersonalRequest struct {
	Nombre      *string    `json:"nombre"`
	Cargo       *string    `json:"cargo"`
	Descripcion *string    `json:"descripcion"`
	FotoURL     *string    `json:"foto_url"`
	CVURL       *string    `json:"cv_url"`
	ORCID       *string    `json:"orcid"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	FechaAlta   *time.Time `json:"fecha_alta"`
}

// ProyectoVinculo is one item of a batch link request from the personal side.
type ProyectoVinculo struct {
	ProyectoID *int64  `json:"proyecto_id"`
	Rol        *string `json:"rol"`
}

// VincularProyectosRequest links a personal entry to a set of proyectos.
type VincularProyectosRequest struct {
	Items []ProyectoVinculo `json:"items" binding:"required"`
}
