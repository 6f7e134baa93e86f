package models

import "time"

// Personal represents a staff or researcher directory entry.
// Deletion is soft: FechaBaja is set and the row remains readable.
type Personal struct {
	ID          int64      `json:"id"`
	Nombre      string     `json:"nombre"`
	Cargo       *string    `json:"cargo,omitempty"`
	Descripcion *string    `json:"descripcion,omitempty"`
	FotoURL     *string    `json:"foto_url,omitempty"`
	CVURL       *string    `json:"cv_url,omitempty"`
	ORCID       *string    `json:"orcid,omitempty"`
	Email       *string    `json:"email,omitempty"`
	FechaAlta   *time.Time `json:"fecha_alta,omitempty"`
	FechaBaja   *time.Time `json:"fecha_baja,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Activo reports whether the entry has not been soft-deleted.
func (p *Personal) Activo() bool {
	return p.FechaBaja == nil
}
