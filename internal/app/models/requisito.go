package models

import "time"

// TipoRequisito distinguishes prerequisite edges from co-requisite edges.
type TipoRequisito string

const (
	TipoPrerequisito TipoRequisito = "prerequisito"
	TipoCorrequisito TipoRequisito = "correquisito"
)

// IsValid reports whether the value is one of the known edge kinds.
func (t TipoRequisito) IsValid() bool {
	return t == TipoPrerequisito || t == TipoCorrequisito
}

// Requisito is a directed edge in the course graph: IDMateria requires
// IDMateriaRequisito. The pair (IDMateria, IDMateriaRequisito) is unique
// and self-loops are rejected; cycles are not checked.
type Requisito struct {
	ID                 int64         `json:"id"`
	IDMateria          int64         `json:"id_materia"`
	IDMateriaRequisito int64         `json:"id_materia_requisito"`
	Tipo               TipoRequisito `json:"tipo"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
