package dto

import "github.com/grupoidi/deptoweb/internal/app/models"

// CreateCarreraRequest is the payload for creating a carrera.
type CreateCarreraRequest struct {
	Nombre         string  `json:"nombre" binding:"required"`
	Descripcion    *string `json:"descripcion"`
	TituloOtorgado *string `json:"titulo_otorgado"`
	DuracionAnios  *int    `json:"duracion_anios"`
}

// UpdateCarreraRequest is a typed patch: only non-nil fields are applied.
type UpdateCarreraRequest struct {
	Nombre         *string `json:"nombre"`
	Descripcion    *string `json:"descripcion"`
	TituloOtorgado *string `json:"titulo_otorgado"`
	DuracionAnios  *int    `json:"duracion_anios"`
}

// CreateMateriaRequest is the payload for creating a materia.
type CreateMateriaRequest struct {
	Nombre         string  `json:"nombre" binding:"required"`
	Codigo         string  `json:"codigo" binding:"required"`
	Descripcion    *string `json:"descripcion"`
	Semestre       int     `json:"semestre" binding:"required"`
	Creditos       *int    `json:"creditos"`
	ProgramaPDFURL *string `json:"programa_pdf_url"`
	IDCarrera      int64   `json:"id_carrera" binding:"required"`
}

// UpdateMateriaRequest is a typed patch: only non-nil fields are applied.
type UpdateMateriaRequest struct {
	Nombre         *string `json:"nombre"`
	Codigo         *string `json:"codigo"`
	Descripcion    *string `json:"descripcion"`
	Semestre       *int    `json:"semestre"`
	Creditos       *int    `json:"creditos"`
	ProgramaPDFURL *string `json:"programa_pdf_url"`
	IDCarrera      *int64  `json:"id_carrera"`
}

// CreateRequisitoRequest is the payload for creating a course-graph edge.
// Tipo defaults to "prerequisito" when omitted.
type CreateRequisitoRequest struct {
	IDMateria          int64                `json:"id_materia" binding:"required"`
	IDMateriaRequisito int64                `json:"id_materia_requisito" binding:"required"`
	Tipo               models.TipoRequisito `json:"tipo"`
}

// UpdateRequisitoRequest is a typed patch over a course-graph edge. Endpoint
// fields that are present are re-validated exactly as on creation.
type UpdateRequisitoRequest struct {
	IDMateria          *int64                `json:"id_materia"`
	IDMateriaRequisito *int64                `json:"id_materia_requisito"`
	Tipo               *models.TipoRequisito `json:"tipo"`
}
