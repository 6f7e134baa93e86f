package dto

import "time"

// CreateServicioRequest creates a servicio together with its backing
// equipamiento set. The set must be non-empty.
type CreateServicioRequest struct {
	Nombre          string   `json:"nombre" binding:"required"`
	Descripcion     *string  `json:"descripcion"`
	PublicoObjetivo *string  `json:"publico_objetivo"`
	Tarifa          *float64 `json:"tarifa"`
	EquipamientoIDs []int64  `json:"equipamiento_ids" binding:"required"`
}

// UpdateServicioRequest is a typed patch: only non-nil fields are applied.
type UpdateServicioRequest struct {
	Nombre          *string  `json:"nombre"`
	Descripcion     *string  `json:"descripcion"`
	PublicoObjetivo *string  `json:"publico_objetivo"`
	Tarifa          *float64 `json:"tarifa"`
}

// CreateEquipamientoRequest is the payload for registering lab equipment.
type CreateEquipamientoRequest struct {
	Nombre                  string     `json:"nombre" binding:"required"`
	Marca                   *string    `json:"marca"`
	Modelo                  *string    `json:"modelo"`
	NSerie                  *string    `json:"n_serie"`
	HojaEspecificacionesURL *string    `json:"hoja_especificaciones_url"`
	FechaAdquisicion        *time.Time `json:"fecha_adquisicion"`
	Estado                  *string    `json:"estado"`
	Ubicacion               *string    `json:"ubicacion"`
}

// UpdateEquipamientoRequest is a typed patch: only non-nil fields are applied.
type UpdateEquipamientoRequest struct {
	Nombre                  *string    `json:"nombre"`
	Marca                   *string    `json:"marca"`
	Modelo                  *string    `json:"modelo"`
	NSerie                  *string    `json:"n_serie"`
	HojaEspecificacionesURL *string    `json:"hoja_especificaciones_url"`
	FechaAdquisicion        *time.Time `json:"fecha_adquisicion"`
	Estado                  *string    `json:"estado"`
	Ubicacion               *string    `json:"ubicacion"`
}

// CreateActividadRequest is the payload for registering an activity.
type CreateActividadRequest struct {
	Tipo         *string    `json:"tipo"`
	Descripcion  *string    `json:"descripcion"`
	Fecha        *time.Time `json:"fecha"`
	ResultadoURL *string    `json:"resultado_url"`
}

// UpdateActividadRequest is a typed patch: only non-nil fields are applied.
type UpdateActividadRequest struct {
	Tipo         *string    `json:"tipo"`
	Descripcion  *string    `json:"descripcion"`
	Fecha        *time.Time `json:"fecha"`
	ResultadoURL *string    `json:"resultado_url"`
}

// AsignarServiciosRequest links an equipamiento to a set of servicios.
type AsignarServiciosRequest struct {
	ServicioIDs []int64 `json:"servicio_ids" binding:"required"`
}

// VincularEquipamientosRequest links an actividad to a set of equipamientos.
type VincularEquipamientosRequest struct {
	EquipamientoIDs []int64 `json:"equipamiento_ids" binding:"required"`
}

// ServicioDeEquipamiento is a joined view of a servicio linked to an
// equipamiento, carrying the link timestamp.
type ServicioDeEquipamiento struct {
	ServicioID  int64     `json:"servicio_id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
