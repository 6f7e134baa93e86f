package models

import "time"

// Equipamiento represents a piece of lab equipment.
type Equipamiento struct {
	ID                      int64      `json:"id"`
	Nombre                  string     `json:"nombre"`
	Marca                   *string    `json:"marca,omitempty"`
	Modelo                  *string    `json:"modelo,omitempty"`
	NSerie                  *string    `json:"n_serie,omitempty"`
	HojaEspecificacionesURL *string    `json:"hoja_especificaciones_url,omitempty"`
	FechaAdquisicion        *time.Time `json:"fecha_adquisicion,omitempty"`
	Estado                  *string    `json:"estado,omitempty"`
	Ubicacion               *string    `json:"ubicacion,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// Actividad represents an activity carried out with lab equipment.
type Actividad struct {
	ID           int64      `json:"id"`
	Tipo         *string    `json:"tipo,omitempty"`
	Descripcion  *string    `json:"descripcion,omitempty"`
	Fecha        *time.Time `json:"fecha,omitempty"`
	ResultadoURL *string    `json:"resultado_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EquipamientoActividad links an equipamiento to an actividad.
type EquipamientoActividad struct {
	EquipamientoID int64     `json:"equipamiento_id"`
	ActividadID    int64     `json:"actividad_id"`
	CreatedAt      time.Time `json:"created_at"`
}
