package models

import "time"

// Servicio represents an offered service backed by lab equipment. A servicio
// is always created with at least one associated equipamiento.
type Servicio struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	Descripcion     *string   `json:"descripcion,omitempty"`
	PublicoObjetivo *string   `json:"publico_objetivo,omitempty"`
	Tarifa          *float64  `json:"tarifa,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations (populated when needed)
	Equipamientos []*ServicioEquipamiento `json:"equipamientos,omitempty"`
}

// ServicioEquipamiento links a servicio to the equipamiento backing it.
type ServicioEquipamiento struct {
	ServicioID     int64     `json:"servicio_id"`
	EquipamientoID int64     `json:"equipamiento_id"`
	CreatedAt      time.Time `json:"created_at"`
}
