package models

import "time"

// Archivo is the metadata record of an uploaded file. Ruta is the opaque
// key under which the blob is stored; the blob itself lives outside the
// database.
type Archivo struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Ruta        string    `json:"ruta"`
	Tipo        *string   `json:"tipo,omitempty"`
	Tamano      *int64    `json:"tamano,omitempty"`
	FechaSubida time.Time `json:"fecha_subida"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Admin is the single administrative principal. Username is unique.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
