// Package repositories provides data access to the PostgreSQL schema.
// Single-row lookups return (nil, nil) when no row matches; multi-write
// operations run inside a transaction.
package repositories

import (
	"errors"

	"github.com/grupoidi/deptoweb/internal/db"
)

// ErrNoRowsAffected is returned by updates and deletes that matched no row
var ErrNoRowsAffected = errors.New("no rows affected")

// Repositories bundles every repository over a shared database handle
type Repositories struct {
	Carrera               *CarreraRepository
	Materia               *MateriaRepository
	Requisito             *RequisitoRepository
	Personal              *PersonalRepository
	Proyecto              *ProyectoRepository
	PersonalProyecto      *PersonalProyectoRepository
	Equipamiento          *EquipamientoRepository
	Actividad             *ActividadRepository
	EquipamientoActividad *EquipamientoActividadRepository
	Servicio              *ServicioRepository
	ServicioEquipamiento  *ServicioEquipamientoRepository
	Publicacion           *PublicacionRepository
	Blog                  *BlogRepository
	Subscriber            *SubscriberRepository
	Archivo               *ArchivoRepository
	Admin                 *AdminRepository
}

// NewRepositories wires every repository to the given database
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Carrera:               NewCarreraRepository(database),
		Materia:               NewMateriaRepository(database),
		Requisito:             NewRequisitoRepository(database),
		Personal:              NewPersonalRepository(database),
		Proyecto:              NewProyectoRepository(database),
		PersonalProyecto:      NewPersonalProyectoRepository(database),
		Equipamiento:          NewEquipamientoRepository(database),
		Actividad:             NewActividadRepository(database),
		EquipamientoActividad: NewEquipamientoActividadRepository(database),
		Servicio:              NewServicioRepository(database),
		ServicioEquipamiento:  NewServicioEquipamientoRepository(database),
		Publicacion:           NewPublicacionRepository(database),
		Blog:                  NewBlogRepository(database),
		Subscriber:            NewSubscriberRepository(database),
		Archivo:               NewArchivoRepository(database),
		Admin:                 NewAdminRepository(database),
	}
}
