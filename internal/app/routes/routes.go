// Package routes wires the HTTP endpoints to their controllers. Reads are
// public; every mutation sits behind the admin JWT middleware.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/controllers"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/auth"
)

// Controllers bundles every controller the router needs
type Controllers struct {
	Auth         *controllers.AuthController
	Academico    *controllers.AcademicoController
	Personal     *controllers.PersonalController
	Proyecto     *controllers.ProyectoController
	Equipamiento *controllers.EquipamientoController
	Actividad    *controllers.ActividadController
	Servicio     *controllers.ServicioController
	Publicacion  *controllers.PublicacionController
	Blog         *controllers.BlogController
	Archivo      *controllers.ArchivoController
}

// Setup registers every route on the engine
func Setup(router *gin.Engine, ctrl Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	admin := middleware.JWTAuth(jwtService)

	api.POST("/auth/login", ctrl.Auth.Login)

	carreras := api.Group("/carreras")
	{
		carreras.GET("", ctrl.Academico.ListCarreras)
		carreras.GET("/:id", ctrl.Academico.GetCarrera)
		carreras.POST("", admin, ctrl.Academico.CreateCarrera)
		carreras.PUT("/:id", admin, ctrl.Academico.UpdateCarrera)
		carreras.DELETE("/:id", admin, ctrl.Academico.DeleteCarrera)
	}

	materias := api.Group("/materias")
	{
		materias.GET("", ctrl.Academico.ListMaterias)
		materias.GET("/:id", ctrl.Academico.GetMateria)
		materias.POST("", admin, ctrl.Academico.CreateMateria)
		materias.PUT("/:id", admin, ctrl.Academico.UpdateMateria)
		materias.DELETE("/:id", admin, ctrl.Academico.DeleteMateria)
	}

	requisitos := api.Group("/requisitos")
	{
		requisitos.GET("", ctrl.Academico.ListRequisitos)
		requisitos.GET("/:id", ctrl.Academico.GetRequisito)
		requisitos.POST("", admin, ctrl.Academico.CreateRequisito)
		requisitos.PUT("/:id", admin, ctrl.Academico.UpdateRequisito)
		requisitos.DELETE("/:id", admin, ctrl.Academico.DeleteRequisito)
	}

	personal := api.Group("/personal")
	{
		personal.GET("", ctrl.Personal.ListPersonal)
		personal.GET("/:id", ctrl.Personal.GetPersonal)
		personal.GET("/:id/proyectos", ctrl.Personal.ListProyectos)
		personal.POST("", admin, ctrl.Personal.CreatePersonal)
		personal.PUT("/:id", admin, ctrl.Personal.UpdatePersonal)
		personal.DELETE("/:id", admin, ctrl.Personal.DeletePersonal)
		personal.POST("/:id/proyectos", admin, ctrl.Personal.VincularProyectos)
	}

	proyectos := api.Group("/proyectos")
	{
		proyectos.GET("", ctrl.Proyecto.ListProyectos)
		proyectos.GET("/:id", ctrl.Proyecto.GetProyecto)
		proyectos.GET("/:id/personal", ctrl.Proyecto.ListPersonal)
		proyectos.POST("", admin, ctrl.Proyecto.CreateProyecto)
		proyectos.PUT("/:id", admin, ctrl.Proyecto.UpdateProyecto)
		proyectos.DELETE("/:id", admin, ctrl.Proyecto.DeleteProyecto)
		proyectos.POST("/:id/personal", admin, ctrl.Proyecto.AsignarPersonal)
		proyectos.PUT("/:id/personal", admin, ctrl.Proyecto.ReemplazarPersonal)
	}

	equipamientos := api.Group("/equipamientos")
	{
		equipamientos.GET("", ctrl.Equipamiento.ListEquipamientos)
		equipamientos.GET("/:id", ctrl.Equipamiento.GetEquipamiento)
		equipamientos.GET("/:id/servicios", ctrl.Equipamiento.ListServicios)
		equipamientos.GET("/:id/actividades", ctrl.Equipamiento.ListActividades)
		equipamientos.POST("", admin, ctrl.Equipamiento.CreateEquipamiento)
		equipamientos.PUT("/:id", admin, ctrl.Equipamiento.UpdateEquipamiento)
		equipamientos.DELETE("/:id", admin, ctrl.Equipamiento.DeleteEquipamiento)
		equipamientos.POST("/:id/servicios", admin, ctrl.Equipamiento.AsignarServicios)
	}

	actividades := api.Group("/actividades")
	{
		actividades.GET("", ctrl.Actividad.ListActividades)
		actividades.GET("/:id", ctrl.Actividad.GetActividad)
		actividades.GET("/:id/equipamientos", ctrl.Actividad.ListEquipamientos)
		actividades.POST("", admin, ctrl.Actividad.CreateActividad)
		actividades.PUT("/:id", admin, ctrl.Actividad.UpdateActividad)
		actividades.DELETE("/:id", admin, ctrl.Actividad.DeleteActividad)
		actividades.POST("/:id/equipamientos", admin, ctrl.Actividad.VincularEquipamientos)
		actividades.DELETE("/:id/equipamientos/:equipamientoID", admin, ctrl.Actividad.DesvincularEquipamiento)
	}

	servicios := api.Group("/servicios")
	{
		servicios.GET("", ctrl.Servicio.ListServicios)
		servicios.GET("/:id", ctrl.Servicio.GetServicio)
		servicios.POST("", admin, ctrl.Servicio.CreateServicio)
		servicios.PUT("/:id", admin, ctrl.Servicio.UpdateServicio)
		servicios.DELETE("/:id", admin, ctrl.Servicio.DeleteServicio)
		servicios.POST("/:id/equipamientos", admin, ctrl.Servicio.AgregarEquipamientos)
		servicios.DELETE("/:id/equipamientos/:equipamientoID", admin, ctrl.Servicio.QuitarEquipamiento)
	}

	publicaciones := api.Group("/publicaciones")
	{
		publicaciones.GET("", ctrl.Publicacion.ListPublicaciones)
		publicaciones.GET("/:id", ctrl.Publicacion.GetPublicacion)
		publicaciones.POST("", admin, ctrl.Publicacion.CreatePublicacion)
		publicaciones.PUT("/:id", admin, ctrl.Publicacion.UpdatePublicacion)
		publicaciones.DELETE("/:id", admin, ctrl.Publicacion.DeletePublicacion)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", ctrl.Blog.ListPosts)
		blog.GET("/buscar", ctrl.Blog.BuscarPosts)
		blog.GET("/:id", ctrl.Blog.GetPost)
		blog.POST("/subscribir", ctrl.Blog.Subscribe)
		blog.DELETE("/subscribir", ctrl.Blog.Unsubscribe)
		blog.GET("/subscriptores", admin, ctrl.Blog.ListSubscribers)
		blog.POST("", admin, ctrl.Blog.CreatePost)
		blog.PUT("/:id", admin, ctrl.Blog.UpdatePost)
		blog.DELETE("/:id", admin, ctrl.Blog.DeletePost)
	}

	archivos := api.Group("/archivos")
	{
		archivos.GET("", ctrl.Archivo.ListArchivos)
		archivos.GET("/:id", ctrl.Archivo.GetArchivo)
		archivos.GET("/:id/descargar", ctrl.Archivo.Download)
		archivos.POST("", admin, ctrl.Archivo.Upload)
		archivos.DELETE("/:id", admin, ctrl.Archivo.DeleteArchivo)
	}
}
