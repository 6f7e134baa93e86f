package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// ProyectoController exposes the research project endpoints
type ProyectoController struct {
	proyectoService *services.ProyectoService
}

// NewProyectoController creates a new project controller
func NewProyectoController(proyectoService *services.ProyectoService) *ProyectoController {
	return &ProyectoController{proyectoService: proyectoService}
}

// CreateProyecto handles POST /proyectos
func (ctrl *ProyectoController) CreateProyecto(c *gin.Context) {
	var req dto.CreateProyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	proyecto, err := ctrl.proyectoService.CreateProyecto(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, proyecto)
}

// GetProyecto handles GET /proyectos/:id
func (ctrl *ProyectoController) GetProyecto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	proyecto, err := ctrl.proyectoService.GetProyecto(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, proyecto)
}

// ListProyectos handles GET /proyectos
func (ctrl *ProyectoController) ListProyectos(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)

	proyectos, err := ctrl.proyectoService.ListProyectos(c.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, proyectos, helpers.NewPaginationInfo(offset, limit, len(proyectos)))
}

// UpdateProyecto handles PUT /proyectos/:id
func (ctrl *ProyectoController) UpdateProyecto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	proyecto, err := ctrl.proyectoService.UpdateProyecto(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, proyecto)
}

// DeleteProyecto handles DELETE /proyectos/:id
func (ctrl *ProyectoController) DeleteProyecto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.proyectoService.DeleteProyecto(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AsignarPersonal handles POST /proyectos/:id/personal
func (ctrl *ProyectoController) AsignarPersonal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AsignarPersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	edges, err := ctrl.proyectoService.AsignarPersonal(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}

// ReemplazarPersonal handles PUT /proyectos/:id/personal
func (ctrl *ProyectoController) ReemplazarPersonal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ReemplazarPersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	edges, err := ctrl.proyectoService.ReemplazarPersonal(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}

// ListPersonal handles GET /proyectos/:id/personal
func (ctrl *ProyectoController) ListPersonal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	edges, err := ctrl.proyectoService.ListPersonalDeProyecto(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}
