package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// ActividadController exposes the equipment activity log endpoints
type ActividadController struct {
	actividadService *services.ActividadService
}

// NewActividadController creates a new activity log controller
func NewActividadController(actividadService *services.ActividadService) *ActividadController {
	return &ActividadController{actividadService: actividadService}
}

// CreateActividad handles POST /actividades
func (ctrl *ActividadController) CreateActividad(c *gin.Context) {
	var req dto.CreateActividadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	actividad, err := ctrl.actividadService.CreateActividad(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, actividad)
}

// GetActividad handles GET /actividades/:id
func (ctrl *ActividadController) GetActividad(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actividad, err := ctrl.actividadService.GetActividad(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, actividad)
}

// ListActividades handles GET /actividades with an optional tipo filter
func (ctrl *ActividadController) ListActividades(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	tipo := helpers.QueryString(c, "tipo")

	actividades, err := ctrl.actividadService.ListActividades(c.Request.Context(), tipo, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, actividades, helpers.NewPaginationInfo(offset, limit, len(actividades)))
}

// UpdateActividad handles PUT /actividades/:id
func (ctrl *ActividadController) UpdateActividad(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateActividadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	actividad, err := ctrl.actividadService.UpdateActividad(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, actividad)
}

// DeleteActividad handles DELETE /actividades/:id
func (ctrl *ActividadController) DeleteActividad(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.actividadService.DeleteActividad(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// VincularEquipamientos handles POST /actividades/:id/equipamientos
func (ctrl *ActividadController) VincularEquipamientos(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.VincularEquipamientosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	edges, err := ctrl.actividadService.VincularEquipamientos(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}

// DesvincularEquipamiento handles DELETE /actividades/:id/equipamientos/:equipamientoID
func (ctrl *ActividadController) DesvincularEquipamiento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	equipamientoID, ok := parseIDParam(c, "equipamientoID")
	if !ok {
		return
	}

	if err := ctrl.actividadService.DesvincularEquipamiento(c.Request.Context(), id, equipamientoID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEquipamientos handles GET /actividades/:id/equipamientos
func (ctrl *ActividadController) ListEquipamientos(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	edges, err := ctrl.actividadService.ListEquipamientosDeActividad(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}
