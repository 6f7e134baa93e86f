package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// EquipamientoController exposes the lab equipment endpoints
type EquipamientoController struct {
	equipamientoService *services.EquipamientoService
	actividadService    *services.ActividadService
}

// NewEquipamientoController creates a new equipment registry controller
func NewEquipamientoController(equipamientoService *services.EquipamientoService, actividadService *services.ActividadService) *EquipamientoController {
	return &EquipamientoController{
		equipamientoService: equipamientoService,
		actividadService:    actividadService,
	}
}

// CreateEquipamiento handles POST /equipamientos
func (ctrl *EquipamientoController) CreateEquipamiento(c *gin.Context) {
	var req dto.CreateEquipamientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	equipamiento, err := ctrl.equipamientoService.CreateEquipamiento(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, equipamiento)
}

// GetEquipamiento handles GET /equipamientos/:id
func (ctrl *EquipamientoController) GetEquipamiento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	equipamiento, err := ctrl.equipamientoService.GetEquipamiento(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, equipamiento)
}

// ListEquipamientos handles GET /equipamientos with an optional estado filter
func (ctrl *EquipamientoController) ListEquipamientos(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	estado := helpers.QueryString(c, "estado")

	equipamientos, err := ctrl.equipamientoService.ListEquipamientos(c.Request.Context(), estado, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, equipamientos, helpers.NewPaginationInfo(offset, limit, len(equipamientos)))
}

// UpdateEquipamiento handles PUT /equipamientos/:id
func (ctrl *EquipamientoController) UpdateEquipamiento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEquipamientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	equipamiento, err := ctrl.equipamientoService.UpdateEquipamiento(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, equipamiento)
}

// DeleteEquipamiento handles DELETE /equipamientos/:id
func (ctrl *EquipamientoController) DeleteEquipamiento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.equipamientoService.DeleteEquipamiento(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AsignarServicios handles POST /equipamientos/:id/servicios
func (ctrl *EquipamientoController) AsignarServicios(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AsignarServiciosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	servicios, err := ctrl.equipamientoService.AsignarServicios(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, servicios)
}

// ListServicios handles GET /equipamientos/:id/servicios
func (ctrl *EquipamientoController) ListServicios(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	servicios, err := ctrl.equipamientoService.ListServiciosDeEquipamiento(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, servicios)
}

// ListActividades handles GET /equipamientos/:id/actividades
func (ctrl *EquipamientoController) ListActividades(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	edges, err := ctrl.actividadService.ListActividadesDeEquipamiento(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}
