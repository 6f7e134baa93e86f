package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// ServicioController exposes the service catalog endpoints
type ServicioController struct {
	servicioService *services.ServicioService
}

// NewServicioController creates a new service catalog controller
func NewServicioController(servicioService *services.ServicioService) *ServicioController {
	return &ServicioController{servicioService: servicioService}
}

// CreateServicio handles POST /servicios
func (ctrl *ServicioController) CreateServicio(c *gin.Context) {
	var req dto.CreateServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	servicio, err := ctrl.servicioService.CreateServicio(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, servicio)
}

// GetServicio handles GET /servicios/:id
func (ctrl *ServicioController) GetServicio(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	servicio, err := ctrl.servicioService.GetServicio(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, servicio)
}

// ListServicios handles GET /servicios
func (ctrl *ServicioController) ListServicios(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)

	servicios, err := ctrl.servicioService.ListServicios(c.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, servicios, helpers.NewPaginationInfo(offset, limit, len(servicios)))
}

// UpdateServicio handles PUT /servicios/:id
func (ctrl *ServicioController) UpdateServicio(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	servicio, err := ctrl.servicioService.UpdateServicio(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, servicio)
}

// AgregarEquipamientos handles POST /servicios/:id/equipamientos
func (ctrl *ServicioController) AgregarEquipamientos(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.VincularEquipamientosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	edges, err := ctrl.servicioService.AgregarEquipamientos(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}

// QuitarEquipamiento handles DELETE /servicios/:id/equipamientos/:equipamientoID
func (ctrl *ServicioController) QuitarEquipamiento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	equipamientoID, ok := parseIDParam(c, "equipamientoID")
	if !ok {
		return
	}

	if err := ctrl.servicioService.QuitarEquipamiento(c.Request.Context(), id, equipamientoID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteServicio handles DELETE /servicios/:id
func (ctrl *ServicioController) DeleteServicio(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.servicioService.DeleteServicio(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
