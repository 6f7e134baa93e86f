package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// PersonalController exposes the staff directory endpoints
type PersonalController struct {
	personalService *services.PersonalService
}

// NewPersonalController creates a new staff directory controller
func NewPersonalController(personalService *services.PersonalService) *PersonalController {
	return &PersonalController{personalService: personalService}
}

// CreatePersonal handles POST /personal
func (ctrl *PersonalController) CreatePersonal(c *gin.Context) {
	var req dto.CreatePersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	personal, err := ctrl.personalService.CreatePersonal(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, personal)
}

// GetPersonal handles GET /personal/:id
func (ctrl *PersonalController) GetPersonal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	personal, err := ctrl.personalService.GetPersonal(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, personal)
}

// ListPersonal handles GET /personal. By default only active entries are
// listed; activos=false includes deactivated ones.
func (ctrl *PersonalController) ListPersonal(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	soloActivos := helpers.QueryBool(c, "activos", true)

	personal, err := ctrl.personalService.ListPersonal(c.Request.Context(), soloActivos, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, personal, helpers.NewPaginationInfo(offset, limit, len(personal)))
}

// UpdatePersonal handles PUT /personal/:id
func (ctrl *PersonalController) UpdatePersonal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	personal, err := ctrl.personalService.UpdatePersonal(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, personal)
}

// DeletePersonal handles DELETE /personal/:id (soft delete)
func (ctrl *PersonalController) DeletePersonal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.personalService.DeletePersonal(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// VincularProyectos handles POST /personal/:id/proyectos
func (ctrl *PersonalController) VincularProyectos(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.VincularProyectosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	edges, err := ctrl.personalService.VincularProyectos(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}

// ListProyectos handles GET /personal/:id/proyectos
func (ctrl *PersonalController) ListProyectos(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	edges, err := ctrl.personalService.ListProyectosDePersonal(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, edges)
}
