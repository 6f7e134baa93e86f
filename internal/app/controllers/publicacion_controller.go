package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// PublicacionController exposes the publication registry endpoints
type PublicacionController struct {
	publicacionService *services.PublicacionService
}

// NewPublicacionController creates a new publication registry controller
func NewPublicacionController(publicacionService *services.PublicacionService) *PublicacionController {
	return &PublicacionController{publicacionService: publicacionService}
}

// CreatePublicacion handles POST /publicaciones
func (ctrl *PublicacionController) CreatePublicacion(c *gin.Context) {
	var req dto.CreatePublicacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	publicacion, err := ctrl.publicacionService.CreatePublicacion(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, publicacion)
}

// GetPublicacion handles GET /publicaciones/:id
func (ctrl *PublicacionController) GetPublicacion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	publicacion, err := ctrl.publicacionService.GetPublicacion(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, publicacion)
}

// ListPublicaciones handles GET /publicaciones with optional anio and estado filters
func (ctrl *PublicacionController) ListPublicaciones(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	anio := helpers.QueryInt(c, "anio")
	estado := helpers.QueryString(c, "estado")

	publicaciones, err := ctrl.publicacionService.ListPublicaciones(c.Request.Context(), anio, estado, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, publicaciones, helpers.NewPaginationInfo(offset, limit, len(publicaciones)))
}

// UpdatePublicacion handles PUT /publicaciones/:id
func (ctrl *PublicacionController) UpdatePublicacion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePublicacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	publicacion, err := ctrl.publicacionService.UpdatePublicacion(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, publicacion)
}

// DeletePublicacion handles DELETE /publicaciones/:id
func (ctrl *PublicacionController) DeletePublicacion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.publicacionService.DeletePublicacion(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
