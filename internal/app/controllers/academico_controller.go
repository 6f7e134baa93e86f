package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// AcademicoController exposes the course catalog endpoints
type AcademicoController struct {
	academicoService *services.AcademicoService
}

// NewAcademicoController creates a new academic catalog controller
func NewAcademicoController(academicoService *services.AcademicoService) *AcademicoController {
	return &AcademicoController{academicoService: academicoService}
}

// CreateCarrera handles POST /carreras
func (ctrl *AcademicoController) CreateCarrera(c *gin.Context) {
	var req dto.CreateCarreraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	carrera, err := ctrl.academicoService.CreateCarrera(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, carrera)
}

// GetCarrera handles GET /carreras/:id
func (ctrl *AcademicoController) GetCarrera(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	carrera, err := ctrl.academicoService.GetCarrera(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, carrera)
}

// ListCarreras handles GET /carreras
func (ctrl *AcademicoController) ListCarreras(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)

	carreras, err := ctrl.academicoService.ListCarreras(c.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, carreras, helpers.NewPaginationInfo(offset, limit, len(carreras)))
}

// UpdateCarrera handles PUT /carreras/:id
func (ctrl *AcademicoController) UpdateCarrera(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCarreraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	carrera, err := ctrl.academicoService.UpdateCarrera(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, carrera)
}

// DeleteCarrera handles DELETE /carreras/:id
func (ctrl *AcademicoController) DeleteCarrera(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.academicoService.DeleteCarrera(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateMateria handles POST /materias
func (ctrl *AcademicoController) CreateMateria(c *gin.Context) {
	var req dto.CreateMateriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	materia, err := ctrl.academicoService.CreateMateria(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, materia)
}

// GetMateria handles GET /materias/:id
func (ctrl *AcademicoController) GetMateria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	materia, err := ctrl.academicoService.GetMateria(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, materia)
}

// ListMaterias handles GET /materias with optional carrera and semestre filters
func (ctrl *AcademicoController) ListMaterias(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	carreraID := helpers.QueryInt64(c, "carrera")
	semestre := helpers.QueryInt(c, "semestre")

	materias, err := ctrl.academicoService.ListMaterias(c.Request.Context(), carreraID, semestre, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, materias, helpers.NewPaginationInfo(offset, limit, len(materias)))
}

// UpdateMateria handles PUT /materias/:id
func (ctrl *AcademicoController) UpdateMateria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMateriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	materia, err := ctrl.academicoService.UpdateMateria(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, materia)
}

// DeleteMateria handles DELETE /materias/:id
func (ctrl *AcademicoController) DeleteMateria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.academicoService.DeleteMateria(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateRequisito handles POST /requisitos
func (ctrl *AcademicoController) CreateRequisito(c *gin.Context) {
	var req dto.CreateRequisitoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	requisito, err := ctrl.academicoService.CreateRequisito(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, requisito)
}

// GetRequisito handles GET /requisitos/:id
func (ctrl *AcademicoController) GetRequisito(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requisito, err := ctrl.academicoService.GetRequisito(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, requisito)
}

// ListRequisitos handles GET /requisitos with an optional materia filter
func (ctrl *AcademicoController) ListRequisitos(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	materiaID := helpers.QueryInt64(c, "materia")

	requisitos, err := ctrl.academicoService.ListRequisitos(c.Request.Context(), materiaID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, requisitos, helpers.NewPaginationInfo(offset, limit, len(requisitos)))
}

// UpdateRequisito handles PUT /requisitos/:id
func (ctrl *AcademicoController) UpdateRequisito(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRequisitoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	requisito, err := ctrl.academicoService.UpdateRequisito(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, requisito)
}

// DeleteRequisito handles DELETE /requisitos/:id
func (ctrl *AcademicoController) DeleteRequisito(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.academicoService.DeleteRequisito(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
