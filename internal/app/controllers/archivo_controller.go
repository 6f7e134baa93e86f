package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// ArchivoController exposes the file upload endpoints
type ArchivoController struct {
	archivoService *services.ArchivoService
}

// NewArchivoController creates a new file upload controller
func NewArchivoController(archivoService *services.ArchivoService) *ArchivoController {
	return &ArchivoController{archivoService: archivoService}
}

// Upload handles POST /archivos with a multipart "file" field
func (ctrl *ArchivoController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	if fileHeader.Size > services.MaxFileSize {
		middleware.HandleAPIError(c, apperrors.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	var tipo *string
	if contentType != "" {
		tipo = &contentType
	}

	archivo, err := ctrl.archivoService.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Size, tipo, file)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, archivo)
}

// GetArchivo handles GET /archivos/:id (metadata only)
func (ctrl *ArchivoController) GetArchivo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	archivo, err := ctrl.archivoService.GetArchivo(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, archivo)
}

// Download handles GET /archivos/:id/descargar
func (ctrl *ArchivoController) Download(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	archivo, reader, err := ctrl.archivoService.Open(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	defer reader.Close()

	contentType := "application/octet-stream"
	if archivo.Tipo != nil {
		contentType = *archivo.Tipo
	}

	c.Header("Content-Disposition", `attachment; filename="`+archivo.Nombre+`"`)
	var length int64 = -1
	if archivo.Tamano != nil {
		length = *archivo.Tamano
	}
	c.DataFromReader(http.StatusOK, length, contentType, reader, nil)
}

// ListArchivos handles GET /archivos
func (ctrl *ArchivoController) ListArchivos(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)

	archivos, err := ctrl.archivoService.ListArchivos(c.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, archivos, helpers.NewPaginationInfo(offset, limit, len(archivos)))
}

// DeleteArchivo handles DELETE /archivos/:id
func (ctrl *ArchivoController) DeleteArchivo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.archivoService.DeleteArchivo(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
