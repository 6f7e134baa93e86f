// Package middleware carries the gin middleware and the central error
// mapping of the HTTP layer.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
	"github.com/grupoidi/deptoweb/internal/pkg/logger"
)

// HandleAPIError translates a service error into an HTTP response. Every
// controller funnels its errors through here so the status mapping lives in
// one place.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrCarreraNotFound,
		apperrors.ErrMateriaNotFound,
		apperrors.ErrRequisitoNotFound,
		apperrors.ErrPersonalNotFound,
		apperrors.ErrProyectoNotFound,
		apperrors.ErrEquipamientoNotFound,
		apperrors.ErrActividadNotFound,
		apperrors.ErrServicioNotFound,
		apperrors.ErrPublicacionNotFound,
		apperrors.ErrBlogPostNotFound,
		apperrors.ErrArchivoNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrRequisitoAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrEquipamientoInUse):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrRequisitoSelfLoop,
		apperrors.ErrInvalidDateRange,
		apperrors.ErrMissingProyectoID,
		apperrors.ErrMissingPersonalID,
		apperrors.ErrEmptyEquipamientoSet,
		apperrors.ErrNegativeTarifa,
		apperrors.ErrFileTooLarge,
		apperrors.ErrInvalidEmail):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, err.Error())

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenExpired, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, err.Error())

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())

	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")
	}
}

// HandleBindingError maps a request binding failure to a 400 response
func HandleBindingError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid request payload").
		WithDebugInfo("%v", err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
