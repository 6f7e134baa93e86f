package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"carrera not found", apperrors.ErrCarreraNotFound, http.StatusNotFound},
		{"archivo not found", apperrors.ErrArchivoNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewResourceNotFoundError("el email no está suscripto"), http.StatusNotFound},
		{"duplicate requisito", apperrors.ErrRequisitoAlreadyExists, http.StatusConflict},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"equipamiento in use", apperrors.ErrEquipamientoInUse, http.StatusConflict},
		{"wrapped conflict", apperrors.NewConflictError("la carrera tiene materias asociadas"), http.StatusConflict},
		{"self loop", apperrors.ErrRequisitoSelfLoop, http.StatusBadRequest},
		{"date range", apperrors.ErrInvalidDateRange, http.StatusBadRequest},
		{"empty equipamiento set", apperrors.ErrEmptyEquipamientoSet, http.StatusBadRequest},
		{"negative tarifa", apperrors.ErrNegativeTarifa, http.StatusBadRequest},
		{"file too large", apperrors.ErrFileTooLarge, http.StatusBadRequest},
		{"wrapped validation", apperrors.NewValidationError("tipo de requisito desconocido"), http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := classifyError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotNil(t, detail)
		})
	}
}
