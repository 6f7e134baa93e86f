package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// Academic catalog errors
var (
	ErrCarreraNotFound        = errors.New("carrera not found")
	ErrMateriaNotFound        = errors.New("materia not found")
	ErrRequisitoNotFound      = errors.New("requisito not found")
	ErrRequisitoAlreadyExists = errors.New("requisito for this pair of materias already exists")
	ErrRequisitoSelfLoop      = errors.New("a materia cannot be a requisito of itself")
)

// Directory and project errors
var (
	ErrPersonalNotFound   = errors.New("personal not found")
	ErrProyectoNotFound   = errors.New("proyecto not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidDateRange   = errors.New("fecha_inicio must not be after fecha_fin")
	ErrMissingProyectoID  = errors.New("each item must carry a proyecto_id")
	ErrMissingPersonalID  = errors.New("each item must carry a personal_id")
)

// Lab registry errors
var (
	ErrEquipamientoNotFound = errors.New("equipamiento not found")
	ErrActividadNotFound    = errors.New("actividad not found")
	ErrServicioNotFound     = errors.New("servicio not found")
	ErrEquipamientoInUse    = errors.New("equipamiento is referenced by actividades or servicios")
	ErrEmptyEquipamientoSet = errors.New("a servicio requires at least one equipamiento")
	ErrNegativeTarifa       = errors.New("tarifa cannot be negative")
)

// Content errors
var (
	ErrPublicacionNotFound = errors.New("publicacion not found")
	ErrBlogPostNotFound    = errors.New("blog post not found")
	ErrArchivoNotFound     = errors.New("archivo not found")
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrInvalidEmail        = errors.New("invalid email")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invariant violations with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
