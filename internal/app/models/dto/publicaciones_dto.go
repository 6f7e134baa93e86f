package dto

import "github.com/grupoidi/deptoweb/internal/app/models"

// CreatePublicacionRequest is the payload for registering a publication.
// Every author that carries a personal_id must reference an existing
// personal row.
type CreatePublicacionRequest struct {
	Titulo         string         `json:"titulo" binding:"required"`
	CitaFormateada *string        `json:"cita_formateada"`
	DOIURL         *string        `json:"doi_url"`
	EnlacePDF      *string        `json:"enlace_pdf"`
	Anio           *int           `json:"anio"`
	Estado         *string        `json:"estado"`
	Authors        []models.Autor `json:"authors"`
}

// UpdatePublicacionRequest is a typed patch: only non-nil fields are applied.
// A non-nil Authors slice replaces the whole author list.
type UpdatePublicacionRequest struct {
	Titulo         *string         `json:"titulo"`
	CitaFormateada *string         `json:"cita_formateada"`
	DOIURL         *string         `json:"doi_url"`
	EnlacePDF      *string         `json:"enlace_pdf"`
	Anio           *int            `json:"anio"`
	Estado         *string         `json:"estado"`
	Authors        *[]models.Autor `json:"authors"`
}

// LoginRequest is the admin authentication payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
