package services

import (
	"context"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
	"github.com/grupoidi/deptoweb/internal/pkg/auth"
)

// AdminRepository is the persistence surface for admin accounts
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// AuthService authenticates the site admin and issues access tokens
type AuthService struct {
	adminRepo  AdminRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(adminRepo AdminRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies the admin credentials and returns a signed access token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwtService.AccessTokenTTL().Seconds()),
	}, nil
}
