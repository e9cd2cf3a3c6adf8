package auth

import (
	"context"

	"github.com/salonova/scheduling-backend-go/internal/config"
	"github.com/salonova/scheduling-backend-go/internal/domain/auth"
	"github.com/salonova/scheduling-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type serviceImpl struct {
	adminCfg   config.AdminConfig
	jwtService jwt.Service
}

func NewAuthService(adminCfg config.AdminConfig, jwtService jwt.Service) auth.Service {
	return &serviceImpl{
		adminCfg:   adminCfg,
		jwtService: jwtService,
	}
}

// Login implements auth.Service. The manager credential is configured via
// environment; the password is checked against its bcrypt hash.
func (s *serviceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Email != s.adminCfg.Email {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminCfg.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Email, "manager")
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
