package authenticating

import (
	"errors"
	"fmt"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/config"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator valida tokens emitidos pelo provedor de autenticação externo.
// A API não emite tokens nem guarda senhas.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

var knownRoles = map[string]bool{
	domain.RoleAdmin:     true,
	domain.RoleExecutive: true,
	domain.RoleCoach:     true,
	domain.RoleLearner:   true,
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "")
	}

	if s.cfg.Auth.Secret == "" {
		return nil, NewAuthError(ErrSecretNotDefined, apiErrors.ErrInternalServer, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.Role == "" {
		return nil, NewUserAuthError(ErrMissingRole, apiErrors.ErrInvalidToken, claims.UserID, "")
	}

	if !knownRoles[claims.Role] {
		return nil, NewUserAuthError(ErrUnknownRole, apiErrors.ErrInvalidToken, claims.UserID, claims.Role)
	}

	return claims, nil
}
