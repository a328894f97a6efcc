package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles emitidos pelo provedor de autenticação
const (
	RoleAdmin     = "admin"
	RoleExecutive = "executive"
	RoleCoach     = "coach"
	RoleLearner   = "learner"
)

type Claims struct {
	UserID    string `json:"user_id"`
	UserEmail string `json:"email,omitempty"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// CanAccessCompany verifica se o usuário pode acessar os dados da empresa informada
func (c *Claims) CanAccessCompany(companyID string) bool {
	if c.Role == RoleAdmin {
		return true
	}
	return c.CompanyID != "" && c.CompanyID == companyID
}
