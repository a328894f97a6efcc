package middleware

import (
	"net/http"
	"slices"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles
// allowedRoles é a lista de roles que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := GetClaims(r.Context())
			if !ok {
				logrus.Warning("auth: access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.Role) {
				logrus.WithFields(logrus.Fields{
					"user_id": userClaims.UserID,
					"role":    userClaims.Role,
					"path":    r.URL.Path,
				}).Warn("auth: access denied")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CompanyScope bloqueia não-admins de acessar empresas diferentes da sua.
// param é o nome do parâmetro de rota com o ID da empresa.
func CompanyScope(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := GetClaims(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			companyID := httprouter.ParamsFromContext(r.Context()).ByName(param)
			if !userClaims.CanAccessCompany(companyID) {
				logrus.WithFields(logrus.Fields{
					"user_id":    userClaims.UserID,
					"company_id": companyID,
				}).Warn("auth: company access denied")
				apiErrors.WriteError(w, apiErrors.ErrCompanyAccessDenied, "you do not have access to this company", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin})
}

// AdminOrExecutive permite gerar relatórios e registrar métricas
func AdminOrExecutive() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleExecutive})
}

// ReportReaders permite a leitura de relatórios
func ReportReaders() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleExecutive, domain.RoleCoach})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleExecutive, domain.RoleCoach, domain.RoleLearner})
}
