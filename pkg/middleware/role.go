package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Authorization é o resultado de uma checagem de acesso feita no handler
type Authorization struct {
	Principal *domain.Principal
	Code      string
	Message   string
}

func (a Authorization) Allowed() bool {
	return a.Code == ""
}

// Deny escreve a resposta de erro correspondente à checagem negada
func (a Authorization) Deny(w http.ResponseWriter) {
	apiErrors.WriteError(w, a.Code, a.Message, nil)
}

func RequireAuthenticated(r *http.Request) Authorization {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Tentativa de acesso sem autenticação")
		return Authorization{
			Code:    apiErrors.ErrUnauthenticated,
			Message: "Authentication required",
		}
	}

	return Authorization{Principal: principal}
}

func RequireRole(r *http.Request, role domain.Role) Authorization {
	auth := RequireAuthenticated(r)
	if !auth.Allowed() {
		return auth
	}

	if !auth.Principal.HasRole(role) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":   auth.Principal.ID,
			"user_role": auth.Principal.Role,
			"path":      r.URL.Path,
		}).Warn("Acesso negado")

		return Authorization{
			Principal: auth.Principal,
			Code:      apiErrors.ErrInsufficientPrivilege,
			Message:   "You do not have permission to access this resource",
		}
	}

	return auth
}
