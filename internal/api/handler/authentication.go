package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

type LoginResponse struct {
	Message  string      `json:"message"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type StatusResponse struct {
	IsAuthenticated bool        `json:"is_authenticated"`
	Username        string      `json:"username,omitempty"`
	Role            domain.Role `json:"role,omitempty"`
}

func Signup(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if _, err := service.Signup(r.Context(), req); err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, MessageResponse{Message: "User created successfully"})
	}
}

func Login(service authenticating.Authenticator, cookieCfg config.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		session, err := service.Login(r.Context(), req)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		http.SetCookie(w, sessionCookie(cookieCfg, session.Token, session.ExpiresAt))

		writeJSON(w, r, http.StatusOK, LoginResponse{
			Message:  "Login successful",
			Username: session.Principal.Username,
			Role:     session.Principal.Role,
		})
	}
}

// Logout é idempotente: sem sessão ativa apenas limpa o cookie
func Logout(cookieCfg config.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := middleware.PrincipalFromContext(r.Context()); ok {
			log.ForContext(r.Context()).WithField("user_id", principal.ID).Info("Sessão encerrada")
		}

		http.SetCookie(w, sessionCookie(cookieCfg, "", time.Unix(0, 0)))
		writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Logout successful"})
	}
}

func Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			writeJSON(w, r, http.StatusOK, StatusResponse{IsAuthenticated: false})
			return
		}

		writeJSON(w, r, http.StatusOK, StatusResponse{
			IsAuthenticated: true,
			Username:        principal.Username,
			Role:            principal.Role,
		})
	}
}

func sessionCookie(cfg config.Auth, value string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("Erro na autenticação")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado na autenticação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
}
