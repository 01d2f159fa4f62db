package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/pkg/apiErrors"
)

// Papéis dos operadores do motor
const (
	RoleAdmin      = 1 // dispara ciclos e varreduras
	RoleSupervisor = 2 // habilita e desabilita campanhas
	RoleViewer     = 3
)

// RequireRoles bloqueia a rota para operadores fora da lista
func RequireRoles(allowed ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Operador não autenticado", nil)
				return
			}

			if !slices.Contains(allowed, claims.UserRoleID) {
				logrus.WithFields(logrus.Fields{
					"user_email": claims.UserEmail,
					"user_role":  claims.UserRoleID,
					"path":       r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Operador sem permissão para esta operação", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin)
}

func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor)
}

// AllRoles libera leitura para qualquer papel autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor, RoleViewer)
}
