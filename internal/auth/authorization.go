package auth

import (
	"log/slog"
	"net/http"
)

// RoleGuard centralizes role checks so each route declares the role it needs
// instead of scattering checks through handlers or relying on the UI hiding
// buttons.
type RoleGuard struct {
	logger *slog.Logger
}

func NewRoleGuard(logger *slog.Logger) *RoleGuard {
	return &RoleGuard{logger: logger}
}

func (g *RoleGuard) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if user.Role != role {
				g.logger.WarnContext(r.Context(), "access denied: role required",
					"user_id", user.ID,
					"user_role", user.Role,
					"required_role", role)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (g *RoleGuard) RequireAdmin() func(http.Handler) http.Handler {
	return g.RequireRole(RoleAdmin)
}

func (g *RoleGuard) RequireEmployee() func(http.Handler) http.Handler {
	return g.RequireRole(RoleEmployee)
}
