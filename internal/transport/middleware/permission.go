package middleware

import (
	"log/slog"
	"net/http"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/auth"
)

// RequireRoles allows the request through when the authenticated caller holds
// any of the listed roles.
func RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := internal.AuthFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			callerRole, err := auth.RoleFromString(authCtx.Role)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if callerRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			slog.Warn("access denied: caller lacks required role",
				"subject", authCtx.Subject,
				"caller_role", authCtx.Role,
				"required_roles", roles)
			http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
		})
	}
}

// RequirePermissions allows the request through when the caller's role grants
// any of the listed permissions.
func RequirePermissions(permissions ...auth.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := internal.AuthFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			callerRole, err := auth.RoleFromString(authCtx.Role)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			for _, permission := range permissions {
				if auth.HasPermission(callerRole, permission) {
					next.ServeHTTP(w, r)
					return
				}
			}

			slog.Warn("access denied: role lacks required permission",
				"subject", authCtx.Subject,
				"caller_role", authCtx.Role,
				"required_permissions", permissions)
			http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
		})
	}
}
