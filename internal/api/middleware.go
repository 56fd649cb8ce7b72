package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"campusbook/internal/user"
	"campusbook/pkg/config"
	"campusbook/pkg/token"
)

// BearerAuth validates the Authorization bearer JWT and attaches the caller's
// user record to the request context.
//
// Identities are auto-provisioned: a valid token whose subject has no user row
// yet gets a student account created from the token's email/name claims.
func BearerAuth(cfg config.Config, users *user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.Parse(strings.TrimSpace(authz[7:]), cfg.JWT.SigningKey, cfg.JWT.Issuer)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "invalid token")
				return
			}

			u, err := users.FindByID(r.Context(), claims.Subject)
			if err != nil {
				if !errors.Is(err, pgx.ErrNoRows) || claims.Email == "" {
					WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "unknown identity")
					return
				}
				name := claims.Name
				if name == "" {
					name = claims.Email
					if i := strings.IndexByte(claims.Email, '@'); i > 0 {
						name = claims.Email[:i]
					}
				}
				u, err = users.Provision(r.Context(), claims.Subject, name, claims.Email)
				if err != nil {
					WriteError(w, http.StatusInternalServerError, CodeInternal, "failed to provision user")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// RequireRole gates a subtree to callers holding the given role.
// Admin passes every role check.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := UserFromContext(r.Context())
			if u == nil {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "missing identity")
				return
			}
			if u.Role != role && u.Role != user.RoleAdmin {
				WriteError(w, http.StatusForbidden, CodeForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
