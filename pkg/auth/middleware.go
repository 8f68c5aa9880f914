package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/atompoint/storefront/pkg/utils"
)

type ContextKey string

const PrincipalKey ContextKey = "principal"

// TokenCookie is the cookie the token is carried in when the client does not
// use the Authorization header.
const TokenCookie = "authToken"

// Principal is the authenticated identity attached to the request context.
// Only non-sensitive user fields are projected into it.
type Principal struct {
	ID       int
	Username string
	IsAdmin  bool
	Banned   bool
}

// PrincipalResolver looks the token's user up in the active storage backend.
// A nil principal without error means the user no longer exists.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID int) (*Principal, error)
}

func Middleware(resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			jwtService := &JWTService{}
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			principal, err := resolver.ResolvePrincipal(r.Context(), claims.UserID)
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if principal == nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "User not found")
				return
			}
			if principal.Banned {
				utils.RespondWithError(w, http.StatusForbidden, "Account is banned")
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := r.Context().Value(PrincipalKey).(*Principal)
		if !ok || !principal.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
