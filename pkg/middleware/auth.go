package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/analytics-bot-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"
)

// publicPaths são as rotas acessíveis sem token: o webhook (autenticado
// pelo verify token da plataforma), o healthcheck e o login.
var publicPaths = map[string]bool{
	"/webhook":     true,
	"/healthcheck": true,
	"/v1/login":    true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
