package infra

import (
	"context"
	"net/http"
	"strings"

	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/pkg/jwt"
)

// AuthInterceptorHTTP resolves the caller identity once per request. A
// bearer token is verified and its subject placed under config.KeyUUID;
// requests without a token stay anonymous (sign-in itself lives outside
// this service), a present-but-invalid token is rejected.
func AuthInterceptorHTTP(next http.Handler, tokens *jwt.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.ValidateCallerToken(tokenString)
		if err != nil {
			http.Error(w, "invalid caller token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
