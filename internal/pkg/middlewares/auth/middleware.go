package auth

import (
	"context"
	"net/http"
	"strings"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type claimsContextKey struct{}

// Middleware проверяет bearer-токен и кладет клеймы в контекст запроса.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("rejected request with invalid token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin пропускает только админские токены. Вешается после Middleware.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !claims.IsAdmin() {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ContextWithClaims(ctx context.Context, claims *entities.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*entities.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*entities.TokenClaims)
	return claims, ok
}
