package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

// AuthMiddleware is the gate in front of every owner-scoped route. It
// verifies the bearer credential and resolves it to a user id; nothing
// is stored, verification depends only on the shared signing secret.
type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authorize wraps a handler so it only runs for a verified caller. The
// token is the raw Authorization header value, no "Bearer " prefix.
// The resolved user id is attached to the request context under
// UserIDKey.
func (m *AuthMiddleware) Authorize(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			m.reject(w, "Token missing. Unauthorized")
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.logs.Errorw("token verification failed", "error", err, "path", r.URL.Path)
			m.reject(w, "Unauthorized")
			return
		}

		// a structurally valid token with no subject is still a rejection
		userId, ok := claims["sub"].(string)
		if !ok || userId == "" {
			m.reject(w, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userId)
		next(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": message,
	})
}
