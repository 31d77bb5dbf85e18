package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// RequestID attaches a fresh uuid to every request context.
func (m *RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), RequestIDKey, uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
