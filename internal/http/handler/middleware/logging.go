package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestId := ""
		if reqIdCtx := r.Context().Value(RequestIDKey); reqIdCtx != nil {
			requestId = reqIdCtx.(string)
		}

		next.ServeHTTP(w, r)

		m.logs.Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
			"request_id", requestId)
	})
}
