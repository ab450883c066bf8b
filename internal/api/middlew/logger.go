package middlew

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

// WithLogger кладёт в контекст логгер с request_id текущего запроса.
func WithLogger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := log
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				reqLog = log.With(slog.String("request_id", reqID))
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, reqLog)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLogger возвращает логгер запроса; вне middleware — slog.Default().
func GetLogger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
