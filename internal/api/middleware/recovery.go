package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/sleep-journal/pkg/problem"
	"go.uber.org/zap"
)

// Recovery recovers from panics, logs the stack and returns a 500 error
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						zap.Any("panic", err),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					problem.InternalError("An unexpected internal error occurred. Please try again later.").Write(w, r)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
