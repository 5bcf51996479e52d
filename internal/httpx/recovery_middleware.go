package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw, ok := w.(*responseWriter)
			if !ok {
				rw = &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			}

			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.String("request_id", RequestIDFrom(r)),
						zap.Any("error", rec),
						zap.ByteString("stack", debug.Stack()),
					)

					// too late for an error envelope once the handler started writing
					if !rw.wroteHeader() {
						Error(rw, r, fmt.Errorf("panic: %v", rec))
					}
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
