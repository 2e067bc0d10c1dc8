package middleware

import (
	"net/http"
	"runtime/debug"

	"clinic-pharmacy-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// Recovery turns a panic into a 500 envelope and logs the stack.
func Recovery(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(logrus.Fields{
						"request_id": GetRequestIDFromContext(r.Context()),
						"panic":      rec,
						"stack":      string(debug.Stack()),
					}).Error("panic recovered")
					response.InternalServerError(w, "")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
