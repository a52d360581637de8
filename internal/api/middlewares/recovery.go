package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"code.cloudfoundry.org/lager"

	"github.com/5w1tchy/pwmeter/internal/api/apperr"
)

// Recovery turns a handler panic into a 500 problem and logs the stack.
func Recovery(logger lager.Logger) Middleware {
	logger = logger.Session("recovery")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic", fmt.Errorf("%v", rec), lager.Data{
						"request_id": GetRequestID(r),
						"method":     r.Method,
						"path":       r.URL.Path,
						"stack":      string(debug.Stack()),
					})
					apperr.WriteStatus(w, r, http.StatusInternalServerError, "Internal Server Error", "")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
