package middleware

import (
	"net/http"
	"runtime/debug"

	"pet-clinic-admin/internal/platform/httpjson"
	"pet-clinic-admin/internal/platform/logger"
)

// Recover reemplaza chi/middleware.Recoverer: loguea el panic con stack
// y responde el 500 en el mismo formato JSON que el resto de errores.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"panic":  rec,
				"stack":  string(debug.Stack()),
				"method": r.Method,
				"path":   r.URL.Path,
			})
			httpjson.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
