// Package httpjson junta lo que antes estaba duplicado en cada handler:
// escribir JSON, traducir errores de dominio a status y leer el body.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	msgMalformed = "Not formed correctly JSON or unreadable request body"
	msgInternal  = "Internal server error"
)

// ErrorBody es el formato común de error.
type ErrorBody struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// MessageBody se usa en respuestas sin entidad (login, logout, access-denied).
type MessageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Status: status, Message: msg})
}

// StatusFor mapea la clase de error a código HTTP.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict, apperr.KindInvalidState:
		return http.StatusConflict
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WriteError traduce err a {"status","message"}. Los errores no clasificados
// se loguean y salen como 500 genérico.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)

	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"err":    err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
		WriteMessage(w, status, msgInternal)
		return
	}

	var e *apperr.Error
	if errors.As(err, &e) {
		WriteJSON(w, status, ErrorBody{Status: status, Message: e.Message, Errors: e.Fields})
		return
	}
	// sentinel de storage sin mensaje de dominio
	WriteMessage(w, status, err.Error())
}

// Decode lee el body JSON en dst. Body vacío o mal formado => InvalidInput.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.InvalidInput(msgMalformed)
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return &apperr.Error{Kind: apperr.KindInvalidInput, Message: msgMalformed, Err: err}
	}
	return nil
}

// IDParam parsea un path param numérico. Un id <= 0 se devuelve tal cual:
// el lookup posterior responde NotFound.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.InvalidInput("Invalid %s: %s", name, raw)
	}
	return id, nil
}

// RequiredQuery exige un query param presente.
func RequiredQuery(r *http.Request, name string) (string, error) {
	q := r.URL.Query()
	if !q.Has(name) {
		return "", apperr.InvalidInput("Missing request parameter: %s", name)
	}
	return q.Get(name), nil
}
