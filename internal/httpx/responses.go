package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"bookswap/internal/apperr"
)

// Envelope is the uniform response body: {code, message, data}.
type Envelope struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    any           `json:"data"`
	Details []ErrorDetail `json:"details,omitempty"`
	Error   string        `json:"error,omitempty"`
	Stack   string        `json:"stack,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func JSONSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Envelope{Code: http.StatusOK, Message: message, Data: data})
}

func JSONSuccessCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, Envelope{Code: http.StatusCreated, Message: message, Data: data})
}

func JSONError(w http.ResponseWriter, statusCode int, message string, details []ErrorDetail) {
	writeJSON(w, statusCode, Envelope{Code: statusCode, Message: message, Details: details})
}

// StatusFor maps a domain error kind to its HTTP status code.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as an envelope. Domain errors keep their message; anything
// else becomes a 500 whose internals are only exposed in debug mode.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := StatusFor(appErr.Kind)
		JSONError(w, status, appErr.Message, nil)
		return
	}

	body := Envelope{Code: http.StatusInternalServerError, Message: "Internal server error"}
	if debugFrom(r) {
		body.Error = err.Error()
		body.Stack = string(debug.Stack())
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	return nil
}
