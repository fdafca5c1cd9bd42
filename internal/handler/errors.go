package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// respondJSON writes v as a JSON response with the given status.
// Encoding failures are logged, not surfaced — headers are already out.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError writes a standard error body with the given status and code.
// The caller supplies the human-readable message (e.g. "user not found")
// because the handler is the layer that knows what was being looked up.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondInternal logs the unexpected error and writes a generic 500 body so
// internals never leak to clients.
func respondInternal(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal_error", "something went wrong")
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation error, e.g.
// "service.UserService.Create: validation error: username failed on the 'max' rule"
// → "username failed on the 'max' rule".
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
