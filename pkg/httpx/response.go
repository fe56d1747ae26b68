package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every JSON error the API returns. Code is a
// stable machine-readable value the web client branches on; Error is for
// people.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// JSON writes v with the given status. Encoding errors are dropped because
// the status line is already out.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes an ErrorResponse whose code is derived from status.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSONErrorCode(w, status, StatusCode(status), message)
}

// JSONErrorCode writes an ErrorResponse with an explicit code.
func JSONErrorCode(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorResponse{Error: message, Code: code})
}

// StatusCode is the fallback error code for a status without a more
// specific domain code.
func StatusCode(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "bad_request"
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusConflict:
		return "conflict"
	case status == http.StatusUnprocessableEntity:
		return "validation_failed"
	case status == http.StatusTooManyRequests:
		return "rate_limited"
	case status >= http.StatusInternalServerError:
		return "internal"
	default:
		return ""
	}
}

// SafeError is the message shown to clients. With hideInternal set, 5xx
// messages become the bare status text so SQL and Redis errors stay in logs.
func SafeError(err error, status int, hideInternal bool) string {
	if hideInternal && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
