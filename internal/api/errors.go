package api

import (
	"encoding/json"
	"net/http"

	apperr "github.com/matzehuels/glyphfall/pkg/errors"
	"github.com/matzehuels/glyphfall/pkg/observability"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeInvalidFormat,
		apperr.ErrCodeInvalidConfig, apperr.ErrCodeInvalidScan:
		return http.StatusBadRequest
	case apperr.ErrCodeNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func errNotFound(path string) error {
	return apperr.New(apperr.ErrCodeNotFound, "no route for %s", path)
}

// writeError writes err as a JSON error body. Errors without a code are
// reported as INTERNAL_ERROR and their text is hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.GetCode(err)
	msg := apperr.UserMessage(err)
	if code == "" {
		code = apperr.ErrCodeInternal
		msg = "internal server error"
	}
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	writeJSON(w, statusFor(code), errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
