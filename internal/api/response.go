package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stockpilehq/stockpile/internal/apperr"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// ruleError translates a rule-layer error into an HTTP response. Tagged
// errors map by kind; anything untagged is an internal error and only its
// log line carries the details.
func ruleError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthorized:
		jsonError(w, http.StatusUnauthorized, err.Error())
	case apperr.KindNotFound:
		jsonError(w, http.StatusNotFound, err.Error())
	case apperr.KindValidation:
		jsonError(w, http.StatusBadRequest, err.Error())
	case apperr.KindEmptyResult:
		jsonError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
