package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"aurora-grand/internal/storefront/app/core"
)

// jsonResponse writes the given data as a JSON-encoded HTTP response.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// jsonError writes an error response as JSON with the specified HTTP status
// code. Validation errors carry their per-field reasons.
func jsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}

	body := map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	}
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	_ = json.NewEncoder(w).Encode(body)
}
