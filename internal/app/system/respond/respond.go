// Package respond writes the JSON bodies every API handler uses.
//
// Errors always take the shape {"message": "..."}: 4xx messages are
// client-facing and specific, 5xx messages are generic so store and
// filesystem internals never leak to the client.
package respond

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"message": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Unauthorized writes the uniform 401 body. Missing and invalid tokens
// produce identical responses on purpose.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}
