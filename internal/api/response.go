// Package api implements the read-only HTTP façade over the mirrored
// UBIKAIS data. Every response uses the same envelope: a "status" field of
// "success" or "error", with "data" on success and "message" on error.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type successEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func respondWithSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(successEnvelope{Status: "success", Data: data})
}

// respondFlat writes a body without the envelope, for the endpoints whose
// consumers read fields at the top level.
func respondFlat(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Status: "error", Message: message})
}

// intParam parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func intParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
