package api

import (
	"encoding/json"
	"net/http"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "err", err)
	}
}

// writeError sends the human-readable message the client is allowed to see.
// Internal detail stays in the server log.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, messageResponse{Message: message}, status)
}
