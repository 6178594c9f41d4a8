package response

import (
	"encoding/json"
	"net/http"

	"github.com/futig/vectordb-client/internal/entity"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		// Headers are already sent; an encode failure can only truncate the body.
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes the {"error": message} body clients read on non-200 statuses.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, entity.ErrorResponse{Error: message})
}

// Success writes a 200 response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}
