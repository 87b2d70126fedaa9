package response

import (
	"encoding/json"
	"net/http"
)

// JSON encodes data as a JSON body with the given status. A nil data writes
// the status line only.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	// The status line is already committed; an encode failure can only
	// truncate the body.
	_ = json.NewEncoder(w).Encode(data)
}

// NoContent writes an empty 204 response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
