package pkg

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain",
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Add("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.JSON, []byte(message), http.StatusOK)
}

// WriteJSONError writes a JSON error body, used by endpoints whose callers
// expect JSON even on failure.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Add("Content-Type", ContentType.JSON)
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(`{"error":"` + message + `"}`)); err != nil {
		log.Errorf("failed to write error response [%s]: %s", message, err)
	}
}
