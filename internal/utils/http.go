package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-dev-connector/models"
)

// WriteJSON encodes data and writes it with the given status code and
// Content-Type application/json. HTML characters in strings are written as is,
// so post text such as "<b>" comes back unchanged.
//
// The body is encoded before any header is sent: if encoding fails the client
// gets a 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}

// WriteMessage writes {"msg": msg} with the given status code.
func WriteMessage(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	return WriteJSON(w, models.Message{Msg: msg}, statusCode)
}
