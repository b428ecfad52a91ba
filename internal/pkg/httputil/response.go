// Package httputil provides HTTP response helper functions.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes a raw JSON response without envelope.
// Use Success for {"success": true, "data": ...} wrapped responses.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// Text writes a plain text response.
func Text(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Success writes a JSON response with {"success": true, "data": ...} envelope.
func Success(w http.ResponseWriter, status int, data interface{}) {
	JSON(w, status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// Paginated writes a JSON response with {"success": true, "data": ..., "pagination": ...} envelope.
func Paginated(w http.ResponseWriter, status int, data interface{}, pagination interface{}) {
	JSON(w, status, map[string]interface{}{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// Error writes a JSON response with {"error": ...} envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
