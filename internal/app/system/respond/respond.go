// Package respond writes JSON responses.
package respond

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Created is the body returned after an insert: {"id": ..., "message": ...}.
type Created struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Message is a body carrying only a message string.
type Message struct {
	Message string `json:"message"`
}
