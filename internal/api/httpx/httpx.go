// Package httpx holds the JSON envelope helpers shared by handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, envelope{Status: "success", Data: data})
}

func OKNoData(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, envelope{Status: "success"})
}
