// Package web centraliza el envelope de respuesta de la API:
// {"status":"success"|"error", "payload":..., "message":...}.
// Todos los handlers responden con esta forma.
package web

import (
	"encoding/json"
	"net/http"
)

type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

func Success(w http.ResponseWriter, status int, payload any) {
	write(w, status, Envelope{Status: "success", Payload: payload})
}

func SuccessMessage(w http.ResponseWriter, status int, message string, payload any) {
	write(w, status, Envelope{Status: "success", Message: message, Payload: payload})
}

func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Status: "error", Message: message})
}

func write(w http.ResponseWriter, status int, v Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
