package handlers

import (
	"encoding/json"
	"net/http"
)

const (
	ServiceName    = "chittyconcierge"
	ServiceVersion = "1.0.0"
)

type HealthHandler struct {
	ChittyID string
}

type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	ChittyID    string `json:"chitty_id"`
	Version     string `json:"version"`
	Credentials string `json:"credentials"`
}

func NewHealthHandler(chittyID string) *HealthHandler {
	return &HealthHandler{ChittyID: chittyID}
}

// Handle is static on purpose: health must answer even when every
// dependency is down.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:      "healthy",
		Service:     ServiceName,
		ChittyID:    h.ChittyID,
		Version:     ServiceVersion,
		Credentials: "chittyid-service",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
