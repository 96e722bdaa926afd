package handlers

import (
	"encoding/json"
	"net/http"
)

type StatusHandler struct {
	ChittyID string
}

func NewStatusHandler(chittyID string) *StatusHandler {
	return &StatusHandler{ChittyID: chittyID}
}

type StatusResponse struct {
	Service      string            `json:"service"`
	ChittyID     string            `json:"chitty_id"`
	Version      string            `json:"version"`
	Capabilities []string          `json:"capabilities"`
	Dependencies []string          `json:"dependencies"`
	Endpoints    map[string]string `json:"endpoints"`
}

func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := StatusResponse{
		Service:  ServiceName,
		ChittyID: h.ChittyID,
		Version:  ServiceVersion,
		Capabilities: []string{
			"sms-intake",
			"ai-categorization",
			"keyword-fallback",
			"auto-response",
			"lead-tracking",
			"urgent-lead-alerts",
		},
		Dependencies: []string{
			"postgres",
			"redis",
			"rabbitmq",
			"chittyid",
			"twilio",
			"openai",
		},
		Endpoints: map[string]string{
			"health":      "GET /health",
			"status":      "GET /api/v1/status",
			"webhook":     "POST /webhook/sms",
			"leads":       "GET /api/leads",
			"lead_status": "PATCH /api/leads/{id}",
			"send":        "POST /api/sms/send",
			"metrics":     "GET /metrics",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
