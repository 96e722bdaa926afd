package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chittyos/chittyconcierge/internal/usecase"
)

type SMSHandler struct {
	SendSMS *usecase.SendSMSUseCase
}

func NewSMSHandler(sendSMS *usecase.SendSMSUseCase) *SMSHandler {
	return &SMSHandler{SendSMS: sendSMS}
}

type SendSMSRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// HandleSend is the manual send endpoint. 503 when credentials are
// unavailable; otherwise the provider result goes back as-is.
func (h *SMSHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req SendSMSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.SendSMS.Execute(r.Context(), req.To, req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrNoCredentials) {
			writeError(w, http.StatusServiceUnavailable, "Twilio credentials unavailable, try again shortly")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
