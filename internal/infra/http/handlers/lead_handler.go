package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

type LeadHandler struct {
	leadRepo entity.LeadRepositoryInterface
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{leadRepo: leadRepo}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleList returns the 100 most recent leads, newest first.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"leads": leads,
	})
}

// HandleUpdateStatus applies a status to one lead by id.
func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing lead id")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.leadRepo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{
		"success": true,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}
