package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

func TestHandleListReturnsLeads(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("List", mock.Anything).Return([]*entity.Lead{
		{
			ID:        "lead-2",
			Phone:     "+15555550102",
			Message:   "rent?",
			Category:  entity.CategoryRentalInquiry,
			Urgency:   4,
			Status:    entity.LeadStatusNew,
			CreatedAt: time.Now(),
		},
		{
			ID:        "lead-1",
			Phone:     "+15555550101",
			Message:   "hi",
			Category:  entity.CategoryGeneral,
			Urgency:   2,
			Status:    "contacted",
			CreatedAt: time.Now().Add(-time.Hour),
		},
	}, nil)

	handler := NewLeadHandler(repo)

	req := httptest.NewRequest("GET", "/api/leads", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Leads []*entity.Lead `json:"leads"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.Len(t, response.Leads, 2)
	assert.Equal(t, "lead-2", response.Leads[0].ID)
}

func TestHandleListStorageError(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	handler := NewLeadHandler(repo)

	req := httptest.NewRequest("GET", "/api/leads", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.NotEmpty(t, errResponse["error"])
}

func patchStatus(handler *LeadHandler, id string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest("PATCH", "/api/leads/"+id, bytes.NewReader(body))

	chiCtx := chi.NewRouteContext()
	chiCtx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))

	w := httptest.NewRecorder()
	handler.HandleUpdateStatus(w, req)
	return w
}

func TestHandleUpdateStatusSuccess(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("UpdateStatus", mock.Anything, "lead-1", "contacted").Return(nil)

	handler := NewLeadHandler(repo)

	body, _ := json.Marshal(UpdateStatusRequest{Status: "contacted"})
	w := patchStatus(handler, "lead-1", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]bool
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response["success"])

	repo.AssertCalled(t, "UpdateStatus", mock.Anything, "lead-1", "contacted")
}

func TestHandleUpdateStatusStorageError(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("UpdateStatus", mock.Anything, "lead-1", "contacted").Return(errors.New("lead not found"))

	handler := NewLeadHandler(repo)

	body, _ := json.Marshal(UpdateStatusRequest{Status: "contacted"})
	w := patchStatus(handler, "lead-1", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleUpdateStatusInvalidJSON(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewLeadHandler(repo)

	w := patchStatus(handler, "lead-1", []byte("not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
