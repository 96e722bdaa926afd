package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteReturnsAssistantText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"category\": \"general\"}"}, "finish_reason": "stop"}]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", server.URL)

	text, err := client.Complete(context.Background(), "system", "user")
	assert.NoError(t, err)
	assert.Equal(t, `{"category": "general"}`, text)
}

func TestCompleteErrors(t *testing.T) {
	t.Run("Missing API key", func(t *testing.T) {
		client := NewClient("", "")
		_, err := client.Complete(context.Background(), "system", "user")
		assert.Error(t, err)
	})

	t.Run("Upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "rate limited"}}`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", "", server.URL)
		_, err := client.Complete(context.Background(), "system", "user")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("No choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", "", server.URL)
		_, err := client.Complete(context.Background(), "system", "user")
		assert.Error(t, err)
	})
}
