package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

const defaultBaseURL = "https://api.twilio.com"

// Client sends SMS through the Twilio Messages API. Credentials are
// passed per call because they come from ChittyID, not from env.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests pointing at a fake Twilio.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// SendMessage posts one SMS. It never returns an error: failures come
// back inside the result so callers can stay best-effort.
func (c *Client) SendMessage(ctx context.Context, creds *entity.CredentialSet, input SendMessageInput) SendResult {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, creds.AccountSID)

	form := url.Values{}
	form.Set("To", input.To)
	form.Set("From", creds.PhoneNumber)
	form.Set("Body", input.Body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}
	req.SetBasicAuth(creds.AccountSID, creds.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ Twilio: request failed: %v", err)
		return SendResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ Twilio: API returned status %d: %s", resp.StatusCode, string(respBody))
		return SendResult{Success: false, Error: string(respBody)}
	}

	var parsed messageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		log.Printf("❌ Twilio: failed to parse response: %v", err)
		return SendResult{Success: false, Error: err.Error()}
	}

	log.Printf("✅ Twilio: message %s sent to %s", parsed.Sid, input.To)
	return SendResult{Success: true, MessageID: parsed.Sid}
}
