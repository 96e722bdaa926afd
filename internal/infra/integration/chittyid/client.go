package chittyid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

const credentialsPath = "/v1/credentials/twilio"

// Client talks to the ChittyID credential-provisioning service. Every
// request carries the service identity headers so ChittyID can scope the
// credentials it hands back.
type Client struct {
	baseURL     string
	serviceName string
	chittyID    string
	http        *http.Client
}

func NewClient(baseURL, serviceName, chittyID string) *Client {
	return &Client{
		baseURL:     baseURL,
		serviceName: serviceName,
		chittyID:    chittyID,
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchTwilioCredentials asks ChittyID for the Twilio credential set.
func (c *Client) FetchTwilioCredentials(ctx context.Context) (*entity.CredentialSet, error) {
	url := c.baseURL + credentialsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chittyid request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chittyid returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload credentialsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode chittyid response: %w", err)
	}

	return &entity.CredentialSet{
		AccountSID:  payload.AccountSID,
		AuthToken:   payload.AuthToken,
		PhoneNumber: payload.PhoneNumber,
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Service-Name", c.serviceName)
	req.Header.Set("X-Chitty-ID", c.chittyID)
	req.Header.Set("Accept", "application/json")
}
