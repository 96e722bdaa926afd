package usecase

import (
	"context"

	"github.com/chittyos/chittyconcierge/internal/entity"
	"github.com/chittyos/chittyconcierge/internal/infra/integration/twilio"
	"github.com/chittyos/chittyconcierge/internal/infra/queue"
)

// ModelClient is the generative-model completion call behind the
// categorizer. Implemented by the openai integration client.
type ModelClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// CredentialFetcher resolves the Twilio credential set from ChittyID.
type CredentialFetcher interface {
	FetchTwilioCredentials(ctx context.Context) (*entity.CredentialSet, error)
}

// CacheStore is a keyed external store with TTL semantics (Redis in
// production, a map in tests).
type CacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error
}

// SMSGateway sends one message through the provider. Failures come back
// inside the result, never as an error.
type SMSGateway interface {
	SendMessage(ctx context.Context, creds *entity.CredentialSet, input twilio.SendMessageInput) twilio.SendResult
}

type QueueProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}
