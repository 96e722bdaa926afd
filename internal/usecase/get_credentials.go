package usecase

import (
	"context"
	"log"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

const (
	credentialsCacheKey = "concierge:credentials:twilio"
	credentialsTTL      = 300 // seconds
)

// GetCredentialsUseCase resolves Twilio credentials, read-through cached
// for 5 minutes. Execute returns nil when credentials are unavailable;
// callers skip the send. No retries: absence is terminal per request.
type GetCredentialsUseCase struct {
	cache   CacheStore
	fetcher CredentialFetcher
}

func NewGetCredentialsUseCase(cache CacheStore, fetcher CredentialFetcher) *GetCredentialsUseCase {
	return &GetCredentialsUseCase{
		cache:   cache,
		fetcher: fetcher,
	}
}

func (uc *GetCredentialsUseCase) Execute(ctx context.Context) *entity.CredentialSet {
	var cached entity.CredentialSet
	found, err := uc.cache.Get(ctx, credentialsCacheKey, &cached)
	if err != nil {
		// Cache trouble is not fatal, ChittyID still answers.
		log.Printf("⚠️ Credentials: cache read failed: %v", err)
	}
	if found {
		return &cached
	}

	creds, err := uc.fetcher.FetchTwilioCredentials(ctx)
	if err != nil {
		log.Printf("❌ Credentials: ChittyID fetch failed: %v", err)
		return nil
	}

	if err := uc.cache.Set(ctx, credentialsCacheKey, creds, credentialsTTL); err != nil {
		log.Printf("⚠️ Credentials: cache write failed: %v", err)
	}

	return creds
}
