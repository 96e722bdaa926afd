package usecase

import (
	"context"

	"github.com/chittyos/chittyconcierge/internal/infra/http/middleware"
	"github.com/chittyos/chittyconcierge/internal/infra/integration/twilio"
)

// SendSMSUseCase backs the manual send endpoint.
type SendSMSUseCase struct {
	credentials *GetCredentialsUseCase
	gateway     SMSGateway
}

func NewSendSMSUseCase(credentials *GetCredentialsUseCase, gateway SMSGateway) *SendSMSUseCase {
	return &SendSMSUseCase{
		credentials: credentials,
		gateway:     gateway,
	}
}

// Execute resolves credentials and sends. ErrNoCredentials when ChittyID
// has nothing for us; otherwise the provider result comes back verbatim,
// success or not.
func (uc *SendSMSUseCase) Execute(ctx context.Context, to, message string) (twilio.SendResult, error) {
	creds := uc.credentials.Execute(ctx)
	if creds == nil {
		return twilio.SendResult{}, ErrNoCredentials
	}

	result := uc.gateway.SendMessage(ctx, creds, twilio.SendMessageInput{
		To:   to,
		Body: message,
	})
	if result.Success {
		middleware.RecordSMSSent("success")
	} else {
		middleware.RecordSMSSent("failure")
		middleware.RecordIntegrationError("twilio")
	}

	return result, nil
}
