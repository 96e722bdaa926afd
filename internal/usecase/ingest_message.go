package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/chittyos/chittyconcierge/internal/entity"
	"github.com/chittyos/chittyconcierge/internal/infra/http/middleware"
	"github.com/chittyos/chittyconcierge/internal/infra/integration/twilio"
	"github.com/chittyos/chittyconcierge/internal/infra/queue"
)

// InboundMessage mirrors Twilio's webhook form fields. Missing fields
// arrive as empty strings.
type InboundMessage struct {
	From       string
	To         string
	Body       string
	MessageSid string
}

// IngestMessageUseCase is the whole webhook pipeline: categorize, store
// the lead, publish the event, auto-reply. Every step is best-effort; the
// webhook ack never depends on any of them.
type IngestMessageUseCase struct {
	categorizer *CategorizeMessageUseCase
	credentials *GetCredentialsUseCase
	leadRepo    entity.LeadRepositoryInterface
	gateway     SMSGateway
	producer    QueueProducerInterface
}

func NewIngestMessageUseCase(
	categorizer *CategorizeMessageUseCase,
	credentials *GetCredentialsUseCase,
	leadRepo entity.LeadRepositoryInterface,
	gateway SMSGateway,
	producer QueueProducerInterface,
) *IngestMessageUseCase {
	return &IngestMessageUseCase{
		categorizer: categorizer,
		credentials: credentials,
		leadRepo:    leadRepo,
		gateway:     gateway,
		producer:    producer,
	}
}

// Execute never fails: Twilio expects a fast 200 no matter what breaks
// internally, otherwise it retries the delivery.
func (uc *IngestMessageUseCase) Execute(ctx context.Context, msg InboundMessage) *entity.Lead {
	middleware.RecordSMSReceived()

	result := uc.categorizer.Execute(ctx, msg.Body, msg.From)
	middleware.RecordCategorization(result.Source)

	lead := &entity.Lead{
		ID:                uuid.NewString(),
		Phone:             msg.From,
		Message:           msg.Body,
		Category:          result.Category,
		Urgency:           result.Urgency,
		SuggestedResponse: result.SuggestedResponse,
		MessageSid:        msg.MessageSid,
		Status:            entity.LeadStatusNew,
	}

	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		log.Printf("❌ Ingest: failed to store lead from %s: %v", msg.From, err)
		middleware.RecordIntegrationError("database")
	} else {
		middleware.RecordLeadCreated(result.Category)
		uc.publishEvent(ctx, lead, result)
	}

	uc.autoReply(ctx, msg.From, result.SuggestedResponse)

	return lead
}

func (uc *IngestMessageUseCase) publishEvent(ctx context.Context, lead *entity.Lead, result entity.Categorization) {
	if uc.producer == nil {
		return
	}

	payload := queue.LeadCreatedPayload{
		LeadID:            lead.ID,
		Phone:             lead.Phone,
		Message:           lead.Message,
		Category:          lead.Category,
		Urgency:           lead.Urgency,
		SuggestedResponse: lead.SuggestedResponse,
		Source:            result.Source,
		ExtractedInfo:     result.ExtractedInfo,
	}

	if err := uc.producer.PublishLeadCreated(ctx, payload); err != nil {
		log.Printf("⚠️ Ingest: failed to publish lead event: %v", err)
		middleware.RecordIntegrationError("rabbitmq")
	}
}

func (uc *IngestMessageUseCase) autoReply(ctx context.Context, to, body string) {
	creds := uc.credentials.Execute(ctx)
	if creds == nil {
		log.Printf("⚠️ Ingest: no credentials, auto-reply skipped for %s", to)
		return
	}

	result := uc.gateway.SendMessage(ctx, creds, twilio.SendMessageInput{
		To:   to,
		Body: body,
	})
	if result.Success {
		middleware.RecordSMSSent("success")
	} else {
		middleware.RecordSMSSent("failure")
		middleware.RecordIntegrationError("twilio")
	}
}
