package handlers

import (
	"log"
	"net/http"

	"github.com/chittyos/chittyconcierge/internal/usecase"
)

// twiMLEmpty is the acknowledgment Twilio expects. Anything other than a
// fast 200 and it retries the delivery.
const twiMLEmpty = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

type WebhookHandler struct {
	Ingest *usecase.IngestMessageUseCase
}

func NewWebhookHandler(ingest *usecase.IngestMessageUseCase) *WebhookHandler {
	return &WebhookHandler{Ingest: ingest}
}

// Handle processes one inbound SMS. Always 200/XML, whatever happens
// inside the pipeline.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("⚠️ Webhook: unparseable form: %v", err)
	}

	msg := usecase.InboundMessage{
		From:       r.FormValue("From"),
		To:         r.FormValue("To"),
		Body:       r.FormValue("Body"),
		MessageSid: r.FormValue("MessageSid"),
	}

	lead := h.Ingest.Execute(r.Context(), msg)
	log.Printf("📥 Webhook: %s from %s → %s (urgency %d)", msg.MessageSid, msg.From, lead.Category, lead.Urgency)

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(twiMLEmpty))
}
