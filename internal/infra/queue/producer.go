package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

// LeadCreatedPayload is published after every stored lead. Downstream
// consumers decide what to do with it; today the alert worker emails the
// property manager for urgent ones.
type LeadCreatedPayload struct {
	LeadID            string               `json:"lead_id"`
	Phone             string               `json:"phone"`
	Message           string               `json:"message"`
	Category          string               `json:"category"`
	Urgency           int                  `json:"urgency"`
	SuggestedResponse string               `json:"suggested_response"`
	Source            string               `json:"source"` // "ai" or "fallback"
	ExtractedInfo     entity.ExtractedInfo `json:"extracted_info"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadCreated(ctx context.Context, payload LeadCreatedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
