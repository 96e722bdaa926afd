package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// urgentThreshold: leads at or above this urgency page the property
// manager by email.
const urgentThreshold = 4

// AlertSender delivers the urgent-lead notification (SMTP today).
type AlertSender interface {
	SendUrgentLeadAlert(payload LeadCreatedPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Alerts  AlertSender
}

func NewWorker(ch *amqp.Channel, alerts AlertSender) *Worker {
	return &Worker{
		Channel: ch,
		Alerts:  alerts,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCreatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Malformed payload: %s", err)
				// Poison message. Reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			if !ShouldAlert(payload) {
				d.Ack(false)
				continue
			}

			log.Printf("📥 [WORKER] Urgent lead %s (%s, urgency %d)", payload.LeadID, payload.Category, payload.Urgency)

			if err := w.Alerts.SendUrgentLeadAlert(payload); err != nil {
				log.Printf("❌ [WORKER] Alert email failed: %s", err)
				d.Nack(false, false) // off to the DLQ
			} else {
				log.Printf("✅ [WORKER] Manager alerted for lead %s", payload.LeadID)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}

// ShouldAlert reports whether a lead is urgent enough to email about.
func ShouldAlert(payload LeadCreatedPayload) bool {
	return payload.Urgency >= urgentThreshold
}
