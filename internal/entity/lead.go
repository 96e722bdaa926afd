package entity

import (
	"context"
	"time"
)

// Category values a message can be classified into.
const (
	CategoryRentalInquiry  = "rental_inquiry"
	CategoryMaintenance    = "maintenance"
	CategoryViewingRequest = "viewing_request"
	CategoryVisitorEntry   = "visitor_entry"
	CategoryPayment        = "payment"
	CategoryGeneral        = "general"
)

// LeadStatusNew is the lifecycle status every lead starts with.
const LeadStatusNew = "new"

// Categories lists every valid category, in the order the classifier
// prompt presents them.
var Categories = []string{
	CategoryRentalInquiry,
	CategoryMaintenance,
	CategoryViewingRequest,
	CategoryVisitorEntry,
	CategoryPayment,
	CategoryGeneral,
}

// ValidCategory reports whether c is one of the six known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Lead struct {
	ID                string    `json:"id"`
	Phone             string    `json:"phone"`
	Message           string    `json:"message"`
	Category          string    `json:"category"`
	Urgency           int       `json:"urgency"` // 1-5
	SuggestedResponse string    `json:"suggested_response"`
	MessageSid        string    `json:"message_sid"`
	Status            string    `json:"status"` // free text, starts as "new"
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ExtractedInfo holds optional details the model pulled out of the
// message text. Never persisted; carried on events and alerts only.
type ExtractedInfo struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Budget    string `json:"budget,omitempty"`
	Timeframe string `json:"timeframe,omitempty"`
}

// Categorization is the ephemeral result of classifying one message.
type Categorization struct {
	Category          string        `json:"category"`
	Urgency           int           `json:"urgency"`
	SuggestedResponse string        `json:"suggestedResponse"`
	ExtractedInfo     ExtractedInfo `json:"extractedInfo"`

	// Source is "ai" when the model produced the result, "fallback"
	// when the keyword rules did.
	Source string `json:"-"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
