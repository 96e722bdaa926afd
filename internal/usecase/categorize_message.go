package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

const categorizerPrompt = `You are an SMS concierge for a property management company.
Classify the incoming message into exactly one category:
rental_inquiry, maintenance, viewing_request, visitor_entry, payment, general.

Respond with a strict JSON object and nothing else:
{"category": "...", "urgency": 1-5, "suggestedResponse": "...", "extractedInfo": {"name": "...", "email": "...", "budget": "...", "timeframe": "..."}}

Fields inside extractedInfo are optional; omit the ones the message does not contain.`

// CategorizeMessageUseCase classifies one inbound message. AI first,
// deterministic keyword rules when the model path fails in any way.
// Execute never returns an error.
type CategorizeMessageUseCase struct {
	model ModelClient
}

func NewCategorizeMessageUseCase(model ModelClient) *CategorizeMessageUseCase {
	return &CategorizeMessageUseCase{model: model}
}

func (uc *CategorizeMessageUseCase) Execute(ctx context.Context, body, from string) entity.Categorization {
	if uc.model != nil {
		if result, ok := uc.tryModel(ctx, body, from); ok {
			result.Source = "ai"
			return result
		}
	}

	result := categorizeByKeywords(body)
	result.Source = "fallback"
	return result
}

// tryModel runs the completion and extracts the first JSON object from
// the reply. Models wrap JSON in prose often enough that scanning is the
// contract, not a workaround.
func (uc *CategorizeMessageUseCase) tryModel(ctx context.Context, body, from string) (entity.Categorization, bool) {
	reply, err := uc.model.Complete(ctx, categorizerPrompt, "From "+from+": "+body)
	if err != nil {
		log.Printf("⚠️ Categorizer: model call failed, using keyword rules: %v", err)
		return entity.Categorization{}, false
	}

	raw, ok := extractJSONObject(reply)
	if !ok {
		log.Printf("⚠️ Categorizer: no JSON object in model reply, using keyword rules")
		return entity.Categorization{}, false
	}

	var result entity.Categorization
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("⚠️ Categorizer: unparseable model JSON, using keyword rules: %v", err)
		return entity.Categorization{}, false
	}

	if !entity.ValidCategory(result.Category) || result.Urgency < 1 || result.Urgency > 5 {
		log.Printf("⚠️ Categorizer: model returned invalid category/urgency (%q/%d), using keyword rules",
			result.Category, result.Urgency)
		return entity.Categorization{}, false
	}

	return result, true
}

// extractJSONObject returns the first balanced brace-delimited substring
// of s. Balance is a plain depth counter; good enough for model output.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// keywordRule is one fallback branch. Rules are evaluated in order and
// the first match wins; no scoring.
type keywordRule struct {
	keywords []string
	category string
	urgency  int
	response string
}

var fallbackRules = []keywordRule{
	{
		keywords: []string{"rent", "available", "lease", "bedroom"},
		category: entity.CategoryRentalInquiry,
		urgency:  4,
		response: "Thanks for your interest! I'd be happy to discuss availability. When are you looking to move in?",
	},
	{
		keywords: []string{"broken", "repair", "fix", "maintenance"},
		category: entity.CategoryMaintenance,
		urgency:  4,
		response: "Thanks for reporting this. We've logged your maintenance request. Is this an emergency?",
	},
	{
		keywords: []string{"view", "tour", "show", "see the"},
		category: entity.CategoryViewingRequest,
		urgency:  3,
		response: "We'd be happy to schedule a viewing. What day and time work best for you?",
	},
	{
		keywords: []string{"visiting", "delivery", "here for", "guest"},
		category: entity.CategoryVisitorEntry,
		urgency:  5,
		response: "Thanks! We've notified the resident. Please wait at the entrance and someone will be with you shortly.",
	},
	{
		keywords: []string{"payment", "rent due", "deposit"},
		category: entity.CategoryPayment,
		urgency:  3,
		response: "Thanks for reaching out about payment. We'll review your account and follow up shortly.",
	},
}

var generalResult = entity.Categorization{
	Category:          entity.CategoryGeneral,
	Urgency:           2,
	SuggestedResponse: "Thanks for your message! A member of our team will get back to you soon.",
}

func categorizeByKeywords(body string) entity.Categorization {
	lower := strings.ToLower(body)

	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return entity.Categorization{
					Category:          rule.category,
					Urgency:           rule.urgency,
					SuggestedResponse: rule.response,
				}
			}
		}
	}

	return generalResult
}
