package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

// MockModelClient - mock for the OpenAI completion call
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	args := m.Called(ctx, systemPrompt, userMessage)
	return args.String(0), args.Error(1)
}

func TestCategorizeFallbackRentalInquiry(t *testing.T) {
	uc := NewCategorizeMessageUseCase(nil)

	result := uc.Execute(context.Background(), "Is the 2 bedroom available?", "+15555550100")

	assert.Equal(t, entity.CategoryRentalInquiry, result.Category)
	assert.Equal(t, 4, result.Urgency)
	assert.Equal(t, "fallback", result.Source)
	assert.NotEmpty(t, result.SuggestedResponse)
}

func TestCategorizeFallbackMaintenance(t *testing.T) {
	uc := NewCategorizeMessageUseCase(nil)

	result := uc.Execute(context.Background(), "Something is broken in the kitchen", "+15555550100")

	assert.Equal(t, entity.CategoryMaintenance, result.Category)
	assert.Equal(t, 4, result.Urgency)
}

func TestCategorizeFallbackGeneral(t *testing.T) {
	uc := NewCategorizeMessageUseCase(nil)

	result := uc.Execute(context.Background(), "Hi there", "+15555550100")

	assert.Equal(t, entity.CategoryGeneral, result.Category)
	assert.Equal(t, 2, result.Urgency)
	assert.Empty(t, result.ExtractedInfo.Name)
}

// Each keyword group must map to its category with its fixed urgency.
func TestCategorizeFallbackEveryRule(t *testing.T) {
	uc := NewCategorizeMessageUseCase(nil)

	cases := []struct {
		body     string
		category string
		urgency  int
	}{
		{"how much is the lease", entity.CategoryRentalInquiry, 4},
		{"please fix the heater", entity.CategoryMaintenance, 4},
		{"can I tour the unit", entity.CategoryViewingRequest, 3},
		{"delivery at the front door", entity.CategoryVisitorEntry, 5},
		{"question about my deposit", entity.CategoryPayment, 3},
		{"hello!", entity.CategoryGeneral, 2},
	}

	for _, tc := range cases {
		result := uc.Execute(context.Background(), tc.body, "+15555550100")
		assert.Equal(t, tc.category, result.Category, "body: %s", tc.body)
		assert.Equal(t, tc.urgency, result.Urgency, "body: %s", tc.body)
	}
}

// Rule 1 precedes rule 2: rental + maintenance keywords together win as
// rental_inquiry.
func TestCategorizeFallbackPrecedence(t *testing.T) {
	uc := NewCategorizeMessageUseCase(nil)

	result := uc.Execute(context.Background(), "The bedroom door is broken", "+15555550100")

	assert.Equal(t, entity.CategoryRentalInquiry, result.Category)
	assert.Equal(t, 4, result.Urgency)
}

func TestCategorizeFallbackCaseInsensitive(t *testing.T) {
	uc := NewCategorizeMessageUseCase(nil)

	result := uc.Execute(context.Background(), "IS THE UNIT AVAILABLE?", "+15555550100")

	assert.Equal(t, entity.CategoryRentalInquiry, result.Category)
}

func TestCategorizeAISuccess(t *testing.T) {
	mockModel := new(MockModelClient)
	mockModel.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(
		`Sure! Here is the classification:
{"category": "viewing_request", "urgency": 3, "suggestedResponse": "Happy to schedule a tour!", "extractedInfo": {"name": "Ana", "timeframe": "next week"}}
Let me know if you need anything else.`,
		nil,
	)

	uc := NewCategorizeMessageUseCase(mockModel)
	result := uc.Execute(context.Background(), "Can I see the apartment next week? - Ana", "+15555550100")

	assert.Equal(t, entity.CategoryViewingRequest, result.Category)
	assert.Equal(t, 3, result.Urgency)
	assert.Equal(t, "Happy to schedule a tour!", result.SuggestedResponse)
	assert.Equal(t, "Ana", result.ExtractedInfo.Name)
	assert.Equal(t, "next week", result.ExtractedInfo.Timeframe)
	assert.Equal(t, "ai", result.Source)
}

// Categorization never raises: a failing model call must still yield a
// valid result.
func TestCategorizeModelErrorFallsBack(t *testing.T) {
	mockModel := new(MockModelClient)
	mockModel.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	uc := NewCategorizeMessageUseCase(mockModel)
	result := uc.Execute(context.Background(), "Is the 2 bedroom available?", "+15555550100")

	assert.Equal(t, entity.CategoryRentalInquiry, result.Category)
	assert.Equal(t, 4, result.Urgency)
	assert.Equal(t, "fallback", result.Source)
}

func TestCategorizeModelProseOnlyFallsBack(t *testing.T) {
	mockModel := new(MockModelClient)
	mockModel.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(
		"I think this is probably a maintenance issue.", nil,
	)

	uc := NewCategorizeMessageUseCase(mockModel)
	result := uc.Execute(context.Background(), "Something is broken", "+15555550100")

	assert.Equal(t, entity.CategoryMaintenance, result.Category)
	assert.Equal(t, "fallback", result.Source)
}

func TestCategorizeModelInvalidCategoryFallsBack(t *testing.T) {
	mockModel := new(MockModelClient)
	mockModel.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(
		`{"category": "spam", "urgency": 9, "suggestedResponse": "x"}`, nil,
	)

	uc := NewCategorizeMessageUseCase(mockModel)
	result := uc.Execute(context.Background(), "Hi there", "+15555550100")

	assert.Equal(t, entity.CategoryGeneral, result.Category)
	assert.Equal(t, "fallback", result.Source)
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("Plain object", func(t *testing.T) {
		raw, ok := extractJSONObject(`{"a": 1}`)
		assert.True(t, ok)
		assert.Equal(t, `{"a": 1}`, raw)
	})

	t.Run("Prose framing", func(t *testing.T) {
		raw, ok := extractJSONObject(`Here you go: {"a": {"b": 2}} hope that helps`)
		assert.True(t, ok)
		assert.Equal(t, `{"a": {"b": 2}}`, raw)
	})

	t.Run("First object wins", func(t *testing.T) {
		raw, ok := extractJSONObject(`{"first": true} {"second": true}`)
		assert.True(t, ok)
		assert.Equal(t, `{"first": true}`, raw)
	})

	t.Run("No object", func(t *testing.T) {
		_, ok := extractJSONObject("no json here")
		assert.False(t, ok)
	})

	t.Run("Unbalanced", func(t *testing.T) {
		_, ok := extractJSONObject(`{"never": "closes"`)
		assert.False(t, ok)
	})
}
