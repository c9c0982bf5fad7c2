package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *config.ValidatorConfig {
	return &config.ValidatorConfig{
		HedgingPenalty:    0.2,
		GroundingRatio:    0.3,
		GroundingPenalty:  0.3,
		MedicalPenalty:    0.4,
		RedirectPenalty:   0.5,
		FantasyPenalty:    0.8,
		OffTopicPenalty:   0.4,
		ValidThreshold:    0.5,
		BlockingThreshold: 0.3,
	}
}

func coverItem() knowledge.Item {
	return knowledge.Item{
		ID:      "eq-001",
		Title:   "Drop, Cover, and Hold On",
		Content: "When the ground starts shaking, drop to your hands and knees, take cover under a sturdy table or desk, and hold on until the shaking stops.",
	}
}

func TestValidate_CleanGroundedResponse(t *testing.T) {
	v := NewValidator(defaultConfig())
	item := coverItem()

	result := v.Validate("what to do during an earthquake", item.Content, []knowledge.Item{item})

	assert.True(t, result.IsValid)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.BlockedContent)
}

func TestValidate_RoundTripOverWholeDataset(t *testing.T) {
	// Quoting the source verbatim can never fail grounding.
	store, err := knowledge.Load()
	require.NoError(t, err)
	v := NewValidator(defaultConfig())

	for _, item := range store.Items() {
		result := v.Validate(strings.ToLower(item.Title), item.Content, []knowledge.Item{item})
		assert.True(t, result.IsValid, "item %s: warnings %v", item.ID, result.Warnings)
		assert.GreaterOrEqual(t, result.Confidence, 0.5, "item %s", item.ID)
	}
}

func TestValidate_HedgingPenalizedPerPhrase(t *testing.T) {
	v := NewValidator(defaultConfig())
	item := coverItem()

	one := v.Validate("earthquake", "I think you should drop and take cover under the table until the shaking stops.", []knowledge.Item{item})
	two := v.Validate("earthquake", "I think you should probably drop and take cover under the table until the shaking stops.", []knowledge.Item{item})

	assert.Len(t, one.Warnings, 1)
	assert.InDelta(t, 0.8, one.Confidence, 1e-9)
	assert.Len(t, two.Warnings, 2)
	assert.InDelta(t, 0.6, two.Confidence, 1e-9)
}

func TestValidate_UngroundedResponse(t *testing.T) {
	v := NewValidator(defaultConfig())
	item := coverItem()

	result := v.Validate("earthquake", "Simply reinforce basement pillars with concrete immediately, also purchase gold.", []knowledge.Item{item})

	assert.Contains(t, result.Warnings, "Response content significantly deviates from knowledge base")
}

func TestValidate_GroundingMonotonic(t *testing.T) {
	// More overlap with the source never lowers confidence.
	v := NewValidator(defaultConfig())
	item := coverItem()

	contentWords := strings.Fields(item.Content)
	prev := -1.0
	for n := 2; n <= len(contentWords); n += 4 {
		response := strings.Join(contentWords[:n], " ")
		result := v.Validate("earthquake", response, []knowledge.Item{item})
		assert.GreaterOrEqual(t, result.Confidence, prev,
			"confidence dropped when overlap grew (n=%d)", n)
		prev = result.Confidence
	}
}

func TestValidate_MedicalQueryMustDefer(t *testing.T) {
	v := NewValidator(defaultConfig())

	tests := []struct {
		name     string
		response string
		warned   bool
	}{
		{"no deferral", "Put a bandage on it and rest.", true},
		{"mentions emergency", "Apply pressure and call emergency services.", false},
		{"mentions professional", "Apply pressure and get professional help.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate("I'm bleeding from a cut", tt.response, nil)
			if tt.warned {
				assert.Contains(t, result.Warnings, "Medical query should recommend professional help")
			} else {
				assert.NotContains(t, result.Warnings, "Medical query should recommend professional help")
			}
		})
	}
}

func TestValidate_RedirectWarning(t *testing.T) {
	v := NewValidator(defaultConfig())

	result := v.Validate("What's the weather today?", "It's sunny and warm outside.", nil)

	assert.Contains(t, result.Warnings, "Non-earthquake query should be redirected")
	assert.False(t, result.IsValid)
}

func TestValidate_FantasyContentDominates(t *testing.T) {
	v := NewValidator(defaultConfig())
	item := coverItem()

	result := v.Validate("earthquake", "A dragon will drop from the sky and cover you, hold on to it until the shaking stops.", []knowledge.Item{item})

	assert.LessOrEqual(t, result.Confidence, 0.2)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Warnings, "Contains unrealistic or fabricated content")
}

func TestValidate_BlockedContentBelowThreshold(t *testing.T) {
	v := NewValidator(defaultConfig())

	response := "Use magic to teleport away, or maybe ride a dragon."
	result := v.Validate("What's the weather today?", response, nil)

	assert.False(t, result.IsValid)
	assert.Equal(t, response, result.BlockedContent)
}

func TestValidate_OffTopicGroundedResponse(t *testing.T) {
	v := NewValidator(defaultConfig())
	item := coverItem()

	result := v.Validate("earthquake", "Everything will be fine, just stay positive and breathe.", []knowledge.Item{item})

	assert.Contains(t, result.Warnings, "Response does not contain earthquake survival topics")
}

func TestValidate_ConfidenceClamped(t *testing.T) {
	v := NewValidator(defaultConfig())

	// Trip every applicable check at once; confidence must not go negative.
	result := v.Validate(
		"What's the weather today?",
		"I think maybe probably a magic dragon will teleport you, in my opinion.",
		nil,
	)

	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.False(t, result.IsValid)
}

func TestSafeResponse_Dispatch(t *testing.T) {
	v := NewValidator(defaultConfig())

	tests := []struct {
		name     string
		warnings []string
		contains string
	}{
		{
			name:     "medical warning wins",
			warnings: []string{"Non-earthquake query should be redirected", "Medical query should recommend professional help"},
			contains: "medical professionals",
		},
		{
			name:     "redirect warning",
			warnings: []string{"Non-earthquake query should be redirected"},
			contains: "earthquake survival assistant",
		},
		{
			name:     "generic fallback",
			warnings: []string{fmt.Sprintf("Contains uncertain language: %q", "probably")},
			contains: "can't provide reliable information",
		},
		{
			name:     "no warnings still safe",
			warnings: nil,
			contains: "call emergency services",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.SafeResponse("query", Result{Warnings: tt.warnings})
			assert.Contains(t, got, tt.contains)
		})
	}
}
