package validate

import (
	"fmt"
	"strings"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/knowledge"
)

// Warning texts. SafeResponse dispatches on these, so they are constants
// rather than ad-hoc strings.
const (
	warnUncertainPrefix = "Contains uncertain language"
	warnDeviates        = "Response content significantly deviates from knowledge base"
	warnMedical         = "Medical query should recommend professional help"
	warnRedirect        = "Non-earthquake query should be redirected"
	warnFantasy         = "Contains unrealistic or fabricated content"
	warnOffTopic        = "Response does not contain earthquake survival topics"
)

// Canned fallbacks for failed validations.
const (
	fallbackMedical = `I can't give specific advice for a medical emergency. Please seek help from medical professionals or call emergency services immediately.

If you have other earthquake safety questions, I'm happy to help with those.`

	fallbackRedirect = `I'm a dedicated earthquake survival assistant and can only provide earthquake safety information.

You can ask me about:
- Safety measures during an earthquake
- Survival skills after an earthquake
- Emergency first aid basics
- How to handle aftershocks`

	fallbackGeneric = `Sorry, I can't provide reliable information for this query. Please rely on your own judgment or seek help from a professional.

If this is an emergency, call emergency services immediately.`
)

var hedgingPhrases = []string{
	"i think", "i believe", "probably", "maybe", "might be",
	"in my opinion", "generally speaking", "usually",
	"我认为", "我觉得", "可能", "也许", "大概", "一般来说",
}

var medicalKeywords = []string{"bleeding", "injury", "pain", "unconscious", "broken"}

var earthquakeKeywords = []string{"earthquake", "shaking", "aftershock", "tremor", "地震"}

var fantasyKeywords = []string{
	"fly", "rocket", "magic", "teleport", "superhero", "invisible",
	"time travel", "alien", "dragon", "unicorn", "flying carpet",
	"飞行", "魔法", "超级英雄", "时间旅行", "外星人", "龙",
}

var survivalTopics = []string{"drop", "cover", "hold", "water", "bleeding", "trapped", "aftershock"}

// Result is the outcome of validating one generated answer.
type Result struct {
	IsValid    bool
	Confidence float64
	Warnings   []string
	// BlockedContent keeps the rejected answer for diagnostics when
	// confidence is very low; it is never shown to the user.
	BlockedContent string
}

// Validator applies heuristic checks to generated answers. Stateless; one
// instance serves concurrent calls.
type Validator struct {
	cfg *config.ValidatorConfig
}

func NewValidator(cfg *config.ValidatorConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate scores a generated response against the query and the knowledge
// it was supposed to be grounded in. Confidence starts at 1.0 and each
// heuristic subtracts its penalty at most once, except hedging which
// penalizes every matching phrase.
func (v *Validator) Validate(query, response string, usedKnowledge []knowledge.Item) Result {
	var warnings []string
	confidence := 1.0

	queryLower := strings.ToLower(query)
	responseLower := strings.ToLower(response)

	// 1. Hedging language.
	for _, phrase := range hedgingPhrases {
		if strings.Contains(responseLower, phrase) {
			warnings = append(warnings, fmt.Sprintf("%s: %q", warnUncertainPrefix, phrase))
			confidence -= v.cfg.HedgingPenalty
		}
	}

	// 2. Lexical grounding against the supplied knowledge.
	if len(usedKnowledge) > 0 && groundingRatio(responseLower, usedKnowledge) < v.cfg.GroundingRatio {
		warnings = append(warnings, warnDeviates)
		confidence -= v.cfg.GroundingPenalty
	}

	// 3. Medical queries must defer to professionals.
	if containsAny(queryLower, medicalKeywords) &&
		!strings.Contains(responseLower, "emergency") &&
		!strings.Contains(responseLower, "professional") {
		warnings = append(warnings, warnMedical)
		confidence -= v.cfg.MedicalPenalty
	}

	// 4. Off-domain queries without knowledge should have been redirected.
	if !containsAny(queryLower, earthquakeKeywords) && len(usedKnowledge) == 0 {
		warnings = append(warnings, warnRedirect)
		confidence -= v.cfg.RedirectPenalty
	}

	// 5. Fantasy content is disqualifying on its own.
	if containsAny(responseLower, fantasyKeywords) {
		warnings = append(warnings, warnFantasy)
		confidence -= v.cfg.FantasyPenalty
	}

	// 6. Grounded answers should still talk about survival topics.
	if len(usedKnowledge) > 0 && !containsAny(responseLower, survivalTopics) {
		warnings = append(warnings, warnOffTopic)
		confidence -= v.cfg.OffTopicPenalty
	}

	confidence = clamp01(confidence)

	result := Result{
		IsValid:    confidence > v.cfg.ValidThreshold,
		Confidence: confidence,
		Warnings:   warnings,
	}
	if confidence < v.cfg.BlockingThreshold {
		result.BlockedContent = response
	}
	return result
}

// SafeResponse picks the fallback message matching the most specific
// warning category that fired.
func (v *Validator) SafeResponse(query string, result Result) string {
	for _, w := range result.Warnings {
		if strings.Contains(w, warnMedical) {
			return fallbackMedical
		}
	}
	for _, w := range result.Warnings {
		if strings.Contains(w, warnRedirect) {
			return fallbackRedirect
		}
	}
	return fallbackGeneric
}

// groundingRatio is the fraction of response tokens longer than three bytes
// that also occur in the concatenated knowledge contents.
func groundingRatio(responseLower string, usedKnowledge []knowledge.Item) float64 {
	responseWords := strings.Fields(responseLower)
	if len(responseWords) == 0 {
		return 0
	}

	knowledgeWords := make(map[string]bool)
	for _, item := range usedKnowledge {
		for _, word := range strings.Fields(strings.ToLower(item.Content)) {
			knowledgeWords[word] = true
		}
	}

	overlap := 0
	for _, word := range responseWords {
		if len(word) > 3 && knowledgeWords[word] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(responseWords))
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
