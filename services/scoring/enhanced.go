package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sohoconnect/models"
	ai "sohoconnect/services/intelligence"

	"go.uber.org/zap"
)

// DefaultAITimeout bounds the text-classification call. The AI path never
// waits indefinitely; on timeout the rule-based score stands alone.
const DefaultAITimeout = 6 * time.Second

// AIEnhancedStrategy adjusts the qualitative subscores (need, authority)
// using free-text analysis from the text-generation collaborator. It always
// starts from the rule-based score and degrades to it on any failure.
type AIEnhancedStrategy struct {
	Generator ai.TextGenerator
	Logger    *zap.Logger
	Timeout   time.Duration
}

type enhancementPayload struct {
	UrgencySignals      []string `json:"urgencySignals"`
	PainPoints          []string `json:"painPoints"`
	BuyingSignals       []string `json:"buyingSignals"`
	RecommendedApproach string   `json:"recommendedApproach"`
	NeedAdjustment      int      `json:"needAdjustment"`
	AuthorityAdjustment int      `json:"authorityAdjustment"`
	Confidence          float64  `json:"confidence"`
}

// Score implements Strategy. The returned error is a soft warning: the
// score is always usable, falling back to the rule-based result when the
// collaborator is unreachable or returns garbage.
func (s *AIEnhancedStrategy) Score(ctx context.Context, data models.QuoteFormData) (models.BANTScore, models.AIEnhancement, error) {
	base := CalculateBANT(data)

	freeText := strings.TrimSpace(data.ProjectDescription + "\n" + data.AdditionalNotes)
	if s.Generator == nil || freeText == "" {
		return base, models.AIEnhancement{}, nil
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := s.Generator.GenerateContent(ctx, buildPrompt(data, freeText))
	if err != nil {
		s.warn("AI scoring unavailable, using rule-based score", err)
		return base, models.AIEnhancement{}, fmt.Errorf("ai scoring degraded: %w", err)
	}

	payload, err := parseEnhancement(raw)
	if err != nil {
		s.warn("AI scoring returned unparseable output, using rule-based score", err)
		return base, models.AIEnhancement{}, fmt.Errorf("ai scoring degraded: %w", err)
	}

	enhancement := models.AIEnhancement{
		UrgencySignals:      payload.UrgencySignals,
		PainPoints:          payload.PainPoints,
		BuyingSignals:       payload.BuyingSignals,
		RecommendedApproach: payload.RecommendedApproach,
		NeedAdjustment:      clamp(payload.NeedAdjustment, -5, 5),
		AuthorityAdjustment: clamp(payload.AuthorityAdjustment, -5, 5),
		Confidence:          payload.Confidence,
	}

	return applyEnhancement(base, enhancement), enhancement, nil
}

// applyEnhancement shifts the qualitative subscores within their bands and
// recomputes total and tier so the score invariants keep holding.
func applyEnhancement(base models.BANTScore, e models.AIEnhancement) models.BANTScore {
	base.Need = clamp(base.Need+e.NeedAdjustment, 0, needMax)
	base.Authority = clamp(base.Authority+e.AuthorityAdjustment, 0, authorityMax)
	base.Total = clamp(base.Budget+base.Authority+base.Need+base.Timeline, 0, 100)
	base.Tier = TierFor(base.Total)
	return base
}

func buildPrompt(data models.QuoteFormData, freeText string) string {
	var sb strings.Builder
	sb.WriteString("Analyze this printing/branding quote request and respond with JSON only, no prose.\n")
	sb.WriteString("Fields: urgencySignals (string[]), painPoints (string[]), buyingSignals (string[]), ")
	sb.WriteString("recommendedApproach (string), needAdjustment (int -5..5), authorityAdjustment (int -5..5), confidence (0..1).\n\n")
	fmt.Fprintf(&sb, "Services requested: %s\n", strings.Join(data.Services, ", "))
	fmt.Fprintf(&sb, "Stated timeline: %s\n", data.Timeline)
	fmt.Fprintf(&sb, "Free text:\n%s\n", freeText)
	return sb.String()
}

func parseEnhancement(raw string) (enhancementPayload, error) {
	// Models occasionally wrap JSON in markdown fences.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var payload enhancementPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return enhancementPayload{}, err
	}
	return payload, nil
}

func (s *AIEnhancedStrategy) warn(msg string, err error) {
	if s.Logger != nil {
		s.Logger.Warn(msg, zap.Error(err))
	}
}
