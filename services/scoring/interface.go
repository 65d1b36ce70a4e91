package scoring

import (
	"context"

	"sohoconnect/models"
)

// Strategy scores a lead submission. Implementations must be total: they
// always return a usable score, degrading to the rule-based result when a
// collaborator is unavailable. A non-nil warning is a soft signal, never a
// failure of the scoring operation.
type Strategy interface {
	Score(ctx context.Context, data models.QuoteFormData) (models.BANTScore, models.AIEnhancement, error)
}

// RuleBasedStrategy scores with the deterministic BANT rules alone.
type RuleBasedStrategy struct{}

// Score implements Strategy. The returned enhancement is always zero and
// the error is always nil.
func (RuleBasedStrategy) Score(_ context.Context, data models.QuoteFormData) (models.BANTScore, models.AIEnhancement, error) {
	return CalculateBANT(data), models.AIEnhancement{}, nil
}
