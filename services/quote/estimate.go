package quote

import (
	"math"

	"sohoconnect/catalog"
	"sohoconnect/models"
)

// CalculateQuoteEstimate turns a set of selected service IDs into a quote.
// Unknown IDs are skipped and duplicates collapse, so a stale ID in a saved
// quote never blocks a partial total. Selection order is irrelevant.
func (s *DefaultQuoteService) CalculateQuoteEstimate(selectedServiceIDs []string) models.QuoteEstimate {
	seen := make(map[string]bool, len(selectedServiceIDs))
	subtotal := 0.0
	count := 0

	for _, id := range selectedServiceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		svc, ok := catalog.ServiceByID(id)
		if !ok {
			continue
		}
		subtotal += svc.BasePrice
		count++
	}

	var discountPercent float64
	switch {
	case count >= 3:
		discountPercent = s.Rules.BundleDiscountTriple
	case count >= 2:
		discountPercent = s.Rules.BundleDiscountPair
	}

	discount := subtotal * discountPercent
	total := subtotal - discount

	// Marketing projection only, never a financial guarantee. Deterministic
	// for a given selection and configured multiplier.
	roiEstimate := math.Round(total * s.Rules.ROIMultiplier)

	return models.QuoteEstimate{
		Subtotal:        subtotal,
		Discount:        discount,
		DiscountPercent: discountPercent * 100,
		Total:           total,
		ROIEstimate:     roiEstimate,
	}
}

// GetAvailableServices returns the full service catalog.
func (s *DefaultQuoteService) GetAvailableServices() []models.Service {
	return catalog.Services
}
