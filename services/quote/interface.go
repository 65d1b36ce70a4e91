package quote

import (
	"sohoconnect/config"
	"sohoconnect/models"
)

// Rules carries the configurable calculator knobs. Discount thresholds and
// the ROI multiplier are configuration, not engine constants.
type Rules struct {
	ROIMultiplier        float64
	BundleDiscountPair   float64 // applied at 2 distinct services
	BundleDiscountTriple float64 // applied at 3+ distinct services
}

// RulesFromConfig builds calculator rules from the loaded app config.
func RulesFromConfig() Rules {
	return Rules{
		ROIMultiplier:        config.AppConfig.ROIMultiplier,
		BundleDiscountPair:   config.AppConfig.BundleDiscountPair,
		BundleDiscountTriple: config.AppConfig.BundleDiscountTriple,
	}
}

// QuoteService computes estimates from catalog selections.
type QuoteService interface {
	CalculateQuoteEstimate(selectedServiceIDs []string) models.QuoteEstimate
	GetAvailableServices() []models.Service
}

// DefaultQuoteService is the production implementation.
type DefaultQuoteService struct {
	Rules Rules
}
