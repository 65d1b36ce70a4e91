package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRules = Rules{
	ROIMultiplier:        3.5,
	BundleDiscountPair:   0.10,
	BundleDiscountTriple: 0.15,
}

func TestCalculateQuoteEstimateSingleService(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	est := svc.CalculateQuoteEstimate([]string{"business-cards"})

	assert.Equal(t, 50.0, est.Subtotal)
	assert.Equal(t, 0.0, est.Discount)
	assert.Equal(t, 0.0, est.DiscountPercent)
	assert.Equal(t, 50.0, est.Total)
	assert.Equal(t, 175.0, est.ROIEstimate)
}

func TestCalculateQuoteEstimatePairDiscount(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	est := svc.CalculateQuoteEstimate([]string{"business-cards", "flyers-brochures"})

	assert.Equal(t, 150.0, est.Subtotal)
	assert.InDelta(t, 15.0, est.Discount, 1e-9)
	assert.InDelta(t, 10.0, est.DiscountPercent, 1e-9)
	assert.InDelta(t, 135.0, est.Total, 1e-9)
	assert.Equal(t, 473.0, est.ROIEstimate)
}

func TestCalculateQuoteEstimateTripleDiscount(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	est := svc.CalculateQuoteEstimate([]string{"business-cards", "flyers-brochures", "logo-design"})

	assert.Equal(t, 350.0, est.Subtotal)
	assert.InDelta(t, 52.5, est.Discount, 1e-9)
	assert.InDelta(t, 15.0, est.DiscountPercent, 1e-9)
	assert.InDelta(t, 297.5, est.Total, 1e-9)
	assert.Equal(t, 1041.0, est.ROIEstimate)
}

func TestCalculateQuoteEstimateDuplicatesCollapse(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	est := svc.CalculateQuoteEstimate([]string{"business-cards", "business-cards", "business-cards"})

	assert.Equal(t, 50.0, est.Subtotal)
	assert.Equal(t, 0.0, est.DiscountPercent, "duplicates must not count toward the bundle discount")
}

func TestCalculateQuoteEstimateSkipsUnknownIDs(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	est := svc.CalculateQuoteEstimate([]string{"business-cards", "no-such-service"})

	assert.Equal(t, 50.0, est.Subtotal)
	assert.Equal(t, 0.0, est.DiscountPercent)
}

func TestCalculateQuoteEstimateOrderInsensitive(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	a := svc.CalculateQuoteEstimate([]string{"logo-design", "business-cards", "social-media"})
	b := svc.CalculateQuoteEstimate([]string{"social-media", "logo-design", "business-cards"})

	assert.Equal(t, a, b)
}

func TestCalculateQuoteEstimateEmptySelection(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	est := svc.CalculateQuoteEstimate(nil)

	assert.Equal(t, 0.0, est.Subtotal)
	assert.Equal(t, 0.0, est.Total)
	assert.Equal(t, 0.0, est.ROIEstimate)
}

func TestGetAvailableServices(t *testing.T) {
	svc := &DefaultQuoteService{Rules: testRules}

	services := svc.GetAvailableServices()

	assert.NotEmpty(t, services)
	for _, s := range services {
		assert.NotEmpty(t, s.ID)
		assert.Greater(t, s.BasePrice, 0.0)
	}
}
