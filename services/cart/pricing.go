// Pricing rules per Zimbabwe compliance: govt levy, VAT and forex figures
// come from configuration and are applied here, never computed live.
package cart

import (
	"sohoconnect/config"
	"sohoconnect/models"

	"github.com/shopspring/decimal"
)

// Rules carries the jurisdiction-specific pricing configuration.
type Rules struct {
	GovtLevyRate          float64
	VATRate               float64
	DeliveryFeeFlat       float64
	FreeDeliveryThreshold float64
	USDToZWLRate          float64
}

// RulesFromConfig builds pricing rules from the loaded app config.
func RulesFromConfig() Rules {
	return Rules{
		GovtLevyRate:          config.AppConfig.GovtLevyRate,
		VATRate:               config.AppConfig.VATRate,
		DeliveryFeeFlat:       config.AppConfig.DeliveryFeeFlat,
		FreeDeliveryThreshold: config.AppConfig.FreeDeliveryThreshold,
		USDToZWLRate:          config.AppConfig.USDToZWLRate,
	}
}

// round2 rounds half away from zero to 2 decimal places, so repeated
// recomputation never drifts the charged amount.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// CalculateGovtLevy computes the flat-percentage transaction levy.
func (r Rules) CalculateGovtLevy(subtotal float64) float64 {
	levy, _ := decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(r.GovtLevyRate)).
		Round(2).Float64()
	return levy
}

// CalculateVAT computes VAT on a subtotal. VAT is disclosed as a distinct
// figure and is never folded into the cart total.
func (r Rules) CalculateVAT(subtotal float64) float64 {
	vat, _ := decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(r.VATRate)).
		Round(2).Float64()
	return vat
}

// CalculateDeliveryFee returns the flat fee unless the order qualifies for
// free delivery or is picked up in store.
func (r Rules) CalculateDeliveryFee(subtotal float64, method models.DeliveryMethod) float64 {
	if method == models.DeliveryPickup {
		return 0
	}
	if subtotal >= r.FreeDeliveryThreshold {
		return 0
	}
	return r.DeliveryFeeFlat
}

// ConvertUSDToZWL converts a USD amount using the configured rate.
func (r Rules) ConvertUSDToZWL(amountUSD float64) float64 {
	zwl, _ := decimal.NewFromFloat(amountUSD).
		Mul(decimal.NewFromFloat(r.USDToZWLRate)).
		Round(2).Float64()
	return zwl
}

// CalculateCartTotals derives the cart totals from its lines. It is pure
// and recomputed on every read; totals are never stored independently of
// the items.
func (r Rules) CalculateCartTotals(items []models.CartItem) models.CartTotals {
	subtotal := decimal.Zero
	itemCount := 0
	for _, item := range items {
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
		itemCount += item.Quantity
	}

	sub, _ := subtotal.Round(2).Float64()
	levy := r.CalculateGovtLevy(sub)

	return models.CartTotals{
		Subtotal:  sub,
		GovtLevy:  levy,
		Total:     round2(sub + levy),
		ItemCount: itemCount,
	}
}
