// Package catalog holds the deploy-time service catalog and consultation
// flows. It is the single source of truth for quote calculator data and is
// read-only at runtime.
package catalog

import "sohoconnect/models"

// Services is the full service catalog.
var Services = []models.Service{
	// Printing
	{ID: "business-cards", Name: "Business Cards", Category: models.CategoryPrinting, BasePrice: 50, MaxPrice: 200, Turnaround: "2-3 days", Popular: true},
	{ID: "flyers-brochures", Name: "Flyers & Brochures", Category: models.CategoryPrinting, BasePrice: 100, MaxPrice: 500, Turnaround: "3-5 days"},
	{ID: "banners-posters", Name: "Banners & Posters", Category: models.CategoryPrinting, BasePrice: 150, MaxPrice: 800, Turnaround: "3-5 days"},
	{ID: "packaging", Name: "Custom Packaging", Category: models.CategoryPrinting, BasePrice: 300, MaxPrice: 2000, Turnaround: "1-2 weeks"},

	// Branding
	{ID: "logo-design", Name: "Logo Design", Category: models.CategoryBranding, BasePrice: 200, MaxPrice: 1000, Turnaround: "5-7 days", Popular: true},
	{ID: "brand-guidelines", Name: "Brand Guidelines", Category: models.CategoryBranding, BasePrice: 500, MaxPrice: 2500, Turnaround: "1-2 weeks"},
	{ID: "visual-identity", Name: "Complete Visual Identity", Category: models.CategoryBranding, BasePrice: 1000, MaxPrice: 5000, Turnaround: "2-4 weeks"},

	// Digital
	{ID: "social-media", Name: "Social Media Graphics", Category: models.CategoryDigital, BasePrice: 150, MaxPrice: 600, Turnaround: "3-5 days", Popular: true},
	{ID: "email-campaigns", Name: "Email Campaign Design", Category: models.CategoryDigital, BasePrice: 200, MaxPrice: 800, Turnaround: "5-7 days"},
	{ID: "digital-ads", Name: "Digital Ad Creatives", Category: models.CategoryDigital, BasePrice: 250, MaxPrice: 1000, Turnaround: "3-5 days"},

	// Signage
	{ID: "shop-signage", Name: "Shop Signage", Category: models.CategorySignage, BasePrice: 500, MaxPrice: 3000, Turnaround: "1-2 weeks"},
	{ID: "vehicle-branding", Name: "Vehicle Branding", Category: models.CategorySignage, BasePrice: 800, MaxPrice: 4000, Turnaround: "1-2 weeks"},
	{ID: "exhibition-stands", Name: "Exhibition Stands", Category: models.CategorySignage, BasePrice: 1000, MaxPrice: 5000, Turnaround: "2-3 weeks"},

	// Web
	{ID: "website-design", Name: "Website Design", Category: models.CategoryWeb, BasePrice: 800, MaxPrice: 5000, Turnaround: "2-4 weeks"},
	{ID: "landing-page", Name: "Landing Page", Category: models.CategoryWeb, BasePrice: 300, MaxPrice: 1500, Turnaround: "1 week"},
}

// Categories lists all catalog categories in display order.
var Categories = []models.ServiceCategory{
	models.CategoryPrinting,
	models.CategoryBranding,
	models.CategoryDigital,
	models.CategorySignage,
	models.CategoryWeb,
}

var byID = func() map[string]models.Service {
	m := make(map[string]models.Service, len(Services))
	for _, s := range Services {
		m[s.ID] = s
	}
	return m
}()

// ServiceByID looks up a catalog entry. Unknown IDs return ok=false;
// callers skip them rather than failing the whole calculation.
func ServiceByID(id string) (models.Service, bool) {
	s, ok := byID[id]
	return s, ok
}

// ServicesByCategory returns every catalog entry in the given category.
func ServicesByCategory(category models.ServiceCategory) []models.Service {
	var out []models.Service
	for _, s := range Services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// KnownServiceIDs returns the set of valid catalog IDs.
func KnownServiceIDs() map[string]bool {
	ids := make(map[string]bool, len(Services))
	for _, s := range Services {
		ids[s.ID] = true
	}
	return ids
}
