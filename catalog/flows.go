package catalog

import "sohoconnect/models"

// GeneralFlowKey is the fallback flow used when a category has no
// dedicated consultation flow.
const GeneralFlowKey = "General"

// Flows maps a category (or the general key) to its consultation flow.
// Categories without a dedicated flow fall back to the general one.
var Flows = map[string]models.ConsultationFlow{
	GeneralFlowKey: {
		StartQuestionID: "goal",
		Questions: map[string]models.Question{
			"goal": {
				ID:      "goal",
				Text:    "What is your primary goal right now?",
				Subtext: "This helps us recommend the right strategy.",
				Options: []models.Option{
					{
						ID:              "launch",
						Label:           "Launch a New Business",
						Value:           "launch",
						NextQuestionID:  "budget_tier",
						Recommendations: []string{"visual-identity", "business-cards"},
					},
					{
						ID:             "grow",
						Label:          "Grow Existing Business",
						Value:          "grow",
						NextQuestionID: "growth_focus",
					},
					{
						ID:              "event",
						Label:           "Prepare for an Event",
						Value:           "event",
						NextQuestionID:  "event_type",
						Recommendations: []string{"flyers-brochures", "banners-posters"},
					},
				},
			},
			"budget_tier": {
				ID:      "budget_tier",
				Text:    "What is your approximate budget range?",
				Subtext: "We have options for every stage.",
				Options: []models.Option{
					{ID: "starter", Label: "Starter ($100 - $300)", Value: "low", Description: "Essential basics", Recommendations: []string{"business-cards"}},
					{ID: "standard", Label: "Standard ($300 - $1k)", Value: "medium", Description: "Professional kit", Recommendations: []string{"logo-design", "flyers-brochures"}},
					{ID: "pro", Label: "Premium ($1k+)", Value: "high", Description: "Full scale", Recommendations: []string{"visual-identity"}},
				},
			},
			"growth_focus": {
				ID:   "growth_focus",
				Text: "Where do you want to grow?",
				Options: []models.Option{
					{ID: "online", Label: "Online Presence", Value: "online", Recommendations: []string{"website-design", "social-media"}},
					{ID: "local", Label: "Local Visibility", Value: "local", Recommendations: []string{"shop-signage", "vehicle-branding"}},
					{ID: "campaigns", Label: "Marketing Campaigns", Value: "campaigns", Recommendations: []string{"digital-ads", "email-campaigns"}},
				},
			},
			"event_type": {
				ID:   "event_type",
				Text: "What kind of event are you preparing for?",
				Options: []models.Option{
					{ID: "expo", Label: "Expo / Trade Show", Value: "expo", Recommendations: []string{"exhibition-stands", "banners-posters"}},
					{ID: "promo", Label: "Promotion / Sale", Value: "promo", Recommendations: []string{"flyers-brochures", "social-media"}},
				},
			},
		},
	},
	string(models.CategoryBranding): {
		StartQuestionID: "brand_stage",
		Questions: map[string]models.Question{
			"brand_stage": {
				ID:   "brand_stage",
				Text: "Where is your brand currently?",
				Options: []models.Option{
					{
						ID:              "new",
						Label:           "Brand New (Starting from Scratch)",
						Value:           "new",
						NextQuestionID:  "brand_needs_new",
						Recommendations: []string{"logo-design"},
					},
					{
						ID:              "existing",
						Label:           "Established (Need a Refresh)",
						Value:           "refresh",
						NextQuestionID:  "brand_needs_refresh",
						Recommendations: []string{"brand-guidelines"},
					},
				},
			},
			"brand_needs_new": {
				ID:   "brand_needs_new",
				Text: "What are your immediate priorities?",
				Options: []models.Option{
					{ID: "logo", Label: "Logo Only", Value: "logo", Recommendations: []string{"logo-design"}},
					{ID: "full_identity", Label: "Full Identity (Logo, Colors, Fonts)", Value: "identity", Recommendations: []string{"visual-identity"}},
					{ID: "stationery", Label: "Stationery (Cards, Letterheads)", Value: "stationery", Recommendations: []string{"business-cards", "flyers-brochures"}},
				},
			},
			"brand_needs_refresh": {
				ID:   "brand_needs_refresh",
				Text: "What needs updating?",
				Options: []models.Option{
					{ID: "modernize", Label: "Modernize Logo", Value: "modernize", Recommendations: []string{"logo-design"}},
					{ID: "consistency", Label: "Fix Inconsistency", Value: "consistency", Recommendations: []string{"brand-guidelines"}},
					{ID: "expansion", Label: "New Assets for Campaign", Value: "expansion", Recommendations: []string{"flyers-brochures", "vehicle-branding"}},
				},
			},
		},
	},
}

// FlowForCategory returns the consultation flow for a category, substituting
// the general flow when the category has none. The fallback is deliberate,
// not an error.
func FlowForCategory(category string) models.ConsultationFlow {
	if flow, ok := Flows[category]; ok && len(flow.Questions) > 0 {
		return flow
	}
	return Flows[GeneralFlowKey]
}
