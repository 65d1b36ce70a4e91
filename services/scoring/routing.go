package scoring

import "sohoconnect/models"

// RoutingFor returns the follow-up routing recommendation for a tier.
func RoutingFor(tier models.LeadTier) models.LeadRouting {
	switch tier {
	case models.TierHot:
		return models.LeadRouting{Channel: "whatsapp", Priority: "immediate", FollowUpDelay: "2 hours"}
	case models.TierWarm:
		return models.LeadRouting{Channel: "email", Priority: "normal", FollowUpDelay: "24 hours"}
	default:
		return models.LeadRouting{Channel: "email", Priority: "low", FollowUpDelay: "48 hours"}
	}
}

// ResponseTimeFor returns the promised first-response time for a tier,
// used in confirmation emails.
func ResponseTimeFor(tier models.LeadTier) string {
	switch tier {
	case models.TierHot:
		return "2 hours"
	case models.TierWarm:
		return "24 hours"
	default:
		return "48 hours"
	}
}
