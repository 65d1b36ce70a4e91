package models

import "time"

// LeadTier classifies a submitted lead by its BANT total.
type LeadTier string

const (
	TierHot  LeadTier = "hot"
	TierWarm LeadTier = "warm"
	TierCold LeadTier = "cold"
)

// BANTScore breaks a lead score into its four components.
// Invariant: Total = Budget + Authority + Need + Timeline, clamped to [0,100].
type BANTScore struct {
	Budget    int      `json:"budget" bson:"budget"`       // 0-30
	Authority int      `json:"authority" bson:"authority"` // 0-25
	Need      int      `json:"need" bson:"need"`           // 0-25
	Timeline  int      `json:"timeline" bson:"timeline"`   // 0-20
	Total     int      `json:"total" bson:"total"`
	Tier      LeadTier `json:"tier" bson:"tier"`
}

// AIEnhancement is the qualitative adjustment signal returned by the
// text-classification collaborator. Zero value means no adjustment.
type AIEnhancement struct {
	UrgencySignals      []string `json:"urgencySignals" bson:"urgencySignals"`
	PainPoints          []string `json:"painPoints" bson:"painPoints"`
	BuyingSignals       []string `json:"buyingSignals" bson:"buyingSignals"`
	RecommendedApproach string   `json:"recommendedApproach" bson:"recommendedApproach"`
	NeedAdjustment      int      `json:"needAdjustment" bson:"needAdjustment"`
	AuthorityAdjustment int      `json:"authorityAdjustment" bson:"authorityAdjustment"`
	Confidence          float64  `json:"confidence" bson:"confidence"`
}

// LeadRouting describes how a scored lead should be followed up.
type LeadRouting struct {
	Channel       string `json:"channel"`
	Priority      string `json:"priority"`
	FollowUpDelay string `json:"followUpDelay"`
}

// Lead is a captured lead persisted after scoring.
type Lead struct {
	ID          string        `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Email       string        `bson:"email" json:"email"`
	Phone       string        `bson:"phone" json:"phone"`
	Company     string        `bson:"company,omitempty" json:"company,omitempty"`
	Services    []string      `bson:"services" json:"services"`
	SourceForm  string        `bson:"sourceForm" json:"sourceForm"`
	Score       BANTScore     `bson:"score" json:"score"`
	Enhancement AIEnhancement `bson:"enhancement,omitempty" json:"enhancement,omitempty"`
	UTMSource   string        `bson:"utmSource,omitempty" json:"utmSource,omitempty"`
	UTMMedium   string        `bson:"utmMedium,omitempty" json:"utmMedium,omitempty"`
	UTMCampaign string        `bson:"utmCampaign,omitempty" json:"utmCampaign,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
