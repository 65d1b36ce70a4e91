package models

import "time"

// CampaignLead is one recipient uploaded into a campaign batch.
type CampaignLead struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Segment   string    `bson:"segment,omitempty" json:"segment,omitempty"`
	LeadScore int       `bson:"leadScore,omitempty" json:"leadScore,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CampaignLog records the outcome of one campaign send.
type CampaignLog struct {
	ID         string    `bson:"id" json:"id"`
	Campaign   string    `bson:"campaign" json:"campaign"`
	Email      string    `bson:"email" json:"email"`
	Subject    string    `bson:"subject" json:"subject"`
	Status     string    `bson:"status" json:"status"` // sent, failed, scheduled
	MessageID  string    `bson:"messageId,omitempty" json:"messageId,omitempty"`
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	FollowUpAt time.Time `bson:"followUpAt,omitempty" json:"followUpAt,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// FollowUpPayload is the asynq task payload for a scheduled follow-up email.
type FollowUpPayload struct {
	Campaign string `json:"campaign"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}
