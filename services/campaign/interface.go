package campaign

import (
	"context"

	campaignRepo "sohoconnect/database/repository/campaign"
	"sohoconnect/models"
	ai "sohoconnect/services/intelligence"
	"sohoconnect/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// GenerateRequest asks for AI-drafted campaign copy.
type GenerateRequest struct {
	Campaign     string `json:"campaign"`
	Audience     string `json:"audience"`
	Offer        string `json:"offer"`
	ToneOfVoice  string `json:"toneOfVoice,omitempty"`
	CallToAction string `json:"callToAction,omitempty"`
}

// GeneratedEmail is the drafted copy, flagged when the template fallback
// produced it instead of the AI collaborator.
type GeneratedEmail struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Fallback bool   `json:"fallback"`
}

// SendRequest triggers a campaign send to a lead segment.
type SendRequest struct {
	Campaign       string `json:"campaign"`
	Segment        string `json:"segment,omitempty"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	FollowUpAfterH int    `json:"followUpAfterHours,omitempty"`
	FollowUpBody   string `json:"followUpBody,omitempty"`
}

// SendReport summarizes a campaign send.
type SendReport struct {
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Scheduled int `json:"scheduled"`
}

// CampaignService runs the internal email campaign tooling.
type CampaignService interface {
	UploadLeads(ctx context.Context, leads []models.CampaignLead) (int, error)
	GenerateEmail(ctx context.Context, req GenerateRequest) (*GeneratedEmail, error)
	SendCampaign(ctx context.Context, req SendRequest) (*SendReport, error)
	GetLogs(ctx context.Context, campaign string) ([]models.CampaignLog, error)
}

// DefaultCampaignService is the production implementation.
type DefaultCampaignService struct {
	Repo      campaignRepo.CampaignRepository
	Email     notification.EmailService
	Generator ai.TextGenerator
	Queue     *asynq.Client
	Limiter   *rate.Limiter
	Logger    *zap.Logger
}
