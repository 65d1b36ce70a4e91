package lead

import (
	"context"

	leadRepo "sohoconnect/database/repository/lead"
	"sohoconnect/models"
	"sohoconnect/services/notification"
	"sohoconnect/services/scoring"

	"go.uber.org/zap"
)

// UTMParams carries campaign attribution from the submitting page.
type UTMParams struct {
	Source   string `json:"utmSource,omitempty"`
	Medium   string `json:"utmMedium,omitempty"`
	Campaign string `json:"utmCampaign,omitempty"`
}

// CaptureResult is returned to the submitting form.
type CaptureResult struct {
	Lead    models.Lead        `json:"lead"`
	Routing models.LeadRouting `json:"routing"`
	Warning string             `json:"warning,omitempty"`
}

// LeadService scores and captures quote-form submissions.
type LeadService interface {
	CaptureLead(ctx context.Context, form models.QuoteFormData, sourceForm string, utm UTMParams) (*CaptureResult, error)
	GetLeadsByTier(ctx context.Context, tier models.LeadTier) ([]models.Lead, error)
}

// DefaultLeadService is the production implementation.
type DefaultLeadService struct {
	Repo   leadRepo.LeadRepository
	Scorer scoring.Strategy
	Email  notification.EmailService
	Logger *zap.Logger
}
