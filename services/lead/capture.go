package lead

import (
	"context"
	"fmt"
	"strings"

	"sohoconnect/models"
	"sohoconnect/services/scoring"

	"go.uber.org/zap"
)

// CaptureLead validates, scores and persists a submission, then syncs the
// contact to the CRM and alerts sales. Collaborator failures downgrade to
// warnings; only validation and persistence can fail the operation.
func (s *DefaultLeadService) CaptureLead(ctx context.Context, form models.QuoteFormData, sourceForm string, utm UTMParams) (*CaptureResult, error) {
	if form.Name == "" || form.Email == "" || form.Phone == "" {
		return nil, fmt.Errorf("name, email, and phone are required")
	}

	score, enhancement, warn := s.Scorer.Score(ctx, form)
	warning := ""
	if warn != nil {
		warning = "scored without AI enhancement"
		s.Logger.Warn("lead scored without AI enhancement", zap.String("email", form.Email), zap.Error(warn))
	}

	lead := models.Lead{
		Name:        form.Name,
		Email:       strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:       form.Phone,
		Company:     form.Company,
		Services:    form.Services,
		SourceForm:  sourceForm,
		Score:       score,
		Enhancement: enhancement,
		UTMSource:   utm.Source,
		UTMMedium:   utm.Medium,
		UTMCampaign: utm.Campaign,
	}

	id, err := s.Repo.Create(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("failed to persist lead: %w", err)
	}
	lead.ID = id

	// CRM sync and sales alert are best-effort.
	if err := s.Email.CreateContact(ctx, lead.Email, map[string]string{
		"FIRSTNAME":  form.Name,
		"COMPANY":    form.Company,
		"LEAD_TIER":  string(score.Tier),
		"BANT_SCORE": fmt.Sprintf("%d", score.Total),
		"SOURCE":     sourceForm,
	}); err != nil {
		s.Logger.Warn("CRM contact sync failed", zap.String("email", lead.Email), zap.Error(err))
	}
	if err := s.Email.NotifySalesOfLead(ctx, lead); err != nil {
		s.Logger.Warn("sales notification failed", zap.String("leadID", lead.ID), zap.Error(err))
	}

	return &CaptureResult{
		Lead:    lead,
		Routing: scoring.RoutingFor(score.Tier),
		Warning: warning,
	}, nil
}

// GetLeadsByTier lists captured leads for a tier.
func (s *DefaultLeadService) GetLeadsByTier(ctx context.Context, tier models.LeadTier) ([]models.Lead, error) {
	return s.Repo.GetByTier(ctx, tier)
}
