package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sohoconnect/models"
	"sohoconnect/services/notification"
	"sohoconnect/services/tasks"

	"go.uber.org/zap"
)

// UploadLeads upserts a batch of campaign recipients keyed by email.
func (s *DefaultCampaignService) UploadLeads(ctx context.Context, leads []models.CampaignLead) (int, error) {
	valid := make([]models.CampaignLead, 0, len(leads))
	for _, lead := range leads {
		if lead.Email == "" || !strings.Contains(lead.Email, "@") {
			s.Logger.Warn("skipping campaign lead without valid email", zap.String("name", lead.Name))
			continue
		}
		lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
		valid = append(valid, lead)
	}
	if len(valid) == 0 {
		return 0, fmt.Errorf("no valid leads in upload")
	}
	return s.Repo.UpsertLeads(ctx, valid)
}

// GenerateEmail drafts campaign copy with the AI collaborator, degrading to
// a plain template when the collaborator is unavailable or unparseable.
func (s *DefaultCampaignService) GenerateEmail(ctx context.Context, req GenerateRequest) (*GeneratedEmail, error) {
	if req.Campaign == "" || req.Offer == "" {
		return nil, fmt.Errorf("campaign and offer are required")
	}

	if s.Generator != nil {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		raw, err := s.Generator.GenerateContent(ctx, buildEmailPrompt(req))
		if err == nil {
			if email, perr := parseGeneratedEmail(raw); perr == nil {
				return email, nil
			} else {
				s.Logger.Warn("AI email output unparseable, using template", zap.Error(perr))
			}
		} else {
			s.Logger.Warn("AI email generation unavailable, using template", zap.Error(err))
		}
	}

	return templateEmail(req), nil
}

// SendCampaign delivers the campaign to every lead in the segment, rate
// limited per send, logging each outcome and scheduling follow-ups through
// the task queue when requested.
func (s *DefaultCampaignService) SendCampaign(ctx context.Context, req SendRequest) (*SendReport, error) {
	if req.Campaign == "" || req.Subject == "" || req.Body == "" {
		return nil, fmt.Errorf("campaign, subject, and body are required")
	}

	leads, err := s.Repo.GetLeadsBySegment(ctx, req.Segment)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign leads: %w", err)
	}
	if len(leads) == 0 {
		return nil, fmt.Errorf("no leads in segment %q", req.Segment)
	}

	report := &SendReport{}
	for _, lead := range leads {
		if err := s.Limiter.Wait(ctx); err != nil {
			return report, fmt.Errorf("campaign send interrupted: %w", err)
		}

		entry := models.CampaignLog{
			Campaign: req.Campaign,
			Email:    lead.Email,
			Subject:  req.Subject,
		}

		msgID, err := s.Email.SendEmail(ctx, notification.EmailMessage{
			ToEmail:  lead.Email,
			ToName:   lead.Name,
			Subject:  req.Subject,
			HTMLBody: personalize(req.Body, lead),
		})
		if err != nil {
			entry.Status = "failed"
			entry.Error = err.Error()
			report.Failed++
			s.Logger.Warn("campaign send failed", zap.String("email", lead.Email), zap.Error(err))
		} else {
			entry.Status = "sent"
			entry.MessageID = msgID
			report.Sent++

			if req.FollowUpAfterH > 0 && req.FollowUpBody != "" {
				fireAt := time.Now().Add(time.Duration(req.FollowUpAfterH) * time.Hour)
				if err := s.scheduleFollowUp(req, lead, fireAt); err != nil {
					s.Logger.Warn("follow-up scheduling failed", zap.String("email", lead.Email), zap.Error(err))
				} else {
					entry.FollowUpAt = fireAt
					report.Scheduled++
				}
			}
		}

		if _, err := s.Repo.CreateLog(ctx, entry); err != nil {
			s.Logger.Warn("campaign log write failed", zap.String("email", lead.Email), zap.Error(err))
		}
	}

	return report, nil
}

// GetLogs lists send logs for a campaign.
func (s *DefaultCampaignService) GetLogs(ctx context.Context, campaign string) ([]models.CampaignLog, error) {
	return s.Repo.GetLogsByCampaign(ctx, campaign)
}

func (s *DefaultCampaignService) scheduleFollowUp(req SendRequest, lead models.CampaignLead, fireAt time.Time) error {
	payload := models.FollowUpPayload{
		Campaign: req.Campaign,
		Email:    lead.Email,
		Name:     lead.Name,
		Subject:  "Re: " + req.Subject,
		Body:     personalize(req.FollowUpBody, lead),
	}
	task, opts, err := tasks.NewFollowUpTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Queue.Enqueue(task, opts...)
	return err
}

func personalize(body string, lead models.CampaignLead) string {
	name := lead.Name
	if name == "" {
		name = "there"
	}
	body = strings.ReplaceAll(body, "{{name}}", name)
	body = strings.ReplaceAll(body, "{{company}}", lead.Company)
	return body
}

func buildEmailPrompt(req GenerateRequest) string {
	tone := req.ToneOfVoice
	if tone == "" {
		tone = "friendly and professional"
	}
	cta := req.CallToAction
	if cta == "" {
		cta = "reply to this email or visit our website"
	}
	return fmt.Sprintf(
		"Write a short marketing email for a printing and branding company. Respond with JSON only: "+
			`{"subject": string, "body": string}. Use {{name}} as the recipient placeholder.`+"\n"+
			"Campaign: %s\nAudience: %s\nOffer: %s\nTone: %s\nCall to action: %s\n",
		req.Campaign, req.Audience, req.Offer, tone, cta)
}

func parseGeneratedEmail(raw string) (*GeneratedEmail, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var email GeneratedEmail
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &email); err != nil {
		return nil, err
	}
	if email.Subject == "" || email.Body == "" {
		return nil, fmt.Errorf("generated email missing subject or body")
	}
	return &email, nil
}

func templateEmail(req GenerateRequest) *GeneratedEmail {
	return &GeneratedEmail{
		Subject: fmt.Sprintf("%s: an offer for you", req.Campaign),
		Body: fmt.Sprintf(
			"Hi {{name}},<br><br>%s<br><br>Get in touch and we will take it from there.<br><br>The Soho Connect team",
			req.Offer),
		Fallback: true,
	}
}
