package lead

import (
	"context"
	"errors"
	"testing"

	"sohoconnect/models"
	"sohoconnect/services/notification"
	"sohoconnect/services/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLeadRepo struct {
	created []models.Lead
	failing bool
}

func (r *fakeLeadRepo) Create(_ context.Context, lead models.Lead) (string, error) {
	if r.failing {
		return "", errors.New("write failed")
	}
	r.created = append(r.created, lead)
	return "lead-1", nil
}

func (r *fakeLeadRepo) GetByID(_ context.Context, _ string) (*models.Lead, error) {
	return nil, errors.New("not found")
}

func (r *fakeLeadRepo) GetByEmail(_ context.Context, _ string) (*models.Lead, error) {
	return nil, errors.New("not found")
}

func (r *fakeLeadRepo) GetByTier(_ context.Context, tier models.LeadTier) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range r.created {
		if l.Score.Tier == tier {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) DeleteByID(_ context.Context, _ string) error { return nil }

type recordingEmailService struct {
	contacts   []string
	notified   []models.Lead
	contactErr error
}

func (e *recordingEmailService) SendEmail(_ context.Context, _ notification.EmailMessage) (string, error) {
	return "msg-1", nil
}

func (e *recordingEmailService) CreateContact(_ context.Context, email string, _ map[string]string) error {
	if e.contactErr != nil {
		return e.contactErr
	}
	e.contacts = append(e.contacts, email)
	return nil
}

func (e *recordingEmailService) NotifySalesOfLead(_ context.Context, lead models.Lead) error {
	e.notified = append(e.notified, lead)
	return nil
}

func (e *recordingEmailService) SendOrderConfirmation(_ context.Context, _ models.Order) error {
	return nil
}

type warningScorer struct{}

func (warningScorer) Score(_ context.Context, data models.QuoteFormData) (models.BANTScore, models.AIEnhancement, error) {
	return scoring.CalculateBANT(data), models.AIEnhancement{}, errors.New("collaborator down")
}

func hotForm() models.QuoteFormData {
	return models.QuoteFormData{
		Name:      "Tariro M",
		Email:     "Tariro@Example.com",
		Phone:     "+263771234567",
		Budget:    "high",
		Authority: "owner",
		Timeline:  "urgent",
		Services:  []string{"logo-design", "business-cards", "website-design"},
	}
}

func TestCaptureLeadScoresAndPersists(t *testing.T) {
	repo := &fakeLeadRepo{}
	email := &recordingEmailService{}
	svc := &DefaultLeadService{
		Repo:   repo,
		Scorer: scoring.RuleBasedStrategy{},
		Email:  email,
		Logger: zap.NewNop(),
	}

	result, err := svc.CaptureLead(context.Background(), hotForm(), "quote-calculator", UTMParams{Source: "facebook"})

	require.NoError(t, err)
	assert.Equal(t, "lead-1", result.Lead.ID)
	assert.Equal(t, "tariro@example.com", result.Lead.Email, "emails normalize to lowercase")
	assert.Equal(t, models.TierHot, result.Lead.Score.Tier)
	assert.Equal(t, "whatsapp", result.Routing.Channel)
	assert.Empty(t, result.Warning)
	assert.Equal(t, "facebook", result.Lead.UTMSource)

	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"tariro@example.com"}, email.contacts)
	require.Len(t, email.notified, 1)
}

func TestCaptureLeadValidation(t *testing.T) {
	svc := &DefaultLeadService{
		Repo:   &fakeLeadRepo{},
		Scorer: scoring.RuleBasedStrategy{},
		Email:  &recordingEmailService{},
		Logger: zap.NewNop(),
	}

	form := hotForm()
	form.Phone = ""

	_, err := svc.CaptureLead(context.Background(), form, "quote-calculator", UTMParams{})

	assert.Error(t, err)
}

func TestCaptureLeadScorerWarningIsSoft(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := &DefaultLeadService{
		Repo:   repo,
		Scorer: warningScorer{},
		Email:  &recordingEmailService{},
		Logger: zap.NewNop(),
	}

	result, err := svc.CaptureLead(context.Background(), hotForm(), "quote-calculator", UTMParams{})

	require.NoError(t, err, "scorer warnings never fail the capture")
	assert.Equal(t, "scored without AI enhancement", result.Warning)
	require.Len(t, repo.created, 1)
}

func TestCaptureLeadCRMFailureIsSoft(t *testing.T) {
	svc := &DefaultLeadService{
		Repo:   &fakeLeadRepo{},
		Scorer: scoring.RuleBasedStrategy{},
		Email:  &recordingEmailService{contactErr: errors.New("api down")},
		Logger: zap.NewNop(),
	}

	result, err := svc.CaptureLead(context.Background(), hotForm(), "quote-calculator", UTMParams{})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Lead.ID)
}

func TestCaptureLeadPersistenceFailureIsHard(t *testing.T) {
	svc := &DefaultLeadService{
		Repo:   &fakeLeadRepo{failing: true},
		Scorer: scoring.RuleBasedStrategy{},
		Email:  &recordingEmailService{},
		Logger: zap.NewNop(),
	}

	_, err := svc.CaptureLead(context.Background(), hotForm(), "quote-calculator", UTMParams{})

	assert.Error(t, err)
}

func TestGetLeadsByTier(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := &DefaultLeadService{
		Repo:   repo,
		Scorer: scoring.RuleBasedStrategy{},
		Email:  &recordingEmailService{},
		Logger: zap.NewNop(),
	}

	_, err := svc.CaptureLead(context.Background(), hotForm(), "quote-calculator", UTMParams{})
	require.NoError(t, err)

	hot, err := svc.GetLeadsByTier(context.Background(), models.TierHot)
	require.NoError(t, err)
	assert.Len(t, hot, 1)

	cold, err := svc.GetLeadsByTier(context.Background(), models.TierCold)
	require.NoError(t, err)
	assert.Empty(t, cold)
}
