package campaign

import (
	"context"
	"errors"
	"testing"

	"sohoconnect/models"
	"sohoconnect/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type fakeCampaignRepo struct {
	leads []models.CampaignLead
	logs  []models.CampaignLog
}

func (r *fakeCampaignRepo) UpsertLeads(_ context.Context, leads []models.CampaignLead) (int, error) {
	r.leads = append(r.leads, leads...)
	return len(leads), nil
}

func (r *fakeCampaignRepo) GetLeadsBySegment(_ context.Context, _ string) ([]models.CampaignLead, error) {
	return r.leads, nil
}

func (r *fakeCampaignRepo) CreateLog(_ context.Context, entry models.CampaignLog) (string, error) {
	r.logs = append(r.logs, entry)
	return "log-1", nil
}

func (r *fakeCampaignRepo) GetLogsByCampaign(_ context.Context, _ string) ([]models.CampaignLog, error) {
	return r.logs, nil
}

type stubGenerator struct {
	out string
	err error
}

func (g stubGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	return g.out, g.err
}

func newTestCampaignService(repo *fakeCampaignRepo) *DefaultCampaignService {
	return &DefaultCampaignService{
		Repo:   repo,
		Logger: zap.NewNop(),
	}
}

func TestUploadLeadsFiltersInvalidEmails(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := newTestCampaignService(repo)

	count, err := svc.UploadLeads(context.Background(), []models.CampaignLead{
		{Name: "Valid", Email: "VALID@Example.com"},
		{Name: "No Email"},
		{Name: "Bad", Email: "not-an-email"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, repo.leads, 1)
	assert.Equal(t, "valid@example.com", repo.leads[0].Email, "emails normalize to lowercase")
}

func TestUploadLeadsRejectsEmptyBatch(t *testing.T) {
	svc := newTestCampaignService(&fakeCampaignRepo{})

	_, err := svc.UploadLeads(context.Background(), []models.CampaignLead{{Name: "No Email"}})

	assert.Error(t, err)
}

func TestGenerateEmailUsesTemplateWithoutGenerator(t *testing.T) {
	svc := newTestCampaignService(&fakeCampaignRepo{})

	email, err := svc.GenerateEmail(context.Background(), GenerateRequest{
		Campaign: "Spring Sale",
		Offer:    "20% off all signage this month",
	})

	require.NoError(t, err)
	assert.True(t, email.Fallback)
	assert.Contains(t, email.Body, "{{name}}")
	assert.Contains(t, email.Body, "20% off all signage this month")
}

func TestGenerateEmailFallsBackOnGeneratorError(t *testing.T) {
	svc := newTestCampaignService(&fakeCampaignRepo{})
	svc.Generator = stubGenerator{err: errors.New("unavailable")}

	email, err := svc.GenerateEmail(context.Background(), GenerateRequest{
		Campaign: "Spring Sale",
		Offer:    "20% off",
	})

	require.NoError(t, err)
	assert.True(t, email.Fallback)
}

func TestGenerateEmailParsesGeneratorOutput(t *testing.T) {
	svc := newTestCampaignService(&fakeCampaignRepo{})
	svc.Generator = stubGenerator{out: "```json\n{\"subject\": \"Hello {{name}}\", \"body\": \"Big offer inside.\"}\n```"}

	email, err := svc.GenerateEmail(context.Background(), GenerateRequest{
		Campaign: "Spring Sale",
		Offer:    "20% off",
	})

	require.NoError(t, err)
	assert.False(t, email.Fallback)
	assert.Equal(t, "Hello {{name}}", email.Subject)
	assert.Equal(t, "Big offer inside.", email.Body)
}

func TestGenerateEmailRequiresCampaignAndOffer(t *testing.T) {
	svc := newTestCampaignService(&fakeCampaignRepo{})

	_, err := svc.GenerateEmail(context.Background(), GenerateRequest{Campaign: "X"})

	assert.Error(t, err)
}

func TestPersonalize(t *testing.T) {
	lead := models.CampaignLead{Name: "Tatenda", Company: "Mbare Prints"}

	out := personalize("Hi {{name}} from {{company}}", lead)
	assert.Equal(t, "Hi Tatenda from Mbare Prints", out)

	// Missing names fall back to a neutral greeting.
	out = personalize("Hi {{name}}", models.CampaignLead{})
	assert.Equal(t, "Hi there", out)
}

func TestParseGeneratedEmailRejectsIncompleteOutput(t *testing.T) {
	_, err := parseGeneratedEmail(`{"subject": "only a subject"}`)
	assert.Error(t, err)

	_, err = parseGeneratedEmail("no json here")
	assert.Error(t, err)
}

type fakeEmailService struct {
	sent    []notification.EmailMessage
	failFor string
}

func (f *fakeEmailService) SendEmail(_ context.Context, msg notification.EmailMessage) (string, error) {
	if msg.ToEmail == f.failFor {
		return "", errors.New("mailbox rejected")
	}
	f.sent = append(f.sent, msg)
	return "msg-1", nil
}

func (f *fakeEmailService) CreateContact(_ context.Context, _ string, _ map[string]string) error {
	return nil
}

func (f *fakeEmailService) NotifySalesOfLead(_ context.Context, _ models.Lead) error {
	return nil
}

func (f *fakeEmailService) SendOrderConfirmation(_ context.Context, _ models.Order) error {
	return nil
}

func TestSendCampaignReportsAndLogs(t *testing.T) {
	repo := &fakeCampaignRepo{leads: []models.CampaignLead{
		{Email: "a@example.com", Name: "A"},
		{Email: "b@example.com", Name: "B"},
	}}
	email := &fakeEmailService{failFor: "b@example.com"}
	svc := newTestCampaignService(repo)
	svc.Email = email
	svc.Limiter = rate.NewLimiter(rate.Inf, 1)

	report, err := svc.SendCampaign(context.Background(), SendRequest{
		Campaign: "Spring Sale",
		Subject:  "Hello {{name}}",
		Body:     "Hi {{name}}, big news.",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Scheduled)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "Hi A, big news.", email.sent[0].HTMLBody)

	require.Len(t, repo.logs, 2)
	assert.Equal(t, "sent", repo.logs[0].Status)
	assert.Equal(t, "failed", repo.logs[1].Status)
	assert.NotEmpty(t, repo.logs[1].Error)
}

func TestSendCampaignRequiresLeads(t *testing.T) {
	svc := newTestCampaignService(&fakeCampaignRepo{})
	svc.Email = &fakeEmailService{}
	svc.Limiter = rate.NewLimiter(rate.Inf, 1)

	_, err := svc.SendCampaign(context.Background(), SendRequest{
		Campaign: "Spring Sale",
		Subject:  "s",
		Body:     "b",
	})

	assert.Error(t, err)
}
