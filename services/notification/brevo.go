// File: services/notification/brevo.go
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sohoconnect/models"
	"sohoconnect/services/scoring"

	"go.uber.org/zap"
)

const brevoAPIBase = "https://api.brevo.com/v3"

// BrevoEmailService is the production EmailService over the Brevo v3 REST API.
type BrevoEmailService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	SalesEmail  string
	Logger      *zap.Logger
	HTTPClient  *http.Client
}

// NewBrevoEmailService returns an EmailService with a bounded HTTP client.
func NewBrevoEmailService(apiKey, senderEmail, senderName, salesEmail string, logger *zap.Logger) *BrevoEmailService {
	return &BrevoEmailService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		SalesEmail:  salesEmail,
		Logger:      logger,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendEmail posts a single transactional email and returns the message ID.
func (s *BrevoEmailService) SendEmail(ctx context.Context, msg EmailMessage) (string, error) {
	payload := map[string]any{
		"sender": map[string]string{"email": s.SenderEmail, "name": s.SenderName},
		"to": []map[string]string{
			{"email": msg.ToEmail, "name": msg.ToName},
		},
		"subject":     msg.Subject,
		"htmlContent": msg.HTMLBody,
	}

	var resp struct {
		MessageID string `json:"messageId"`
	}
	if err := s.post(ctx, "/smtp/email", payload, &resp); err != nil {
		return "", err
	}
	return resp.MessageID, nil
}

// CreateContact upserts a CRM contact with the given attributes.
func (s *BrevoEmailService) CreateContact(ctx context.Context, email string, attributes map[string]string) error {
	payload := map[string]any{
		"email":         email,
		"attributes":    attributes,
		"updateEnabled": true,
	}
	return s.post(ctx, "/contacts", payload, nil)
}

// NotifySalesOfLead emails the sales inbox about a freshly scored lead with
// the tier-based response-time commitment.
func (s *BrevoEmailService) NotifySalesOfLead(ctx context.Context, lead models.Lead) error {
	routing := scoring.RoutingFor(lead.Score.Tier)

	var body strings.Builder
	fmt.Fprintf(&body, "<h2>New %s lead: %s</h2>", lead.Score.Tier, lead.Name)
	fmt.Fprintf(&body, "<p>Email: %s<br>Phone: %s<br>Company: %s</p>", lead.Email, lead.Phone, lead.Company)
	fmt.Fprintf(&body, "<p>BANT %d/100 (B%d A%d N%d T%d)</p>",
		lead.Score.Total, lead.Score.Budget, lead.Score.Authority, lead.Score.Need, lead.Score.Timeline)
	fmt.Fprintf(&body, "<p>Services: %s</p>", strings.Join(lead.Services, ", "))
	fmt.Fprintf(&body, "<p>Follow up within %s via %s.</p>", routing.FollowUpDelay, routing.Channel)
	if lead.Enhancement.RecommendedApproach != "" {
		fmt.Fprintf(&body, "<p>Suggested approach: %s</p>", lead.Enhancement.RecommendedApproach)
	}

	_, err := s.SendEmail(ctx, EmailMessage{
		ToEmail:  s.SalesEmail,
		ToName:   "Sales",
		Subject:  fmt.Sprintf("[%s] Quote request from %s", strings.ToUpper(string(lead.Score.Tier)), lead.Name),
		HTMLBody: body.String(),
	})
	return err
}

// SendOrderConfirmation emails the customer their order summary with the
// levy and VAT disclosed as separate figures.
func (s *BrevoEmailService) SendOrderConfirmation(ctx context.Context, order models.Order) error {
	var body strings.Builder
	fmt.Fprintf(&body, "<h2>Thank you for your order %s</h2>", order.OrderNumber)
	body.WriteString("<ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&body, "<li>%s x%d at $%.2f</li>", item.Product.Name, item.Quantity, item.Product.Price)
	}
	body.WriteString("</ul>")
	fmt.Fprintf(&body, "<p>Subtotal: $%.2f<br>Govt levy (2%%): $%.2f<br>Delivery: $%.2f<br><b>Total: $%.2f</b></p>",
		order.Subtotal, order.GovtLevy, order.DeliveryFee, order.Total)
	fmt.Fprintf(&body, "<p>VAT (disclosed separately): $%.2f</p>", order.VAT)

	_, err := s.SendEmail(ctx, EmailMessage{
		ToEmail:  order.Customer.Email,
		ToName:   order.Customer.FirstName + " " + order.Customer.LastName,
		Subject:  "Your Soho Connect order " + order.OrderNumber,
		HTMLBody: body.String(),
	})
	return err
}

func (s *BrevoEmailService) post(ctx context.Context, path string, payload any, out any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoAPIBase+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.APIKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("brevo %s returned %d: %s", path, resp.StatusCode, string(text))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			s.Logger.Warn("brevo response decode failed", zap.Error(err))
		}
	}
	return nil
}
