package notification

import (
	"context"

	"sohoconnect/models"
)

// EmailMessage is one transactional email.
type EmailMessage struct {
	ToEmail  string
	ToName   string
	Subject  string
	HTMLBody string
}

// EmailService sends transactional email and syncs contacts with the CRM.
// Failures here are soft: callers log and continue, they never fail the
// user-facing operation.
type EmailService interface {
	SendEmail(ctx context.Context, msg EmailMessage) (string, error)
	CreateContact(ctx context.Context, email string, attributes map[string]string) error
	NotifySalesOfLead(ctx context.Context, lead models.Lead) error
	SendOrderConfirmation(ctx context.Context, order models.Order) error
}
