package consultation

import (
	"context"

	"sohoconnect/models"
)

// SessionStore persists consultation sessions between requests. Sessions
// are replaced wholesale on every transition.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConsultationSession, error)
	Set(ctx context.Context, sess models.ConsultationSession) error
	Delete(ctx context.Context, sessionID string) error
}

// ConsultationService runs guided question flows for visitors.
type ConsultationService interface {
	StartSession(ctx context.Context, category string) (models.ConsultationSession, models.Question, error)
	Answer(ctx context.Context, sessionID, optionID string) (models.ConsultationSession, *models.Question, error)
	Back(ctx context.Context, sessionID string) (models.ConsultationSession, *models.Question, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultConsultationService is the production implementation.
type DefaultConsultationService struct {
	Sessions SessionStore
}
