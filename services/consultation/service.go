package consultation

import (
	"context"
	"fmt"

	"sohoconnect/models"

	"github.com/google/uuid"
)

// StartSession creates a session on the flow for the category (general flow
// when the category has none) and returns the first question.
func (s *DefaultConsultationService) StartSession(ctx context.Context, category string) (models.ConsultationSession, models.Question, error) {
	engine := NewEngine(category)
	sess := engine.Start(uuid.New().String(), category)

	q, err := engine.CurrentQuestion(sess)
	if err != nil {
		return sess, models.Question{}, err
	}
	if err := s.Sessions.Set(ctx, sess); err != nil {
		return sess, q, fmt.Errorf("failed to persist session: %w", err)
	}
	return sess, q, nil
}

// Answer applies an option selection. The returned question is nil when
// the flow terminated.
func (s *DefaultConsultationService) Answer(ctx context.Context, sessionID, optionID string) (models.ConsultationSession, *models.Question, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return models.ConsultationSession{}, nil, err
	}

	engine := NewEngine(sess.Category)
	next, err := engine.Select(*sess, optionID)
	if err != nil {
		return *sess, nil, err
	}
	if err := s.Sessions.Set(ctx, next); err != nil {
		return next, nil, fmt.Errorf("failed to persist session: %w", err)
	}

	if next.Done {
		return next, nil, nil
	}
	q, err := engine.CurrentQuestion(next)
	if err != nil {
		return next, nil, err
	}
	return next, &q, nil
}

// Back navigates to the prior question. ErrFlowExited propagates so the
// handler can tell the client to leave the flow.
func (s *DefaultConsultationService) Back(ctx context.Context, sessionID string) (models.ConsultationSession, *models.Question, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return models.ConsultationSession{}, nil, err
	}

	engine := NewEngine(sess.Category)
	prev, err := engine.Back(*sess)
	if err != nil {
		return *sess, nil, err
	}
	if err := s.Sessions.Set(ctx, prev); err != nil {
		return prev, nil, fmt.Errorf("failed to persist session: %w", err)
	}

	q, err := engine.CurrentQuestion(prev)
	if err != nil {
		return prev, nil, err
	}
	return prev, &q, nil
}

// CancelSession discards the session state.
func (s *DefaultConsultationService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
