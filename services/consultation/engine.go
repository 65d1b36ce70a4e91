package consultation

import (
	"errors"
	"fmt"

	"sohoconnect/catalog"
	"sohoconnect/models"
)

// ErrFlowExited signals that back-navigation ran past the first question.
// The caller decides how to leave the flow; the engine has nothing to show.
var ErrFlowExited = errors.New("navigated back past the start of the flow")

// Engine drives one consultation flow. All transitions are pure over the
// session value; callers persist the returned session wholesale.
type Engine struct {
	Flow models.ConsultationFlow
}

// NewEngine returns an engine for the category's flow, substituting the
// general flow when the category has none.
func NewEngine(category string) *Engine {
	return &Engine{Flow: catalog.FlowForCategory(category)}
}

// Start initializes traversal state at the flow's designated start question.
func (e *Engine) Start(sessionID, category string) models.ConsultationSession {
	return models.ConsultationSession{
		ID:                sessionID,
		Category:          category,
		CurrentQuestionID: e.Flow.StartQuestionID,
		Answers:           map[string]string{},
	}
}

// CurrentQuestion returns the question the session is waiting on.
func (e *Engine) CurrentQuestion(sess models.ConsultationSession) (models.Question, error) {
	q, ok := e.Flow.Questions[sess.CurrentQuestionID]
	if !ok {
		return models.Question{}, fmt.Errorf("unknown question %q", sess.CurrentQuestionID)
	}
	return q, nil
}

// Select records the chosen option for the current question (overwriting a
// prior answer on revisit), pushes the question onto the history stack, and
// either advances or terminates the flow.
func (e *Engine) Select(sess models.ConsultationSession, optionID string) (models.ConsultationSession, error) {
	q, err := e.CurrentQuestion(sess)
	if err != nil {
		return sess, err
	}

	var chosen *models.Option
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			chosen = &q.Options[i]
			break
		}
	}
	if chosen == nil {
		return sess, fmt.Errorf("question %q has no option %q", q.ID, optionID)
	}

	if sess.Answers == nil {
		sess.Answers = map[string]string{}
	}
	sess.Answers[q.ID] = chosen.ID
	sess.History = append(sess.History, q.ID)

	if chosen.NextQuestionID == "" {
		sess.Done = true
		sess.Recommendations = e.recommendations(sess)
		return sess, nil
	}

	sess.CurrentQuestionID = chosen.NextQuestionID
	sess.Done = false
	return sess, nil
}

// Back pops the history stack to the prior question. An empty stack means
// the caller should exit the flow entirely.
func (e *Engine) Back(sess models.ConsultationSession) (models.ConsultationSession, error) {
	if len(sess.History) == 0 {
		return sess, ErrFlowExited
	}
	last := sess.History[len(sess.History)-1]
	sess.History = sess.History[:len(sess.History)-1]
	sess.CurrentQuestionID = last
	sess.Done = false
	sess.Recommendations = nil
	return sess, nil
}

// recommendations walks the flow from the start following the answers map
// (last answer per question wins) and unions the recommendations of every
// chosen option, deduplicated and filtered to known catalog IDs. Options
// visited then abandoned via back-navigation contribute nothing because
// only the answers at termination are traversed.
func (e *Engine) recommendations(sess models.ConsultationSession) []string {
	known := catalog.KnownServiceIDs()
	seen := map[string]bool{}
	var out []string

	current := e.Flow.StartQuestionID
	// Bounded by the question count so a miswired flow cannot loop forever.
	for steps := 0; steps <= len(e.Flow.Questions); steps++ {
		q, ok := e.Flow.Questions[current]
		if !ok {
			break
		}
		optID, answered := sess.Answers[q.ID]
		if !answered {
			break
		}

		var chosen *models.Option
		for i := range q.Options {
			if q.Options[i].ID == optID {
				chosen = &q.Options[i]
				break
			}
		}
		if chosen == nil {
			break
		}

		for _, rec := range chosen.Recommendations {
			if known[rec] && !seen[rec] {
				seen[rec] = true
				out = append(out, rec)
			}
		}

		if chosen.NextQuestionID == "" {
			break
		}
		current = chosen.NextQuestionID
	}

	return out
}
