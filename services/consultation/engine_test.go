package consultation

import (
	"testing"

	"sohoconnect/catalog"
	"sohoconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineFallsBackToGeneralFlow(t *testing.T) {
	engine := NewEngine("no-such-category")

	assert.Equal(t, catalog.Flows[catalog.GeneralFlowKey].StartQuestionID, engine.Flow.StartQuestionID)
}

func TestNewEngineUsesCategoryFlow(t *testing.T) {
	engine := NewEngine("Branding")

	assert.Equal(t, "brand_stage", engine.Flow.StartQuestionID)
}

func TestStartAndCurrentQuestion(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	q, err := engine.CurrentQuestion(sess)

	require.NoError(t, err)
	assert.Equal(t, engine.Flow.StartQuestionID, q.ID)
	assert.NotEmpty(t, q.Options)
}

func TestSelectAdvancesAndTerminates(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	sess, err := engine.Select(sess, "launch")
	require.NoError(t, err)
	assert.Equal(t, "budget_tier", sess.CurrentQuestionID)
	assert.False(t, sess.Done)

	sess, err = engine.Select(sess, "starter")
	require.NoError(t, err)
	assert.True(t, sess.Done)
	assert.NotEmpty(t, sess.Recommendations)
}

func TestSelectUnknownOption(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	_, err := engine.Select(sess, "not-an-option")

	assert.Error(t, err)
}

func TestRecommendationsAreKnownAndDeduplicated(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	sess, err := engine.Select(sess, "launch")
	require.NoError(t, err)
	sess, err = engine.Select(sess, "starter")
	require.NoError(t, err)

	// launch recommends visual-identity and business-cards; starter
	// recommends business-cards again. The union deduplicates.
	assert.Equal(t, []string{"visual-identity", "business-cards"}, sess.Recommendations)

	known := catalog.KnownServiceIDs()
	for _, rec := range sess.Recommendations {
		assert.True(t, known[rec], "recommendation %q must exist in the catalog", rec)
	}
}

func TestBackRestoresPriorQuestion(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	sess, err := engine.Select(sess, "launch")
	require.NoError(t, err)

	sess, err = engine.Back(sess)
	require.NoError(t, err)
	assert.Equal(t, "goal", sess.CurrentQuestionID)
	assert.Empty(t, sess.History)
}

func TestBackPastStartExitsFlow(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	_, err := engine.Back(sess)

	assert.ErrorIs(t, err, ErrFlowExited)
}

func TestRevisitedAnswerWins(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	// Answer, back out, answer differently. Only the final path counts.
	sess, err := engine.Select(sess, "launch")
	require.NoError(t, err)
	sess, err = engine.Back(sess)
	require.NoError(t, err)
	sess, err = engine.Select(sess, "grow")
	require.NoError(t, err)
	assert.Equal(t, "growth_focus", sess.CurrentQuestionID)

	sess, err = engine.Select(sess, "online")
	require.NoError(t, err)

	require.True(t, sess.Done)
	assert.Equal(t, []string{"website-design", "social-media"}, sess.Recommendations)
}

func TestBackClearsCompletionState(t *testing.T) {
	engine := NewEngine("")
	sess := engine.Start("s1", "")

	sess, err := engine.Select(sess, "launch")
	require.NoError(t, err)
	sess, err = engine.Select(sess, "starter")
	require.NoError(t, err)
	require.True(t, sess.Done)

	sess, err = engine.Back(sess)
	require.NoError(t, err)
	assert.False(t, sess.Done)
	assert.Nil(t, sess.Recommendations)
	assert.Equal(t, "budget_tier", sess.CurrentQuestionID)
}

func TestEveryFlowTerminates(t *testing.T) {
	// Exhaustively walk every path of every flow; each must reach a
	// terminal option within the question count.
	for name, flow := range catalog.Flows {
		depths := pathDepths(flow, flow.StartQuestionID, 0)
		assert.NotEmpty(t, depths, "flow %q has no paths", name)
		for _, depth := range depths {
			assert.LessOrEqual(t, depth, len(flow.Questions), "flow %q has a path longer than its question count", name)
		}
	}
}

// pathDepths walks every option branch and returns the depth at which each
// path terminates. Depths above the question count indicate a cycle.
func pathDepths(flow models.ConsultationFlow, questionID string, depth int) []int {
	if depth > len(flow.Questions) {
		return []int{depth}
	}
	q, ok := flow.Questions[questionID]
	if !ok {
		return []int{depth}
	}

	var out []int
	for _, opt := range q.Options {
		if opt.NextQuestionID == "" {
			out = append(out, depth+1)
			continue
		}
		out = append(out, pathDepths(flow, opt.NextQuestionID, depth+1)...)
	}
	return out
}
