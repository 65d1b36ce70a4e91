package models

// Option is one selectable answer within a consultation question.
// A nil NextQuestionID ends the flow.
type Option struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Description     string   `json:"description,omitempty"`
	Value           string   `json:"value"`
	NextQuestionID  string   `json:"nextQuestionId,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"` // service IDs
}

// Question is a single step of a consultation flow.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Subtext string   `json:"subtext,omitempty"`
	Options []Option `json:"options"`
}

// ConsultationFlow is a finite question graph for one service category.
type ConsultationFlow struct {
	StartQuestionID string              `json:"startQuestionId"`
	Questions       map[string]Question `json:"questions"`
}

// ConsultationSession is the traversal state for one visitor, cached
// between requests and replaced wholesale on every transition.
type ConsultationSession struct {
	ID                string            `json:"id"`
	Category          string            `json:"category"`
	CurrentQuestionID string            `json:"currentQuestionId"`
	Answers           map[string]string `json:"answers"` // question ID -> option ID, last answer wins
	History           []string          `json:"history"` // back-navigation stack of question IDs
	Done              bool              `json:"done"`
	Recommendations   []string          `json:"recommendations,omitempty"`
}
