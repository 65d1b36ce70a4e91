package ai

import "context"

// TextGenerator is the external text-generation collaborator. Callers must
// bound it with a context deadline and define a fallback for when it is
// unreachable.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
