package driving

import (
	"context"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// AssistantService answers operational "how do I do X" queries against
// the loaded manual corpus.
type AssistantService interface {
	// Answer evaluates one query and returns the result bundle.
	// Fixed enquiry routes set Answer.Enquiry and skip the
	// statistical fields. An empty bundle is a valid "no match"
	// outcome. Returns domain.ErrCorpusNotReady before the corpus is
	// loaded and domain.ErrMissingReferenceDocument when a fixed
	// route cannot locate its booklet.
	Answer(ctx context.Context, query string, opts domain.AnswerOptions) (*domain.Answer, error)

	// Library lists the loaded manuals, optionally filtered by a
	// case-insensitive name substring.
	Library(ctx context.Context, filter string) ([]domain.DocumentMeta, error)
}
