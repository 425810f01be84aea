package driven

import (
	"context"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// CorpusStore supplies the pre-built corpus. Extraction happens in an
// upstream tool; the store only loads its output.
type CorpusStore interface {
	// Snapshot returns the current corpus. The returned value is
	// immutable: implementations must hand out a snapshot that stays
	// valid while queries run against it, even if the backing file is
	// replaced concurrently.
	Snapshot(ctx context.Context) (*domain.Corpus, error)
}

// TemplateStore supplies the optional curated template library.
type TemplateStore interface {
	// Templates returns every loaded template entry. An empty library
	// is not an error.
	Templates(ctx context.Context) ([]domain.TemplateEntry, error)
}
