// Package memory provides in-memory store implementations, used by
// tests and as a seam for embedding the core in other processes.
package memory

import (
	"context"
	"sync"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
type CorpusStore struct {
	mu       sync.RWMutex
	snapshot *domain.Corpus
}

// NewCorpusStore creates an empty in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// SetCorpus replaces the current snapshot.
func (s *CorpusStore) SetCorpus(c *domain.Corpus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = c
}

// Snapshot returns the current corpus.
func (s *CorpusStore) Snapshot(_ context.Context) (*domain.Corpus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, domain.ErrCorpusNotReady
	}
	return s.snapshot, nil
}
