package memory

import (
	"context"
	"sync"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driven"
)

// Ensure TemplateStore implements the interface.
var _ driven.TemplateStore = (*TemplateStore)(nil)

// TemplateStore is an in-memory implementation of driven.TemplateStore.
type TemplateStore struct {
	mu    sync.RWMutex
	items []domain.TemplateEntry
}

// NewTemplateStore creates an empty in-memory template store.
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{}
}

// SetTemplates replaces the stored entries.
func (s *TemplateStore) SetTemplates(items []domain.TemplateEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// Templates returns every stored entry.
func (s *TemplateStore) Templates(_ context.Context) ([]domain.TemplateEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, nil
}
