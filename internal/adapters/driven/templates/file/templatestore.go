// Package file loads the curated template library from a YAML file.
// The library is optional: a missing file just means no curated
// fallback is available.
package file

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driven"
	"github.com/opsdesk/finassist-cli/internal/logger"
)

// Ensure TemplateStore implements the interface.
var _ driven.TemplateStore = (*TemplateStore)(nil)

// libraryFile mirrors the on-disk template library layout.
type libraryFile struct {
	Items []domain.TemplateEntry `yaml:"items"`
}

// TemplateStore is a file-based implementation of driven.TemplateStore.
type TemplateStore struct {
	mu    sync.RWMutex
	path  string
	items []domain.TemplateEntry
}

// NewTemplateStore creates a template store backed by the YAML file at
// path and loads it. A missing file is not an error.
func NewTemplateStore(path string) (*TemplateStore, error) {
	s := &TemplateStore{path: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the library file, replacing the stored entries.
func (s *TemplateStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No template library at %s", s.path)
			return nil
		}
		return fmt.Errorf("read templates: %w", err)
	}

	var lib libraryFile
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	s.mu.Lock()
	s.items = lib.Items
	s.mu.Unlock()

	logger.Info("Template library loaded: %d entries", len(lib.Items))
	return nil
}

// Templates returns every loaded entry.
func (s *TemplateStore) Templates(_ context.Context) ([]domain.TemplateEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, nil
}
