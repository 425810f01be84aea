// Package file loads the pre-built manual index produced by the
// upstream extraction tool. The index is a single JSON file:
//
//	{"version": 1,
//	 "pdf_meta": [{"pdf": "...", "pages": N}, ...],
//	 "chunks":   [{"pdf": "...", "page": N, "text": "..."}, ...]}
//
// The store keeps one immutable snapshot in memory and can optionally
// watch the file, swapping in a fresh snapshot whenever the extraction
// tool rewrites it. Queries always see a complete snapshot.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driven"
	"github.com/opsdesk/finassist-cli/internal/logger"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// indexFile mirrors the on-disk index layout.
type indexFile struct {
	Version int                   `json:"version"`
	Meta    []domain.DocumentMeta `json:"pdf_meta"`
	Chunks  []domain.Chunk        `json:"chunks"`
}

// CorpusStore is a file-based implementation of driven.CorpusStore.
type CorpusStore struct {
	mu       sync.RWMutex
	path     string
	snapshot *domain.Corpus

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewCorpusStore creates a corpus store backed by the index file at
// path and performs the initial load.
func NewCorpusStore(path string) (*CorpusStore, error) {
	s := &CorpusStore{path: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the index file and replaces the current snapshot.
func (s *CorpusStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	var idx indexFile
	if err := json.Unmarshal(data, &idx); err != nil {
		return fmt.Errorf("parse index: %w", err)
	}

	corpus := &domain.Corpus{
		Chunks:    idx.Chunks,
		Documents: idx.Meta,
	}
	// Session-scoped chunk IDs for log traceability.
	for i := range corpus.Chunks {
		corpus.Chunks[i].ID = uuid.New().String()
	}

	s.mu.Lock()
	s.snapshot = corpus
	s.mu.Unlock()

	logger.Info("Corpus loaded: %d manuals, %d chunks", len(idx.Meta), len(idx.Chunks))
	return nil
}

// Snapshot returns the current corpus. The returned value must be
// treated as read-only; a reload replaces the snapshot rather than
// mutating it, so in-flight queries keep a consistent view.
func (s *CorpusStore) Snapshot(_ context.Context) (*domain.Corpus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, domain.ErrCorpusNotReady
	}
	return s.snapshot, nil
}

// Watch starts reloading the snapshot whenever the index file changes.
// The watch goes on the parent directory, not the file: the extraction
// tool replaces the index by atomic rename, which kills a watch held
// on the file itself. Safe to skip entirely; without a watcher the
// store serves the initial load for the whole session.
func (s *CorpusStore) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	s.watcher = w
	s.done = make(chan struct{})

	go func() {
		target := filepath.Clean(s.path)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					logger.Debug("Index file changed, reloading")
					if err := s.Load(); err != nil {
						logger.Warn("Index reload failed: %v", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("Index watcher error: %v", err)
			case <-s.done:
				return
			}
		}
	}()

	return nil
}

// Close stops the watcher if one is running.
func (s *CorpusStore) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	return s.watcher.Close()
}
