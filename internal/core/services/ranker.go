package services

import (
	"sort"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// RankUnique sorts scored candidates descending and returns up to
// limit chunks, unique by (document, page). Ties keep first-seen
// corpus order, so identical inputs always rank identically. Fewer
// than limit distinct pages returns what exists; no padding.
func RankUnique(scored []ScoredChunk, limit int) []domain.Chunk {
	if limit <= 0 {
		return nil
	}

	ordered := make([]ScoredChunk, len(scored))
	copy(ordered, scored)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	out := make([]domain.Chunk, 0, limit)
	seen := make(map[string]bool, limit)
	for _, sc := range ordered {
		key := sc.Chunk.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sc.Chunk)
		if len(out) >= limit {
			break
		}
	}
	return out
}
