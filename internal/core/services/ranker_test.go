package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

func chunk(doc string, page int, text string) domain.Chunk {
	return domain.Chunk{Document: doc, Page: page, Text: text}
}

func TestRankUnique_SortsDescending(t *testing.T) {
	scored := []ScoredChunk{
		{Chunk: chunk("a.pdf", 1, "low"), Score: 1.0},
		{Chunk: chunk("b.pdf", 2, "high"), Score: 5.0},
		{Chunk: chunk("c.pdf", 3, "mid"), Score: 3.0},
	}

	out := RankUnique(scored, 10)

	assert.Len(t, out, 3)
	assert.Equal(t, "high", out[0].Text)
	assert.Equal(t, "mid", out[1].Text)
	assert.Equal(t, "low", out[2].Text)
}

func TestRankUnique_DeduplicatesByDocumentAndPage(t *testing.T) {
	// Two chunks from the same page: the higher-scoring one survives.
	scored := []ScoredChunk{
		{Chunk: chunk("a.pdf", 7, "weaker text"), Score: 2.0},
		{Chunk: chunk("a.pdf", 7, "stronger text"), Score: 4.0},
		{Chunk: chunk("a.pdf", 8, "other page"), Score: 1.0},
	}

	out := RankUnique(scored, 10)

	assert.Len(t, out, 2)
	assert.Equal(t, "stronger text", out[0].Text)
	assert.Equal(t, "other page", out[1].Text)

	// Dedup invariant: no two results share (document, page).
	seen := map[string]bool{}
	for _, c := range out {
		assert.False(t, seen[c.Key()])
		seen[c.Key()] = true
	}
}

func TestRankUnique_ExactTieKeepsFirstSeen(t *testing.T) {
	scored := []ScoredChunk{
		{Chunk: chunk("a.pdf", 7, "first seen"), Score: 3.0},
		{Chunk: chunk("a.pdf", 7, "second seen"), Score: 3.0},
	}

	out := RankUnique(scored, 10)

	assert.Len(t, out, 1)
	assert.Equal(t, "first seen", out[0].Text)
}

func TestRankUnique_RespectsLimit(t *testing.T) {
	scored := []ScoredChunk{
		{Chunk: chunk("a.pdf", 1, ""), Score: 3.0},
		{Chunk: chunk("b.pdf", 1, ""), Score: 2.0},
		{Chunk: chunk("c.pdf", 1, ""), Score: 1.0},
	}

	out := RankUnique(scored, 2)
	assert.Len(t, out, 2)
}

func TestRankUnique_FewerThanLimit(t *testing.T) {
	scored := []ScoredChunk{
		{Chunk: chunk("a.pdf", 1, ""), Score: 3.0},
	}

	out := RankUnique(scored, 10)
	assert.Len(t, out, 1)
}

func TestRankUnique_EmptyAndZeroLimit(t *testing.T) {
	assert.Empty(t, RankUnique(nil, 10))
	assert.Empty(t, RankUnique([]ScoredChunk{{Chunk: chunk("a.pdf", 1, ""), Score: 1}}, 0))
}

func TestRankUnique_Deterministic(t *testing.T) {
	scored := []ScoredChunk{
		{Chunk: chunk("a.pdf", 1, "x"), Score: 2.0},
		{Chunk: chunk("b.pdf", 1, "y"), Score: 2.0},
		{Chunk: chunk("c.pdf", 1, "z"), Score: 2.0},
	}

	first := RankUnique(scored, 10)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RankUnique(scored, 10))
	}
}

func TestRankUnique_DoesNotMutateInput(t *testing.T) {
	scored := []ScoredChunk{
		{Chunk: chunk("a.pdf", 1, "low"), Score: 1.0},
		{Chunk: chunk("b.pdf", 1, "high"), Score: 5.0},
	}

	RankUnique(scored, 10)

	assert.Equal(t, "low", scored[0].Chunk.Text)
	assert.Equal(t, "high", scored[1].Chunk.Text)
}
