package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

func TestExtractMenuCodes_FindsUppercaseRuns(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("a.pdf", 1, "Invoke menu HPORDM to start the outward transfer"),
	}

	codes := ExtractMenuCodes(chunks, []string{"neft"})

	assert.Equal(t, []string{"HPORDM"}, codes)
}

func TestExtractMenuCodes_StoplistFiltered(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("a.pdf", 1, "SUBMIT the ACCOUNT via NEFT then HPORDM and RTGS"),
	}

	codes := ExtractMenuCodes(chunks, nil)

	assert.Equal(t, []string{"HPORDM"}, codes)
}

func TestExtractMenuCodes_MenuProximityWins(t *testing.T) {
	// HCAAC appears twice without context; HPORDM once but next to
	// the word "menu", which outweighs the sighting count.
	chunks := []domain.Chunk{
		chunk("a.pdf", 1, "HCAAC is referenced here. HCAAC again in passing."),
		chunk("b.pdf", 1, "Invoke menu HPORDM for transfers"),
	}

	codes := ExtractMenuCodes(chunks, nil)

	assert.Equal(t, []string{"HPORDM", "HCAAC"}, codes)
}

func TestExtractMenuCodes_QueryTokenBonusOncePerChunk(t *testing.T) {
	// Both codes sit in a chunk mentioning the query token; the bonus
	// applies per sighting of each code, once per chunk scan.
	withToken := []domain.Chunk{chunk("a.pdf", 1, "neft screens: HCAAC and HCUDET")}
	without := []domain.Chunk{chunk("a.pdf", 1, "other screens: HCAAC and HCUDET")}

	got := ExtractMenuCodes(withToken, []string{"neft"})
	assert.Equal(t, []string{"HCAAC", "HCUDET"}, got)
	assert.Equal(t, []string{"HCAAC", "HCUDET"}, ExtractMenuCodes(without, []string{"neft"}))
}

func TestExtractMenuCodes_LengthBounds(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("a.pdf", 1, "AB HPORDM ABCDEFGHIJK"),
	}

	codes := ExtractMenuCodes(chunks, nil)

	// Two-letter and eleven-letter runs are out of range.
	assert.Equal(t, []string{"HPORDM"}, codes)
}

func TestExtractMenuCodes_TopTen(t *testing.T) {
	text := "AAA BBB CCC DDD EEE FFF GGG HHH III JJJ KKK LLL"
	chunks := []domain.Chunk{chunk("a.pdf", 1, text)}

	codes := ExtractMenuCodes(chunks, nil)

	assert.Len(t, codes, 10)
}

func TestExtractMenuCodes_AggregatesAcrossChunks(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("a.pdf", 1, "HCAAC appears once, HCUDET appears here"),
		chunk("b.pdf", 2, "HCUDET appears again"),
	}

	codes := ExtractMenuCodes(chunks, nil)

	assert.Equal(t, "HCUDET", codes[0])
}

func TestExtractMenuCodes_Empty(t *testing.T) {
	assert.Empty(t, ExtractMenuCodes(nil, nil))
	assert.Empty(t, ExtractMenuCodes([]domain.Chunk{chunk("a.pdf", 1, "no codes here")}, nil))
}
