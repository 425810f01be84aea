package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

func TestScoreChunk_TokenPresence(t *testing.T) {
	// Presence only, not per occurrence.
	score := ScoreChunk([]string{"neft"}, "NEFT NEFT NEFT", "other.pdf")
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestScoreChunk_TokenInSourceName(t *testing.T) {
	score := ScoreChunk([]string{"neft"}, "nothing relevant here today", "NEFT_SOP.pdf")
	assert.InDelta(t, 0.6, score, 0.001)
}

func TestScoreChunk_ProceduralBoost(t *testing.T) {
	score := ScoreChunk([]string{"neft"},
		"To send NEFT, invoke menu HPORDM and enter beneficiary details", "NEFT_SOP.pdf")
	// 1.0 token in text + 0.6 token in name + 1.2 procedural.
	assert.InDelta(t, 2.8, score, 0.001)
}

func TestScoreChunk_BoilerplateOnlyIsNonPositive(t *testing.T) {
	score := ScoreChunk([]string{"neft"},
		"Madhya Pradesh Gramin Bank, A Joint Venture of Govt of India", "misc.pdf")
	assert.LessOrEqual(t, score, 0.0)
}

func TestScoreChunk_EmptyTokens(t *testing.T) {
	score := ScoreChunk(nil, "select the option and submit", "misc.pdf")
	assert.InDelta(t, 1.2, score, 0.001)
}

func TestScoreChunk_AuthoriseBothSpellings(t *testing.T) {
	assert.InDelta(t, 1.2, ScoreChunk(nil, "then authorise the record", "x.pdf"), 0.001)
	assert.InDelta(t, 1.2, ScoreChunk(nil, "then authorize the record", "x.pdf"), 0.001)
}

func TestTopicBoost_TransferSources(t *testing.T) {
	hints := domain.TopicHints{Neft: true}

	// The legacy transfer menu manual is the authoritative source.
	b := topicBoost(hints, "HPORDM_Fund_Transfer.pdf", "some text")
	// 3.5 hpordm + 1.2 fund/transfer/ord family.
	assert.InDelta(t, 4.7, b, 0.001)

	b = topicBoost(hints, "NEFT_SOP.pdf", "some text")
	assert.InDelta(t, 2.0, b, 0.001)

	assert.InDelta(t, 0.0, topicBoost(hints, "misc.pdf", "some text"), 0.001)
}

func TestTopicBoost_NomineeMenuMnemonic(t *testing.T) {
	hints := domain.TopicHints{Nominee: true}
	b := topicBoost(hints, "Finacle_Menu_Booklet.pdf", "HACI shows the nomination tab")
	// 3.0 booklet/menu name + 4.0 haci in text + 2.5 nomination in text.
	assert.InDelta(t, 9.5, b, 0.001)
}

func TestTopicBoost_NoHints(t *testing.T) {
	assert.InDelta(t, 0.0, topicBoost(domain.TopicHints{}, "HPORDM.pdf", "haci nomination"), 0.001)
}
