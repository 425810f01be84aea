package services

import (
	"regexp"
	"strings"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// Hand-tuned scoring weights. The corpus is small and domain-specific
// with known recurring noise, so a fixed additive formula ranks more
// predictably here than a statistical IR model. Changing a weight
// changes ranking for every query; treat them as part of the contract.
const (
	tokenInTextWeight   = 1.0
	tokenInSourceWeight = 0.6
	proceduralBoost     = 1.2
	boilerplatePenalty  = -1.8
)

// proceduralPattern matches procedure-indicating language.
var proceduralPattern = regexp.MustCompile(
	`(?i)\binvoke menu\b|\bmenu\b|\bfunction code\b|\bselect\b|\benter\b|\bfetch\b|\bauthori[sz]|\bsubmit\b|\bdebit\b|\bcredit\b|\bbeneficiary\b`)

// boilerplatePattern matches the letterhead text that recurs on every
// page and must not inflate scores.
var boilerplatePattern = regexp.MustCompile(
	`(?i)madhya pradesh gramin bank|a joint venture|govt of india|bank of india`)

// ScoredChunk pairs a chunk with its relevance score. Instances exist
// only within one query evaluation and are never mutated after
// creation, only sorted and filtered.
type ScoredChunk struct {
	Chunk domain.Chunk
	Score float64
}

// ScoreChunk assigns a relevance score to text against the query
// tokens and the source document name. Higher is more relevant;
// callers discard non-positive scores.
func ScoreChunk(tokens []string, text, sourceName string) float64 {
	t := strings.ToLower(text)
	src := strings.ToLower(sourceName)

	var s float64

	// Presence per token, not occurrence count.
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if strings.Contains(t, tok) {
			s += tokenInTextWeight
		}
	}
	for _, tok := range tokens {
		if tok != "" && strings.Contains(src, tok) {
			s += tokenInSourceWeight
		}
	}

	if proceduralPattern.MatchString(t) {
		s += proceduralBoost
	}
	if boilerplatePattern.MatchString(t) {
		s += boilerplatePenalty
	}

	return s
}

// topicBoost layers topic-specific boosts over the base score during
// the corpus scan. These break ties in favour of the single best-known
// authoritative source per topic and apply after the relevance filter,
// before ranking.
func topicBoost(hints domain.TopicHints, sourceName, text string) float64 {
	n := strings.ToLower(sourceName)
	t := strings.ToLower(text)

	var b float64

	if hints.Transfer() {
		if strings.Contains(n, "hpordm") {
			b += 3.5
		}
		if strings.Contains(n, "neft") || strings.Contains(n, "rtgs") {
			b += 2.0
		}
		if containsAny(n, []string{"fund", "transfer", "payment", "ord"}) {
			b += 1.2
		}
		if hints.UTR && (strings.Contains(n, "utr") || strings.Contains(n, "inquire")) {
			b += 2.0
		}
	}

	if hints.Nominee {
		if containsAny(n, []string{"booklet", "job card", "menu"}) {
			b += 3.0
		}
		if strings.Contains(t, "haci") {
			b += 4.0
		}
		if strings.Contains(t, "nomination") {
			b += 2.5
		}
	}

	if hints.CIF && containsAny(n, cifAllow) {
		b += 2.0
	}
	if hints.Close && containsAny(n, closeAllow) {
		b += 2.0
	}
	if hints.Open && containsAny(n, openAllow) {
		b += 1.0
	}

	return b
}
