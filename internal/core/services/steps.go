package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// Line length bounds for candidate steps, in characters. Byte counts
// would triple-weight Devanagari text. Shorter is a fragment or stray
// OCR noise; longer is an unsegmented paragraph, not a step.
const (
	minStepLen = 18
	maxStepLen = 220
)

// maxStepSources caps how many ranked chunks feed the step extractor.
// Deliberately narrow: blending lines from lower-ranked pages mixes
// unrelated procedures into one answer.
const maxStepSources = 4

var (
	// Noise that survives extraction on most pages.
	stepNoisePatterns = []*regexp.Regexp{
		boilerplatePattern,
		regexp.MustCompile(`(?i)copyright|all rights reserved|page\s*\d+`),
		// PAN enquiry pages false-positive on almost every
		// account-related query.
		regexp.MustCompile(`(?i)pan inquiry|acctpani`),
	}

	// instructionPattern recognises lines that read like a procedure
	// step even without a query token: procedural cues plus the
	// legacy uppercase menu mnemonics.
	instructionPattern = regexp.MustCompile(
		`(?i)\bmenu\b|\binvoke\b|\bfunction\b|\bselect\b|\benter\b|\bfetch\b|\bsubmit\b|\bauthori[sz]|\bdebit\b|\bcredit\b|\bbeneficiary\b|\bcharge\b|\boption\b|\btab\b|\bHPORDM\b|\bNEFT\b|\bRTGS\b`)

	// transferExcludePattern drops card/tax-identifier lines that
	// creep into transfer answers via shared vocabulary.
	transferExcludePattern = regexp.MustCompile(`(?i)pan|acctpani|rupay|debit card|atm|adcreq`)

	// lineSplit breaks chunk text into line-like segments.
	lineSplit = regexp.MustCompile("\r?\n|•")

	// spaceRun collapses runs of whitespace inside a line.
	spaceRun = regexp.MustCompile(`\s+`)
)

func isStepNoise(line string) bool {
	for _, p := range stepNoisePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// scoredLine is one surviving candidate instruction line.
type scoredLine struct {
	score float64
	line  string
}

// ExtractSteps mines clean instruction lines from the top ranked
// chunks. The four hard-enquiry topics never reach this extractor (the
// fixed routes answer them), so it returns nothing for their hints.
// Unknown intent runs with no intent penalty.
func ExtractSteps(query string, ranked []domain.Chunk, maxSteps int, intent domain.Intent) []string {
	tokens := Tokenize(query)
	hints := DeriveHints(tokens)
	qlow := strings.ToLower(query)

	if hints.HardEnquiry() {
		return nil
	}
	if maxSteps <= 0 {
		return nil
	}

	limited := ranked
	if len(limited) > maxStepSources {
		limited = limited[:maxStepSources]
	}

	var cand []scoredLine
	for _, chunk := range limited {
		for _, part := range lineSplit.Split(chunk.Text, -1) {
			line := strings.TrimSpace(spaceRun.ReplaceAllString(part, " "))
			if line == "" {
				continue
			}
			if n := utf8.RuneCountInString(line); n < minStepLen || n > maxStepLen {
				continue
			}
			if isStepNoise(line) {
				continue
			}

			low := strings.ToLower(line)
			hasToken := false
			for _, t := range tokens {
				if t != "" && strings.Contains(low, t) {
					hasToken = true
					break
				}
			}
			if !hasToken && !instructionPattern.MatchString(line) {
				continue
			}

			// Topic keyword bonuses for the transfer family.
			var extra float64
			if (hints.Rtgs || strings.Contains(qlow, "rtgs")) && strings.Contains(low, "rtgs") {
				extra += 1.2
			}
			if (hints.Neft || strings.Contains(qlow, "neft")) && strings.Contains(low, "neft") {
				extra += 1.2
			}
			if hints.UTR && containsAny(low, []string{"utr", "inward", "outward", "inquire"}) {
				extra += 1.0
			}

			if hints.Transfer() && transferExcludePattern.MatchString(line) {
				continue
			}

			score := ScoreChunk(tokens, line, chunk.Document) + extra + intentPenalty(intent, line)
			if score <= 0 {
				continue
			}
			cand = append(cand, scoredLine{score: score, line: line})
		}
	}

	sort.SliceStable(cand, func(i, j int) bool {
		return cand[i].score > cand[j].score
	})

	out := make([]string, 0, maxSteps)
	seen := make(map[string]bool, maxSteps)
	for _, c := range cand {
		key := strings.ToLower(c.line)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c.line)
		if len(out) >= maxSteps {
			break
		}
	}
	return out
}
