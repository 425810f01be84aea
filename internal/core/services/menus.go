package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// menuCandidatePattern matches bare uppercase runs that could be
// screen mnemonics.
var menuCandidatePattern = regexp.MustCompile(`\b[A-Z]{3,10}\b`)

// menuStoplist holds uppercase runs that are ordinary English or
// administrative words, never menu codes. NEFT/RTGS/UTR are domain
// terms, not screens, so they are stopped too.
var menuStoplist = map[string]bool{
	"SNM": true, "CLICK": true, "SUBMIT": true, "THEN": true,
	"SYSTEM": true, "WILL": true, "DISPLAY": true, "DETAILS": true,
	"ENTERED": true, "INWARD": true, "INQUIRE": true, "REMOVE": true,
	"PREFILLED": true, "FIELD": true, "SOL": true, "KEEP": true,
	"BLANK": true, "ENTER": true, "NEXT": true, "SELECT": true,
	"AMOUNT": true, "CUSTOMER": true, "ACCOUNT": true, "CREDIT": true,
	"DEBIT": true, "OPTION": true, "TAB": true, "NO": true, "YES": true,
	"ADD": true, "FETCH": true, "CHARGE": true, "OUR": true, "LINE": true,
	"THE": true, "AND": true, "FOR": true, "WITH": true, "FROM": true,
	"THIS": true, "THAT": true, "WHEN": true, "WHAT": true, "WHERE": true,
	"WHY": true, "HOW": true, "MUST": true, "SHALL": true, "NOTE": true,
	"ONLY": true, "PLEASE": true, "DONE": true, "DO": true, "TO": true,
	"IN": true, "ON": true, "OF": true, "AS": true,
	"NEFT": true, "RTGS": true, "UTR": true,
}

// Menu extraction weights. Proximity to the word "menu" is the
// strongest signal a run really is a screen mnemonic.
const (
	menuBaseWeight      = 1.0
	menuProximityWeight = 3.0
	menuQueryWeight     = 0.3
	menuProximityGap    = 15
	maxMenuCandidates   = 10
)

// ExtractMenuCodes mines candidate screen mnemonics from the ranked
// chunks, most likely first. A run scores its base weight per sighting,
// a large bonus when "menu" occurs within the proximity gap on either
// side, and a small once-per-chunk bonus when the chunk mentions a
// query token at all.
func ExtractMenuCodes(ranked []domain.Chunk, tokens []string) []string {
	type entry struct {
		code   string
		weight float64
		order  int
	}
	weights := make(map[string]*entry)
	order := 0

	for _, chunk := range ranked {
		txt := chunk.Text
		low := strings.ToLower(txt)

		chunkHasToken := false
		for _, t := range tokens {
			if t != "" && strings.Contains(low, t) {
				chunkHasToken = true
				break
			}
		}

		for _, code := range menuCandidatePattern.FindAllString(txt, -1) {
			if menuStoplist[code] {
				continue
			}

			w := menuBaseWeight
			if nearMenuWord(txt, code) {
				w += menuProximityWeight
			}
			if chunkHasToken {
				w += menuQueryWeight
			}

			e, ok := weights[code]
			if !ok {
				e = &entry{code: code, order: order}
				order++
				weights[code] = e
			}
			e.weight += w
		}
	}

	entries := make([]*entry, 0, len(weights))
	for _, e := range weights {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].order < entries[j].order
	})

	out := make([]string, 0, maxMenuCandidates)
	for _, e := range entries {
		out = append(out, e.code)
		if len(out) >= maxMenuCandidates {
			break
		}
	}
	return out
}

// nearMenuWord reports whether the word "menu" occurs within the
// proximity gap before or after the code in text.
func nearMenuWord(text, code string) bool {
	gap := `[^A-Z]{0,` + strconv.Itoa(menuProximityGap) + `}`
	p, err := regexp.Compile(`(?i)menu` + gap + regexp.QuoteMeta(code) + `|` + regexp.QuoteMeta(code) + gap + `menu`)
	if err != nil {
		return false
	}
	return p.MatchString(text)
}
