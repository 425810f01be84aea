package services

import (
	"strings"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// DeriveHints computes the topic hints for a token sequence. Each hint
// is an independent set-membership test. The status hint additionally
// checks the joined token string for both "account" and "status": a
// query like "account status check" must light it even when the exact
// token "status" was produced by normalisation.
func DeriveHints(tokens []string) domain.TopicHints {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	joined := strings.Join(tokens, " ")

	return domain.TopicHints{
		Neft:    set["neft"],
		Rtgs:    set["rtgs"],
		UTR:     set["utr"] || set["inquire"],
		CIF:     set["cif"],
		Close:   set["close"] || set["closure"],
		Open:    set["open"] || set["opening"],
		HACM:    set["hacm"],
		DNS:     set["dns"],
		Form60:  set["form60"] || (set["form"] && set["60"]),
		Nominee: set["nomination"],
		Balance: set["balance"],
		Status: set["status"] || set["dormant"] || set["freeze"] ||
			(strings.Contains(joined, "account") && strings.Contains(joined, "status")),
	}
}

// Cue-word families used both for intent classification and for the
// intent-separation penalty during scoring. Substring matches against
// lowercased text, so short roots cover their inflections ("authoris"
// matches authorise/authorised).
var (
	processCues = []string{
		"how", "kaise", "kare", "karna", "create", "open", "transfer",
		"perform", "process", "steps", "invoke", "submit",
	}
	inquiryCues = []string{
		"inquire", "inquiry", "enquiry", "status", "check", "balance",
		"details", "view", "dekhe", "kya",
	}
	modifyCues = []string{
		"modify", "change", "update", "amend", "correction", "badal",
	}
	reportCues = []string{
		"report", "statement", "list", "print", "download",
	}
)

// countCues counts literal occurrences of each cue in text. Presence is
// not enough: a query repeating a family's vocabulary signals that
// family more strongly.
func countCues(text string, cues []string) int {
	n := 0
	for _, c := range cues {
		n += strings.Count(text, c)
	}
	return n
}

// hasCue reports whether text contains any cue of the family.
func hasCue(text string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}

// ClassifyIntent derives the action intent from the raw query text.
// The four families are scored by occurrence count over the lowercased
// raw query (not the token set) and the strict maximum wins. A zero
// maximum or any tie yields IntentUnknown: on ambiguous queries the
// caller asks the user rather than guessing.
func ClassifyIntent(rawQuery string) domain.Intent {
	q := strings.ToLower(rawQuery)

	scores := []struct {
		intent domain.Intent
		score  int
	}{
		{domain.IntentProcess, countCues(q, processCues)},
		{domain.IntentInquiry, countCues(q, inquiryCues)},
		{domain.IntentModify, countCues(q, modifyCues)},
		{domain.IntentReport, countCues(q, reportCues)},
	}

	best := domain.IntentUnknown
	max, ties := 0, 0
	for _, s := range scores {
		switch {
		case s.score > max:
			max, ties, best = s.score, 1, s.intent
		case s.score == max:
			ties++
		}
	}
	if max == 0 || ties > 1 {
		return domain.IntentUnknown
	}
	return best
}

// intentPenalty separates "how to do X" from "how to check X" results
// that share vocabulary. A process query penalises chunks that read
// like pure enquiry text (and symmetrically for inquiry); modify and
// report queries take a milder penalty when their own cues are absent.
// Unknown intent passes through with no penalty.
func intentPenalty(intent domain.Intent, text string) float64 {
	l := strings.ToLower(text)
	switch intent {
	case domain.IntentProcess:
		if hasCue(l, inquiryCues) && !hasCue(l, processCues) {
			return -4.0
		}
	case domain.IntentInquiry:
		if hasCue(l, processCues) && !hasCue(l, inquiryCues) {
			return -4.0
		}
	case domain.IntentModify:
		if !hasCue(l, modifyCues) {
			return -1.5
		}
	case domain.IntentReport:
		if !hasCue(l, reportCues) {
			return -1.5
		}
	}
	return 0
}
