package services

import (
	"regexp"
	"strings"
)

// replacement is one ordered literal substitution applied during query
// normalisation.
type replacement struct {
	from, to string
}

// replacements maps Devanagari terms, Latin transliterations, and
// English synonyms onto canonical keywords. Order matters: pairs are
// applied top to bottom in a single pass each, and downstream scoring
// depends on the canonical tokens appearing verbatim. Extend freely,
// but append within the right group rather than reordering.
var replacements = []replacement{
	// Account open/close
	{"खाता बंद", "account close"},
	{"khata band", "account close"},
	{"account band", "account close"},
	{"account close", "account close"},

	{"खाता खोल", "account open"},
	{"khata khol", "account open"},
	{"account open", "account open"},

	// CIF
	{"सीआईएफ", "cif"},
	{"cif", "cif"},
	{"ग्राहक", "customer"},

	// NEFT/RTGS
	{"एनईएफटी", "neft"},
	{"neft", "neft"},
	{"आरटीजीएस", "rtgs"},
	{"rtgs", "rtgs"},

	// UTR/inquiry
	{"यूटीआर", "utr"},
	{"utr", "utr"},
	{"inquiry", "inquire"},
	{"inquire", "inquire"},
	{"पूछताछ", "inquire"},

	// Nominee/Nomination
	{"nominee", "nomination"},
	{"nomination", "nomination"},
	{"registered nominee", "nomination"},
	{"नामिनी", "nomination"},
	{"नॉमिनी", "nomination"},
	{"नामांकन", "nomination"},

	// Balance / status
	{"बैलेंस", "balance"},
	{"उपलब्ध राशि", "balance"},
	{"खाता स्थिति", "account status"},
	{"डॉर्मेंट", "dormant"},
	{"फ्रीज", "freeze"},

	// Transfer
	{"फंड ट्रांसफर", "fund transfer"},
	{"fund transfer", "fund transfer"},
	{"transfer", "fund transfer"},

	{"क्लोजर", "closure"},
	{"ओपनिंग", "opening"},
	{"बनाये", "create"},
	{"बनाना", "create"},
	{"कैसे", "how"},
	{"करना", "do"},
}

// tokenSplit matches any run of characters outside the ASCII
// lowercase/digit set. Leftover Devanagari after substitution falls on
// a split boundary and is discarded.
var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize normalises a raw mixed-script query into canonical keyword
// tokens, preserving their order of appearance. Empty or garbage input
// yields an empty slice; there is no failure mode.
func Tokenize(raw string) []string {
	q := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range replacements {
		q = strings.ReplaceAll(q, r.from, r.to)
	}

	parts := tokenSplit.Split(q, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
