package services

import (
	"strings"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

// Per-topic document filter word lists. Plain substring allow-matching
// over-admits (too many manuals share words like "account"), so each
// topic pairs its allow list with a block list of known false-positive
// categories. A block match rejects outright, even after an allow hit
// on a generic word.
var (
	transferAllow = []string{"hpordm", "neft", "rtgs", "fund", "transfer", "payment", "ord"}
	transferBlock = []string{
		"acctpani", "pan", "adcreq", "card", "debit", "rupay", "atm",
		"locker", "loan", "cibil", "dns", "tds", "hacm", "form60", "cif",
	}

	// The generic block list shared by the non-transfer topics.
	genericBlock = []string{"hpordm", "neft", "rtgs", "acctpani", "pan", "card", "adcreq"}

	nomineeAllow = []string{"booklet", "job card", "menu", "nomination", "nominee"}
	cifAllow     = []string{"cif", "corporate", "kyc"}
	closeAllow   = []string{"close", "closure", "hcaac", "acclose"}
	openAllow    = []string{"open", "opening", "account"}
)

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// DocumentAdmissible decides whether a manual may contribute results
// for a query with the given hints. Hints are tested in a fixed
// precedence and only the first active hint's policy applies; policies
// are never combined. With no active hint every document is admitted.
func DocumentAdmissible(name string, hints domain.TopicHints) bool {
	n := strings.ToLower(name)

	// Nomination: prefer the booklet strongly, and never mix in
	// unrelated procedure manuals.
	if hints.Nominee {
		return containsAny(n, nomineeAllow)
	}

	if hints.Transfer() {
		if containsAny(n, transferAllow) {
			return true
		}
		if hints.UTR && (strings.Contains(n, "utr") || strings.Contains(n, "inquire")) {
			return true
		}
		if containsAny(n, transferBlock) {
			return false
		}
		return true
	}

	if hints.CIF {
		if containsAny(n, cifAllow) {
			return true
		}
		return !containsAny(n, genericBlock)
	}

	if hints.Close {
		if containsAny(n, closeAllow) {
			return true
		}
		return !containsAny(n, genericBlock)
	}

	if hints.Open {
		if containsAny(n, openAllow) {
			return true
		}
		return !containsAny(n, genericBlock)
	}

	if hints.HACM {
		if strings.Contains(n, "hacm") {
			return true
		}
		return !containsAny(n, genericBlock)
	}

	// DNS and Form 60 manuals are too few to need blocking.
	if hints.DNS || hints.Form60 {
		return true
	}

	return true
}
