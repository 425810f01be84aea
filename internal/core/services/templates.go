package services

import (
	"strings"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driven"
)

// Config keys for the fixed enquiry reference pages. The booklet page
// numbers differ between booklet revisions, so they are deployment
// configuration with the defaults below.
const (
	cfgPageNominee = "pages.nominee"
	cfgPageBalance = "pages.balance"
	cfgPageStatus  = "pages.status"
	cfgPageCIF     = "pages.cif"
)

const (
	defaultPageNominee = 107
	defaultPageBalance = 103
	defaultPageStatus  = 103
	defaultPageCIF     = 1
)

// Direct phrase lists for the fixed routes. A route fires on its topic
// hint OR a raw substring match, so common phrasings work even when
// normalisation missed them.
var (
	nomineePhrases = []string{"nominee", "nomination", "नामिनी", "नामांकन", "registered nominee"}
	balancePhrases = []string{"balance", "bal", "baki", "available", "withdrawable", "बैलेंस", "उपलब्ध राशि", "kitna balance"}
	statusPhrases  = []string{"account status", "status", "dormant", "inactive", "freeze", "stop", "खाता स्थिति", "डॉर्मेंट", "फ्रीज"}
	cifPhrases     = []string{"cif details", "customer details", "ग्राहक विवरण", "सीआईएफ details"}
)

// referencePage reads a route's booklet page from config, falling back
// to the shipped default.
func referencePage(cfg driven.ConfigStore, key string, def int) int {
	if cfg != nil {
		if p := cfg.GetInt(key); p > 0 {
			return p
		}
	}
	return def
}

// RouteEnquiry checks the query against the fixed enquiry routes:
// nomination, balance, account status, and customer record lookups.
// These are always single-screen, account-level enquiries with one
// authoritative booklet page, so statistical ranking is skipped.
//
// The second return value reports whether a route fired at all. A
// fired route without a booklet-type manual in the corpus returns
// domain.ErrMissingReferenceDocument instead of a card.
func RouteEnquiry(query string, hints domain.TopicHints, corpus *domain.Corpus, cfg driven.ConfigStore) (*domain.EnquiryCard, bool, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	card := func(c domain.EnquiryCard) (*domain.EnquiryCard, bool, error) {
		booklet, ok := corpus.FindBooklet()
		if !ok {
			return nil, true, domain.ErrMissingReferenceDocument
		}
		c.ReferenceDocument = booklet
		return &c, true, nil
	}

	switch {
	case hints.Nominee || containsAny(q, nomineePhrases):
		return card(domain.EnquiryCard{
			Title:    "Registered Nominee Details (SB/CA)",
			MenuCode: "HACI",
			Steps: []string{
				"Menu invoke करें: HACI",
				"SB/CA Account Number enter करें और Submit/Enter करें",
				"Tabs में जाएँ: Nomination",
				"Nominee Name, Relationship, Nomination % और (अगर minor) Guardian details देखें",
			},
			ReferencePage: referencePage(cfg, cfgPageNominee, defaultPageNominee),
			Note:          "Nominee/Nomination enquiry account-level होती है, इसलिए यह fixed enquiry template है.",
		})

	case hints.Balance || containsAny(q, balancePhrases):
		return card(domain.EnquiryCard{
			Title:    "Account Balance Enquiry (SB/CA)",
			MenuCode: "HACI",
			Steps: []string{
				"Menu invoke करें: HACI",
				"Account Number enter करें और Submit करें",
				"General/Balance details देखें (Available/Withdrawable balance)",
				"अगर hold/lien है तो Lien tab भी check करें",
			},
			ReferencePage: referencePage(cfg, cfgPageBalance, defaultPageBalance),
			Note:          "Role-based view में tabs अलग दिख सकते हैं—लेकिन enquiry approach same रहेगा।",
		})

	case hints.Status || containsAny(q, statusPhrases):
		return card(domain.EnquiryCard{
			Title:    "Account Status Enquiry (SB/CA)",
			MenuCode: "HACI",
			Steps: []string{
				"Menu invoke करें: HACI",
				"Account Number enter करें और Submit करें",
				"General tab में account status देखें (Active/Dormant/Inactive/Freeze आदि)",
				"अगर debit/credit restrictions हों तो remarks/flags भी देखें",
			},
			ReferencePage: referencePage(cfg, cfgPageStatus, defaultPageStatus),
			Note:          "Status enquiry account-level होती है; CIF enquiry menus में status अलग तरीके से दिख सकता है।",
		})

	case hints.CIF || containsAny(q, cifPhrases):
		return card(domain.EnquiryCard{
			Title:    "CIF / Customer Details Enquiry",
			MenuCode: "HCUDET",
			Steps: []string{
				"Menu invoke करें: HCUDET",
				"CIF ID / Customer ID enter करें और Submit करें",
				"Name, DOB/DOI, PAN/Aadhaar, Address, KYC status देखें",
				"अगर multiple CIF/merge issue हो तो remarks/links check करें",
			},
			ReferencePage: referencePage(cfg, cfgPageCIF, defaultPageCIF),
			Note:          "Nominee details account-level enquiry (HACI) में आता है, CIF enquiry अलग है।",
		})
	}

	return nil, false, nil
}

// MatchTemplate picks the curated template whose keywords contain the
// most query words. Only a strict best with at least one matching word
// wins; anything weaker returns nil.
func MatchTemplate(query string, items []domain.TemplateEntry) *domain.TemplateEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var best *domain.TemplateEntry
	bestScore := 0

	for i := range items {
		keywords := strings.ToLower(strings.Join(items[i].Keywords, " "))
		score := 0
		for _, w := range strings.Fields(q) {
			if w != "" && strings.Contains(keywords, w) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &items[i]
		}
	}

	return best
}
