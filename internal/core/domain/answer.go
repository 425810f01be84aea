package domain

// AnswerOptions configures one query evaluation.
type AnswerOptions struct {
	// Limit is the maximum number of cited source pages.
	Limit int

	// MaxSteps is the maximum number of extracted instruction lines.
	MaxSteps int
}

// SourceRef cites the manual page a result came from.
type SourceRef struct {
	// Document is the source manual's file name.
	Document string `json:"document"`

	// Page is the 1-based page number.
	Page int `json:"page"`

	// Text is the raw chunk text the citation is based on.
	Text string `json:"text"`
}

// Ref returns the viewer identifiers for this citation.
func (s SourceRef) Ref() PDFRef {
	return PDFRef{File: s.Document, Page: s.Page}
}

// PDFRef is a document/page identifier pair. An external viewer
// resolves it to a display or download action; the core never touches
// the files themselves.
type PDFRef struct {
	// File is the document file identifier.
	File string `json:"file"`

	// Page is the 1-based page number to open at.
	Page int `json:"page"`
}

// Answer is the result bundle for one statistical query evaluation.
// Zero-value slices mean "no match" and are a valid outcome, not an
// error.
type Answer struct {
	// MenuCandidates lists mined command mnemonics, best first.
	MenuCandidates []string `json:"menu_candidates"`

	// Steps lists extracted instruction lines in suggested order.
	Steps []string `json:"steps"`

	// Sources cites the ranked manual pages the answer draws on.
	Sources []SourceRef `json:"sources"`

	// Intent is the classified action intent of the query.
	Intent Intent `json:"intent"`

	// Fallback is a curated template consulted when step extraction
	// found too little; nil when the statistical steps sufficed.
	Fallback *TemplateEntry `json:"fallback,omitempty"`

	// Enquiry is set instead of the statistical fields when a fixed
	// enquiry route answered the query.
	Enquiry *EnquiryCard `json:"enquiry,omitempty"`
}

// EnquiryCard is a hand-authored procedure for the small closed set of
// single-screen enquiries (nominee, balance, status, customer record).
// These are always account-level lookups with one authoritative source
// page, so statistical ranking is skipped for them.
type EnquiryCard struct {
	// Title names the enquiry.
	Title string `json:"title"`

	// MenuCode is the screen mnemonic to invoke.
	MenuCode string `json:"menu_code"`

	// Steps are the ordered instructions.
	Steps []string `json:"steps"`

	// ReferenceDocument and ReferencePage cite the authoritative
	// booklet page for verification.
	ReferenceDocument string `json:"reference_document"`
	ReferencePage     int    `json:"reference_page"`

	// Note carries an optional caveat shown with the card.
	Note string `json:"note,omitempty"`
}
