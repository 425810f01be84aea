package domain

// TopicHints records which enquiry domains a query touches.
// Hints are derived fresh from the token set for every query and are
// never persisted. Each hint is an independent predicate; the relevance
// filter applies them in a fixed precedence and never combines them.
type TopicHints struct {
	// Neft and Rtgs flag interbank fund transfer queries.
	Neft bool
	Rtgs bool

	// UTR flags transaction reference lookups.
	UTR bool

	// CIF flags customer record queries.
	CIF bool

	// Close and Open flag account lifecycle queries.
	Close bool
	Open  bool

	// HACM flags the account modification menu.
	HACM bool

	// DNS flags DNS removal requests.
	DNS bool

	// Form60 flags Form 60 handling queries.
	Form60 bool

	// Nominee flags nomination record lookups.
	Nominee bool

	// Balance flags balance enquiries.
	Balance bool

	// Status flags account status enquiries (dormant, freeze, etc).
	Status bool
}

// Transfer reports whether the query concerns fund transfer.
func (h TopicHints) Transfer() bool {
	return h.Neft || h.Rtgs
}

// HardEnquiry reports whether the query belongs to one of the fixed
// enquiry routes that bypass the statistical pipeline entirely.
func (h TopicHints) HardEnquiry() bool {
	return h.Nominee || h.Balance || h.Status || h.CIF
}

// Any reports whether any hint is active. With no active hint the
// relevance filter admits every document.
func (h TopicHints) Any() bool {
	return h.Neft || h.Rtgs || h.UTR || h.CIF || h.Close || h.Open ||
		h.HACM || h.DNS || h.Form60 || h.Nominee || h.Balance || h.Status
}

// Intent classifies what the user wants to do.
type Intent string

// Intent categories. Unknown deliberately covers both "no signal" and
// "ambiguous signal": the caller owns disambiguation for either case.
const (
	IntentProcess Intent = "process"
	IntentInquiry Intent = "inquiry"
	IntentModify  Intent = "modify"
	IntentReport  Intent = "report"
	IntentUnknown Intent = "unknown"
)
