package domain

// TemplateEntry is one curated procedure from the optional template
// library. The library is consulted only when statistical step
// extraction yields too few lines.
type TemplateEntry struct {
	// Keywords trigger the template when query words match them.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// TitlePrimary is the title in the operator's working language.
	TitlePrimary string `json:"title_primary" yaml:"title_primary"`

	// TitleSecondary is the English title.
	TitleSecondary string `json:"title_secondary" yaml:"title_secondary"`

	// Steps are the curated instruction lines.
	Steps []string `json:"steps" yaml:"steps"`
}
