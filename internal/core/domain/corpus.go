package domain

import (
	"strconv"
	"strings"
)

// Chunk is one extracted passage from a manual page.
// Chunks are produced by an upstream extraction tool and are immutable.
// Identical (Document, Page) pairs may recur across a loaded corpus;
// deduplication is the ranker's job.
type Chunk struct {
	// ID is assigned at load time for logging and traceability.
	// It carries no meaning beyond the current session.
	ID string `json:"-"`

	// Document is the source manual's file name.
	Document string `json:"pdf"`

	// Page is the 1-based page number within the document.
	Page int `json:"page"`

	// Text is the extracted passage text.
	Text string `json:"text"`
}

// Key identifies the page a chunk came from. Two chunks with equal
// keys cite the same manual page.
func (c Chunk) Key() string {
	return c.Document + "::" + strconv.Itoa(c.Page)
}

// DocumentMeta describes one source manual.
type DocumentMeta struct {
	// Document is the manual's file name.
	Document string `json:"pdf"`

	// Pages is the total page count.
	Pages int `json:"pages"`
}

// Corpus is the read-only in-memory snapshot the pipeline evaluates
// queries against. It is loaded once per session and never mutated;
// concurrent queries may share one snapshot safely.
type Corpus struct {
	// Chunks holds every extracted passage across all manuals.
	Chunks []Chunk

	// Documents holds one entry per distinct manual.
	Documents []DocumentMeta
}

// Empty reports whether the corpus has no usable content.
func (c *Corpus) Empty() bool {
	return c == nil || len(c.Chunks) == 0
}

// FindBooklet locates the menu booklet manual used as the authoritative
// reference for fixed enquiry routes. Booklet file names vary between
// deployments, so detection is heuristic: a name mentioning the booklet,
// job card, or menu list together with the Finacle version marker wins;
// any name containing "booklet" is the fallback.
func (c *Corpus) FindBooklet() (string, bool) {
	if c == nil {
		return "", false
	}
	for _, m := range c.Documents {
		n := strings.ToLower(m.Document)
		if (strings.Contains(n, "booklet") || strings.Contains(n, "job card") || strings.Contains(n, "menu")) &&
			(strings.Contains(n, "finacle") || strings.Contains(n, "10x") || strings.Contains(n, "10.")) {
			return m.Document, true
		}
	}
	for _, m := range c.Documents {
		if strings.Contains(strings.ToLower(m.Document), "booklet") {
			return m.Document, true
		}
	}
	return "", false
}
