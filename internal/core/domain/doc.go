// Package domain defines the core business entities for Finassist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: one manual page's extracted text plus its source reference
//   - Corpus: the immutable in-memory snapshot of all chunks and manuals
//   - TopicHints: per-query booleans describing the enquiry domain
//   - Intent: the user's goal (process, inquiry, modify, report)
//   - Answer: the ranked, annotated result bundle for one query
//   - EnquiryCard: a hand-authored procedure for fixed enquiry routes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
