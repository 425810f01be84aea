// Package services implements the driving port interfaces.
// It contains the full answer pipeline: query normalisation, intent
// classification, relevance filtering, chunk scoring, ranking, menu
// mining, step extraction, and the fixed enquiry routes, orchestrated
// by the assistant service over the driven ports.
//
// Services are pure Go with no external dependencies beyond the
// domain model.
package services
