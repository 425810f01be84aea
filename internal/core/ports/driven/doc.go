// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusStore: Supplies the pre-built chunk corpus snapshot
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TemplateStore: Curated fallback templates. Without it, weak
//     statistical answers simply have no template attached.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
