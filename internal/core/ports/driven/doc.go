// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LeadStore: Whole-document persistence of the lead collection
//   - Importer: Converts raw export text into normalized leads
//   - WriteScheduler: Single-shot deferred execution for debounced writes
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or importer package
package driven
