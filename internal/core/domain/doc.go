// Package domain defines the core business entities for the leads CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Lead: A normalized sales-prospect record
//   - Call: One recorded contact attempt against a lead
//   - LeadPatch: Optional field updates applied by a pure merge
//   - Session: The explicit session context handed to the core
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any other internal/ package
package domain
