// Package services implements the core business logic for the leads CLI.
//
// The central piece is LeadService, the synchronization policy between the
// in-memory lead collection and the remote whole-document store: edits apply
// optimistically and a single-slot deferred write coalesces bursts of edits
// into one whole-collection save. ImporterRegistry routes export files to
// the format parser that understands them.
//
// Services implement the driving ports and depend only on domain and the
// driven ports; adapters are injected at construction.
package services
