package driving

import (
	"context"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

// LeadService is the collaborator-facing surface of the lead-tracking core.
//
// Edits are optimistic: they mutate the in-memory collection synchronously
// and return the updated record without waiting on the remote write. The
// service coalesces bursts of edits into a single deferred whole-collection
// write; callers that are about to exit must Flush.
type LeadService interface {
	// LoadAll fetches the collection from the remote store into memory
	// and returns it. A store without a leads document yields an empty
	// collection; any other store failure propagates with no partial data.
	LoadAll(ctx context.Context) ([]domain.Lead, error)

	// Leads returns a copy of the in-memory collection.
	Leads() []domain.Lead

	// Get returns a copy of the lead with the given id.
	Get(leadID string) (*domain.Lead, error)

	// Import parses content with the importer registered for the file's
	// extension and merges per that importer's merge mode. The merged
	// collection is persisted immediately and returned.
	Import(ctx context.Context, filename, content string) ([]domain.Lead, error)

	// ImportReplace parses report-text content and replaces the entire
	// collection with the result.
	ImportReplace(ctx context.Context, content string) ([]domain.Lead, error)

	// ImportAppend parses CSV content and appends the result to the
	// current collection.
	ImportAppend(ctx context.Context, content string) ([]domain.Lead, error)

	// ApplyEdit merges a patch into the lead and schedules a deferred
	// write. Returns the updated record immediately.
	ApplyEdit(leadID string, patch domain.LeadPatch) (*domain.Lead, error)

	// AddCall records a contact attempt against the lead, advancing a
	// "new" lead to "contacted", and schedules a deferred write.
	AddCall(leadID string, in domain.CallInput) (*domain.Lead, error)

	// SetStatus changes the lead's tracking status and schedules a
	// deferred write.
	SetStatus(leadID string, status domain.LeadStatus) (*domain.Lead, error)

	// SetNotes replaces the lead's notes and schedules a deferred write.
	SetNotes(leadID string, notes string) (*domain.Lead, error)

	// UpdateLead is the single-record read-modify-write path: it
	// re-fetches the remote collection, replaces the record by id, stamps
	// UpdatedAt and writes the whole collection back. Last writer wins.
	UpdateLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error)

	// Flush cancels any pending deferred write and saves the current
	// state immediately, awaiting the result. Used on explicit logout.
	Flush(ctx context.Context) error

	// FlushAsync fires a best-effort background save of the current
	// state without awaiting confirmation. Used on ordinary teardown.
	FlushAsync()

	// Backup writes a timestamped snapshot of the remote collection to
	// the backup namespace and returns its key.
	Backup(ctx context.Context) (string, error)

	// Health probes the remote store. A store with no leads document yet
	// is healthy.
	Health(ctx context.Context) error
}
