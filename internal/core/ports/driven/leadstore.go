package driven

import (
	"context"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

// LeadStore persists the lead collection as a single remote document.
// Every write replaces the entire stored collection; there is no delta or
// per-record update at this layer.
type LeadStore interface {
	// Load fetches the entire collection. An absent resource is an empty
	// collection, not an error; any other failure propagates.
	Load(ctx context.Context) ([]domain.Lead, error)

	// Save replaces the stored collection with leads.
	Save(ctx context.Context, leads []domain.Lead) error

	// Backup writes a timestamped copy of leads under the backup
	// namespace and returns the key it was written to. Backups are
	// independent of the primary resource.
	Backup(ctx context.Context, leads []domain.Lead) (string, error)

	// HealthCheck probes the store. A missing resource is healthy; only
	// an unreachable store is an error.
	HealthCheck(ctx context.Context) error
}
