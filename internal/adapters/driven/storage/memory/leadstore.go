// Package memory provides an in-memory implementation of the lead store.
// It backs tests and offline use; nothing survives the process.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
)

// Ensure LeadStore implements the interface.
var _ driven.LeadStore = (*LeadStore)(nil)

// LeadStore is an in-memory implementation of driven.LeadStore. The
// whole-document semantics match the remote store: Save replaces the entire
// collection, Load of a never-written store yields an empty collection.
type LeadStore struct {
	mu      sync.RWMutex
	leads   []domain.Lead
	backups map[string][]domain.Lead
}

// NewLeadStore creates an empty in-memory lead store.
func NewLeadStore() *LeadStore {
	return &LeadStore{
		backups: make(map[string][]domain.Lead),
	}
}

// Load returns the stored collection; an empty store yields an empty
// collection, never an error.
func (s *LeadStore) Load(_ context.Context) ([]domain.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Lead{}, s.leads...), nil
}

// Save replaces the stored collection.
func (s *LeadStore) Save(_ context.Context, leads []domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]domain.Lead{}, leads...)
	return nil
}

// Backup stores a timestamped copy under the backup namespace.
func (s *LeadStore) Backup(_ context.Context, leads []domain.Lead) (string, error) {
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	key := "backups/leads-backup-" + ts + ".json"

	s.mu.Lock()
	defer s.mu.Unlock()
	s.backups[key] = append([]domain.Lead{}, leads...)
	return key, nil
}

// HealthCheck always succeeds; memory is always reachable.
func (s *LeadStore) HealthCheck(_ context.Context) error {
	return nil
}

// BackupCount reports how many backups have been taken. Test helper.
func (s *LeadStore) BackupCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.backups)
}
