package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
	"github.com/threec-labs/leads-cli/internal/core/ports/driving"
	"github.com/threec-labs/leads-cli/internal/logger"
)

// Ensure LeadService implements the interface.
var _ driving.LeadService = (*LeadService)(nil)

// DefaultDebounce is the quiet period between the last edit and the
// deferred whole-collection write. It is deliberately much larger than a
// typical save round-trip so a newly scheduled write never races an
// in-flight one.
const DefaultDebounce = 2 * time.Second

// LeadService reconciles the in-memory lead collection with a remote
// whole-document store under a single-writer, no-transaction model.
//
// Edits mutate the in-memory collection synchronously and (re)schedule one
// deferred write of the entire collection; each new edit cancels the
// pending write, coalescing bursts into a single save of the latest state.
// A failed deferred save is a warning, not a rollback - the optimistic
// state stays visible and the next edit retries naturally.
type LeadService struct {
	session  domain.Session
	store    driven.LeadStore
	sched    driven.WriteScheduler
	registry *ImporterRegistry
	delay    time.Duration

	onSaveError func(error)

	mu            sync.Mutex
	loaded        bool
	leads         []domain.Lead
	cancelPending func()
}

// NewLeadService creates the service. A non-positive delay falls back to
// DefaultDebounce.
func NewLeadService(
	session domain.Session,
	store driven.LeadStore,
	sched driven.WriteScheduler,
	registry *ImporterRegistry,
	delay time.Duration,
) *LeadService {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &LeadService{
		session:  session,
		store:    store,
		sched:    sched,
		registry: registry,
		delay:    delay,
	}
}

// OnSaveError installs a callback invoked when a deferred or background
// save fails. The callback is advisory; state is never rolled back.
func (s *LeadService) OnSaveError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSaveError = fn
}

// LoadAll fetches the collection from the store into memory.
func (s *LeadService) LoadAll(ctx context.Context) ([]domain.Lead, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	leads, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}
	if leads == nil {
		leads = []domain.Lead{}
	}

	s.mu.Lock()
	s.leads = leads
	s.loaded = true
	s.mu.Unlock()

	logger.Debug("loaded %d leads", len(leads))
	return cloneLeads(leads), nil
}

// Leads returns a copy of the in-memory collection.
func (s *LeadService) Leads() []domain.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLeads(s.leads)
}

// Get returns a copy of the lead with the given id.
func (s *LeadService) Get(leadID string) (*domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(leadID)
	if idx < 0 {
		return nil, domain.ErrLeadNotFound
	}
	lead := cloneLead(s.leads[idx])
	return &lead, nil
}

// Import routes content to the importer registered for the file's
// extension and merges per that importer's merge mode.
func (s *LeadService) Import(ctx context.Context, filename, content string) ([]domain.Lead, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	imp, err := s.registry.ByExtension(filename)
	if err != nil {
		return nil, err
	}
	return s.runImport(ctx, imp, content)
}

// ImportReplace parses report-text content and replaces the collection.
func (s *LeadService) ImportReplace(ctx context.Context, content string) ([]domain.Lead, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	imp, err := s.registry.BySource(domain.SourceOriginal)
	if err != nil {
		return nil, err
	}
	return s.runImport(ctx, imp, content)
}

// ImportAppend parses CSV content and appends to the collection.
func (s *LeadService) ImportAppend(ctx context.Context, content string) ([]domain.Lead, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	imp, err := s.registry.BySource(domain.SourceFresh)
	if err != nil {
		return nil, err
	}
	return s.runImport(ctx, imp, content)
}

// runImport parses, merges and persists immediately. The merged state is
// kept in memory even when the save fails; the error still propagates so
// the caller can warn.
func (s *LeadService) runImport(ctx context.Context, imp driven.Importer, content string) ([]domain.Lead, error) {
	parsed, err := imp.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}

	s.mu.Lock()
	switch imp.MergeMode() {
	case driven.MergeReplace:
		s.leads = parsed
	case driven.MergeAppend:
		s.leads = append(s.leads, parsed...)
	}
	s.loaded = true
	s.cancelScheduledLocked()
	snapshot := cloneLeads(s.leads)
	s.mu.Unlock()

	logger.Info("imported %d leads (%s, %s)", len(parsed), imp.Source(), imp.MergeMode())

	if err := s.store.Save(ctx, snapshot); err != nil {
		return snapshot, fmt.Errorf("save imported leads: %w", err)
	}
	return snapshot, nil
}

// ApplyEdit merges a patch into the lead.
func (s *LeadService) ApplyEdit(leadID string, patch domain.LeadPatch) (*domain.Lead, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *patch.Status)
	}
	return s.edit(leadID, func(l *domain.Lead) {
		l.Apply(patch)
	})
}

// AddCall records a contact attempt against the lead.
func (s *LeadService) AddCall(leadID string, in domain.CallInput) (*domain.Lead, error) {
	if !in.Outcome.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOutcome, in.Outcome)
	}
	return s.edit(leadID, func(l *domain.Lead) {
		l.AddCall(in)
	})
}

// SetStatus changes the lead's tracking status.
func (s *LeadService) SetStatus(leadID string, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return s.edit(leadID, func(l *domain.Lead) {
		l.Status = status
		l.Touch()
	})
}

// SetNotes replaces the lead's notes.
func (s *LeadService) SetNotes(leadID string, notes string) (*domain.Lead, error) {
	return s.edit(leadID, func(l *domain.Lead) {
		l.Notes = notes
		l.Touch()
	})
}

// edit applies mutate to the lead in memory and reschedules the deferred
// write. The updated record is returned before any remote traffic happens.
func (s *LeadService) edit(leadID string, mutate func(*domain.Lead)) (*domain.Lead, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(leadID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, domain.ErrLeadNotFound
	}
	mutate(&s.leads[idx])
	updated := cloneLead(s.leads[idx])
	s.scheduleSaveLocked()
	s.mu.Unlock()

	return &updated, nil
}

// scheduleSaveLocked cancels the pending deferred write, if any, and
// schedules a new one carrying a snapshot of the current state. Caller
// holds s.mu.
func (s *LeadService) scheduleSaveLocked() {
	s.cancelScheduledLocked()
	snapshot := cloneLeads(s.leads)
	s.cancelPending = s.sched.Schedule(s.delay, func() {
		s.persist(snapshot)
	})
}

// cancelScheduledLocked drops the not-yet-fired deferred write. Caller
// holds s.mu. An already in-flight save is never cancelled.
func (s *LeadService) cancelScheduledLocked() {
	if s.cancelPending != nil {
		s.cancelPending()
		s.cancelPending = nil
	}
}

// persist writes a snapshot to the store. Failure is non-fatal: the
// optimistic in-memory state is kept and the next edit reschedules a write.
func (s *LeadService) persist(snapshot []domain.Lead) {
	err := s.store.Save(context.Background(), snapshot)
	if err == nil {
		logger.Debug("saved %d leads", len(snapshot))
		return
	}
	logger.Warn("deferred save failed, keeping local edits: %v", err)

	s.mu.Lock()
	fn := s.onSaveError
	s.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// UpdateLead is the single-record read-modify-write path. It re-fetches
// the remote collection, replaces the record by id, stamps UpdatedAt and
// writes the whole collection back. There is no optimistic concurrency
// check; the last writer wins.
func (s *LeadService) UpdateLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	remote, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}

	idx := -1
	for n := range remote {
		if remote[n].ID == lead.ID {
			idx = n
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrLeadNotFound
	}

	lead.Touch()
	remote[idx] = lead
	if err := s.store.Save(ctx, remote); err != nil {
		return nil, fmt.Errorf("save leads: %w", err)
	}

	s.mu.Lock()
	if local := s.indexOf(lead.ID); local >= 0 {
		s.leads[local] = lead
	}
	s.mu.Unlock()

	updated := cloneLead(lead)
	return &updated, nil
}

// Flush cancels any pending deferred write and saves the current state
// immediately, awaiting the result. A service that never loaded anything
// has nothing to flush and must not overwrite the remote document.
func (s *LeadService) Flush(ctx context.Context) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.cancelScheduledLocked()
	snapshot := cloneLeads(s.leads)
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("flush leads: %w", err)
	}
	return nil
}

// FlushAsync fires a best-effort background save of the current state.
// No confirmation is awaited; a failure is only logged.
func (s *LeadService) FlushAsync() {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return
	}
	s.cancelScheduledLocked()
	snapshot := cloneLeads(s.leads)
	s.mu.Unlock()

	go s.persist(snapshot)
}

// Backup fetches the current remote state and writes a timestamped copy
// under the backup namespace.
func (s *LeadService) Backup(ctx context.Context) (string, error) {
	if err := s.requireAuth(); err != nil {
		return "", err
	}

	leads, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load leads: %w", err)
	}
	key, err := s.store.Backup(ctx, leads)
	if err != nil {
		return "", fmt.Errorf("backup leads: %w", err)
	}
	return key, nil
}

// Health probes the remote store.
func (s *LeadService) Health(ctx context.Context) error {
	return s.store.HealthCheck(ctx)
}

// requireAuth gates the entry points on the session handed to the service.
func (s *LeadService) requireAuth() error {
	if !s.session.Authenticated {
		return domain.ErrNotAuthenticated
	}
	return nil
}

// indexOf returns the position of the lead in the in-memory collection, or
// -1. Caller holds s.mu.
func (s *LeadService) indexOf(leadID string) int {
	for n := range s.leads {
		if s.leads[n].ID == leadID {
			return n
		}
	}
	return -1
}

// cloneLead copies a lead including its call history so callers can never
// alias the service's internal state.
func cloneLead(l domain.Lead) domain.Lead {
	if l.CallHistory != nil {
		// Keep empty history as an empty slice so it marshals as [].
		l.CallHistory = append([]domain.Call{}, l.CallHistory...)
	}
	if l.LastContactDate != nil {
		d := *l.LastContactDate
		l.LastContactDate = &d
	}
	return l
}

// cloneLeads copies a collection record by record.
func cloneLeads(src []domain.Lead) []domain.Lead {
	out := make([]domain.Lead, len(src))
	for n := range src {
		out[n] = cloneLead(src[n])
	}
	return out
}
