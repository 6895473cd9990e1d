package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
)

// ImporterRegistry selects a format importer by file extension or by
// provenance source. Importers register once at startup.
type ImporterRegistry struct {
	mu       sync.RWMutex
	byExt    map[string]driven.Importer
	bySource map[domain.LeadSource]driven.Importer
}

// NewImporterRegistry creates an empty registry.
func NewImporterRegistry() *ImporterRegistry {
	return &ImporterRegistry{
		byExt:    make(map[string]driven.Importer),
		bySource: make(map[domain.LeadSource]driven.Importer),
	}
}

// Register adds an importer for all its extensions and its source.
// A later registration for the same extension or source wins.
func (r *ImporterRegistry) Register(imp driven.Importer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range imp.Extensions() {
		r.byExt[strings.ToLower(ext)] = imp
	}
	r.bySource[imp.Source()] = imp
}

// ByExtension returns the importer for the file's extension.
func (r *ImporterRegistry) ByExtension(filename string) (driven.Importer, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	r.mu.RLock()
	defer r.mu.RUnlock()
	imp, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return imp, nil
}

// BySource returns the importer that produces leads with the given
// provenance tag.
func (r *ImporterRegistry) BySource(source domain.LeadSource) (driven.Importer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	imp, ok := r.bySource[source]
	if !ok {
		return nil, fmt.Errorf("%w: no importer for source %q", domain.ErrUnsupportedFormat, source)
	}
	return imp, nil
}
