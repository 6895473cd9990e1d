package driven

import (
	"context"

	"github.com/threec-labs/leads-cli/internal/core/domain"
)

// MergeMode states how a bulk import combines with the current collection.
type MergeMode string

const (
	// MergeReplace discards the current collection in favour of the
	// imported one.
	MergeReplace MergeMode = "replace"

	// MergeAppend adds the imported leads after the current collection.
	MergeAppend MergeMode = "append"
)

// Importer converts the raw text of an export file into normalized leads.
// Each importer handles one external format and tags its output with a
// fixed provenance source.
type Importer interface {
	// Source returns the provenance tag stamped on every parsed lead.
	Source() domain.LeadSource

	// MergeMode returns how imports of this format merge with the
	// current collection.
	MergeMode() MergeMode

	// Extensions returns the file extensions this importer handles,
	// lower case with the leading dot (".txt").
	Extensions() []string

	// Parse converts export text into leads. Malformed rows or blocks
	// are dropped, never returned as partial records; a document with no
	// recognisable records yields an empty slice and no error.
	Parse(ctx context.Context, content string) ([]domain.Lead, error)
}
