package report

import (
	"context"
	"strings"

	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
)

// Ensure Importer implements the interface.
var _ driven.Importer = (*Importer)(nil)

// blockMarker opens every lead block. A document with zero markers is an
// empty export, not an error.
const blockMarker = "⭐ Qualified Lead:"

// rule is the banner line around each block header.
const rule = "========================================================"

// Field labels and the candidate terminators that bound each value. A value
// runs from the end of its label to the earliest terminator found; if the
// label is absent the field is empty and the record is still emitted.
var fields = []struct {
	label string
	stops []string
	set   func(*domain.Lead, string)
}{
	{blockMarker, []string{"=", "🆔", "\n\n"}, func(l *domain.Lead, v string) { l.Company = v }},
	{"**UEI:**", []string{"\n", "👤"}, func(l *domain.Lead, v string) { l.UEI = v }},
	{"**POC Name:**", []string{"\n", "📅"}, func(l *domain.Lead, v string) { l.POCName = v }},
	{"**Initial Entity Date (2-Year Filter):**", []string{"\n", "✅"}, func(l *domain.Lead, v string) { l.InitialEntityDate = v }},
	{"**Recent Activation Date (3-Month Filter):**", []string{"\n", "📍"}, func(l *domain.Lead, v string) { l.RecentActivationDate = v }},
	{"**Address:**", []string{"\n", "🏭"}, func(l *domain.Lead, v string) { l.Address = v }},
	{"**NAICS Count:**", []string{"\n", "💡"}, func(l *domain.Lead, v string) { l.NAICSCount = v }},
	{"**NAICS Codes:**", []string{"\n", "="}, func(l *domain.Lead, v string) { l.NAICSCodes = v }},
}

// Importer parses report-text exports into leads with source "original".
type Importer struct{}

// New creates a report-text importer.
func New() *Importer {
	return &Importer{}
}

// Source returns the provenance tag for report-text leads.
func (i *Importer) Source() domain.LeadSource {
	return domain.SourceOriginal
}

// MergeMode returns replace: importing the report export resets the
// collection to the freshly parsed leads.
func (i *Importer) MergeMode() driven.MergeMode {
	return driven.MergeReplace
}

// Extensions returns the file extensions handled by this importer.
func (i *Importer) Extensions() []string {
	return []string{".txt"}
}

// Parse partitions the document into blocks at each block marker and
// extracts one lead per block. Every matched block yields a record, with
// empty strings for any missing fields.
func (i *Importer) Parse(_ context.Context, content string) ([]domain.Lead, error) {
	starts := markerOffsets(content)

	leads := make([]domain.Lead, 0, len(starts))
	for n, start := range starts {
		end := len(content)
		if n < len(starts)-1 {
			end = starts[n+1]
		}
		block := content[start:end]

		lead := domain.NewLead(domain.SourceOriginal)
		for _, f := range fields {
			f.set(&lead, extractValue(block, f.label, f.stops))
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// markerOffsets returns the byte offsets of every block marker.
func markerOffsets(content string) []int {
	var offsets []int
	for from := 0; ; {
		idx := strings.Index(content[from:], blockMarker)
		if idx < 0 {
			break
		}
		offsets = append(offsets, from+idx)
		from += idx + len(blockMarker)
	}
	return offsets
}

// extractValue locates label inside text and returns everything between the
// label and the earliest of the stop tokens, trimmed. An absent label yields
// the empty string.
func extractValue(text, label string, stops []string) string {
	start := strings.Index(text, label)
	if start < 0 {
		return ""
	}

	valueStart := start + len(label)
	valueEnd := len(text)
	for _, stop := range stops {
		if idx := strings.Index(text[valueStart:], stop); idx >= 0 && valueStart+idx < valueEnd {
			valueEnd = valueStart + idx
		}
	}
	return strings.TrimSpace(text[valueStart:valueEnd])
}

// Serialize renders leads back into the report-text layout. Only the fields
// captured by the export view are rendered; tracking fields (status, notes,
// call history) are intentionally excluded.
func Serialize(leads []domain.Lead) string {
	blocks := make([]string, 0, len(leads))
	for _, lead := range leads {
		var b strings.Builder
		b.WriteString(rule + "\n")
		b.WriteString(blockMarker + " " + lead.Company + "\n")
		b.WriteString(rule + "\n")
		b.WriteString("🆔 **UEI:** " + lead.UEI + "\n")
		b.WriteString("👤 **POC Name:** " + lead.POCName + "\n")
		b.WriteString("📅 **Initial Entity Date (2-Year Filter):** " + lead.InitialEntityDate + "\n")
		b.WriteString("✅ **Recent Activation Date (3-Month Filter):** " + lead.RecentActivationDate + "\n")
		b.WriteString("📍 **Address:** " + lead.Address + "\n")
		b.WriteString("🏭 **NAICS Count:** " + lead.NAICSCount + "\n")
		b.WriteString("💡 **NAICS Codes:** " + lead.NAICSCodes + "\n")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
