package samcsv

import (
	"context"
	"strings"

	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
	"github.com/threec-labs/leads-cli/internal/logger"
)

// Ensure Importer implements the interface.
var _ driven.Importer = (*Importer)(nil)

// columnCount is the fixed schema width:
// UEI, CAGE code, status, initial registration date, expiration date,
// last update date, legal business name, city, state, zip,
// POC first name, POC last name.
const columnCount = 12

// Importer parses CSV exports into leads with source "fresh".
type Importer struct{}

// New creates a CSV importer.
func New() *Importer {
	return &Importer{}
}

// Source returns the provenance tag for CSV leads.
func (i *Importer) Source() domain.LeadSource {
	return domain.SourceFresh
}

// MergeMode returns append: fresh leads join the existing collection.
func (i *Importer) MergeMode() driven.MergeMode {
	return driven.MergeAppend
}

// Extensions returns the file extensions handled by this importer.
func (i *Importer) Extensions() []string {
	return []string{".csv"}
}

// Parse converts CSV text into leads. The first non-blank line is always
// treated as a header and discarded. Rows that split into fewer than 12
// fields are skipped with a diagnostic; rows missing the UEI or legal
// business name are skipped silently. Neither aborts the rest of the parse.
func (i *Importer) Parse(_ context.Context, content string) ([]domain.Lead, error) {
	var rows []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) <= 1 {
		return []domain.Lead{}, nil
	}

	leads := make([]domain.Lead, 0, len(rows)-1)
	for _, row := range rows[1:] {
		f := splitLine(row)
		if len(f) < columnCount {
			logger.Warn("skipping invalid line (expected %d fields): %s", columnCount, row)
			continue
		}

		uei, cage, status := f[0], f[1], f[2]
		initialReg, expiration, lastUpdate := f[3], f[4], f[5]
		legalName, city, state, zip := f[6], f[7], f[8], f[9]
		pocFirst, pocLast := f[10], f[11]

		if uei == "" || legalName == "" {
			continue
		}

		lead := domain.NewLead(domain.SourceFresh)
		lead.Company = strings.TrimSpace(legalName)
		lead.UEI = strings.TrimSpace(uei)
		lead.POCName = strings.TrimSpace(strings.TrimSpace(pocFirst) + " " + strings.TrimSpace(pocLast))
		lead.InitialEntityDate = formatDate(initialReg)
		lead.RecentActivationDate = formatDate(lastUpdate)
		lead.Address = strings.TrimSpace(city + ", " + state + " " + zip)

		lead.CageCode = strings.TrimSpace(cage)
		lead.RegistrationStatus = strings.TrimSpace(status)
		lead.ExpirationDate = formatDate(expiration)
		lead.City = strings.TrimSpace(city)
		lead.State = strings.TrimSpace(state)
		lead.Zip = strings.TrimSpace(zip)

		leads = append(leads, lead)
	}
	return leads, nil
}

// splitLine splits a CSV row on commas, honouring double-quoted fields that
// contain the delimiter. Quote characters toggle quoting and are dropped
// from the value; doubled quotes are not unescaped.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// formatDate reformats a compact YYYYMMDD date as YYYY-MM-DD. Anything not
// exactly 8 characters passes through unchanged, tolerating already
// formatted or malformed input.
func formatDate(s string) string {
	if len(s) != 8 {
		return s
	}
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
}
