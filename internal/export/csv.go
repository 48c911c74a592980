package export

import (
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// csvHeader is the fixed column order for CSV export.
const csvHeader = "Title,Authors,Year,Source,Type,URL,DOI,Pages,Volume,Issue"

// encodeCSV renders a header row plus one quote-wrapped row per record.
// Embedded quotes in field values are not escaped; this preserves the
// byte format consumed by the tools this export targets.
func encodeCSV(records []record.SourceRecord) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, csvHeader)

	for _, rec := range records {
		fields := []string{
			rec.Title,
			strings.Join(rec.Authors, "; "),
			rec.Year,
			rec.Source,
			string(rec.Type),
			rec.URL,
			rec.DOI,
			rec.Pages,
			rec.Volume,
			rec.Issue,
		}
		for i, f := range fields {
			fields[i] = `"` + f + `"`
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}
