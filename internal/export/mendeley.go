package export

import (
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// encodeMendeley renders a labeled-field text block per record, with
// records separated by a "---" line.
func encodeMendeley(records []record.SourceRecord) string {
	blocks := make([]string, len(records))
	for i, rec := range records {
		blocks[i] = mendeleyBlock(rec)
	}
	return strings.Join(blocks, "---\n")
}

func mendeleyBlock(rec record.SourceRecord) string {
	var b strings.Builder

	field := func(label, value string) {
		if value != "" {
			b.WriteString(label + ": " + value + "\n")
		}
	}

	field("Title", rec.Title)
	field("Authors", strings.Join(rec.Authors, "; "))
	field("Year", rec.Year)
	field("Source", rec.Source)
	field("Type", string(rec.Type))
	field("Volume", rec.Volume)
	field("Issue", rec.Issue)
	field("Pages", rec.Pages)
	field("Publisher", rec.Publisher)
	field("URL", rec.URL)
	field("DOI", rec.DOI)

	return b.String()
}
