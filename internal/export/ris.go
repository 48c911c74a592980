package export

import (
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// encodeRIS renders one tagged-line block per record, ER-terminated.
func encodeRIS(records []record.SourceRecord) string {
	blocks := make([]string, len(records))
	for i, rec := range records {
		blocks[i] = risBlock(rec)
	}
	return strings.Join(blocks, "\n")
}

func risBlock(rec record.SourceRecord) string {
	var b strings.Builder

	tag := func(name, value string) {
		if value != "" {
			b.WriteString(name + "  - " + value + "\n")
		}
	}

	tag("TY", risType(rec.Type))
	tag("TI", rec.Title)
	for _, a := range rec.Authors {
		tag("AU", a)
	}
	tag("PY", rec.Year)

	// Journals use JO for the container; everything else uses T2.
	if rec.Type == record.TypeJournal {
		tag("JO", rec.Source)
	} else {
		tag("T2", rec.Source)
	}

	tag("VL", rec.Volume)
	tag("IS", rec.Issue)

	start, end := record.SplitPages(rec.Pages)
	tag("SP", start)
	tag("EP", end)

	tag("PB", rec.Publisher)
	tag("UR", rec.URL)
	tag("DO", rec.DOI)
	if rec.Type == record.TypeWebsite {
		tag("Y2", rec.DateAccessed)
	}

	b.WriteString("ER  - \n")
	return b.String()
}

// risType maps the source type onto a RIS reference type.
func risType(t record.SourceType) string {
	switch t {
	case record.TypeJournal:
		return "JOUR"
	case record.TypeBook:
		return "BOOK"
	case record.TypeWebsite:
		return "ELEC"
	default:
		return "GEN"
	}
}
