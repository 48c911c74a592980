package export

import (
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// encodeEndNote renders EndNote tagged blocks, blank-line separated.
func encodeEndNote(records []record.SourceRecord) string {
	blocks := make([]string, len(records))
	for i, rec := range records {
		blocks[i] = endnoteBlock(rec)
	}
	return strings.Join(blocks, "\n")
}

func endnoteBlock(rec record.SourceRecord) string {
	var b strings.Builder

	tag := func(name, value string) {
		if value != "" {
			b.WriteString(name + " " + value + "\n")
		}
	}

	tag("%0", endnoteType(rec.Type))
	tag("%T", rec.Title)
	for _, a := range rec.Authors {
		tag("%A", a)
	}
	tag("%D", rec.Year)

	if rec.Type == record.TypeJournal {
		tag("%J", rec.Source)
	} else {
		tag("%B", rec.Source)
	}

	tag("%V", rec.Volume)
	tag("%N", rec.Issue)
	tag("%P", rec.Pages)
	tag("%I", rec.Publisher)
	tag("%U", rec.URL)

	return b.String()
}

// endnoteType maps the source type onto an EndNote reference-type code.
func endnoteType(t record.SourceType) string {
	switch t {
	case record.TypeArticle, record.TypeJournal:
		return "0"
	case record.TypeBook:
		return "6"
	case record.TypeWebsite:
		return "12"
	default:
		return "13"
	}
}
