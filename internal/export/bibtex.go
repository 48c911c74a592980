package export

import (
	"fmt"
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// encodeBibTeX renders one @entry block per record, blank-line separated.
func encodeBibTeX(records []record.SourceRecord) string {
	entries := make([]string, len(records))
	for i, rec := range records {
		entries[i] = bibtexEntry(rec)
	}
	return strings.Join(entries, "\n")
}

func bibtexEntry(rec record.SourceRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", bibtexEntryType(rec.Type), CitationKey(rec)))
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(rec.Title)))

	if len(rec.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", strings.Join(rec.Authors, " and ")))
	}
	if rec.Year != "" {
		b.WriteString(fmt.Sprintf("  year = {%s},\n", rec.Year))
	}

	switch rec.Type {
	case record.TypeJournal:
		if rec.Source != "" {
			b.WriteString(fmt.Sprintf("  journal = {%s},\n", escapeLatex(rec.Source)))
		}
		if rec.Volume != "" {
			b.WriteString(fmt.Sprintf("  volume = {%s},\n", rec.Volume))
		}
		if rec.Issue != "" {
			b.WriteString(fmt.Sprintf("  number = {%s},\n", rec.Issue))
		}
		if rec.Pages != "" {
			b.WriteString(fmt.Sprintf("  pages = {%s},\n", rec.Pages))
		}
	case record.TypeBook:
		if rec.Publisher != "" {
			b.WriteString(fmt.Sprintf("  publisher = {%s},\n", escapeLatex(rec.Publisher)))
		}
	case record.TypeWebsite:
		if rec.URL != "" {
			b.WriteString(fmt.Sprintf("  howpublished = {\\url{%s}},\n", rec.URL))
		}
		if rec.DateAccessed != "" {
			b.WriteString(fmt.Sprintf("  note = {Accessed: %s},\n", rec.DateAccessed))
		}
	}

	if rec.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", rec.DOI))
	}
	if rec.URL != "" && rec.Type != record.TypeWebsite {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", rec.URL))
	}

	b.WriteString("}\n")
	return b.String()
}

// bibtexEntryType maps the source type onto a BibTeX entry type.
func bibtexEntryType(t record.SourceType) string {
	switch t {
	case record.TypeBook:
		return "book"
	case record.TypeWebsite:
		return "misc"
	default: // article, journal
		return "article"
	}
}

// escapeLatex escapes special LaTeX characters in free-text fields.
// Identifiers (keys, DOIs, URLs) pass through untouched.
func escapeLatex(s string) string {
	// & must come first so later escapes cannot produce a bare &.
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
