package export

import (
	"strings"

	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/style"
)

// encodeText renders the full citation for each record in the given
// style, double-newline separated.
func encodeText(records []record.SourceRecord, st style.Style) string {
	entries := make([]string, len(records))
	for i, rec := range records {
		entries[i] = style.FormatFull(rec, st)
	}
	return strings.Join(entries, "\n\n")
}

// rtfHeader and rtfFooter wrap the plain-text bibliography in a minimal
// RTF document.
const (
	rtfHeader = `{\rtf1\ansi\deff0 {\fonttbl {\f0 Times New Roman;}}` + "\n"
	rtfFooter = "}\n"
)

// encodeRTF wraps the text rendering in an RTF shell, with newlines
// encoded as paragraph breaks. Braces and backslashes in user text are
// deliberately not escaped; the original files this replaces carried
// them verbatim.
func encodeRTF(records []record.SourceRecord, st style.Style) string {
	body := encodeText(records, st)
	body = strings.ReplaceAll(body, "\n", "\\par\n")
	return rtfHeader + body + "\n" + rtfFooter
}
