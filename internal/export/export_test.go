package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/style"
)

var journalRec = record.SourceRecord{
	ID:      "r1",
	Title:   "Climate Models",
	Authors: []string{"Lee, A.", "Kim, B."},
	Year:    "2021",
	Source:  "Nature",
	Type:    record.TypeJournal,
	Volume:  "12",
	Issue:   "4",
	Pages:   "10-20",
	DOI:     "10.1038/xyz",
}

var websiteRec = record.SourceRecord{
	ID:           "r2",
	Title:        "Go Blog Post",
	Authors:      []string{"Smith, John"},
	Year:         "2022",
	Source:       "The Go Blog",
	Type:         record.TypeWebsite,
	URL:          "https://go.dev/blog/x",
	DateAccessed: "2026-08-01",
}

var bookRec = record.SourceRecord{
	ID:        "r3",
	Title:     "The Art of Computer Programming",
	Authors:   []string{"Knuth, Donald E."},
	Year:      "1968",
	Type:      record.TypeBook,
	Publisher: "Addison-Wesley",
}

func TestEncode_EmptyCollection(t *testing.T) {
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			_, err := Encode(nil, format, style.APA)
			if !errors.Is(err, ErrEmptyCollection) {
				t.Errorf("Encode(nil, %s) error = %v, want ErrEmptyCollection", format, err)
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode([]record.SourceRecord{journalRec}, Format("docx"), style.APA)

	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Encode(unknown format) error = %v, want *UnsupportedFormatError", err)
	}
	if unsupported.Format != "docx" {
		t.Errorf("UnsupportedFormatError.Format = %q, want docx", unsupported.Format)
	}
}

func TestEncode_AllFormatsSucceed(t *testing.T) {
	records := []record.SourceRecord{journalRec, websiteRec, bookRec}

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			out, err := Encode(records, format, style.APA)
			if err != nil {
				t.Fatalf("Encode(%s) error = %v", format, err)
			}
			if out == "" {
				t.Errorf("Encode(%s) returned empty output", format)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"bibtex", FormatBibTeX, false},
		{"RIS", FormatRIS, false},
		{" csv ", FormatCSV, false},
		{"docx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		format Format
		style  style.Style
		want   string
	}{
		{FormatBibTeX, style.APA, "bibliography-bibtex-2026-08-28.bib"},
		{FormatText, style.MLA, "bibliography-mla-2026-08-28.txt"},
		{FormatRTF, style.Chicago, "bibliography-chicago-2026-08-28.rtf"},
		{FormatRIS, style.APA, "bibliography-ris-2026-08-28.ris"},
		{FormatEndNote, style.APA, "bibliography-endnote-2026-08-28.enw"},
		{FormatCSV, style.APA, "bibliography-csv-2026-08-28.csv"},
		{FormatRDF, style.APA, "bibliography-rdf-2026-08-28.rdf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := DefaultFilename(tt.format, tt.style, now); got != tt.want {
				t.Errorf("DefaultFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMIME(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "text/plain"},
		{FormatRTF, "application/rtf"},
		{FormatBibTeX, "text/plain"},
		{FormatRIS, "application/x-research-info-systems"},
		{FormatEndNote, "text/plain"},
		{FormatCSV, "text/csv"},
		{FormatRDF, "application/rdf+xml"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := MIME(tt.format); got != tt.want {
				t.Errorf("MIME(%s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestEncode_Text(t *testing.T) {
	out, err := Encode([]record.SourceRecord{journalRec, bookRec}, FormatText, style.APA)
	if err != nil {
		t.Fatal(err)
	}

	entries := strings.Split(out, "\n\n")
	if len(entries) != 2 {
		t.Fatalf("text export should have 2 double-newline-separated entries, got %d", len(entries))
	}
	if entries[0] != "Lee, A., Kim, B. (2021). Climate Models. *Nature*, 12(4), 10-20." {
		t.Errorf("first entry = %q", entries[0])
	}
}

func TestEncode_RTF(t *testing.T) {
	out, err := Encode([]record.SourceRecord{journalRec, bookRec}, FormatRTF, style.APA)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, `{\rtf1`) {
		t.Errorf("RTF export should start with RTF header, got %q", out[:20])
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Errorf("RTF export should end with closing brace")
	}
	if !strings.Contains(out, `\par`) {
		t.Errorf("RTF export should contain paragraph breaks, got:\n%s", out)
	}
}
