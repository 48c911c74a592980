package export

import (
	"strings"
	"testing"

	"github.com/kthompson/bibkit/internal/record"
)

func TestRIS_PageRangeSplit(t *testing.T) {
	rec := journalRec
	rec.Pages = "123-145"

	got := encodeRIS([]record.SourceRecord{rec})

	if !strings.Contains(got, "SP  - 123\n") {
		t.Errorf("RIS should contain SP line, got:\n%s", got)
	}
	if !strings.Contains(got, "EP  - 145\n") {
		t.Errorf("RIS should contain EP line, got:\n%s", got)
	}
}

func TestRIS_SinglePageNoEP(t *testing.T) {
	rec := journalRec
	rec.Pages = "99"

	got := encodeRIS([]record.SourceRecord{rec})

	if !strings.Contains(got, "SP  - 99\n") {
		t.Errorf("RIS should contain SP line, got:\n%s", got)
	}
	if strings.Contains(got, "EP  - ") {
		t.Errorf("RIS should not contain EP line for a single page, got:\n%s", got)
	}
}

func TestRIS_TypeMapping(t *testing.T) {
	tests := []struct {
		typ  record.SourceType
		want string
	}{
		{record.TypeJournal, "TY  - JOUR"},
		{record.TypeBook, "TY  - BOOK"},
		{record.TypeWebsite, "TY  - ELEC"},
		{record.TypeArticle, "TY  - GEN"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			rec := record.SourceRecord{Title: "T", Type: tt.typ}
			got := encodeRIS([]record.SourceRecord{rec})
			if !strings.HasPrefix(got, tt.want+"\n") {
				t.Errorf("encodeRIS type %s should start with %q, got:\n%s", tt.typ, tt.want, got)
			}
		})
	}
}

func TestRIS_JournalBlock(t *testing.T) {
	got := encodeRIS([]record.SourceRecord{journalRec})

	checks := []string{
		"TY  - JOUR",
		"TI  - Climate Models",
		"AU  - Lee, A.",
		"AU  - Kim, B.",
		"PY  - 2021",
		"JO  - Nature",
		"VL  - 12",
		"IS  - 4",
		"SP  - 10",
		"EP  - 20",
		"DO  - 10.1038/xyz",
		"ER  - ",
	}
	for _, want := range checks {
		if !strings.Contains(got, want+"\n") {
			t.Errorf("RIS block missing %q, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "T2  - ") {
		t.Errorf("journal block should use JO, not T2, got:\n%s", got)
	}
}

func TestRIS_WebsiteAccessDate(t *testing.T) {
	got := encodeRIS([]record.SourceRecord{websiteRec})

	if !strings.Contains(got, "Y2  - 2026-08-01\n") {
		t.Errorf("website block should carry Y2 access date, got:\n%s", got)
	}
	if !strings.Contains(got, "T2  - The Go Blog\n") {
		t.Errorf("website block should use T2 for the container, got:\n%s", got)
	}

	book := encodeRIS([]record.SourceRecord{bookRec})
	if strings.Contains(book, "Y2  - ") {
		t.Errorf("non-website block should not carry Y2, got:\n%s", book)
	}
}

func TestRIS_TerminatorPerRecord(t *testing.T) {
	got := encodeRIS([]record.SourceRecord{journalRec, bookRec, websiteRec})

	if n := strings.Count(got, "ER  - "); n != 3 {
		t.Errorf("expected 3 ER terminators, got %d:\n%s", n, got)
	}
}
