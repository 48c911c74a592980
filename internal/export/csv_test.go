package export

import (
	"strings"
	"testing"

	"github.com/kthompson/bibkit/internal/record"
)

func TestCSV_TwoRecordsThreeLines(t *testing.T) {
	got := encodeCSV([]record.SourceRecord{journalRec, bookRec})

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV of 2 records should be 3 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != csvHeader {
		t.Errorf("header = %q, want %q", lines[0], csvHeader)
	}
}

func TestCSV_RowContent(t *testing.T) {
	got := encodeCSV([]record.SourceRecord{journalRec})
	lines := strings.Split(got, "\n")

	want := `"Climate Models","Lee, A.; Kim, B.","2021","Nature","journal","","10.1038/xyz","10-20","12","4"`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestCSV_EmptyFieldsQuoted(t *testing.T) {
	rec := record.SourceRecord{Title: "T", Type: record.TypeArticle}
	got := encodeCSV([]record.SourceRecord{rec})
	lines := strings.Split(got, "\n")

	want := `"T","","","","article","","","","",""`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}
