package style

import (
	"strings"
	"testing"

	"github.com/kthompson/bibkit/internal/record"
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
}

var websiteRec = record.SourceRecord{
	ID:      "r2",
	Title:   "Go Blog Post",
	Authors: []string{"Smith, John"},
	Year:    "2022",
	Source:  "The Go Blog",
	Type:    record.TypeWebsite,
	URL:     "https://go.dev/blog/x",
}

var bookRec = record.SourceRecord{
	ID:        "r3",
	Title:     "The Art of Computer Programming",
	Authors:   []string{"Knuth, Donald E."},
	Year:      "1968",
	Type:      record.TypeBook,
	Publisher: "Addison-Wesley",
}

func TestFormatFull(t *testing.T) {
	tests := []struct {
		name  string
		rec   record.SourceRecord
		style Style
		want  string
	}{
		{
			name:  "APA journal end to end",
			rec:   journalRec,
			style: APA,
			want:  "Lee, A., Kim, B. (2021). Climate Models. *Nature*, 12(4), 10-20.",
		},
		{
			name:  "MLA journal",
			rec:   journalRec,
			style: MLA,
			want:  `Lee, A., Kim, B. "Climate Models." *Nature*, vol. 12, no. 4, 2021, pp. 10-20.`,
		},
		{
			name:  "Chicago journal",
			rec:   journalRec,
			style: Chicago,
			want:  `Lee, A., Kim, B. "Climate Models." *Nature* 12, no. 4 (2021): 10-20.`,
		},
		{
			name:  "Harvard journal",
			rec:   journalRec,
			style: Harvard,
			want:  "Lee, A., Kim, B. (2021) 'Climate Models', *Nature*, vol. 12, no. 4, pp. 10-20.",
		},
		{
			name:  "APA website",
			rec:   websiteRec,
			style: APA,
			want:  "Smith, John (2022). Go Blog Post. *The Go Blog*. https://go.dev/blog/x.",
		},
		{
			name:  "MLA website",
			rec:   websiteRec,
			style: MLA,
			want:  `Smith, John. "Go Blog Post." *The Go Blog*, 2022. Web.`,
		},
		{
			name:  "Chicago website",
			rec:   websiteRec,
			style: Chicago,
			want:  `Smith, John. "Go Blog Post." *The Go Blog*. 2022. https://go.dev/blog/x.`,
		},
		{
			name:  "Harvard website",
			rec:   websiteRec,
			style: Harvard,
			want:  "Smith, John (2022) 'Go Blog Post', *The Go Blog*, available at: https://go.dev/blog/x.",
		},
		{
			name:  "APA book",
			rec:   bookRec,
			style: APA,
			want:  "Knuth, Donald E. (1968). The Art of Computer Programming. Addison-Wesley.",
		},
		{
			name:  "MLA book",
			rec:   bookRec,
			style: MLA,
			want:  `Knuth, Donald E. "The Art of Computer Programming." Addison-Wesley, 1968.`,
		},
		{
			name:  "Chicago book",
			rec:   bookRec,
			style: Chicago,
			want:  `Knuth, Donald E. "The Art of Computer Programming." Addison-Wesley, 1968.`,
		},
		{
			name:  "Harvard book",
			rec:   bookRec,
			style: Harvard,
			want:  "Knuth, Donald E. (1968) 'The Art of Computer Programming', Addison-Wesley.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFull(tt.rec, tt.style); got != tt.want {
				t.Errorf("FormatFull() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFull_HarvardWebsiteSuffix(t *testing.T) {
	got := FormatFull(websiteRec, Harvard)
	if !strings.HasSuffix(got, ", available at: https://go.dev/blog/x.") {
		t.Errorf("Harvard website citation should end with available-at clause, got %q", got)
	}
}

func TestFormatFull_UnknownAuthor(t *testing.T) {
	rec := record.SourceRecord{Title: "Anonymous Pamphlet", Type: record.TypeArticle}

	for _, st := range Styles {
		t.Run(string(st), func(t *testing.T) {
			got := FormatFull(rec, st)
			if !strings.Contains(got, record.UnknownAuthor) {
				t.Errorf("FormatFull(%s) = %q, should contain %q", st, got, record.UnknownAuthor)
			}
		})
	}
}

func TestFormatFull_MissingYear(t *testing.T) {
	rec := record.SourceRecord{
		Title:   "Undated Manuscript",
		Authors: []string{"Doe, Jane"},
		Type:    record.TypeArticle,
	}

	for _, st := range Styles {
		t.Run(string(st), func(t *testing.T) {
			got := FormatFull(rec, st)
			if !strings.Contains(got, "n.d.") {
				t.Errorf("FormatFull(%s) = %q, should contain n.d.", st, got)
			}
		})
	}
}

// FormatFull must degrade field by field and never produce an empty
// string for any combination of present and absent optional fields.
func TestFormatFull_NeverEmpty(t *testing.T) {
	base := record.SourceRecord{Title: "T"}

	optional := []func(*record.SourceRecord){
		func(r *record.SourceRecord) { r.Authors = []string{"Smith, J."} },
		func(r *record.SourceRecord) { r.Year = "2020" },
		func(r *record.SourceRecord) { r.Source = "S" },
		func(r *record.SourceRecord) { r.Volume = "1" },
		func(r *record.SourceRecord) { r.Issue = "2" },
		func(r *record.SourceRecord) { r.Pages = "3-4" },
		func(r *record.SourceRecord) { r.Publisher = "P" },
		func(r *record.SourceRecord) { r.URL = "https://example.org" },
	}

	types := []record.SourceType{
		record.TypeArticle, record.TypeJournal, record.TypeWebsite, record.TypeBook,
	}

	for mask := 0; mask < 1<<len(optional); mask++ {
		rec := base
		for i, set := range optional {
			if mask&(1<<i) != 0 {
				set(&rec)
			}
		}
		for _, typ := range types {
			rec.Type = typ
			for _, st := range Styles {
				if got := FormatFull(rec, st); got == "" {
					t.Fatalf("FormatFull(%+v, %s) returned empty string", rec, st)
				}
			}
		}
	}
}

func TestFormatFull_Idempotent(t *testing.T) {
	for _, st := range Styles {
		first := FormatFull(journalRec, st)
		second := FormatFull(journalRec, st)
		if first != second {
			t.Errorf("FormatFull(%s) not deterministic: %q != %q", st, first, second)
		}
	}
}

func TestFormatFull_UnsupportedStyle(t *testing.T) {
	if got := FormatFull(journalRec, Style("vancouver")); got != UnsupportedSentinel {
		t.Errorf("FormatFull(unknown style) = %q, want sentinel %q", got, UnsupportedSentinel)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Style
		wantErr bool
	}{
		{"apa", APA, false},
		{"APA", APA, false},
		{" mla ", MLA, false},
		{"chicago", Chicago, false},
		{"harvard", Harvard, false},
		{"vancouver", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
