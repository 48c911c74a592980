package record

import "testing"

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		input string
		want  SourceType
	}{
		{"article", TypeArticle},
		{"journal", TypeJournal},
		{"website", TypeWebsite},
		{"book", TypeBook},
		{"Journal", TypeJournal},
		{"journal-article", TypeJournal},
		{"webpage", TypeWebsite},
		{"monograph", TypeBook},
		{"  book  ", TypeBook},
		{"newspaper", TypeArticle},
		{"thesis", TypeArticle},
		{"conference", TypeArticle},
		{"report", TypeArticle},
		{"", TypeArticle},
		{"garbage", TypeArticle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeType(tt.input); got != tt.want {
				t.Errorf("NormalizeType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitPages(t *testing.T) {
	tests := []struct {
		pages     string
		wantStart string
		wantEnd   string
	}{
		{"123-145", "123", "145"},
		{"99", "99", ""},
		{"10 - 20", "10", "20"},
		{"", "", ""},
		{"e1042", "e1042", ""},
		{"S12-S19", "S12", "S19"},
	}

	for _, tt := range tests {
		t.Run(tt.pages, func(t *testing.T) {
			start, end := SplitPages(tt.pages)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("SplitPages(%q) = (%q, %q), want (%q, %q)",
					tt.pages, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
