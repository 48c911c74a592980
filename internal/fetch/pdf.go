package fetch

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"

	"github.com/kthompson/bibkit/internal/record"
)

// doiPattern matches registrant DOIs: 10.XXXX/suffix.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// pdfScanPages limits how deep into a document we look for metadata.
// The DOI and title almost always sit on the first page.
const pdfScanPages = 3

// FromPDF builds a partial source record from a local PDF file. The
// record carries whatever could be recovered: a DOI when one appears
// in the opening pages, and a best-effort title.
func FromPDF(path string) (record.SourceRecord, error) {
	text, err := extractText(path, pdfScanPages)
	if err != nil {
		return record.SourceRecord{}, err
	}

	rec := record.SourceRecord{
		ID:           uuid.New().String(),
		Type:         record.TypeArticle,
		DateAccessed: time.Now().Format("2006-01-02"),
		DOI:          findDOI(text),
		Title:        guessTitle(text),
	}

	switch {
	case rec.DOI != "" && rec.Title != "":
		rec.Confidence = 0.7
	case rec.DOI != "" || rec.Title != "":
		rec.Confidence = 0.4
	default:
		rec.Confidence = 0.1
	}
	if rec.Title == "" {
		rec.Title = path
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"doi":   rec.DOI,
		"title": rec.Title,
	}).Debug("extracted pdf metadata")

	return rec, nil
}

// ExtractDOI returns the first DOI found in the opening pages of a
// PDF, or "" when none is present. A DOI-less PDF is not an error.
func ExtractDOI(path string) (string, error) {
	text, err := extractText(path, pdfScanPages)
	if err != nil {
		return "", err
	}
	return findDOI(text), nil
}

func extractText(path string, maxPages int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var b strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func findDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if validDOI(match) {
			return match
		}
	}
	return ""
}

func validDOI(doi string) bool {
	if len(doi) < 10 || !strings.HasPrefix(doi, "10.") {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash > 0 && slash < len(doi)-1
}

// guessTitle returns the first substantial line of the document text.
// Running headers and copyright lines are skipped.
func guessTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 20 && !boilerplateLine(line) {
			return line
		}
	}
	return ""
}

func boilerplateLine(line string) bool {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "copyright"), strings.Contains(lower, "all rights reserved"):
		return true
	case strings.Contains(lower, "journal"):
		return true
	case strings.Contains(lower, "volume") && strings.Contains(lower, "issue"):
		return true
	case strings.Contains(lower, "downloaded from"):
		return true
	}
	return false
}
