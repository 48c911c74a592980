// Package fetch builds source records from web pages and PDF files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kthompson/bibkit/internal/record"
)

const (
	userAgent      = "bibkit/1.0 (+https://github.com/kthompson/bibkit)"
	defaultTimeout = 20 * time.Second
)

// FetchURL downloads a web page and extracts citation metadata from it.
// The resulting record always has at least a title, type, URL, and
// access date; everything else is best effort.
func FetchURL(ctx context.Context, client *http.Client, pageURL string) (record.SourceRecord, error) {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return record.SourceRecord{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return record.SourceRecord{}, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return record.SourceRecord{}, fmt.Errorf("fetching %s: status %d", pageURL, resp.StatusCode)
	}

	return ParseHTML(resp.Body, pageURL)
}

// ParseHTML extracts citation metadata from an HTML document.
//
// Extraction prefers Google Scholar citation_* meta tags, then Open
// Graph tags, then the document <title>. Pages carrying citation_*
// tags are treated as scholarly articles; everything else is a
// website record.
func ParseHTML(r io.Reader, pageURL string) (record.SourceRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return record.SourceRecord{}, fmt.Errorf("parsing HTML: %w", err)
	}

	rec := record.SourceRecord{
		ID:           uuid.New().String(),
		Type:         record.TypeWebsite,
		URL:          pageURL,
		DateAccessed: time.Now().Format("2006-01-02"),
	}

	meta := collectMeta(doc)

	if title := meta.first("citation_title"); title != "" {
		rec.Title = title
		rec.Type = record.TypeArticle
		rec.Confidence = 0.9
	} else if title := meta.first("og:title"); title != "" {
		rec.Title = title
		rec.Confidence = 0.6
	} else if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		rec.Title = title
		rec.Confidence = 0.4
	} else {
		rec.Title = pageURL
		rec.Confidence = 0.1
	}

	rec.Authors = meta.all("citation_author")
	if len(rec.Authors) == 0 {
		if author := meta.first("author"); author != "" {
			rec.Authors = []string{author}
		}
	}

	for _, key := range []string{"citation_publication_date", "citation_date", "article:published_time", "citation_year"} {
		if v := meta.first(key); v != "" {
			if year := parseYear(v); year != "" {
				rec.Year = year
				break
			}
		}
	}

	if journal := meta.first("citation_journal_title"); journal != "" {
		rec.Source = journal
		rec.Type = record.TypeJournal
	} else if site := meta.first("og:site_name"); site != "" {
		rec.Source = site
	}

	rec.DOI = strings.TrimPrefix(meta.first("citation_doi"), "doi:")
	rec.Volume = meta.first("citation_volume")
	rec.Issue = meta.first("citation_issue")
	rec.Publisher = meta.first("citation_publisher")

	if first := meta.first("citation_firstpage"); first != "" {
		if last := meta.first("citation_lastpage"); last != "" {
			rec.Pages = first + "-" + last
		} else {
			rec.Pages = first
		}
	}

	logrus.WithFields(logrus.Fields{
		"url":        pageURL,
		"title":      rec.Title,
		"type":       rec.Type,
		"confidence": rec.Confidence,
	}).Debug("extracted page metadata")

	return rec, nil
}

// metaTags maps a meta tag name to every content value seen for it,
// in document order.
type metaTags map[string][]string

func collectMeta(doc *goquery.Document) metaTags {
	tags := metaTags{}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, ok := s.Attr("name")
		if !ok {
			name, ok = s.Attr("property")
		}
		if !ok {
			return
		}
		content := strings.TrimSpace(s.AttrOr("content", ""))
		if content == "" {
			return
		}
		key := strings.ToLower(name)
		tags[key] = append(tags[key], content)
	})
	return tags
}

func (m metaTags) first(key string) string {
	if vs := m[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func (m metaTags) all(key string) []string {
	return m[key]
}

// parseYear pulls a four digit year out of a date string of nearly any
// shape ("2021/03/04", "March 4, 2021", "2021").
func parseYear(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 4 && isDigits(s) {
		return s
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", t.Year())
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
