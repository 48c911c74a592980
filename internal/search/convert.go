package search

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kthompson/bibkit/internal/record"
)

// crossrefWork mirrors the subset of the Crossref work message we use.
type crossrefWork struct {
	DOI            string     `json:"DOI"`
	Type           string     `json:"type"`
	Title          []string   `json:"title"`
	ContainerTitle []string   `json:"container-title"`
	Author         []crAuthor `json:"author"`
	Issued         crDate     `json:"issued"`
	Volume         string     `json:"volume"`
	Issue          string     `json:"issue"`
	Page           string     `json:"page"`
	Publisher      string     `json:"publisher"`
	URL            string     `json:"URL"`
	Score          float64    `json:"score"`
}

type crAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"`
}

type crDate struct {
	DateParts [][]int `json:"date-parts"`
}

// relevanceCeiling is the Crossref score treated as a certain match
// when normalizing to a [0,1] confidence.
const relevanceCeiling = 100.0

func (w crossrefWork) toRecord() record.SourceRecord {
	rec := record.SourceRecord{
		ID:        uuid.New().String(),
		Type:      crossrefType(w.Type),
		DOI:       w.DOI,
		URL:       w.URL,
		Volume:    w.Volume,
		Issue:     w.Issue,
		Pages:     w.Page,
		Publisher: w.Publisher,
	}

	if len(w.Title) > 0 {
		rec.Title = w.Title[0]
	}
	if len(w.ContainerTitle) > 0 {
		rec.Source = w.ContainerTitle[0]
	}
	if year := w.Issued.year(); year != "" {
		rec.Year = year
	}

	for _, a := range w.Author {
		if name := a.displayName(); name != "" {
			rec.Authors = append(rec.Authors, name)
		}
	}

	rec.Confidence = w.Score / relevanceCeiling
	if rec.Confidence > 1 {
		rec.Confidence = 1
	}

	return rec
}

// displayName renders an author as "Family, Given" to match the
// record convention, falling back to the literal name for orgs.
func (a crAuthor) displayName() string {
	switch {
	case a.Family != "" && a.Given != "":
		return a.Family + ", " + a.Given
	case a.Family != "":
		return a.Family
	default:
		return strings.TrimSpace(a.Name)
	}
}

func (d crDate) year() string {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return ""
	}
	return fmt.Sprintf("%d", d.DateParts[0][0])
}

func crossrefType(t string) record.SourceType {
	switch t {
	case "journal-article", "proceedings-article":
		return record.TypeJournal
	case "book", "monograph", "edited-book", "book-chapter":
		return record.TypeBook
	case "posted-content":
		return record.TypeArticle
	default:
		return record.TypeArticle
	}
}
