package export

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kthompson/bibkit/internal/record"
)

// CSLItem is a bibliographic entry in CSL (Citation Style Language)
// form. Field names follow the CSL-YAML schema so the output is
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName is a person's name in CSL family/given form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a CSL date using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// encodeCSL renders the records as a CSL-YAML item list.
func encodeCSL(records []record.SourceRecord) string {
	items := make([]CSLItem, len(records))
	for i, rec := range records {
		items[i] = toCSLItem(rec)
	}

	data, err := yaml.Marshal(items)
	if err != nil {
		// Marshaling plain structs of strings and ints cannot fail.
		return ""
	}
	return string(data)
}

func toCSLItem(rec record.SourceRecord) CSLItem {
	item := CSLItem{
		ID:             CitationKey(rec),
		Type:           cslType(rec.Type),
		Title:          rec.Title,
		ContainerTitle: rec.Source,
		Publisher:      rec.Publisher,
		Volume:         rec.Volume,
		Issue:          rec.Issue,
		Page:           rec.Pages,
		DOI:            rec.DOI,
		URL:            rec.URL,
	}

	for _, a := range rec.Authors {
		item.Author = append(item.Author, parseCSLName(a))
	}

	if year, err := strconv.Atoi(rec.Year); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{year}}}
	}

	return item
}

// cslType maps the source type onto a CSL item type.
func cslType(t record.SourceType) string {
	switch t {
	case record.TypeJournal:
		return "article-journal"
	case record.TypeWebsite:
		return "webpage"
	case record.TypeBook:
		return "book"
	default:
		return "article"
	}
}

// parseCSLName splits "Family, Given" on the first comma. Names without
// a comma use the literal field.
func parseCSLName(name string) CSLName {
	name = strings.TrimSpace(name)
	if idx := strings.Index(name, ","); idx >= 0 {
		return CSLName{
			Family: strings.TrimSpace(name[:idx]),
			Given:  strings.TrimSpace(name[idx+1:]),
		}
	}
	return CSLName{Literal: name}
}
