// Package export serializes collections of SourceRecords into
// interchange formats for external reference managers.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kthompson/bibkit/internal/record"
	"github.com/kthompson/bibkit/internal/style"
)

// Format identifies an export serialization target.
type Format string

const (
	FormatText     Format = "text"
	FormatRTF      Format = "rtf"
	FormatCSV      Format = "csv"
	FormatBibTeX   Format = "bibtex"
	FormatRIS      Format = "ris"
	FormatEndNote  Format = "endnote"
	FormatRDF      Format = "rdf"
	FormatMendeley Format = "mendeley"
	FormatCSL      Format = "csl"
)

// Formats lists the supported formats in display order.
var Formats = []Format{
	FormatText, FormatRTF, FormatCSV, FormatBibTeX, FormatRIS,
	FormatEndNote, FormatRDF, FormatMendeley, FormatCSL,
}

// ErrEmptyCollection is returned when export is invoked with zero
// records. Callers are expected to check non-emptiness first.
var ErrEmptyCollection = errors.New("export: record collection is empty")

// UnsupportedFormatError reports a format identifier outside the closed set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}

// ParseFormat validates a format identifier.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return known, nil
		}
	}
	return "", &UnsupportedFormatError{Format: s}
}

// Encode serializes records into the requested format. The style is
// consulted only by the text and RTF encoders, which reuse the full
// citation strings. Missing optional fields are omitted from output;
// the only failure modes are an unrecognized format and an empty
// collection.
func Encode(records []record.SourceRecord, format Format, st style.Style) (string, error) {
	var enc func([]record.SourceRecord, style.Style) string
	switch format {
	case FormatText:
		enc = encodeText
	case FormatRTF:
		enc = encodeRTF
	case FormatCSV:
		enc = ignoreStyle(encodeCSV)
	case FormatBibTeX:
		enc = ignoreStyle(encodeBibTeX)
	case FormatRIS:
		enc = ignoreStyle(encodeRIS)
	case FormatEndNote:
		enc = ignoreStyle(encodeEndNote)
	case FormatRDF:
		enc = ignoreStyle(encodeRDF)
	case FormatMendeley:
		enc = ignoreStyle(encodeMendeley)
	case FormatCSL:
		enc = ignoreStyle(encodeCSL)
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}

	if len(records) == 0 {
		return "", ErrEmptyCollection
	}
	return enc(records, st), nil
}

func ignoreStyle(f func([]record.SourceRecord) string) func([]record.SourceRecord, style.Style) string {
	return func(records []record.SourceRecord, _ style.Style) string {
		return f(records)
	}
}

// Ext returns the file extension for a format, without the dot.
func Ext(format Format) string {
	switch format {
	case FormatText:
		return "txt"
	case FormatRTF:
		return "rtf"
	case FormatCSV:
		return "csv"
	case FormatBibTeX:
		return "bib"
	case FormatRIS:
		return "ris"
	case FormatEndNote:
		return "enw"
	case FormatRDF:
		return "rdf"
	case FormatMendeley:
		return "txt"
	case FormatCSL:
		return "yaml"
	default:
		return "txt"
	}
}

// MIME returns the MIME type for a format.
func MIME(format Format) string {
	switch format {
	case FormatText, FormatBibTeX, FormatEndNote, FormatMendeley:
		return "text/plain"
	case FormatRTF:
		return "application/rtf"
	case FormatCSV:
		return "text/csv"
	case FormatRIS:
		return "application/x-research-info-systems"
	case FormatRDF:
		return "application/rdf+xml"
	case FormatCSL:
		return "application/yaml"
	default:
		return "text/plain"
	}
}

// DefaultFilename builds the conventional export filename,
// "bibliography-<style-or-format>-<ISO date>.<ext>". Style labels the
// citation-text formats; the structured formats are labeled by name.
func DefaultFilename(format Format, st style.Style, now time.Time) string {
	label := string(format)
	if format == FormatText || format == FormatRTF {
		label = string(st)
	}
	return fmt.Sprintf("bibliography-%s-%s.%s", label, now.Format("2006-01-02"), Ext(format))
}
