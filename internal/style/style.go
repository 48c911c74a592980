// Package style renders SourceRecords into human-readable citations.
//
// Rendering is pure and never fails: absent optional fields are omitted,
// a missing author degrades to "Unknown Author" and a missing year to
// "n.d.". Italics are an in-band convention, marked with surrounding
// asterisks in every style.
package style

import (
	"fmt"
	"strings"
)

// Style identifies a citation style.
type Style string

const (
	APA     Style = "apa"
	MLA     Style = "mla"
	Chicago Style = "chicago"
	Harvard Style = "harvard"
)

// Styles lists the supported styles in display order.
var Styles = []Style{APA, MLA, Chicago, Harvard}

// UnsupportedSentinel is returned by the formatters for a style outside
// the closed set. Formatting never raises.
const UnsupportedSentinel = "[unsupported citation style]"

// UnsupportedStyleError reports a style identifier outside the closed set.
// It is used by callers validating user input; the formatters themselves
// return UnsupportedSentinel instead of failing.
type UnsupportedStyleError struct {
	Style string
}

func (e *UnsupportedStyleError) Error() string {
	return fmt.Sprintf("unsupported citation style: %q", e.Style)
}

// Parse validates a style identifier.
func Parse(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case APA:
		return APA, nil
	case MLA:
		return MLA, nil
	case Chicago:
		return Chicago, nil
	case Harvard:
		return Harvard, nil
	default:
		return "", &UnsupportedStyleError{Style: s}
	}
}

// yearOr returns the year or the "no date" placeholder.
func yearOr(year string) string {
	if year == "" {
		return "n.d."
	}
	return year
}

// italic wraps s in the in-band italic markers.
func italic(s string) string {
	return "*" + s + "*"
}
