package record

import "strings"

// UnknownAuthor is the placeholder used when a record has no authors.
const UnknownAuthor = "Unknown Author"

// UnknownSurname is the surname form of the placeholder, used in-text.
const UnknownSurname = "Unknown"

// Surname extracts the family name from an author string. Text before
// the first comma wins ("Family, Given"); otherwise the last
// whitespace-delimited token is taken as the surname.
func Surname(author string) string {
	author = strings.TrimSpace(author)
	if idx := strings.Index(author, ","); idx >= 0 {
		return strings.TrimSpace(author[:idx])
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// FirstSurname returns the surname of the first author, or UnknownSurname
// when the author list is empty.
func FirstSurname(authors []string) string {
	if len(authors) == 0 {
		return UnknownSurname
	}
	if s := Surname(authors[0]); s != "" {
		return s
	}
	return UnknownSurname
}

// JoinAuthors joins the author list with the given separator, degrading
// to UnknownAuthor for an empty list.
func JoinAuthors(authors []string, sep string) string {
	if len(authors) == 0 {
		return UnknownAuthor
	}
	return strings.Join(authors, sep)
}
