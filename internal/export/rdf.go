package export

import (
	"encoding/xml"
	"strings"

	"github.com/kthompson/bibkit/internal/record"
)

// encodeRDF renders a Zotero-compatible RDF/XML document with one
// rdf:Description per record carrying Dublin Core properties.
func encodeRDF(records []record.SourceRecord) string {
	var b strings.Builder

	b.WriteString(xml.Header)
	b.WriteString(`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"` + "\n")
	b.WriteString(`         xmlns:dc="http://purl.org/dc/elements/1.1/">` + "\n")

	for _, rec := range records {
		b.WriteString(`  <rdf:Description rdf:about="urn:bibkit:` + xmlEscape(rec.ID) + `">` + "\n")

		element(&b, "dc:title", rec.Title)
		for _, a := range rec.Authors {
			element(&b, "dc:creator", a)
		}
		element(&b, "dc:date", rec.Year)
		element(&b, "dc:source", rec.Source)
		element(&b, "dc:type", string(rec.Type))
		element(&b, "dc:identifier", identifier(rec))

		b.WriteString("  </rdf:Description>\n")
	}

	b.WriteString("</rdf:RDF>\n")
	return b.String()
}

// identifier picks the best identifier for a record: DOI, then URL.
func identifier(rec record.SourceRecord) string {
	if rec.DOI != "" {
		return "doi:" + rec.DOI
	}
	return rec.URL
}

func element(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("    <" + name + ">" + xmlEscape(value) + "</" + name + ">\n")
}

func xmlEscape(s string) string {
	var b strings.Builder
	// EscapeText only fails on a failing writer; strings.Builder never does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
