// Package citation extracts US reporter citations from filing text and
// checks them for pin cites. A pin cite is the page reference within a
// reporter volume, e.g. the ", 570" in "550 U.S. 544, 570".
package citation

import (
	"regexp"
)

// MaxExtracted caps how many citations are collected from one document.
// Pin-cite review only needs a representative sample.
const MaxExtracted = 20

// Extractor finds reporter citations in body text.
//
// Recognized reporters, in scan order:
//   - Federal Reporter: "123 F.3d 456", "45 F.2d 100", "12 F.4th 34"
//   - United States Reports: "550 U.S. 544"
//   - Supreme Court Reporter: "127 S. Ct. 1955"
type Extractor struct {
	fedPattern *regexp.Regexp
	usPattern  *regexp.Regexp
	sctPattern *regexp.Regexp
}

// NewExtractor creates an extractor with compiled reporter patterns.
func NewExtractor() *Extractor {
	return &Extractor{
		fedPattern: regexp.MustCompile(`\d+\s+F\.(?:2d|3d|4th)?\s+\d+`),
		usPattern:  regexp.MustCompile(`\d+\s+U\.S\.\s+\d+`),
		sctPattern: regexp.MustCompile(`\d+\s+S\.?\s*Ct\.?\s+\d+`),
	}
}

// Extract returns up to MaxExtracted citation strings from the text, in
// reporter order then text order. The result is never nil: an empty slice
// means the text was scanned and no citations were found.
func (e *Extractor) Extract(text string) []string {
	citations := []string{}
	for _, re := range []*regexp.Regexp{e.fedPattern, e.usPattern, e.sctPattern} {
		citations = append(citations, re.FindAllString(text, -1)...)
	}
	if len(citations) > MaxExtracted {
		citations = citations[:MaxExtracted]
	}
	return citations
}

// reporterRef matches the volume-reporter prefix of a citation. Pin-cite
// detection anchors on it so a comma inside a case name ("Ashcroft v. Iqbal,
// 556 U.S. 662") is never mistaken for a trailing page reference.
const reporterRef = `\d+\s+(?:F\.(?:2d|3d|4th)?|U\.S\.|S\.?\s*Ct\.?)\s+`

// Pin cites appear either as a trailing page after the first-page comma
// ("544, 570") or in "at 570" form.
var (
	commaPinPattern = regexp.MustCompile(reporterRef + `\d+\s*,\s*\d+`)
	atPinPattern    = regexp.MustCompile(reporterRef + `at\s+\d+`)
)

// HasPinCite reports whether the citation string carries a pin cite.
func HasPinCite(cite string) bool {
	return commaPinPattern.MatchString(cite) || atPinPattern.MatchString(cite)
}

// MissingPinCites returns the citations that appear to lack a pin cite, in
// input order.
func MissingPinCites(citations []string) []string {
	var missing []string
	for _, cite := range citations {
		if !HasPinCite(cite) {
			missing = append(missing, cite)
		}
	}
	return missing
}
