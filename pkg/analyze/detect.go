package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coolbeans/docket/pkg/lcvr"
)

// searchableThreshold is the minimum extracted-text length for a document to
// count as text-searchable.
const searchableThreshold = 100

var symbolFonts = []string{"symbol", "zapf", "wingding"}

// primaryFont picks the likely body-text font. Times variants normalize to
// the canonical name; symbol fonts are passed over.
func primaryFont(fonts []string) string {
	for _, font := range fonts {
		if strings.Contains(strings.ToLower(font), "times") {
			return "Times New Roman"
		}
	}
	for _, font := range fonts {
		lower := strings.ToLower(font)
		symbolic := false
		for _, sym := range symbolFonts {
			if strings.Contains(lower, sym) {
				symbolic = true
				break
			}
		}
		if !symbolic {
			return font
		}
	}
	if len(fonts) > 0 {
		return fonts[0]
	}
	return ""
}

// extractCaseNumber returns the first strict-format case number in the text.
func extractCaseNumber(patterns *lcvr.ExtractionPatterns, text string) string {
	return patterns.CaseNumberRegexp().FindString(text)
}

// extractDocumentTitle searches the first-page window (2000 characters,
// upper-cased) with the title patterns in table order.
func extractDocumentTitle(patterns *lcvr.ExtractionPatterns, text string) string {
	window := text
	if len(window) > 2000 {
		window = window[:2000]
	}
	window = strings.ToUpper(window)

	for _, re := range patterns.TitleRegexps() {
		if m := re.FindString(window); m != "" {
			return m
		}
	}
	return ""
}

// detectPageNumber checks the last three non-empty lines of a page for its
// expected 1-based number, either as a bare digit line or a "Page N" line.
func detectPageNumber(pageText string, expected int) bool {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(pageText), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if len(lines) == 0 {
		return false
	}
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}

	bare := fmt.Sprintf("%d", expected)
	pageRe := regexp.MustCompile(fmt.Sprintf(`(?i)^Page\s+%d$`, expected))

	for _, line := range lines {
		if line == bare {
			return true
		}
		if pageRe.MatchString(line) {
			return true
		}
	}
	return false
}

// detectPageNumbersInText is the degraded heuristic for sources without a
// per-page split: the first few page numbers must each appear as a
// standalone token somewhere in the text. Fails closed on the first miss.
func detectPageNumbersInText(text string, pageCount int) bool {
	limit := pageCount + 1
	if limit > 5 {
		limit = 5
	}
	for i := 1; i < limit; i++ {
		re := regexp.MustCompile(fmt.Sprintf(`\b%d\b`, i))
		if !re.MatchString(text) {
			return false
		}
	}
	return true
}
