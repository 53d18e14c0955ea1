package content

import (
	"strings"

	"github.com/coolbeans/docket/pkg/types"
)

// DetectSections segments the body into the five standard section keys.
// A heading whose text contains a section trigger phrase opens that section;
// following paragraphs accumulate until the next recognized heading. Text
// before the first recognized heading is treated as the introduction, unless
// it looks like caption material. Every key is present in the result; a
// section that was never opened maps to the empty string. A repeated heading
// reopens its section and the later content wins.
func (e *Extractor) DetectSections(paragraphs []types.ParagraphInfo) map[string]string {
	sections := make(map[string]string, len(e.patterns.Sections))
	for _, rule := range e.patterns.Sections {
		sections[rule.Key] = ""
	}

	var currentSection string
	var currentContent []string

	flush := func() {
		if currentSection != "" && len(currentContent) > 0 {
			sections[currentSection] = strings.Join(currentContent, "\n\n")
		}
	}

	for _, para := range paragraphs {
		lower := strings.ToLower(para.Text)

		detected := ""
		if para.IsHeading {
			for _, rule := range e.patterns.Sections {
				for _, kw := range rule.Keywords {
					if strings.Contains(lower, kw) {
						detected = rule.Key
						break
					}
				}
				if detected != "" {
					break
				}
			}
		}

		switch {
		case detected != "":
			flush()
			currentSection = detected
			currentContent = nil
		case currentSection != "":
			currentContent = append(currentContent, para.Text)
		default:
			// Body text before the first recognized heading opens the
			// introduction, skipping caption material.
			if sections["introduction"] == "" && !e.looksLikeCaption(para.Text) {
				currentSection = "introduction"
				currentContent = append(currentContent, para.Text)
			}
		}
	}
	flush()

	return sections
}

// looksLikeCaption reports whether the text belongs to the caption block.
func (e *Extractor) looksLikeCaption(text string) bool {
	for _, ind := range e.patterns.CaptionIndicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}
