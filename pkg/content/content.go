// Package content extracts classified paragraphs, case information, and
// named body sections from structural (word-processing) sources, for
// reformatting to court standards.
package content

import (
	"errors"
	"strings"
	"unicode"

	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/types"
)

// ErrNoDocument is returned when no structural document was supplied.
var ErrNoDocument = errors.New("no structured document")

// Paragraph windows the case-info and title scans are limited to.
const (
	caseInfoParagraphs = 20
	titleParagraphs    = 15
)

// headingMaxLen bounds the all-caps and all-bold heading heuristics.
const headingMaxLen = 100

// Extractor turns a structural document into a content record.
type Extractor struct {
	patterns *lcvr.ExtractionPatterns
}

// NewExtractor creates an extractor with the default pattern tables.
func NewExtractor() *Extractor {
	return &Extractor{patterns: lcvr.DefaultExtractionPatterns()}
}

// NewExtractorWithPatterns creates an extractor with custom tables.
func NewExtractorWithPatterns(patterns *lcvr.ExtractionPatterns) *Extractor {
	return &Extractor{patterns: patterns}
}

// Extract classifies the document's paragraphs, detects case information,
// and segments the body into sections. Empty paragraphs are dropped.
func (e *Extractor) Extract(doc *types.StructuredDocument) (*types.ContentRecord, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}

	var paragraphs []types.ParagraphInfo
	for i := range doc.Paragraphs {
		src := &doc.Paragraphs[i]
		text := strings.TrimSpace(src.Text)
		if text == "" {
			continue
		}
		style := src.Style
		if style == "" {
			style = "Normal"
		}
		paragraphs = append(paragraphs, types.ParagraphInfo{
			Text:      text,
			IsHeading: isHeading(src),
			Style:     style,
		})
	}

	texts := make([]string, len(paragraphs))
	wordCount := 0
	for i, p := range paragraphs {
		texts[i] = p.Text
		wordCount += len(strings.Fields(p.Text))
	}

	return &types.ContentRecord{
		Paragraphs:     paragraphs,
		FullText:       strings.Join(texts, "\n\n"),
		CaseInfo:       e.extractCaseInfo(paragraphs),
		Sections:       e.DetectSections(paragraphs),
		WordCount:      wordCount,
		ParagraphCount: len(paragraphs),
	}, nil
}

// isHeading classifies a source paragraph. The three conditions are checked
// in order and the first true one wins: style name contains "heading";
// short all-caps text; short text whose every non-empty run is bold.
func isHeading(p *types.SourceParagraph) bool {
	if strings.Contains(strings.ToLower(p.Style), "heading") {
		return true
	}

	text := strings.TrimSpace(p.Text)
	if isUpper(text) && len(text) < headingMaxLen {
		return true
	}

	if len(p.Runs) > 0 {
		allBold := true
		for _, run := range p.Runs {
			if strings.TrimSpace(run.Text) == "" {
				continue
			}
			if !run.Bold {
				allBold = false
				break
			}
		}
		if allBold && len(text) < headingMaxLen {
			return true
		}
	}

	return false
}

// isUpper reports whether the text has at least one cased letter and no
// lowercase letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// extractCaseInfo scans the first paragraphs for the case number, parties,
// judge, and document title. Each regex family is tried in table order and
// the first match stops the family.
func (e *Extractor) extractCaseInfo(paragraphs []types.ParagraphInfo) types.CaseInfo {
	window := paragraphs
	if len(window) > caseInfoParagraphs {
		window = window[:caseInfoParagraphs]
	}
	texts := make([]string, len(window))
	for i, p := range window {
		texts[i] = p.Text
	}
	fullText := strings.Join(texts, "\n")

	var info types.CaseInfo

	for _, re := range e.patterns.CaptionCaseNumberRegexps() {
		if m := re.FindStringSubmatch(fullText); m != nil {
			info.CaseNumber = m[1]
			break
		}
	}

	for _, re := range e.patterns.PartyRegexps() {
		if m := re.FindStringSubmatch(fullText); m != nil {
			info.Plaintiff = strings.TrimSpace(m[1])
			info.Defendant = strings.TrimSpace(m[2])
			break
		}
	}

	for _, re := range e.patterns.JudgeRegexps() {
		if m := re.FindStringSubmatch(fullText); m != nil {
			info.JudgeName = strings.TrimSpace(m[1])
			break
		}
	}

	titleWindow := paragraphs
	if len(titleWindow) > titleParagraphs {
		titleWindow = titleWindow[:titleParagraphs]
	}
	for _, p := range titleWindow {
		if !p.IsHeading {
			continue
		}
		lower := strings.ToLower(p.Text)
		for _, kw := range e.patterns.TitleKeywords {
			if strings.Contains(lower, kw) {
				info.DocumentTitle = p.Text
				break
			}
		}
		if info.DocumentTitle != "" {
			break
		}
	}

	return info
}
