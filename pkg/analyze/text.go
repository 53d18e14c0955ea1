package analyze

import (
	"strings"

	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/types"
)

// TextAnalyzer is the fallback backend for sources that carry only plain
// text and a page count. Font and size fields stay unset; page-number
// detection degrades to the standalone-token heuristic.
type TextAnalyzer struct {
	patterns *lcvr.ExtractionPatterns
}

// NewTextAnalyzer creates a text analyzer with the default pattern tables.
func NewTextAnalyzer() *TextAnalyzer {
	return &TextAnalyzer{patterns: lcvr.DefaultExtractionPatterns()}
}

// NewTextAnalyzerWithPatterns creates a text analyzer with custom tables.
func NewTextAnalyzerWithPatterns(patterns *lcvr.ExtractionPatterns) *TextAnalyzer {
	return &TextAnalyzer{patterns: patterns}
}

// Name implements Analyzer.
func (a *TextAnalyzer) Name() string { return "text" }

// Fidelity implements Analyzer.
func (a *TextAnalyzer) Fidelity() Fidelity { return FidelityText }

// CanAnalyze accepts any source; plain text is the floor.
func (a *TextAnalyzer) CanAnalyze(doc *types.SourceDocument) bool {
	return doc != nil
}

// Analyze implements Analyzer.
func (a *TextAnalyzer) Analyze(doc *types.SourceDocument) (*types.DocumentMetadata, error) {
	if doc == nil {
		return nil, ErrNoSource
	}

	text := doc.FullText()
	return &types.DocumentMetadata{
		PageCount:      doc.PageCount,
		IsSearchable:   len(strings.TrimSpace(text)) > searchableThreshold,
		Fonts:          nil,
		FontSizes:      nil,
		HasPageNumbers: detectPageNumbersInText(text, doc.PageCount),
		CaseNumber:     extractCaseNumber(a.patterns, text),
		DocumentTitle:  extractDocumentTitle(a.patterns, text),
		TextContent:    text,
	}, nil
}
