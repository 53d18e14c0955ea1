package analyze

import (
	"sort"
	"strings"

	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/types"
)

// SpanAnalyzer is the full-fidelity backend: it consumes per-page text spans
// and supplies fonts, sizes, and per-page page-number detection.
type SpanAnalyzer struct {
	patterns *lcvr.ExtractionPatterns
}

// NewSpanAnalyzer creates a span analyzer with the default pattern tables.
func NewSpanAnalyzer() *SpanAnalyzer {
	return &SpanAnalyzer{patterns: lcvr.DefaultExtractionPatterns()}
}

// NewSpanAnalyzerWithPatterns creates a span analyzer with custom tables.
func NewSpanAnalyzerWithPatterns(patterns *lcvr.ExtractionPatterns) *SpanAnalyzer {
	return &SpanAnalyzer{patterns: patterns}
}

// Name implements Analyzer.
func (a *SpanAnalyzer) Name() string { return "span" }

// Fidelity implements Analyzer.
func (a *SpanAnalyzer) Fidelity() Fidelity { return FidelitySpan }

// CanAnalyze requires a per-page split.
func (a *SpanAnalyzer) CanAnalyze(doc *types.SourceDocument) bool {
	return doc != nil && len(doc.Pages) > 0
}

// Analyze implements Analyzer.
func (a *SpanAnalyzer) Analyze(doc *types.SourceDocument) (*types.DocumentMetadata, error) {
	if doc == nil {
		return nil, ErrNoSource
	}

	var (
		fullText    strings.Builder
		fonts       []string
		fontSeen    = map[string]bool{}
		sizeSeen    = map[float64]bool{}
		sizes       []float64
		hasPageNums bool
	)

	for i := range doc.Pages {
		page := &doc.Pages[i]
		fullText.WriteString(page.Text)
		fullText.WriteString("\n")

		for _, span := range page.Spans {
			font := span.Font
			if font == "" {
				font = "Unknown"
			}
			if !fontSeen[font] {
				fontSeen[font] = true
				fonts = append(fonts, font)
			}
			if !sizeSeen[span.Size] {
				sizeSeen[span.Size] = true
				sizes = append(sizes, span.Size)
			}
		}

		if detectPageNumber(page.Text, i+1) {
			hasPageNums = true
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	text := fullText.String()
	md := &types.DocumentMetadata{
		PageCount:      len(doc.Pages),
		IsSearchable:   len(strings.TrimSpace(text)) > searchableThreshold,
		Fonts:          fonts,
		PrimaryFont:    primaryFont(fonts),
		FontSizes:      sizes,
		HasPageNumbers: hasPageNums,
		CaseNumber:     extractCaseNumber(a.patterns, text),
		DocumentTitle:  extractDocumentTitle(a.patterns, text),
		TextContent:    text,
	}
	if len(sizes) > 0 {
		md.PrimaryFontSize = sizes[0]
	}
	return md, nil
}
