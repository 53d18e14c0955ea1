package analyze

import (
	"strings"
	"testing"

	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/types"
)

var (
	_ Analyzer = (*SpanAnalyzer)(nil)
	_ Analyzer = (*TextAnalyzer)(nil)
)

func TestBestSelectsRichestBackend(t *testing.T) {
	cases := []struct {
		name string
		doc  *types.SourceDocument
		want string
	}{
		{
			"paged source gets span backend",
			&types.SourceDocument{Pages: []types.Page{{Number: 1, Text: "body"}}},
			"span",
		},
		{
			"plain text source gets text backend",
			&types.SourceDocument{Text: "body", PageCount: 3},
			"text",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Best(tc.doc)
			if err != nil {
				t.Fatalf("Best failed: %v", err)
			}
			if a.Name() != tc.want {
				t.Errorf("Expected backend %q, got %q", tc.want, a.Name())
			}
		})
	}
}

func TestBestNilSource(t *testing.T) {
	if _, err := Best(nil); err != ErrNoSource {
		t.Errorf("Expected ErrNoSource, got %v", err)
	}
}

func TestPrimaryFont(t *testing.T) {
	cases := []struct {
		name  string
		fonts []string
		want  string
	}{
		{"times variant normalizes", []string{"TimesNewRomanPSMT"}, "Times New Roman"},
		{"times wins over earlier fonts", []string{"Arial", "Times-Roman"}, "Times New Roman"},
		{"symbol fonts passed over", []string{"Symbol", "ZapfDingbats", "Arial"}, "Arial"},
		{"all symbolic falls back to first", []string{"Symbol", "Wingdings"}, "Symbol"},
		{"no fonts", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := primaryFont(tc.fonts); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDetectPageNumber(t *testing.T) {
	cases := []struct {
		name     string
		pageText string
		expected int
		want     bool
	}{
		{"bare digit last line", "Some body text.\n\n2", 2, true},
		{"page n form", "Some body text.\nPage 3", 3, true},
		{"page n case insensitive", "text\npage 4", 4, true},
		{"wrong number", "text\n5", 2, false},
		{"number buried mid-page", "2\nline\nline\nline\nline", 2, false},
		{"number inside sentence", "text\nSee page 2 for details", 2, false},
		{"empty page", "", 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectPageNumber(tc.pageText, tc.expected); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDetectPageNumbersInText(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		pageCount int
		want      bool
	}{
		{"sequence present", "1 then 2 then 3 then 4 elsewhere", 10, true},
		{"one missing fails closed", "1 then 2 then 4", 10, false},
		{"single page needs only one", "footer 1", 1, true},
		{"tokens inside words do not count", "a1b a2b", 2, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectPageNumbersInText(tc.text, tc.pageCount); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestExtractDocumentTitleWindow(t *testing.T) {
	patterns := lcvr.DefaultExtractionPatterns()

	text := "united states district court\nfor the district of columbia\n\nmotion to dismiss the complaint"
	if got := extractDocumentTitle(patterns, text); got != "MOTION TO DISMISS" {
		t.Errorf("Expected MOTION TO DISMISS, got %q", got)
	}

	// Title beyond the first-page window is ignored.
	far := strings.Repeat("x", 2100) + " MOTION TO DISMISS"
	if got := extractDocumentTitle(patterns, far); got != "" {
		t.Errorf("Expected no title beyond window, got %q", got)
	}
}

func spanTestDoc() *types.SourceDocument {
	body := strings.Repeat("The complaint fails to state a claim. ", 10)
	return &types.SourceDocument{
		Name: "motion.json",
		Pages: []types.Page{
			{
				Number: 1,
				Text: "UNITED STATES DISTRICT COURT\nFOR THE DISTRICT OF COLUMBIA\n" +
					"Case No. 1:24-cv-00123-ABC\nMOTION TO DISMISS\n" + body + "\n1",
				Spans: []types.TextSpan{
					{Text: "MOTION TO DISMISS", Font: "Times-Bold", Size: 12, Bold: true},
					{Text: "body", Font: "TimesNewRomanPSMT", Size: 12},
					{Text: "footnote", Font: "TimesNewRomanPSMT", Size: 10},
				},
			},
			{
				Number: 2,
				Text:   body + "\nPage 2",
				Spans: []types.TextSpan{
					{Text: "more body", Font: "", Size: 12},
				},
			},
		},
	}
}

func TestSpanAnalyzer(t *testing.T) {
	md, err := NewSpanAnalyzer().Analyze(spanTestDoc())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if md.PageCount != 2 {
		t.Errorf("Expected 2 pages, got %d", md.PageCount)
	}
	if !md.IsSearchable {
		t.Errorf("Expected searchable document")
	}

	wantFonts := []string{"Times-Bold", "TimesNewRomanPSMT", "Unknown"}
	if len(md.Fonts) != len(wantFonts) {
		t.Fatalf("Expected fonts %v, got %v", wantFonts, md.Fonts)
	}
	for i := range wantFonts {
		if md.Fonts[i] != wantFonts[i] {
			t.Errorf("Font %d: expected %q, got %q", i, wantFonts[i], md.Fonts[i])
		}
	}
	if md.PrimaryFont != "Times New Roman" {
		t.Errorf("Expected normalized primary font, got %q", md.PrimaryFont)
	}

	if len(md.FontSizes) != 2 || md.FontSizes[0] != 12 || md.FontSizes[1] != 10 {
		t.Errorf("Expected sizes [12 10], got %v", md.FontSizes)
	}
	if md.PrimaryFontSize != 12 {
		t.Errorf("Expected primary size 12, got %g", md.PrimaryFontSize)
	}

	if md.CaseNumber != "1:24-cv-00123-ABC" {
		t.Errorf("Expected case number, got %q", md.CaseNumber)
	}
	if md.DocumentTitle != "MOTION TO DISMISS" {
		t.Errorf("Expected title, got %q", md.DocumentTitle)
	}
	if !md.HasPageNumbers {
		t.Errorf("Expected page numbers detected")
	}
}

func TestTextAnalyzer(t *testing.T) {
	body := strings.Repeat("The parties dispute jurisdiction. ", 10)
	doc := &types.SourceDocument{
		Text:      "Case No. 1:24-cv-00123-ABC\nREPLY IN SUPPORT of pending motion\n" + body + " 1 and 2 and 3.",
		PageCount: 3,
	}

	md, err := NewTextAnalyzer().Analyze(doc)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if md.Fonts != nil || md.FontSizes != nil {
		t.Errorf("Text backend must leave font fields unset")
	}
	if md.PrimaryFont != "" || md.PrimaryFontSize != 0 {
		t.Errorf("Text backend must leave primary font fields unset")
	}
	if md.PageCount != 3 {
		t.Errorf("Expected page count 3, got %d", md.PageCount)
	}
	if md.CaseNumber != "1:24-cv-00123-ABC" {
		t.Errorf("Expected case number, got %q", md.CaseNumber)
	}
	if md.DocumentTitle != "REPLY IN SUPPORT" {
		t.Errorf("Expected reply title, got %q", md.DocumentTitle)
	}
	if !md.HasPageNumbers {
		t.Errorf("Expected heuristic page-number detection to pass")
	}
}

func TestSearchableThreshold(t *testing.T) {
	short := &types.SourceDocument{Text: "scan artifact", PageCount: 1}
	md, err := NewTextAnalyzer().Analyze(short)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if md.IsSearchable {
		t.Errorf("Short extracted text must not count as searchable")
	}
}
