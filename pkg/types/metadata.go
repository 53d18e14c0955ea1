package types

// DocumentMetadata is the normalized record produced by the metadata
// extractor and consumed by the rule engine. Fields an extraction backend
// cannot supply are left at their zero value rather than erroring; the rule
// engine treats absent data as a failed check, not an exception.
type DocumentMetadata struct {
	PageCount    int  `json:"page_count"`
	IsSearchable bool `json:"is_searchable"`

	// Fonts is every font name seen in the document, deduplicated.
	Fonts []string `json:"fonts"`

	// PrimaryFont is the likely body-text font; empty when undetectable.
	PrimaryFont string `json:"primary_font,omitempty"`

	// FontSizes is every size seen, sorted descending.
	FontSizes []float64 `json:"font_sizes"`

	// PrimaryFontSize is FontSizes[0], or zero when no sizes were seen.
	PrimaryFontSize float64 `json:"primary_font_size,omitempty"`

	HasPageNumbers bool `json:"has_page_numbers"`

	// CaseNumber is the strict-format case number, empty when absent.
	CaseNumber string `json:"case_number,omitempty"`

	// DocumentTitle is the first title-pattern match on the first page.
	DocumentTitle string `json:"document_title,omitempty"`

	// Margins in inches per side; nil when the backend cannot measure them.
	Margins map[string]float64 `json:"margins,omitempty"`

	TextContent string `json:"text_content"`
}
