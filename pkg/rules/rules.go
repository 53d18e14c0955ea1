// Package rules validates filing metadata against the LCvR 5.1 and LCvR 7
// formatting requirements. Every check in the fixed table emits exactly one
// finding per validation, in a fixed order; missing input data becomes a
// failed finding, never an error.
package rules

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Check identifiers, in validation order.
const (
	CheckFont           = "font_check"
	CheckFontSize       = "font_size_check"
	CheckMargins        = "margin_check"
	CheckLineSpacing    = "spacing_check"
	CheckPageLimit      = "page_limit_check"
	CheckCaseNumber     = "case_number_check"
	CheckCaption        = "caption_check"
	CheckSignatureBlock = "signature_block_check"
	CheckSearchablePDF  = "searchable_pdf_check"
	CheckPageNumbers    = "page_number_check"
	CheckPinCites       = "pin_cite_check"
)

// Finding is one rule-check result.
type Finding struct {
	CheckID       string   `json:"check_id"`
	Passed        bool     `json:"passed"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	RuleReference string   `json:"rule_reference"`
	Details       string   `json:"details,omitempty"`
}

// Caption carries the presence of each required caption element. The
// plaintiff and defendant flags come from an always-true stub in the
// metadata bridge: the extractor does not verify party names in the caption
// text (that would require named-entity extraction, which this system does
// not do).
type Caption struct {
	CourtName     bool   `json:"court_name"`
	Plaintiff     bool   `json:"plaintiff"`
	Defendant     bool   `json:"defendant"`
	CaseNumber    string `json:"case_number,omitempty"`
	DocumentTitle string `json:"document_title,omitempty"`
}

// SignatureBlock carries the detected signature-block elements.
type SignatureBlock struct {
	AttorneyName bool   `json:"attorney_name"`
	Address      bool   `json:"address"`
	Telephone    bool   `json:"telephone"`
	Email        bool   `json:"email"`
	DCBarNumber  string `json:"dc_bar_number,omitempty"`

	// DCBarMember is nil when unknown; membership is then assumed, which
	// makes the bar number required.
	DCBarMember *bool `json:"is_dc_bar_member,omitempty"`
}

// Input is the plain record the checker validates. Nil pointer fields mean
// the value could not be determined; the corresponding check fails with the
// severity the rule table assigns to missing data.
type Input struct {
	Font        *string            `json:"font,omitempty"`
	FontSize    *float64           `json:"font_size,omitempty"`
	Margins     map[string]float64 `json:"margins,omitempty"`
	LineSpacing *float64           `json:"line_spacing,omitempty"`
	PageCount   *int               `json:"page_count,omitempty"`

	// DocumentType defaults to "motion" when empty.
	DocumentType string `json:"document_type,omitempty"`

	CaseNumber     *string         `json:"case_number,omitempty"`
	Caption        *Caption        `json:"caption,omitempty"`
	SignatureBlock *SignatureBlock `json:"signature_block,omitempty"`
	IsSearchable   *bool           `json:"is_searchable,omitempty"`
	HasPageNumbers *bool           `json:"has_page_numbers,omitempty"`

	// Citations is nil when no citation review was requested; the pin-cite
	// check is then skipped entirely and emits no finding.
	Citations []string `json:"citations,omitempty"`
}

// String pins a string value for an Input field.
func String(s string) *string { return &s }

// Float pins a float value for an Input field.
func Float(f float64) *float64 { return &f }

// Int pins an int value for an Input field.
func Int(i int) *int { return &i }

// Bool pins a bool value for an Input field.
func Bool(b bool) *bool { return &b }
