package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/coolbeans/docket/pkg/citation"
	"github.com/coolbeans/docket/pkg/lcvr"
)

// Checker validates filing metadata against a format spec. It holds no
// per-validation state: Validate may be called concurrently and returns the
// identical finding sequence for identical input.
type Checker struct {
	spec         *lcvr.FormatSpec
	caseNumberRe *regexp.Regexp
}

// NewChecker creates a checker for the LCvR defaults.
func NewChecker() *Checker {
	return NewCheckerWithSpec(lcvr.DefaultFormatSpec())
}

// NewCheckerWithSpec creates a checker for a custom format spec.
func NewCheckerWithSpec(spec *lcvr.FormatSpec) *Checker {
	return &Checker{
		spec:         spec,
		caseNumberRe: regexp.MustCompile(lcvr.CaseNumberPattern),
	}
}

// Validate runs every check in the fixed order and returns one finding per
// check. The pin-cite check is the single exception: with no citations
// supplied it is skipped and contributes no finding.
func (c *Checker) Validate(in *Input) []Finding {
	if in == nil {
		in = &Input{}
	}

	docType := in.DocumentType
	if docType == "" {
		docType = "motion"
	}

	findings := make([]Finding, 0, 11)
	findings = append(findings, c.checkFont(in.Font))
	findings = append(findings, c.checkFontSize(in.FontSize))
	findings = append(findings, c.checkMargins(in.Margins))
	findings = append(findings, c.checkLineSpacing(in.LineSpacing))
	findings = append(findings, c.checkPageCount(in.PageCount, docType))
	findings = append(findings, c.checkCaseNumber(in.CaseNumber))
	findings = append(findings, c.checkCaption(in.Caption))
	findings = append(findings, c.checkSignatureBlock(in.SignatureBlock))
	findings = append(findings, c.checkSearchablePDF(in.IsSearchable))
	findings = append(findings, c.checkPageNumbers(in.HasPageNumbers))
	if f, ok := c.checkPinCites(in.Citations); ok {
		findings = append(findings, f)
	}
	return findings
}

func (c *Checker) checkFont(font *string) Finding {
	f := Finding{CheckID: CheckFont, RuleReference: "LCvR 7(o)(1)"}
	switch {
	case font == nil:
		f.Severity = SeverityError
		f.Message = "Could not detect font"
	case !strings.EqualFold(*font, c.spec.FontName):
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Font is %q. Required: %s", *font, c.spec.FontName)
	default:
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Font check passed"
	}
	return f
}

func (c *Checker) checkFontSize(size *float64) Finding {
	f := Finding{CheckID: CheckFontSize, RuleReference: "LCvR 7(o)(1)"}
	switch {
	case size == nil:
		f.Severity = SeverityError
		f.Message = "Could not detect font size"
	case *size != c.spec.FontSizePt:
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Font size is %gpt. Required: %gpt", *size, c.spec.FontSizePt)
	default:
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Font size check passed"
	}
	return f
}

func (c *Checker) checkMargins(margins map[string]float64) Finding {
	f := Finding{CheckID: CheckMargins, RuleReference: "LCvR 7(o)(1)"}
	if margins == nil {
		f.Severity = SeverityError
		f.Message = "Could not detect margins"
		return f
	}

	sides := make([]string, 0, len(margins))
	for side := range margins {
		sides = append(sides, side)
	}
	sort.Strings(sides)

	var failed []string
	for _, side := range sides {
		if margins[side] < c.spec.MarginInches {
			failed = append(failed, fmt.Sprintf("%s: %gin", side, margins[side]))
		}
	}

	if len(failed) > 0 {
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Margins too small: %s. Minimum: %gin",
			strings.Join(failed, ", "), c.spec.MarginInches)
	} else {
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Margin check passed"
	}
	return f
}

func (c *Checker) checkLineSpacing(spacing *float64) Finding {
	f := Finding{CheckID: CheckLineSpacing, RuleReference: "LCvR 7(o)(1)"}
	switch {
	case spacing == nil:
		f.Severity = SeverityWarning
		f.Message = "Could not detect line spacing"
	case *spacing < c.spec.LineSpacing:
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Line spacing is %g. Required: double-spaced (%g)", *spacing, c.spec.LineSpacing)
	default:
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Line spacing check passed"
	}
	return f
}

func (c *Checker) checkPageCount(pageCount *int, docType string) Finding {
	f := Finding{CheckID: CheckPageLimit, RuleReference: "LCvR 7(n)(1)"}
	if pageCount == nil {
		f.Severity = SeverityError
		f.Message = "Could not determine page count"
		return f
	}

	maxPages := lcvr.MaxPagesMotion
	if strings.Contains(strings.ToLower(docType), "reply") {
		maxPages = lcvr.MaxPagesReply
	}

	if *pageCount > maxPages {
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Document is %d pages. Maximum for %s: %d pages", *pageCount, docType, maxPages)
		f.Details = "File motion for leave to exceed page limits if necessary"
	} else {
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = fmt.Sprintf("Page count (%d) within %d-page limit", *pageCount, maxPages)
	}
	return f
}

func (c *Checker) checkCaseNumber(caseNumber *string) Finding {
	f := Finding{CheckID: CheckCaseNumber, RuleReference: "LCvR 5.1(b)"}
	switch {
	case caseNumber == nil:
		f.Severity = SeverityError
		f.Message = "No case number found in document"
	case !c.caseNumberRe.MatchString(*caseNumber):
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Case number %q invalid. Format: 1:YY-cv-NNNNN-ABC (must include judge initials)", *caseNumber)
	default:
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Case number format valid"
	}
	return f
}

func (c *Checker) checkCaption(caption *Caption) Finding {
	f := Finding{CheckID: CheckCaption, RuleReference: "LCvR 5.1(b)(c)"}
	if caption == nil {
		f.Severity = SeverityError
		f.Message = "No caption detected"
		return f
	}

	var missing []string
	if !caption.CourtName {
		missing = append(missing, "court_name")
	}
	if !caption.Plaintiff {
		missing = append(missing, "plaintiff")
	}
	if !caption.Defendant {
		missing = append(missing, "defendant")
	}
	if caption.CaseNumber == "" {
		missing = append(missing, "case_number")
	}
	if caption.DocumentTitle == "" {
		missing = append(missing, "document_title")
	}

	if len(missing) > 0 {
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Caption missing: %s", strings.Join(missing, ", "))
	} else {
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Caption contains all required elements"
	}
	return f
}

func (c *Checker) checkSignatureBlock(sig *SignatureBlock) Finding {
	f := Finding{CheckID: CheckSignatureBlock, RuleReference: "LCvR 5.1(d)"}
	if sig == nil {
		f.Severity = SeverityError
		f.Message = "No signature block detected"
		return f
	}

	var missing []string
	if !sig.AttorneyName {
		missing = append(missing, "attorney_name")
	}
	if !sig.Address {
		missing = append(missing, "address")
	}
	if !sig.Telephone {
		missing = append(missing, "telephone")
	}
	if !sig.Email {
		missing = append(missing, "email")
	}

	// DC Bar number required for DC Bar members; membership is assumed
	// unless explicitly disclaimed.
	member := sig.DCBarMember == nil || *sig.DCBarMember
	if sig.DCBarNumber == "" && member {
		missing = append(missing, "dc_bar_number")
	}

	if len(missing) > 0 {
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("Signature block missing: %s", strings.Join(missing, ", "))
	} else {
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Signature block complete"
	}
	return f
}

func (c *Checker) checkSearchablePDF(isSearchable *bool) Finding {
	f := Finding{CheckID: CheckSearchablePDF, RuleReference: "LCvR 5.4"}
	switch {
	case isSearchable == nil:
		f.Severity = SeverityWarning
		f.Message = "Could not determine if PDF is text-searchable"
	case !*isSearchable:
		f.Severity = SeverityError
		f.Message = "PDF is not text-searchable. ECF requires text-searchable PDFs"
	default:
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "PDF is text-searchable"
	}
	return f
}

func (c *Checker) checkPageNumbers(hasPageNumbers *bool) Finding {
	f := Finding{CheckID: CheckPageNumbers, RuleReference: "LCvR 7(o)(1)"}
	switch {
	case hasPageNumbers == nil:
		f.Severity = SeverityWarning
		f.Message = "Could not detect page numbers"
	case !*hasPageNumbers:
		f.Severity = SeverityError
		f.Message = "Document missing page numbers"
	default:
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "Page numbers present"
	}
	return f
}

// checkPinCites returns ok=false when the check is skipped (no citation list
// supplied). A missing pin cite is a stylistic lapse, never an ECF rejection,
// so the failure severity stays at warning.
func (c *Checker) checkPinCites(citations []string) (Finding, bool) {
	if citations == nil {
		return Finding{}, false
	}

	f := Finding{CheckID: CheckPinCites, RuleReference: "LCvR 7(o)(2)"}
	missing := citation.MissingPinCites(citations)

	if len(missing) > 0 {
		f.Severity = SeverityWarning
		f.Message = fmt.Sprintf("%d citation(s) may be missing pin cites", len(missing))
		sample := missing
		if len(sample) > 3 {
			sample = sample[:3]
		}
		f.Details = fmt.Sprintf("Review: %s", strings.Join(sample, "; "))
	} else {
		f.Passed = true
		f.Severity = SeverityInfo
		f.Message = "All citations appear to include pin cites"
	}
	return f, true
}
