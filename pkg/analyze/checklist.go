package analyze

import (
	"regexp"

	"github.com/coolbeans/docket/pkg/citation"
	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/rules"
	"github.com/coolbeans/docket/pkg/types"
)

var (
	courtNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)DISTRICT\s+COURT.*DISTRICT\s+OF\s+COLUMBIA`),
		regexp.MustCompile(`(?i)D\.D\.C\.`),
		regexp.MustCompile(`(?i)DDC`),
	}

	signaturePattern = regexp.MustCompile(`/s/\s+\w+`)
	barNumberPattern = regexp.MustCompile(`(?i)(?:DC|D\.C\.)\s*Bar\s*(?:No\.?|#)?\s*(\d+)`)
	emailPattern     = regexp.MustCompile(`[\w\.-]+@[\w\.-]+\.\w+`)
	phonePattern     = regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
	dcAddressPattern = regexp.MustCompile(`(?i)Washington,?\s*D\.?C\.?\s*\d{5}`)
)

// BuildChecklist bridges extracted metadata to the rule engine's input
// record. Line spacing is never set (not measurable from extracted text).
//
// The caption's plaintiff and defendant flags are an always-true stub: the
// system does not verify party names against the caption text, it only
// requires that a caption exists at all (a case number was found).
func BuildChecklist(md *types.DocumentMetadata) *rules.Input {
	in := &rules.Input{
		Margins:        md.Margins,
		PageCount:      rules.Int(md.PageCount),
		DocumentType:   lcvr.InferDocumentType(md.DocumentTitle),
		IsSearchable:   rules.Bool(md.IsSearchable),
		HasPageNumbers: rules.Bool(md.HasPageNumbers),
		Citations:      citation.NewExtractor().Extract(md.TextContent),
	}

	if md.PrimaryFont != "" {
		in.Font = rules.String(md.PrimaryFont)
	}
	if md.PrimaryFontSize != 0 {
		in.FontSize = rules.Float(md.PrimaryFontSize)
	}
	if md.CaseNumber != "" {
		in.CaseNumber = rules.String(md.CaseNumber)
		in.Caption = &rules.Caption{
			CourtName:     hasCourtName(md.TextContent),
			Plaintiff:     true,
			Defendant:     true,
			CaseNumber:    md.CaseNumber,
			DocumentTitle: md.DocumentTitle,
		}
	}
	in.SignatureBlock = detectSignatureBlock(md.TextContent)

	return in
}

// hasCourtName reports whether the text names the DC district court.
func hasCourtName(text string) bool {
	for _, re := range courtNamePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// detectSignatureBlock scans the text for signature-block elements. Returns
// nil when nothing signature-like was found at all.
func detectSignatureBlock(text string) *rules.SignatureBlock {
	sig := &rules.SignatureBlock{
		AttorneyName: signaturePattern.MatchString(text),
		Address:      dcAddressPattern.MatchString(text),
		Telephone:    phonePattern.MatchString(text),
		Email:        emailPattern.MatchString(text),
	}
	if m := barNumberPattern.FindStringSubmatch(text); m != nil {
		sig.DCBarNumber = m[1]
	}

	if !sig.AttorneyName && !sig.Address && !sig.Telephone && !sig.Email && sig.DCBarNumber == "" {
		return nil
	}
	return sig
}
