package builder

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/types"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
}

func testBuilder() *Builder {
	return NewBuilderWith(lcvr.DefaultDocumentTypes(), lcvr.DefaultFormatSpec(), fixedClock)
}

func draftRequest() *Request {
	return &Request{
		DocumentType: "motion_to_dismiss",
		Case: types.CaseInfo{
			CaseNumber: "1:24-cv-00123-ABC",
			Plaintiff:  "Jane Roe",
			Defendant:  "Acme Corp",
			JudgeName:  "Tanya S. Chutkan",
		},
		Attorney: &types.AttorneyInfo{
			Name:        "John Smith",
			Firm:        "Smith & Associates",
			DCBarNumber: "123456",
		},
		Sections: map[string]string{
			"introduction":   "This motion should be granted.",
			"facts":          "The parties contracted in 2023.",
			"legal_standard": "Rule 12(b)(6) governs.",
			"argument":       "The complaint fails to state a claim.",
			"conclusion":     "The Court should dismiss.",
		},
		Source: SourceDrafted,
	}
}

// paragraphTexts flattens the layout to the text of its Paragraph blocks.
func paragraphTexts(doc *Document) []string {
	var texts []string
	for _, b := range doc.Blocks {
		if p, ok := b.(Paragraph); ok {
			texts = append(texts, p.Text)
		}
	}
	return texts
}

func containsText(doc *Document, want string) bool {
	for _, text := range paragraphTexts(doc) {
		if strings.Contains(text, want) {
			return true
		}
	}
	return false
}

func TestBuildPipelineOrder(t *testing.T) {
	doc, err := testBuilder().Build(draftRequest())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(doc.Blocks) < 6 {
		t.Fatalf("Expected at least 6 blocks, got %d", len(doc.Blocks))
	}

	court, ok := doc.Blocks[0].(Paragraph)
	if !ok || court.Text != lcvr.CourtName || !court.Bold || court.Align != AlignCenter {
		t.Errorf("Block 0 should be the centered bold court name, got %+v", doc.Blocks[0])
	}
	if _, ok := doc.Blocks[2].(Caption); !ok {
		t.Errorf("Block 2 should be the caption, got %T", doc.Blocks[2])
	}
	title, ok := doc.Blocks[4].(Paragraph)
	if !ok || title.Text != "MOTION TO DISMISS" || !title.Bold {
		t.Errorf("Block 4 should be the bold title, got %+v", doc.Blocks[4])
	}

	texts := paragraphTexts(doc)
	order := []string{"FACTUAL BACKGROUND", "LEGAL STANDARD", "ARGUMENT", "CONCLUSION"}
	last := -1
	for _, heading := range order {
		found := -1
		for i, text := range texts {
			if text == heading {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("Missing heading %q", heading)
		}
		if found <= last {
			t.Errorf("Heading %q out of order", heading)
		}
		last = found
	}

	var sig *Signature
	for _, b := range doc.Blocks {
		if s, ok := b.(Signature); ok {
			sig = &s
			break
		}
	}
	if sig == nil {
		t.Fatal("Missing signature block")
	}
	if sig.Dated != "Dated: January 15, 2024" {
		t.Errorf("Unexpected date line: %q", sig.Dated)
	}
}

func TestBuildUnknownDocumentType(t *testing.T) {
	req := draftRequest()
	req.DocumentType = "writ_of_mandamus"

	_, err := testBuilder().Build(req)
	if !errors.Is(err, ErrUnknownDocumentType) {
		t.Errorf("Expected ErrUnknownDocumentType, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "writ_of_mandamus") {
		t.Errorf("Error should name the type, got %v", err)
	}
}

func TestBuildOmitsEmptySectionHeadings(t *testing.T) {
	req := draftRequest()
	req.DocumentType = "complaint"
	req.Sections = map[string]string{
		"introduction": "Plaintiff alleges as follows.",
		"conclusion":   "Wherefore, Plaintiff demands judgment.",
	}

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, heading := range []string{"FACTUAL BACKGROUND", "LEGAL STANDARD", "ARGUMENT"} {
		if containsText(doc, heading) {
			t.Errorf("Heading %q should be omitted for empty section", heading)
		}
	}
	if !containsText(doc, "CONCLUSION") {
		t.Error("Missing CONCLUSION heading")
	}
}

func TestBuildIntroductorySentence(t *testing.T) {
	req := draftRequest()
	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !containsText(doc, "Jane Roe, by and through undersigned counsel, respectfully moves this Court as follows:") {
		t.Error("Missing drafted introductory sentence")
	}

	req = draftRequest()
	req.Source = SourceReformatted
	doc, err = testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !containsText(doc, "respectfully submits this filing as follows:") {
		t.Error("Missing reformatted introductory sentence")
	}
	if containsText(doc, "respectfully moves this Court") {
		t.Error("Reformatted filing should not use the motion verb")
	}
}

func TestBuildLetteredArgumentsDraftedOnly(t *testing.T) {
	req := draftRequest()
	req.AdditionalArguments = []Argument{
		{Heading: "The Claim Is Time-Barred", Content: "The limitations period ran."},
		{Content: "Venue is improper."},
	}

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !containsText(doc, "A. The Claim Is Time-Barred") {
		t.Error("Missing lettered argument A")
	}
	if !containsText(doc, "B. Argument B") {
		t.Error("Missing default heading for argument B")
	}

	req.Source = SourceReformatted
	doc, err = testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if containsText(doc, "A. The Claim Is Time-Barred") {
		t.Error("Reformatted filings must not emit lettered arguments")
	}
}

func TestBuildReformattedContentSplitsParagraphs(t *testing.T) {
	req := draftRequest()
	req.Source = SourceReformatted
	req.Sections = map[string]string{
		"argument": "First point.\n\nSecond point.\n\n   ",
	}

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var indented []Paragraph
	for _, b := range doc.Blocks {
		if p, ok := b.(Paragraph); ok && p.FirstLineIndent {
			indented = append(indented, p)
		}
	}
	if len(indented) != 2 {
		t.Fatalf("Expected 2 indented paragraphs, got %d", len(indented))
	}
	if indented[0].Text != "First point." || indented[1].Text != "Second point." {
		t.Errorf("Unexpected paragraph texts: %q, %q", indented[0].Text, indented[1].Text)
	}
}

func TestBuildReformattedOmitsSignatureWithoutAttorney(t *testing.T) {
	req := draftRequest()
	req.Source = SourceReformatted
	req.Attorney = nil

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, b := range doc.Blocks {
		if _, ok := b.(Signature); ok {
			t.Fatal("Reformatted filing without attorney should omit the signature block")
		}
	}
	if containsText(doc, "CERTIFICATE OF SERVICE") {
		t.Error("Certificate should be omitted without a signature")
	}
}

func TestBuildSignatureLines(t *testing.T) {
	req := draftRequest()
	req.Attorney = &types.AttorneyInfo{Name: "Jane Doe"}

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var sig Signature
	found := false
	for _, b := range doc.Blocks {
		if s, ok := b.(Signature); ok {
			sig = s
			found = true
		}
	}
	if !found {
		t.Fatal("Missing signature block")
	}

	want := []string{"Respectfully submitted,", "", "/s/ Jane Doe", "Jane Doe", "", "Counsel for Plaintiff"}
	if len(sig.Lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(sig.Lines), sig.Lines)
	}
	for i, line := range want {
		if sig.Lines[i] != line {
			t.Errorf("Line %d: expected %q, got %q", i, line, sig.Lines[i])
		}
	}
}

func TestBuildCertificateSubject(t *testing.T) {
	req := draftRequest()
	req.CustomTitle = "Motion for Sanctions"

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !containsText(doc, "a copy of the Motion for Sanctions was served") {
		t.Error("Certificate should name the custom title")
	}

	req = draftRequest()
	req.Source = SourceReformatted
	req.CustomTitle = "Motion for Sanctions"
	doc, err = testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !containsText(doc, "a copy of the foregoing document was served") {
		t.Error("Reformatted certificate should use the generic subject")
	}
}

func TestBuildCertificateOptOut(t *testing.T) {
	no := false
	req := draftRequest()
	req.IncludeCertificate = &no

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if containsText(doc, "CERTIFICATE OF SERVICE") {
		t.Error("Certificate should be omitted when opted out")
	}
	for _, b := range doc.Blocks {
		if _, ok := b.(PageBreak); ok {
			t.Error("No page break expected without the certificate")
		}
	}
}

func TestBuildCaptionPlaceholders(t *testing.T) {
	req := &Request{DocumentType: "complaint", Source: SourceDrafted}

	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	capt, ok := doc.Blocks[2].(Caption)
	if !ok {
		t.Fatalf("Block 2 should be the caption, got %T", doc.Blocks[2])
	}
	if capt.Plaintiff != "PLAINTIFF NAME" || capt.Defendant != "DEFENDANT NAME" {
		t.Errorf("Expected party placeholders, got %q / %q", capt.Plaintiff, capt.Defendant)
	}
	if capt.CaseDisplay != "[Case No. TBD]" {
		t.Errorf("Expected case placeholder, got %q", capt.CaseDisplay)
	}
}

func TestBuildCaptionUppercasesParties(t *testing.T) {
	doc, err := testBuilder().Build(draftRequest())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	capt := doc.Blocks[2].(Caption)
	if capt.Plaintiff != "JANE ROE" {
		t.Errorf("Expected JANE ROE, got %q", capt.Plaintiff)
	}
	if capt.Defendant != "ACME CORP" {
		t.Errorf("Expected ACME CORP, got %q", capt.Defendant)
	}
	if capt.JudgeName != "Tanya S. Chutkan" {
		t.Errorf("Judge name must keep its case, got %q", capt.JudgeName)
	}
}

func TestValidateForFiling(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Request)
		missing string
	}{
		{"complete", func(r *Request) {}, ""},
		{"no type", func(r *Request) { r.DocumentType = "" }, "document_type"},
		{"no plaintiff", func(r *Request) { r.Case.Plaintiff = "" }, "plaintiff"},
		{"no defendant", func(r *Request) { r.Case.Defendant = "" }, "defendant"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := draftRequest()
			tc.mutate(req)
			err := req.ValidateForFiling()
			if tc.missing == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("Expected ErrMissingField, got %v", err)
			}
			if err == nil || !strings.Contains(err.Error(), tc.missing) {
				t.Errorf("Error should name %q, got %v", tc.missing, err)
			}
		})
	}
}

func TestResolvedTitleVariants(t *testing.T) {
	cases := []struct {
		name       string
		docType    string
		motionType string
		custom     string
		want       string
	}{
		{"plain", "motion_to_compel", "", "", "MOTION TO COMPEL"},
		{"opposition placeholder", "opposition", "PLAINTIFF'S MOTION TO COMPEL", "", "OPPOSITION TO PLAINTIFF'S MOTION TO COMPEL"},
		{"reply default", "reply", "", "", "REPLY IN SUPPORT OF DEFENDANT'S MOTION TO DISMISS"},
		{"custom upper-cased", "complaint", "", "Amended Complaint", "AMENDED COMPLAINT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := draftRequest()
			req.DocumentType = tc.docType
			req.MotionType = tc.motionType
			req.CustomTitle = tc.custom

			doc, err := testBuilder().Build(req)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			title := doc.Blocks[4].(Paragraph)
			if title.Text != tc.want {
				t.Errorf("Expected title %q, got %q", tc.want, title.Text)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	doc, err := testBuilder().Build(draftRequest())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := "1_24-cv-00123-ABC_motion_to_dismiss_20240115_103000.rtf"
	if got := doc.Filename("rtf"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := doc.Filename("pdf"); !strings.HasSuffix(got, ".pdf") {
		t.Errorf("Expected .pdf suffix, got %q", got)
	}
}

func TestFilenameDefaults(t *testing.T) {
	req := &Request{DocumentType: "complaint", Source: SourceDrafted}
	doc, err := testBuilder().Build(req)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := "draft_complaint_20240115_103000.pdf"
	if got := doc.Filename("pdf"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
