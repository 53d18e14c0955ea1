// Package builder assembles court filings to DC district formatting
// standards. A Request is turned into an ordered block layout (caption,
// title, body sections, signature block, certificate of service) which the
// RTF and PDF encoders render with 12pt Times, double spacing, one-inch
// margins, and bottom-center page numbers.
package builder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/types"
)

// ErrUnknownDocumentType is returned when a request names a filing type not
// in the document-type table.
var ErrUnknownDocumentType = errors.New("unknown document type")

// ErrMissingField is returned by ValidateForFiling when a required request
// field is empty.
var ErrMissingField = errors.New("missing required field")

// Source says where a request's content came from. Drafted requests carry
// author-supplied sections and may add lettered arguments; reformatted
// requests carry content extracted from an uploaded draft.
type Source int

const (
	SourceDrafted Source = iota
	SourceReformatted
)

// Argument is one lettered argument subsection (A., B., ...). Drafted
// requests only.
type Argument struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Request carries everything needed to assemble a filing.
type Request struct {
	DocumentType string `json:"document_type" yaml:"document_type"`

	Case     types.CaseInfo      `json:"case" yaml:"case"`
	Attorney *types.AttorneyInfo `json:"attorney,omitempty" yaml:"attorney,omitempty"`

	// MotionType fills the {motion_type} placeholder of opposition and
	// reply titles. CustomTitle overrides the resolved title entirely.
	MotionType  string `json:"motion_type,omitempty" yaml:"motion_type,omitempty"`
	CustomTitle string `json:"custom_title,omitempty" yaml:"custom_title,omitempty"`

	// PartyName names the moving party in the introductory sentence.
	// Falls back to the plaintiff, then to "Plaintiff".
	PartyName string `json:"party_name,omitempty" yaml:"party_name,omitempty"`

	Sections            map[string]string `json:"sections,omitempty" yaml:"sections,omitempty"`
	AdditionalArguments []Argument        `json:"additional_arguments,omitempty" yaml:"additional_arguments,omitempty"`

	// IncludeCertificate defaults to true when nil.
	IncludeCertificate *bool `json:"include_certificate_of_service,omitempty" yaml:"include_certificate_of_service,omitempty"`

	// Date is the filing date as it should appear ("January 2, 2006").
	// Empty means the build time.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	Source Source `json:"-" yaml:"-"`
}

func (r *Request) wantCertificate() bool {
	return r.IncludeCertificate == nil || *r.IncludeCertificate
}

// ValidateForFiling checks the fields a drafted filing must carry. Build
// itself only requires a known document type; placeholders cover the rest,
// so partial drafts still assemble.
func (r *Request) ValidateForFiling() error {
	fields := []struct{ name, value string }{
		{"document_type", r.DocumentType},
		{"plaintiff", r.Case.Plaintiff},
		{"defendant", r.Case.Defendant},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// Document is an assembled filing ready for encoding.
type Document struct {
	Blocks []Block
	Spec   *lcvr.FormatSpec

	caseNumber string
	docType    string
	builtAt    time.Time
}

// Builder assembles filings against a document-type table and format spec.
type Builder struct {
	set   *lcvr.DocumentTypeSet
	spec  *lcvr.FormatSpec
	now   func() time.Time
	upper cases.Caser
}

// NewBuilder creates a builder with the built-in DC district tables.
func NewBuilder() *Builder {
	return NewBuilderWith(lcvr.DefaultDocumentTypes(), lcvr.DefaultFormatSpec(), time.Now)
}

// NewBuilderWith creates a builder with explicit tables and clock. Tests
// inject a fixed clock for deterministic dates and filenames.
func NewBuilderWith(set *lcvr.DocumentTypeSet, spec *lcvr.FormatSpec, now func() time.Time) *Builder {
	return &Builder{
		set:   set,
		spec:  spec,
		now:   now,
		upper: cases.Upper(language.AmericanEnglish),
	}
}

// Build assembles the filing layout in the fixed pipeline order: caption,
// title, body sections, signature block, certificate of service.
func (b *Builder) Build(req *Request) (*Document, error) {
	dt, ok := b.set.Get(req.DocumentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, req.DocumentType)
	}

	builtAt := b.now()
	doc := &Document{
		Spec:       b.spec,
		caseNumber: req.Case.CaseNumber,
		docType:    req.DocumentType,
		builtAt:    builtAt,
	}

	date := req.Date
	if date == "" {
		date = builtAt.Format("January 2, 2006")
	}

	doc.Blocks = append(doc.Blocks,
		Paragraph{Text: lcvr.CourtName, Bold: true, Align: AlignCenter},
		Paragraph{},
		b.caption(req),
		Paragraph{},
		Paragraph{Text: dt.ResolveTitle(req.MotionType, req.CustomTitle), Bold: true, Align: AlignCenter},
		Paragraph{},
	)

	b.body(doc, req)

	doc.Blocks = append(doc.Blocks, Paragraph{})
	if req.Source == SourceDrafted || req.Attorney != nil {
		doc.Blocks = append(doc.Blocks, b.signature(req, date))
	}

	if req.wantCertificate() && (req.Source == SourceDrafted || req.Attorney != nil) {
		b.certificate(doc, req, date)
	}

	return doc, nil
}

func (b *Builder) caption(req *Request) Caption {
	plaintiff := req.Case.Plaintiff
	if plaintiff == "" {
		plaintiff = "PLAINTIFF NAME"
	}
	defendant := req.Case.Defendant
	if defendant == "" {
		defendant = "DEFENDANT NAME"
	}
	caseDisplay := req.Case.CaseNumber
	if caseDisplay == "" {
		caseDisplay = "[Case No. TBD]"
	}
	return Caption{
		Plaintiff:   b.upper.String(plaintiff),
		Defendant:   b.upper.String(defendant),
		CaseDisplay: caseDisplay,
		JudgeName:   req.Case.JudgeName,
	}
}

func (b *Builder) body(doc *Document, req *Request) {
	sections := req.Sections

	if sections["introduction"] != "" {
		party := req.PartyName
		if party == "" {
			party = req.Case.Plaintiff
		}
		if party == "" {
			party = "Plaintiff"
		}
		verb := "respectfully moves this Court as follows:"
		if req.Source == SourceReformatted {
			verb = "respectfully submits this filing as follows:"
		}
		doc.Blocks = append(doc.Blocks,
			Paragraph{Text: fmt.Sprintf("%s, by and through undersigned counsel, %s", party, verb), Align: AlignJustify},
			Paragraph{},
		)
		b.content(doc, req, sections["introduction"])
	}

	named := []struct{ key, heading string }{
		{"facts", "FACTUAL BACKGROUND"},
		{"legal_standard", "LEGAL STANDARD"},
		{"argument", "ARGUMENT"},
	}
	for _, s := range named {
		if sections[s.key] == "" {
			continue
		}
		doc.Blocks = append(doc.Blocks, Paragraph{Text: s.heading, Bold: true, Align: AlignCenter})
		b.content(doc, req, sections[s.key])
	}

	if req.Source == SourceDrafted {
		for i, arg := range req.AdditionalArguments {
			letter := string(rune('A' + i))
			heading := arg.Heading
			if heading == "" {
				heading = "Argument " + letter
			}
			doc.Blocks = append(doc.Blocks,
				Paragraph{Text: letter + ". " + heading, Bold: true, Align: AlignLeft},
				Paragraph{Text: arg.Content, Align: AlignJustify},
			)
		}
	}

	if sections["conclusion"] != "" {
		doc.Blocks = append(doc.Blocks, Paragraph{Text: "CONCLUSION", Bold: true, Align: AlignCenter})
		b.content(doc, req, sections["conclusion"])
	}
}

// content emits section text. Reformatted content is split on blank lines
// into indented paragraphs; drafted content is emitted as written.
func (b *Builder) content(doc *Document, req *Request, text string) {
	if req.Source != SourceReformatted {
		doc.Blocks = append(doc.Blocks, Paragraph{Text: text, Align: AlignJustify})
		return
	}
	for _, part := range strings.Split(text, "\n\n") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		doc.Blocks = append(doc.Blocks, Paragraph{Text: part, Align: AlignJustify, FirstLineIndent: true})
	}
}

func (b *Builder) signature(req *Request, date string) Signature {
	attorney := req.Attorney
	if attorney == nil {
		attorney = &types.AttorneyInfo{}
	}
	name := attorney.Name
	if name == "" {
		name = "Attorney Name"
	}

	lines := []string{
		"Respectfully submitted,",
		"",
		"/s/ " + name,
		name,
	}
	if attorney.Firm != "" {
		lines = append(lines, attorney.Firm)
	}
	if attorney.Address != "" {
		lines = append(lines, attorney.Address)
	}
	if attorney.CityStateZip != "" {
		lines = append(lines, attorney.CityStateZip)
	}
	if attorney.Phone != "" {
		lines = append(lines, "Tel: "+attorney.Phone)
	}
	if attorney.Email != "" {
		lines = append(lines, "Email: "+attorney.Email)
	}
	if attorney.DCBarNumber != "" {
		lines = append(lines, "DC Bar No. "+attorney.DCBarNumber)
	}

	party := req.Case.PartyRepresented
	if party == "" {
		party = "Plaintiff"
	}
	lines = append(lines, "", "Counsel for "+party)

	return Signature{Dated: "Dated: " + date, Lines: lines}
}

func (b *Builder) certificate(doc *Document, req *Request, date string) {
	subject := "foregoing document"
	if req.Source == SourceDrafted && req.CustomTitle != "" {
		subject = req.CustomTitle
	}
	cert := fmt.Sprintf(
		"I hereby certify that on %s, a copy of the %s was served via the Court's CM/ECF system on all counsel of record.",
		date, subject,
	)

	name := "Attorney Name"
	if req.Attorney != nil && req.Attorney.Name != "" {
		name = req.Attorney.Name
	}

	doc.Blocks = append(doc.Blocks,
		PageBreak{},
		Paragraph{Text: "CERTIFICATE OF SERVICE", Bold: true, Align: AlignCenter},
		Paragraph{},
		Paragraph{Text: cert, Align: AlignJustify, FirstLineIndent: true},
		Paragraph{},
		Paragraph{},
		Paragraph{Text: "/s/ " + name + "\n" + name, Align: AlignRight},
	)
}

var filenameUnsafe = regexp.MustCompile(`[^\w\-]`)

// Filename names the output file: the sanitized case number (or "draft"),
// the document type, and the build timestamp.
func (d *Document) Filename(ext string) string {
	caseClean := "draft"
	if d.caseNumber != "" {
		caseClean = filenameUnsafe.ReplaceAllString(d.caseNumber, "_")
	}
	docType := d.docType
	if docType == "" {
		docType = "document"
	}
	return fmt.Sprintf("%s_%s_%s.%s", caseClean, docType, d.builtAt.Format("20060102_150405"), ext)
}
