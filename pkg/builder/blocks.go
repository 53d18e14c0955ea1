package builder

// Align is a paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Spacing is a paragraph line-spacing rule. The zero value is the document
// default, double spacing.
type Spacing int

const (
	SpacingDouble Spacing = iota
	SpacingSingle
)

// Block is one element of the assembled document layout. Encoders render
// blocks in order; pagination is an encoder concern.
type Block interface {
	block()
}

// Paragraph is a run of text with uniform formatting. Embedded newlines are
// line breaks within the paragraph.
type Paragraph struct {
	Text            string
	Bold            bool
	Align           Align
	Spacing         Spacing
	FirstLineIndent bool
}

// PageBreak forces the following block onto a new page.
type PageBreak struct{}

// Caption is the LCvR 5.1(b) caption block: the boxed party names on the
// left, case number and judge on the right. Names arrive already upper-cased.
// Encoders lay the two halves out per their format's table model.
type Caption struct {
	Plaintiff   string
	Defendant   string
	CaseDisplay string
	JudgeName   string
}

// Signature is the LCvR 5.1(d) signature block: the date on the left, the
// attorney block on the right.
type Signature struct {
	Dated string
	Lines []string
}

func (Paragraph) block() {}
func (PageBreak) block() {}
func (Caption) block()   {}
func (Signature) block() {}

// partyBlockLines renders the boxed left half of the caption as fixed-width
// text, the way clerks expect the party column to read.
func (c Caption) partyBlockLines() []string {
	return []string{
		"________________________________________",
		"                                        )",
		c.Plaintiff + ",",
		"                                        )",
		"               Plaintiff,               )",
		"                                        )",
		"          v.                            )",
		"                                        )",
		c.Defendant + ",",
		"                                        )",
		"               Defendant.               )",
		"________________________________________)",
	}
}

// caseInfoLines renders the right half of the caption, vertically offset
// into the middle of the boxed party column.
func (c Caption) caseInfoLines() []string {
	lines := []string{"", "", "", "", "Case No. " + c.CaseDisplay, "", "", ""}
	if c.JudgeName != "" {
		lines = append(lines, "Judge: "+c.JudgeName)
	}
	return lines
}
