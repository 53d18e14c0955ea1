package builder

import (
	"fmt"
	"strings"
)

const twipsPerInch = 1440

// EncodeRTF renders the document as RTF: an editable rich-document format
// that word processors paginate themselves. Page numbers go in the footer as
// a live PAGE field so they stay correct under re-pagination.
func EncodeRTF(doc *Document) []byte {
	spec := doc.Spec
	var sb strings.Builder

	fs := int(spec.FontSizePt * 2)
	sl := int(240 * spec.LineSpacing)
	margin := int(spec.MarginInches * twipsPerInch)

	sb.WriteString(`{\rtf1\ansi\deff0`)
	sb.WriteString(`{\fonttbl{\f0\froman ` + spec.FontName + `;}{\f1\fmodern Courier New;}}`)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `\paperw%d\paperh%d\margl%d\margr%d\margt%d\margb%d`,
		int(spec.PageWidthInches*twipsPerInch), int(spec.PageHeightInches*twipsPerInch),
		margin, margin, margin, margin)
	sb.WriteString("\n")

	// Bottom-center page number.
	fmt.Fprintf(&sb, `{\footer\pard\qc\plain\f0\fs%d {\field{\*\fldinst PAGE}}\par}`, fs)
	sb.WriteString("\n")

	for _, blk := range doc.Blocks {
		switch v := blk.(type) {
		case Paragraph:
			writeRTFParagraph(&sb, v, fs, sl)
		case PageBreak:
			sb.WriteString(`\pard\page\par` + "\n")
		case Caption:
			writeRTFTable(&sb, v.partyBlockLines(), v.caseInfoLines(),
				int(3.5*twipsPerInch), int(2.5*twipsPerInch), fs)
		case Signature:
			half := int((spec.PageWidthInches - 2*spec.MarginInches) * twipsPerInch / 2)
			writeRTFTable(&sb, []string{v.Dated}, v.Lines, half, half, fs)
		}
	}

	sb.WriteString("}\n")
	return []byte(sb.String())
}

func writeRTFParagraph(sb *strings.Builder, p Paragraph, fs, sl int) {
	sb.WriteString(`\pard`)
	switch p.Align {
	case AlignCenter:
		sb.WriteString(`\qc`)
	case AlignRight:
		sb.WriteString(`\qr`)
	case AlignJustify:
		sb.WriteString(`\qj`)
	default:
		sb.WriteString(`\ql`)
	}
	if p.Spacing == SpacingDouble {
		fmt.Fprintf(sb, `\sl%d\slmult1`, sl)
	}
	if p.FirstLineIndent {
		sb.WriteString(`\fi720`)
	}
	fmt.Fprintf(sb, `\plain\f0\fs%d `, fs)
	if p.Bold {
		sb.WriteString(`\b `)
	}
	sb.WriteString(escapeRTF(p.Text))
	sb.WriteString(`\par` + "\n")
}

// writeRTFTable emits a one-row two-column table, single spaced. The caption
// and signature block both use this layout.
func writeRTFTable(sb *strings.Builder, left, right []string, leftWidth, rightWidth, fs int) {
	fmt.Fprintf(sb, `\trowd\trgaph108\cellx%d\cellx%d`, leftWidth, leftWidth+rightWidth)
	sb.WriteString("\n")
	for _, lines := range [][]string{left, right} {
		fmt.Fprintf(sb, `\pard\intbl\ql\plain\f0\fs%d `, fs)
		for i, line := range lines {
			if i > 0 {
				sb.WriteString(`\line `)
			}
			sb.WriteString(escapeRTF(line))
		}
		sb.WriteString(`\cell`)
		sb.WriteString("\n")
	}
	sb.WriteString(`\row` + "\n")
}

// escapeRTF escapes control characters and encodes non-ASCII runes as
// unicode control words. Newlines become in-paragraph line breaks.
func escapeRTF(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '{':
			sb.WriteString(`\{`)
		case r == '}':
			sb.WriteString(`\}`)
		case r == '\n':
			sb.WriteString(`\line `)
		case r < 0x80:
			sb.WriteRune(r)
		default:
			fmt.Fprintf(&sb, `\u%d?`, int16(r))
		}
	}
	return sb.String()
}
