package builder

import (
	"bytes"
	"fmt"
	"strings"
)

// Fixed-layout PDF rendering. The encoder lays text out itself: letter
// pages, one-inch margins, greedy line wrap with per-font width estimates,
// and a literal page number drawn bottom-center on every page. Output is an
// uncompressed PDF 1.4 file with base-14 fonts, so it is searchable by
// construction.

const (
	pdfPointsPerInch = 72.0

	fontBody    = "F1" // Times-Roman
	fontBold    = "F2" // Times-Bold
	fontMono    = "F3" // Courier
	bodySize    = 12.0
	monoSize    = 10.0
	doubleLead  = 24.0
	singleLead  = 14.0
	monoLead    = 12.0
	indentWidth = 36.0 // first-line indent, half an inch
	sigIndent   = 216.0
)

// pdfLine is one positioned line of text, ready for a content stream.
type pdfLine struct {
	font string
	size float64
	x, y float64
	text string
}

type pdfLayout struct {
	pageW, pageH float64
	margin       float64

	pages [][]pdfLine
	cur   []pdfLine
	y     float64
}

// EncodePDF renders the document as a fixed-layout PDF.
func EncodePDF(doc *Document) []byte {
	spec := doc.Spec
	l := &pdfLayout{
		pageW:  spec.PageWidthInches * pdfPointsPerInch,
		pageH:  spec.PageHeightInches * pdfPointsPerInch,
		margin: spec.MarginInches * pdfPointsPerInch,
	}
	l.y = l.pageH - l.margin

	for _, blk := range doc.Blocks {
		switch v := blk.(type) {
		case Paragraph:
			l.paragraph(v)
		case PageBreak:
			l.breakPage()
		case Caption:
			l.monoBlock(pdfCaptionLines(v))
		case Signature:
			l.signature(v)
		}
	}
	l.flushPage()

	return writePDF(l)
}

// pdfCaptionLines merges the caption's two halves into one fixed-width
// block, with the case number appended mid-box on the right.
func pdfCaptionLines(c Caption) []string {
	lines := c.partyBlockLines()
	lines[4] += "    Case No. " + c.CaseDisplay
	if c.JudgeName != "" {
		lines[len(lines)-1] += "   Judge: " + c.JudgeName
	}
	return lines
}

func (l *pdfLayout) contentWidth() float64 {
	return l.pageW - 2*l.margin
}

func (l *pdfLayout) breakPage() {
	l.flushPage()
	l.y = l.pageH - l.margin
}

func (l *pdfLayout) flushPage() {
	if len(l.cur) == 0 && len(l.pages) > 0 {
		return
	}
	l.pages = append(l.pages, l.cur)
	l.cur = nil
}

// need starts a new page when fewer than h points remain above the bottom
// margin.
func (l *pdfLayout) need(h float64) {
	if l.y-h < l.margin {
		l.breakPage()
	}
}

func (l *pdfLayout) paragraph(p Paragraph) {
	if strings.TrimSpace(p.Text) == "" {
		l.need(singleLead)
		l.y -= singleLead
		return
	}

	font := fontBody
	if p.Bold {
		font = fontBold
	}
	lead := doubleLead
	if p.Spacing == SpacingSingle {
		lead = singleLead
	}

	first := true
	for _, hard := range strings.Split(p.Text, "\n") {
		for _, line := range wrap(hard, l.contentWidth(), bodySize, p.FirstLineIndent && first) {
			l.need(lead)
			l.y -= lead

			x := l.margin
			lineW := estWidth(line, bodySize)
			switch p.Align {
			case AlignCenter:
				x = l.margin + (l.contentWidth()-lineW)/2
			case AlignRight:
				x = l.pageW - l.margin - lineW
			}
			if p.FirstLineIndent && first {
				x += indentWidth
			}
			l.cur = append(l.cur, pdfLine{font: font, size: bodySize, x: x, y: l.y, text: line})
			first = false
		}
	}
}

func (l *pdfLayout) monoBlock(lines []string) {
	for _, line := range lines {
		l.need(monoLead)
		l.y -= monoLead
		l.cur = append(l.cur, pdfLine{font: fontMono, size: monoSize, x: l.margin, y: l.y, text: line})
	}
	l.y -= monoLead
}

func (l *pdfLayout) signature(s Signature) {
	lines := append([]string{s.Dated, ""}, s.Lines...)
	for _, line := range lines {
		l.need(singleLead)
		l.y -= singleLead
		if line == "" {
			continue
		}
		l.cur = append(l.cur, pdfLine{font: fontBody, size: bodySize, x: l.margin + sigIndent, y: l.y, text: line})
	}
}

// estWidth estimates rendered width without font metric tables. Base-14
// Times averages close to half an em per glyph at body sizes; an exact
// measure is not needed for wrap points or centering a heading.
func estWidth(s string, size float64) float64 {
	return float64(len(s)) * size * 0.5
}

// wrap greedily breaks text at word boundaries to fit the content width.
func wrap(text string, width, size float64, indentFirst bool) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := words[0]
	avail := width
	if indentFirst {
		avail -= indentWidth
	}
	for _, w := range words[1:] {
		if estWidth(cur+" "+w, size) > avail {
			lines = append(lines, cur)
			cur = w
			avail = width
			continue
		}
		cur += " " + w
	}
	return append(lines, cur)
}

// writePDF serializes the laid-out pages: catalog, page tree, three font
// objects, one content stream per page, then the xref table and trailer.
func writePDF(l *pdfLayout) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	buf.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'})

	var offsets []int
	writeObj := func(body string) int {
		offsets = append(offsets, buf.Len())
		num := len(offsets)
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
		return num
	}

	// Object numbers are assigned in write order: catalog, pages, the three
	// fonts, then page/content pairs.
	const (
		catalogNum = 1
		pagesNum   = 2
	)
	nPages := len(l.pages)
	kids := make([]string, nPages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 6+2*i)
	}

	writeObj(fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesNum))
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), nPages))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Times-Roman >>")
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Times-Bold >>")
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>")

	for i, page := range l.pages {
		stream := pageStream(l, page, i+1)
		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %.2f %.2f] /Resources << /Font << /%s 3 0 R /%s 4 0 R /%s 5 0 R >> >> /Contents %d 0 R >>",
			pagesNum, l.pageW, l.pageH, fontBody, fontBold, fontMono, 7+2*i))
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, catalogNum, xrefPos)

	return buf.Bytes()
}

func pageStream(l *pdfLayout, lines []pdfLine, pageNum int) string {
	var sb strings.Builder
	for _, ln := range lines {
		if ln.text == "" {
			continue
		}
		fmt.Fprintf(&sb, "BT /%s %.1f Tf %.2f %.2f Td (%s) Tj ET\n",
			ln.font, ln.size, ln.x, ln.y, escapePDF(ln.text))
	}

	// Bottom-center page number.
	num := fmt.Sprintf("%d", pageNum)
	x := l.pageW/2 - estWidth(num, bodySize)/2
	fmt.Fprintf(&sb, "BT /%s %.1f Tf %.2f %.2f Td (%s) Tj ET\n",
		fontBody, bodySize, x, 0.5*pdfPointsPerInch, num)

	return sb.String()
}

func escapePDF(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
