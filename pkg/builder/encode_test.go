package builder

import (
	"bytes"
	"strings"
	"testing"
)

func builtDraft(t *testing.T) *Document {
	t.Helper()
	doc, err := testBuilder().Build(draftRequest())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return doc
}

func TestEncodeRTFStructure(t *testing.T) {
	out := string(EncodeRTF(builtDraft(t)))

	for _, want := range []string{
		`{\rtf1\ansi\deff0`,
		`{\fonttbl{\f0\froman Times New Roman;}{\f1\fmodern Courier New;}}`,
		`\paperw12240\paperh15840`,
		`\margl1440\margr1440\margt1440\margb1440`,
		`{\field{\*\fldinst PAGE}}`,
		`\sl480\slmult1`,
		"UNITED STATES DISTRICT COURT",
		"MOTION TO DISMISS",
		"CERTIFICATE OF SERVICE",
		`\pard\page\par`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RTF output missing %q", want)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Error("RTF output must close the root group")
	}
}

func TestEncodeRTFCaptionTable(t *testing.T) {
	out := string(EncodeRTF(builtDraft(t)))

	if !strings.Contains(out, `\trowd\trgaph108\cellx5040\cellx8640`) {
		t.Error("Missing caption table row with 3.5in/2.5in columns")
	}
	for _, want := range []string{
		"JANE ROE,", "ACME CORP,", "Case No. 1:24-cv-00123-ABC", "Judge: Tanya S. Chutkan",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RTF caption missing %q", want)
		}
	}
}

func TestEncodeRTFSignatureTable(t *testing.T) {
	out := string(EncodeRTF(builtDraft(t)))

	for _, want := range []string{
		"Dated: January 15, 2024",
		`Respectfully submitted,\line `,
		"/s/ John Smith",
		"DC Bar No. 123456",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RTF signature missing %q", want)
		}
	}
}

func TestEscapeRTF(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Motion to Dismiss", "Motion to Dismiss"},
		{"braces", "{a}", `\{a\}`},
		{"backslash", `a\b`, `a\\b`},
		{"newline", "a\nb", `a\line b`},
		{"section sign", "§ 1983", `\u167? 1983`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := escapeRTF(tc.in); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEncodePDFStructure(t *testing.T) {
	out := EncodePDF(builtDraft(t))

	if !bytes.HasPrefix(out, []byte("%PDF-1.4")) {
		t.Fatalf("Missing PDF header, got %q", out[:12])
	}
	for _, want := range []string{
		"/Type /Catalog",
		"/Type /Pages",
		"/BaseFont /Times-Roman",
		"/BaseFont /Times-Bold",
		"/BaseFont /Courier",
		"xref",
		"trailer",
		"%%EOF",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("PDF output missing %q", want)
		}
	}
}

func TestEncodePDFContent(t *testing.T) {
	out := string(EncodePDF(builtDraft(t)))

	for _, want := range []string{
		"UNITED STATES DISTRICT COURT",
		"MOTION TO DISMISS",
		"Case No. 1:24-cv-00123-ABC",
		"CERTIFICATE OF SERVICE",
		"/F3 10", // caption rendered in Courier
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PDF output missing %q", want)
		}
	}
}

func TestEncodePDFPageNumbers(t *testing.T) {
	out := string(EncodePDF(builtDraft(t)))

	// The certificate's page break guarantees at least two pages.
	if !strings.Contains(out, "(1) Tj") {
		t.Error("Missing page number 1")
	}
	if !strings.Contains(out, "(2) Tj") {
		t.Error("Missing page number 2")
	}
}

func TestEscapePDF(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Rule 12", "Rule 12"},
		{"parens", "12(b)(6)", `12\(b\)\(6\)`},
		{"backslash", `a\b`, `a\\b`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := escapePDF(tc.in); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestWrapGreedy(t *testing.T) {
	// 12pt body: estimated 6pt per char, so 60 chars fit in 360pt.
	text := strings.Repeat("word ", 20) // 100 chars
	lines := wrap(text, 360, bodySize, false)
	if len(lines) < 2 {
		t.Fatalf("Expected wrapped lines, got %d", len(lines))
	}
	for i, line := range lines {
		if estWidth(line, bodySize) > 360 {
			t.Errorf("Line %d exceeds width: %q", i, line)
		}
	}
	if got := strings.Join(strings.Fields(strings.Join(lines, " ")), " "); got != strings.TrimSpace(text) {
		t.Errorf("Wrap must preserve the words, got %q", got)
	}
}

func TestWrapIndentNarrowsFirstLine(t *testing.T) {
	text := strings.Repeat("word ", 6)
	plain := wrap(text, 150, bodySize, false)
	indented := wrap(text, 150, bodySize, true)

	if len(indented) < 2 {
		t.Fatalf("Expected the indent to force a wrap, got %d line(s)", len(indented))
	}
	if len(strings.Fields(indented[0])) >= len(strings.Fields(plain[0])) {
		t.Errorf("First line should hold fewer words when indented: %q vs %q", indented[0], plain[0])
	}
}
