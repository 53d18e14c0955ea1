package types

// ParagraphInfo is one extracted paragraph with its heading classification.
type ParagraphInfo struct {
	Text      string `json:"text"`
	IsHeading bool   `json:"is_heading"`
	Style     string `json:"style"`
}

// ContentRecord is the output of the content extractor: classified
// paragraphs, detected case information, and the body segmented into named
// sections.
type ContentRecord struct {
	Paragraphs []ParagraphInfo `json:"paragraphs"`

	// FullText is the paragraphs joined by blank lines.
	FullText string `json:"full_text"`

	CaseInfo CaseInfo `json:"case_info"`

	// Sections maps section key (introduction, facts, legal_standard,
	// argument, conclusion) to the section's text. Every key is present;
	// undetected sections hold the empty string.
	Sections map[string]string `json:"sections"`

	WordCount      int `json:"word_count"`
	ParagraphCount int `json:"paragraph_count"`
}
