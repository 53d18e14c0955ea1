// Package types holds the shared data model for filing analysis, content
// extraction, rule validation, and document generation. Records are built
// fresh per invocation and never mutated after construction.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrSourceNotFound is returned by the loaders when the extraction dump does
// not exist on disk.
var ErrSourceNotFound = errors.New("source document not found")

// TextSpan is one run of text with uniform font attributes, as produced by a
// PDF or word-processing text extractor.
type TextSpan struct {
	Text string  `json:"text"`
	Font string  `json:"font,omitempty"`
	Size float64 `json:"size,omitempty"`
	Bold bool    `json:"bold,omitempty"`
}

// Page is one page of an extracted source document.
type Page struct {
	Number int        `json:"number"`
	Text   string     `json:"text"`
	Spans  []TextSpan `json:"spans,omitempty"`
}

// SourceDocument is a document as delivered by an extraction capability.
// Rich sources carry per-page spans with font metadata; degraded sources
// carry only plain text and a page count. The document never owns a file
// handle; callers pass extracted bytes, not paths.
type SourceDocument struct {
	Name      string `json:"name,omitempty"`
	PageCount int    `json:"page_count"`
	Text      string `json:"text,omitempty"`
	Pages     []Page `json:"pages,omitempty"`
}

// HasSpans reports whether any page carries font-attributed spans.
func (d *SourceDocument) HasSpans() bool {
	for i := range d.Pages {
		if len(d.Pages[i].Spans) > 0 {
			return true
		}
	}
	return false
}

// FullText returns the concatenated page text, or the plain text for
// degraded sources. Pages are joined with newlines, matching the way
// extractors accumulate text page by page.
func (d *SourceDocument) FullText() string {
	if len(d.Pages) == 0 {
		return d.Text
	}
	var sb strings.Builder
	for i := range d.Pages {
		sb.WriteString(d.Pages[i].Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// LoadSourceDocument reads an extraction dump (JSON) from disk.
func LoadSourceDocument(path string) (*SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("reading source document: %w", err)
	}

	var doc SourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing source document JSON: %w", err)
	}
	if doc.PageCount == 0 {
		doc.PageCount = len(doc.Pages)
	}
	return &doc, nil
}

// Run is one formatting run within a structural paragraph.
type Run struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// SourceParagraph is one paragraph of a structural (word-processing) source.
type SourceParagraph struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
	Runs  []Run  `json:"runs,omitempty"`
}

// StructuredDocument is a paragraph-level source, e.g. an uploaded draft
// exported from a word processor.
type StructuredDocument struct {
	Name       string            `json:"name,omitempty"`
	Paragraphs []SourceParagraph `json:"paragraphs"`
}

// LoadStructuredDocument reads a paragraph-level extraction dump (JSON).
func LoadStructuredDocument(path string) (*StructuredDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("reading structured document: %w", err)
	}

	var doc StructuredDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing structured document JSON: %w", err)
	}
	return &doc, nil
}
