// Package analyze extracts normalized filing metadata from source documents
// for compliance checking. Several backends of differing fidelity implement
// one contract; the richest backend the source supports is selected once,
// and nothing downstream branches on which backend ran.
package analyze

import (
	"errors"
	"fmt"

	"github.com/coolbeans/docket/pkg/types"
)

// ErrNoSource is returned when no source document was supplied.
var ErrNoSource = errors.New("no source document")

// Fidelity ranks analyzer backends by how much metadata they can supply.
type Fidelity int

const (
	// FidelityText backends see only plain text and a page count; font and
	// size fields stay unset.
	FidelityText Fidelity = iota

	// FidelitySpan backends see per-page text spans with font metadata.
	FidelitySpan
)

// Analyzer extracts document metadata from one kind of source. The output
// shape is identical across backends; lower-fidelity backends leave the
// fields they cannot supply at their zero value.
type Analyzer interface {
	// Name identifies the backend in diagnostics.
	Name() string

	// Fidelity ranks the backend for selection.
	Fidelity() Fidelity

	// CanAnalyze reports whether the source carries the structure this
	// backend needs.
	CanAnalyze(doc *types.SourceDocument) bool

	// Analyze extracts metadata. It never returns a partial record: fields
	// the source cannot supply are zero, not errors.
	Analyze(doc *types.SourceDocument) (*types.DocumentMetadata, error)
}

// Analyzers returns the built-in backends, richest first.
func Analyzers() []Analyzer {
	return []Analyzer{NewSpanAnalyzer(), NewTextAnalyzer()}
}

// Best returns the highest-fidelity built-in backend able to analyze the
// source.
func Best(doc *types.SourceDocument) (Analyzer, error) {
	if doc == nil {
		return nil, ErrNoSource
	}
	for _, a := range Analyzers() {
		if a.CanAnalyze(doc) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no analyzer accepts source %q", doc.Name)
}

// Analyze selects the best backend for the source and runs it.
func Analyze(doc *types.SourceDocument) (*types.DocumentMetadata, error) {
	a, err := Best(doc)
	if err != nil {
		return nil, err
	}
	return a.Analyze(doc)
}
