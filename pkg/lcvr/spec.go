// Package lcvr encodes the District of Columbia federal district court local
// civil rule requirements (LCvR 5.1 and LCvR 7) as loadable configuration:
// formatting constants, the document-type table, the judges directory, and the
// regex/keyword tables used for extraction. Defaults are compiled in; each
// table can be replaced from a YAML file per jurisdiction.
package lcvr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CourtName is the caption header mandated by LCvR 5.1(b).
const CourtName = "UNITED STATES DISTRICT COURT\nFOR THE DISTRICT OF COLUMBIA"

// CourtID is the CM/ECF court identifier.
const CourtID = "dcd"

// Page limits per LCvR 7(n)(1).
const (
	MaxPagesMotion = 45
	MaxPagesReply  = 25
)

// CaseNumberPattern matches a DC district civil case number including judge
// initials: 1:YY-cv-NNNNN-ABC.
const CaseNumberPattern = `1:\d{2}-cv-\d{5}-[A-Z]{2,4}`

// FormatSpec holds the formatting constants of LCvR 7(o)(1).
type FormatSpec struct {
	FontName           string  `yaml:"font_name" json:"font_name"`
	FontSizePt         float64 `yaml:"font_size_pt" json:"font_size_pt"`
	LineSpacing        float64 `yaml:"line_spacing" json:"line_spacing"`
	MarginInches       float64 `yaml:"margin_inches" json:"margin_inches"`
	SentenceSpacing    int     `yaml:"sentence_spacing" json:"sentence_spacing"`
	PageNumberPosition string  `yaml:"page_number_position" json:"page_number_position"`

	// Letter paper.
	PageWidthInches  float64 `yaml:"page_width_inches" json:"page_width_inches"`
	PageHeightInches float64 `yaml:"page_height_inches" json:"page_height_inches"`
}

// DefaultFormatSpec returns the LCvR 7 formatting requirements.
func DefaultFormatSpec() *FormatSpec {
	return &FormatSpec{
		FontName:           "Times New Roman",
		FontSizePt:         12,
		LineSpacing:        2.0,
		MarginInches:       1.0,
		SentenceSpacing:    2,
		PageNumberPosition: "bottom_center",
		PageWidthInches:    8.5,
		PageHeightInches:   11,
	}
}

// LoadFormatSpec loads a format spec from a YAML file.
func LoadFormatSpec(path string) (*FormatSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading format spec: %w", err)
	}

	spec := DefaultFormatSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("parsing format spec YAML: %w", err)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Save writes the spec to a YAML file so a modified jurisdiction profile can
// be reloaded with LoadFormatSpec.
func (s *FormatSpec) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializing format spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing format spec %s: %w", path, err)
	}
	return nil
}

// Validate checks that the spec has workable values.
func (s *FormatSpec) Validate() error {
	if s.FontName == "" {
		return fmt.Errorf("format spec font_name is required")
	}
	if s.FontSizePt <= 0 {
		return fmt.Errorf("format spec font_size_pt must be positive, got %v", s.FontSizePt)
	}
	if s.MarginInches < 0 {
		return fmt.Errorf("format spec margin_inches must not be negative, got %v", s.MarginInches)
	}
	if s.PageWidthInches <= 0 || s.PageHeightInches <= 0 {
		return fmt.Errorf("format spec page dimensions must be positive")
	}
	return nil
}
