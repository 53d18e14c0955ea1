package lcvr

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ExtractionPatterns holds the ordered regex and keyword tables used by the
// metadata and content extractors. Order is significant everywhere: patterns
// are tried in declaration order and the first match wins.
type ExtractionPatterns struct {
	// CaseNumber is the strict LCvR 5.1(b) case-number format.
	CaseNumber string `yaml:"case_number" json:"case_number"`

	// TitlePatterns identify the document title within the first page.
	TitlePatterns []string `yaml:"title_patterns" json:"title_patterns"`

	// CaptionCaseNumbers match looser case-number spellings found in
	// uploaded drafts ("Case No. 1:24-cv-00123", "Civil Action No. 24-123").
	CaptionCaseNumbers []string `yaml:"caption_case_numbers" json:"caption_case_numbers"`

	// PartyPatterns extract plaintiff and defendant from "X v. Y" captions.
	PartyPatterns []string `yaml:"party_patterns" json:"party_patterns"`

	// JudgePatterns extract the presiding judge's name.
	JudgePatterns []string `yaml:"judge_patterns" json:"judge_patterns"`

	// TitleKeywords qualify a heading as a document title.
	TitleKeywords []string `yaml:"title_keywords" json:"title_keywords"`

	// CaptionIndicators mark text that belongs to the caption block rather
	// than the body.
	CaptionIndicators []string `yaml:"caption_indicators" json:"caption_indicators"`

	// Sections maps body sections to their trigger phrases, in scan order.
	Sections []SectionRule `yaml:"sections" json:"sections"`

	compiled *compiledPatterns
}

// SectionRule names one body section and the heading phrases that open it.
type SectionRule struct {
	Key      string   `yaml:"key" json:"key"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

type compiledPatterns struct {
	caseNumber         *regexp.Regexp
	titlePatterns      []*regexp.Regexp
	captionCaseNumbers []*regexp.Regexp
	partyPatterns      []*regexp.Regexp
	judgePatterns      []*regexp.Regexp
}

// DefaultExtractionPatterns returns the built-in DC district tables.
func DefaultExtractionPatterns() *ExtractionPatterns {
	return &ExtractionPatterns{
		CaseNumber: CaseNumberPattern,
		TitlePatterns: []string{
			`MOTION\s+TO\s+\w+`,
			`MEMORANDUM\s+IN\s+(?:SUPPORT|OPPOSITION)`,
			`REPLY\s+(?:MEMORANDUM|IN\s+SUPPORT)`,
			`COMPLAINT`,
			`ANSWER`,
			`NOTICE\s+OF\s+APPEAL`,
			`BRIEF\s+(?:OF|IN\s+SUPPORT)`,
		},
		CaptionCaseNumbers: []string{
			`(?i)Case\s*(?:No\.?|Number)[:\s]*(\d+[:\-]\d+-cv-\d+(?:-[A-Z]+)?)`,
			`(?i)(\d+[:\-]\d+-cv-\d+(?:-[A-Z]+)?)`,
			`(?i)Civil\s*(?:Action|Case)\s*(?:No\.?)?[:\s]*(\d+[\-:]\d+)`,
		},
		PartyPatterns: []string{
			`(?is)([A-Z][A-Za-z\s,\.]+?)\s*,?\s*(?:Plaintiff|Petitioner).*?v\.?\s*([A-Z][A-Za-z\s,\.]+?)\s*,?\s*(?:Defendant|Respondent)`,
			`(?is)([A-Z][A-Z\s,\.]+)\s+v\.?\s+([A-Z][A-Z\s,\.]+)`,
		},
		JudgePatterns: []string{
			`(?i)(?:Judge|Hon\.?|Honorable)[:\s]+([A-Z][a-z]+(?:\s+[A-Z]\.?)?\s+[A-Z][a-z]+)`,
			`(?i)before\s+(?:the\s+)?(?:Hon\.?|Honorable)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`,
		},
		TitleKeywords: []string{
			"motion", "opposition", "reply", "memorandum", "complaint", "answer", "brief",
		},
		CaptionIndicators: []string{
			"UNITED STATES DISTRICT COURT",
			"DISTRICT OF COLUMBIA",
			"Plaintiff,",
			"Defendant,",
			"Case No.",
			"Civil Action",
			"_____",
		},
		Sections: []SectionRule{
			{Key: "introduction", Keywords: []string{
				"introduction", "preliminary statement", "nature of the case",
				"comes now", "respectfully submits", "respectfully moves",
			}},
			{Key: "facts", Keywords: []string{
				"factual background", "statement of facts", "facts",
				"background", "statement of the case", "procedural history",
			}},
			{Key: "legal_standard", Keywords: []string{
				"legal standard", "standard of review", "applicable law",
				"governing law", "legal framework",
			}},
			{Key: "argument", Keywords: []string{
				"argument", "discussion", "analysis", "reasons",
				"points and authorities",
			}},
			{Key: "conclusion", Keywords: []string{
				"conclusion", "wherefore", "prayer for relief", "relief requested",
				"for the foregoing reasons",
			}},
		},
	}
}

// LoadExtractionPatterns loads pattern tables from a YAML file and compiles
// them.
func LoadExtractionPatterns(path string) (*ExtractionPatterns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading extraction patterns: %w", err)
	}

	var p ExtractionPatterns
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing extraction patterns YAML: %w", err)
	}
	if err := p.Compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the pattern tables to a YAML file loadable with
// LoadExtractionPatterns.
func (p *ExtractionPatterns) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializing extraction patterns: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing extraction patterns %s: %w", path, err)
	}
	return nil
}

// Compile compiles every regex table. Returns an error naming the first
// pattern that fails to compile.
func (p *ExtractionPatterns) Compile() error {
	c := &compiledPatterns{}

	re, err := regexp.Compile(p.CaseNumber)
	if err != nil {
		return fmt.Errorf("compiling case number pattern %q: %w", p.CaseNumber, err)
	}
	c.caseNumber = re

	for i, pat := range p.TitlePatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("compiling title pattern %d %q: %w", i, pat, err)
		}
		c.titlePatterns = append(c.titlePatterns, re)
	}
	for i, pat := range p.CaptionCaseNumbers {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("compiling caption case number pattern %d %q: %w", i, pat, err)
		}
		c.captionCaseNumbers = append(c.captionCaseNumbers, re)
	}
	for i, pat := range p.PartyPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("compiling party pattern %d %q: %w", i, pat, err)
		}
		c.partyPatterns = append(c.partyPatterns, re)
	}
	for i, pat := range p.JudgePatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("compiling judge pattern %d %q: %w", i, pat, err)
		}
		c.judgePatterns = append(c.judgePatterns, re)
	}

	p.compiled = c
	return nil
}

// IsCompiled returns true once Compile has succeeded.
func (p *ExtractionPatterns) IsCompiled() bool {
	return p.compiled != nil
}

func (p *ExtractionPatterns) ensure() *compiledPatterns {
	if p.compiled == nil {
		if err := p.Compile(); err != nil {
			panic(fmt.Sprintf("lcvr: default patterns failed to compile: %v", err))
		}
	}
	return p.compiled
}

// CaseNumberRegexp returns the compiled strict case-number pattern.
func (p *ExtractionPatterns) CaseNumberRegexp() *regexp.Regexp {
	return p.ensure().caseNumber
}

// TitleRegexps returns the compiled title patterns in table order.
func (p *ExtractionPatterns) TitleRegexps() []*regexp.Regexp {
	return p.ensure().titlePatterns
}

// CaptionCaseNumberRegexps returns the compiled loose case-number patterns.
func (p *ExtractionPatterns) CaptionCaseNumberRegexps() []*regexp.Regexp {
	return p.ensure().captionCaseNumbers
}

// PartyRegexps returns the compiled party patterns.
func (p *ExtractionPatterns) PartyRegexps() []*regexp.Regexp {
	return p.ensure().partyPatterns
}

// JudgeRegexps returns the compiled judge patterns.
func (p *ExtractionPatterns) JudgeRegexps() []*regexp.Regexp {
	return p.ensure().judgePatterns
}
