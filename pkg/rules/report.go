package rules

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IssueDetail is one failed check in a summary.
type IssueDetail struct {
	Check   string `json:"check"`
	Message string `json:"message"`
}

// Summary aggregates a finding sequence. A filing is compliant when no
// error-severity check failed; warnings never block compliance.
type Summary struct {
	TotalChecks    int           `json:"total_checks"`
	Passed         int           `json:"passed"`
	Errors         int           `json:"errors"`
	Warnings       int           `json:"warnings"`
	IsCompliant    bool          `json:"is_compliant"`
	ErrorDetails   []IssueDetail `json:"error_details"`
	WarningDetails []IssueDetail `json:"warning_details"`
}

// Summarize aggregates findings into a summary.
func Summarize(findings []Finding) Summary {
	s := Summary{
		TotalChecks:    len(findings),
		ErrorDetails:   make([]IssueDetail, 0),
		WarningDetails: make([]IssueDetail, 0),
	}

	for _, f := range findings {
		if f.Passed {
			s.Passed++
			continue
		}
		switch f.Severity {
		case SeverityError:
			s.Errors++
			s.ErrorDetails = append(s.ErrorDetails, IssueDetail{Check: f.CheckID, Message: f.Message})
		case SeverityWarning:
			s.Warnings++
			s.WarningDetails = append(s.WarningDetails, IssueDetail{Check: f.CheckID, Message: f.Message})
		}
	}

	s.IsCompliant = s.Errors == 0
	return s
}

// Report packages findings with their summary for rendering.
type Report struct {
	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`
}

// NewReport builds a report from a finding sequence.
func NewReport(findings []Finding) *Report {
	return &Report{Findings: findings, Summary: Summarize(findings)}
}

// ToJSON serializes the report with indentation.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// String renders the plain-text validation report.
func (r *Report) String() string {
	var sb strings.Builder

	rule := strings.Repeat("=", 60)
	sb.WriteString(rule + "\n")
	sb.WriteString("DC FEDERAL DISTRICT COURT FORMAT VALIDATION REPORT\n")
	sb.WriteString(rule + "\n\n")

	if r.Summary.IsCompliant {
		sb.WriteString("[PASS] Document meets DC District Court formatting requirements\n\n")
	} else {
		sb.WriteString("[FAIL] Document has formatting issues that must be corrected\n\n")
	}

	sb.WriteString(fmt.Sprintf("Total Checks: %d\n", r.Summary.TotalChecks))
	sb.WriteString(fmt.Sprintf("Passed: %d\n", r.Summary.Passed))
	sb.WriteString(fmt.Sprintf("Errors: %d\n", r.Summary.Errors))
	sb.WriteString(fmt.Sprintf("Warnings: %d\n", r.Summary.Warnings))

	if r.Summary.Errors > 0 {
		sb.WriteString("\n--- ERRORS (Must Fix) ---\n")
		for _, e := range r.Summary.ErrorDetails {
			sb.WriteString(fmt.Sprintf("  - %s\n", e.Message))
		}
	}

	if r.Summary.Warnings > 0 {
		sb.WriteString("\n--- WARNINGS (Review) ---\n")
		for _, w := range r.Summary.WarningDetails {
			sb.WriteString(fmt.Sprintf("  - %s\n", w.Message))
		}
	}

	sb.WriteString("\n" + rule + "\n")
	return sb.String()
}

// ToMarkdown renders the report for PR comments and docs.
func (r *Report) ToMarkdown() string {
	var sb strings.Builder

	badge := ":white_check_mark:"
	verdict := "compliant"
	if !r.Summary.IsCompliant {
		badge = ":x:"
		verdict = "non-compliant"
	}
	sb.WriteString(fmt.Sprintf("# Format Validation Report %s\n\n", badge))
	sb.WriteString(fmt.Sprintf("Document is **%s** with DC District Court formatting requirements.\n\n", verdict))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Checks | %d |\n", r.Summary.TotalChecks))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", r.Summary.Passed))
	sb.WriteString(fmt.Sprintf("| Errors | %d |\n", r.Summary.Errors))
	sb.WriteString(fmt.Sprintf("| Warnings | %d |\n\n", r.Summary.Warnings))

	sb.WriteString("## Checks\n\n")
	sb.WriteString("| Check | Result | Rule | Message |\n")
	sb.WriteString("|-------|--------|------|--------|\n")
	for _, f := range r.Findings {
		result := "PASS"
		if !f.Passed {
			result = strings.ToUpper(string(f.Severity))
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			f.CheckID, result, f.RuleReference, f.Message))
	}
	sb.WriteString("\n")

	if r.Summary.Errors > 0 {
		sb.WriteString("## Errors (Must Fix)\n\n")
		for _, e := range r.Summary.ErrorDetails {
			sb.WriteString(fmt.Sprintf("- %s\n", e.Message))
		}
		sb.WriteString("\n")
	}
	if r.Summary.Warnings > 0 {
		sb.WriteString("## Warnings (Review)\n\n")
		for _, w := range r.Summary.WarningDetails {
			sb.WriteString(fmt.Sprintf("- %s\n", w.Message))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
