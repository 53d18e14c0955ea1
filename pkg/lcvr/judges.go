package lcvr

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// JudgeStatus distinguishes active from senior judges.
type JudgeStatus string

const (
	JudgeActive JudgeStatus = "active"
	JudgeSenior JudgeStatus = "senior"
)

// Judge is one entry in the court's judge-initials directory. Case numbers
// carry the assigned judge's initials as their final component.
type Judge struct {
	Initials string      `yaml:"initials" json:"initials"`
	Name     string      `yaml:"name" json:"name"`
	Status   JudgeStatus `yaml:"status" json:"status"`
}

// JudgeDirectory is the roster of district judges, in seniority order.
type JudgeDirectory struct {
	Judges []Judge `yaml:"judges" json:"judges"`
}

// DefaultJudges returns the DC district judge roster.
// Updated January 2025 from dcd.uscourts.gov.
func DefaultJudges() *JudgeDirectory {
	return &JudgeDirectory{Judges: []Judge{
		{Initials: "JEB", Name: "James E. Boasberg (Chief Judge)", Status: JudgeActive},
		{Initials: "RC", Name: "Rudolph Contreras", Status: JudgeActive},
		{Initials: "CRC", Name: "Christopher R. Cooper", Status: JudgeActive},
		{Initials: "TSC", Name: "Tanya S. Chutkan", Status: JudgeActive},
		{Initials: "RDM", Name: "Randolph D. Moss", Status: JudgeActive},
		{Initials: "APM", Name: "Amit P. Mehta", Status: JudgeActive},
		{Initials: "TJK", Name: "Timothy J. Kelly", Status: JudgeActive},
		{Initials: "TNM", Name: "Trevor N. McFadden", Status: JudgeActive},
		{Initials: "DLF", Name: "Dabney L. Friedrich", Status: JudgeActive},
		{Initials: "CJN", Name: "Carl J. Nichols", Status: JudgeActive},
		{Initials: "JMC", Name: "Jia M. Cobb", Status: JudgeActive},
		{Initials: "ACR", Name: "Ana C. Reyes", Status: JudgeActive},
		{Initials: "LLA", Name: "Loren L. AliKhan", Status: JudgeActive},
		{Initials: "AHA", Name: "Amir H. Ali", Status: JudgeActive},
		{Initials: "SLS", Name: "Sparkle L. Sooknanan", Status: JudgeActive},
		{Initials: "RCL", Name: "Royce C. Lamberth (Senior)", Status: JudgeSenior},
		{Initials: "PLF", Name: "Paul L. Friedman (Senior)", Status: JudgeSenior},
		{Initials: "EGS", Name: "Emmet G. Sullivan (Senior)", Status: JudgeSenior},
		{Initials: "RBW", Name: "Reggie B. Walton (Senior)", Status: JudgeSenior},
		{Initials: "JDB", Name: "John D. Bates (Senior)", Status: JudgeSenior},
		{Initials: "RJL", Name: "Richard J. Leon (Senior)", Status: JudgeSenior},
		{Initials: "CKK", Name: "Colleen Kollar-Kotelly (Senior)", Status: JudgeSenior},
		{Initials: "ABJ", Name: "Amy Berman Jackson (Senior)", Status: JudgeSenior},
		{Initials: "BAH", Name: "Beryl A. Howell (Senior)", Status: JudgeSenior},
	}}
}

// LoadJudges loads a judge directory from a YAML file.
func LoadJudges(path string) (*JudgeDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading judge directory: %w", err)
	}

	var dir JudgeDirectory
	if err := yaml.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("parsing judge directory YAML: %w", err)
	}
	if len(dir.Judges) == 0 {
		return nil, fmt.Errorf("judge directory %s is empty", path)
	}
	return &dir, nil
}

// Lookup returns the judge with the given initials (case-insensitive).
func (d *JudgeDirectory) Lookup(initials string) (*Judge, bool) {
	initials = strings.ToUpper(strings.TrimSpace(initials))
	for i := range d.Judges {
		if d.Judges[i].Initials == initials {
			return &d.Judges[i], true
		}
	}
	return nil, false
}

// FromCaseNumber returns the judge whose initials terminate the case number.
func (d *JudgeDirectory) FromCaseNumber(caseNumber string) (*Judge, bool) {
	idx := strings.LastIndex(caseNumber, "-")
	if idx < 0 || idx == len(caseNumber)-1 {
		return nil, false
	}
	return d.Lookup(caseNumber[idx+1:])
}
