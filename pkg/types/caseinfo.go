package types

// CaseInfo identifies the case a filing belongs to. All fields are optional;
// the document builder substitutes placeholders for anything missing.
type CaseInfo struct {
	CaseNumber       string `json:"case_number,omitempty" yaml:"case_number,omitempty"`
	Plaintiff        string `json:"plaintiff,omitempty" yaml:"plaintiff,omitempty"`
	Defendant        string `json:"defendant,omitempty" yaml:"defendant,omitempty"`
	JudgeName        string `json:"judge_name,omitempty" yaml:"judge_name,omitempty"`
	DocumentTitle    string `json:"document_title,omitempty" yaml:"document_title,omitempty"`
	PartyRepresented string `json:"party_represented,omitempty" yaml:"party_represented,omitempty"`
}

// AttorneyInfo feeds the signature block. Only Name is ever substituted with
// a placeholder; the remaining lines are simply omitted when empty.
type AttorneyInfo struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Firm         string `json:"firm,omitempty" yaml:"firm,omitempty"`
	Address      string `json:"address,omitempty" yaml:"address,omitempty"`
	CityStateZip string `json:"city_state_zip,omitempty" yaml:"city_state_zip,omitempty"`
	Phone        string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	DCBarNumber  string `json:"dc_bar_number,omitempty" yaml:"dc_bar_number,omitempty"`
}
