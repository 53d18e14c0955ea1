package lcvr

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MotionTypePlaceholder is the substitution token used by opposition and
// reply title templates.
const MotionTypePlaceholder = "{motion_type}"

// DocumentType describes one filing type accepted by the court.
type DocumentType struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title" json:"title"`

	// MaxPages is the LCvR 7(n) limit; zero means no page limit applies.
	MaxPages int `yaml:"max_pages,omitempty" json:"max_pages,omitempty"`

	Category string `yaml:"category" json:"category"`
}

// HasPageLimit reports whether the type carries a page limit.
func (dt *DocumentType) HasPageLimit() bool {
	return dt.MaxPages > 0
}

// ResolveTitle expands the title template. motionType replaces the
// {motion_type} placeholder for oppositions and replies; customTitle, when
// non-empty, overrides the template entirely and is upper-cased.
func (dt *DocumentType) ResolveTitle(motionType, customTitle string) string {
	if customTitle != "" {
		return strings.ToUpper(customTitle)
	}
	title := dt.Title
	if strings.Contains(title, MotionTypePlaceholder) {
		if motionType == "" {
			motionType = "DEFENDANT'S MOTION TO DISMISS"
		}
		title = strings.ReplaceAll(title, MotionTypePlaceholder, motionType)
	}
	return title
}

// DocumentTypeSet is the table of filing types, in declaration order.
type DocumentTypeSet struct {
	Types []DocumentType `yaml:"document_types" json:"document_types"`

	byID map[string]*DocumentType
}

// DefaultDocumentTypes returns the built-in DC district filing-type table.
func DefaultDocumentTypes() *DocumentTypeSet {
	set := &DocumentTypeSet{Types: []DocumentType{
		{ID: "motion_to_dismiss", Name: "Motion to Dismiss", Title: "MOTION TO DISMISS", MaxPages: 45, Category: "motion"},
		{ID: "motion_summary_judgment", Name: "Motion for Summary Judgment", Title: "MOTION FOR SUMMARY JUDGMENT", MaxPages: 45, Category: "motion"},
		{ID: "motion_to_compel", Name: "Motion to Compel", Title: "MOTION TO COMPEL", MaxPages: 45, Category: "motion"},
		{ID: "motion_preliminary_injunction", Name: "Motion for Preliminary Injunction", Title: "MOTION FOR PRELIMINARY INJUNCTION", MaxPages: 45, Category: "motion"},
		{ID: "motion_tro", Name: "Motion for Temporary Restraining Order", Title: "MOTION FOR TEMPORARY RESTRAINING ORDER", MaxPages: 45, Category: "motion"},
		{ID: "motion_leave_amend", Name: "Motion for Leave to Amend", Title: "MOTION FOR LEAVE TO AMEND", MaxPages: 45, Category: "motion"},
		{ID: "motion_extend_time", Name: "Motion to Extend Time", Title: "MOTION TO EXTEND TIME", MaxPages: 45, Category: "motion"},
		{ID: "opposition", Name: "Opposition", Title: "OPPOSITION TO {motion_type}", MaxPages: 45, Category: "opposition"},
		{ID: "reply", Name: "Reply", Title: "REPLY IN SUPPORT OF {motion_type}", MaxPages: 25, Category: "reply"},
		{ID: "complaint", Name: "Complaint", Title: "COMPLAINT", Category: "pleading"},
		{ID: "answer", Name: "Answer", Title: "ANSWER TO COMPLAINT", Category: "pleading"},
		{ID: "notice_of_appeal", Name: "Notice of Appeal", Title: "NOTICE OF APPEAL", Category: "notice"},
	}}
	set.index()
	return set
}

// LoadDocumentTypes loads a document-type table from a YAML file.
func LoadDocumentTypes(path string) (*DocumentTypeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document types: %w", err)
	}

	var set DocumentTypeSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing document types YAML: %w", err)
	}
	if len(set.Types) == 0 {
		return nil, fmt.Errorf("document type table %s is empty", path)
	}
	for i := range set.Types {
		if set.Types[i].ID == "" {
			return nil, fmt.Errorf("document type %d has no id", i)
		}
	}
	set.index()
	return &set, nil
}

// Save writes the table to a YAML file loadable with LoadDocumentTypes.
func (s *DocumentTypeSet) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializing document types: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing document types %s: %w", path, err)
	}
	return nil
}

func (s *DocumentTypeSet) index() {
	s.byID = make(map[string]*DocumentType, len(s.Types))
	for i := range s.Types {
		s.byID[s.Types[i].ID] = &s.Types[i]
	}
}

// Get returns the document type with the given ID.
func (s *DocumentTypeSet) Get(id string) (*DocumentType, bool) {
	if s.byID == nil {
		s.index()
	}
	dt, ok := s.byID[id]
	return dt, ok
}

// List returns all document types in table order.
func (s *DocumentTypeSet) List() []DocumentType {
	out := make([]DocumentType, len(s.Types))
	copy(out, s.Types)
	return out
}

// InferDocumentType guesses the filing category from an extracted title.
// Defaults to "motion" when the title is empty or unrecognized.
func InferDocumentType(title string) string {
	upper := strings.ToUpper(title)
	switch {
	case strings.Contains(upper, "REPLY"):
		return "reply"
	case strings.Contains(upper, "OPPOSITION"):
		return "opposition"
	default:
		return "motion"
	}
}
