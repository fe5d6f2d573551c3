// Package model defines the domain types shared across the assessment engine.
package model

// SectionID identifies one of the seven questionnaire sections.
type SectionID string

const (
	SectionFoundation   SectionID = "business_foundation"
	SectionSystems      SectionID = "current_systems"
	SectionLeadGen      SectionID = "lead_generation"
	SectionMarketing    SectionID = "marketing"
	SectionTransactions SectionID = "transaction_management"
	SectionMarket       SectionID = "market_analysis"
	SectionGoals        SectionID = "goals"
)

// BusinessStructure classifies how an agent's business is organized.
type BusinessStructure string

const (
	StructureSoloAgent      BusinessStructure = "solo_agent"
	StructureTeamLead       BusinessStructure = "team_lead"
	StructureTeamMember     BusinessStructure = "team_member"
	StructureBrokerageOwner BusinessStructure = "brokerage_owner"
)

// Question is a single questionnaire item. Questions are immutable and
// defined at compile time in the question bank.
type Question struct {
	ID       string    `json:"id" yaml:"id"`
	Section  SectionID `json:"section" yaml:"section"`
	Text     string    `json:"text" yaml:"text"`
	Purpose  string    `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	Weight   int       `json:"weight" yaml:"weight"`
	Required bool      `json:"required" yaml:"required"`

	// Tags are topic labels used for context coverage checks and the
	// per-section required-topics completion criteria.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Variations maps a business structure to an alternative phrasing.
	Variations map[BusinessStructure]string `json:"variations,omitempty" yaml:"variations,omitempty"`

	// QuickResponses is an optional finite choice list shown alongside
	// the free-text input.
	QuickResponses []string `json:"quick_responses,omitempty" yaml:"quick_responses,omitempty"`

	// FollowUpTriggers lists question IDs that become relevant after this
	// question is answered. Presence is a sort tiebreaker in selection.
	FollowUpTriggers []string `json:"follow_up_triggers,omitempty" yaml:"follow_up_triggers,omitempty"`

	// Dependencies lists question IDs that must all be answered before
	// this question is eligible.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// TextFor returns the question phrasing for the given business structure,
// falling back to the base text when no variation exists.
func (q Question) TextFor(bs BusinessStructure) string {
	if v, ok := q.Variations[bs]; ok && v != "" {
		return v
	}
	return q.Text
}

// HasTag reports whether the question carries the given topic tag.
func (q Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CompletionCriteria defines when a section counts as complete.
type CompletionCriteria struct {
	MinimumQuestions int      `json:"minimum_questions" yaml:"minimum_questions"`
	RequiredTopics   []string `json:"required_topics,omitempty" yaml:"required_topics,omitempty"`
}

// Section groups questions under a weighted topic area. Section weights
// across the bank sum to 100.
type Section struct {
	ID                 SectionID          `json:"id" yaml:"id"`
	Name               string             `json:"name" yaml:"name"`
	Description        string             `json:"description,omitempty" yaml:"description,omitempty"`
	Weight             int                `json:"weight" yaml:"weight"`
	Required           bool               `json:"required" yaml:"required"`
	Questions          []Question         `json:"questions" yaml:"questions"`
	CompletionCriteria CompletionCriteria `json:"completion_criteria" yaml:"completion_criteria"`
}

// RequiredCount returns the number of required questions in the section.
func (s Section) RequiredCount() int {
	n := 0
	for _, q := range s.Questions {
		if q.Required {
			n++
		}
	}
	return n
}

// QuestionBank is the full ordered catalog of sections and questions.
type QuestionBank struct {
	Sections          []Section `json:"sections" yaml:"sections"`
	TotalQuestions    int       `json:"total_questions" yaml:"-"`
	RequiredQuestions int       `json:"required_questions" yaml:"-"`
}

// Section returns the section with the given ID, or nil.
func (b *QuestionBank) Section(id SectionID) *Section {
	for i := range b.Sections {
		if b.Sections[i].ID == id {
			return &b.Sections[i]
		}
	}
	return nil
}

// Question returns the question with the given ID, or nil.
func (b *QuestionBank) Question(id string) *Question {
	for i := range b.Sections {
		for j := range b.Sections[i].Questions {
			if b.Sections[i].Questions[j].ID == id {
				return &b.Sections[i].Questions[j]
			}
		}
	}
	return nil
}
