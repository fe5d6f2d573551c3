package model

import "time"

// ExtractionSource records which path produced a context patch.
type ExtractionSource string

const (
	ExtractionSourceAI        ExtractionSource = "ai"
	ExtractionSourceHeuristic ExtractionSource = "heuristic"
)

// ExtractionRecord is an audit entry for one extraction pass over a user
// response. Kept per session for debugging wrong-extraction complaints.
type ExtractionRecord struct {
	QuestionID string              `json:"question_id"`
	Response   string              `json:"response"`
	Patch      ConversationContext `json:"patch"`
	Source     ExtractionSource    `json:"source"`
	Confidence float64             `json:"confidence"`
	At         time.Time           `json:"at"`
}

// Session holds all mutable state for one questionnaire session. Sessions
// are created empty, mutated one user turn at a time, and reset only on an
// explicit start-over.
type Session struct {
	ID             string                        `json:"id"`
	AnsweredIDs    map[string]bool               `json:"answered_ids"`
	SectionAnswers map[SectionID]map[string]bool `json:"section_answers"`
	CurrentSection SectionID                     `json:"current_section"`
	// PendingQuestionID is the question most recently asked and not yet
	// answered, so the next user response can be attributed to it.
	PendingQuestionID string              `json:"pending_question_id,omitempty"`
	Context           ConversationContext `json:"context"`
	Extractions       []ExtractionRecord  `json:"extractions,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// NewSession returns an empty session positioned at the given section.
func NewSession(id string, start SectionID) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:             id,
		AnsweredIDs:    make(map[string]bool),
		SectionAnswers: make(map[SectionID]map[string]bool),
		CurrentSection: start,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Answered reports whether the question ID has been answered this session.
func (s *Session) Answered(id string) bool {
	return s.AnsweredIDs[id]
}

// AnsweredInSection returns how many questions have been answered within
// the given section.
func (s *Session) AnsweredInSection(id SectionID) int {
	return len(s.SectionAnswers[id])
}

// RecordAnswer adds the question ID to the global and per-section answered
// sets. Answering the same question twice is a no-op for the counts.
func (s *Session) RecordAnswer(q *Question) {
	s.AnsweredIDs[q.ID] = true
	if s.SectionAnswers[q.Section] == nil {
		s.SectionAnswers[q.Section] = make(map[string]bool)
	}
	s.SectionAnswers[q.Section][q.ID] = true
	s.UpdatedAt = time.Now().UTC()
}

// ProgressMetrics is derived state, recomputed on every call; it is never
// stored.
type ProgressMetrics struct {
	OverallProgress          float64               `json:"overall_progress"`
	SectionProgress          map[SectionID]float64 `json:"section_progress"`
	QuestionsAnswered        int                   `json:"questions_answered"`
	TotalQuestions           int                   `json:"total_questions"`
	CanGenerateReport        bool                  `json:"can_generate_report"`
	RequiredSectionsComplete bool                  `json:"required_sections_complete"`
	EstimatedMinutesLeft     int                   `json:"estimated_minutes_left"`
}
