package questionbank

import (
	"github.com/rotisserie/eris"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// Validate checks the structural invariants of a question bank. The compiled
// bank is validated in tests; override banks are validated at load time.
func Validate(b *model.QuestionBank) error {
	if len(b.Sections) == 0 {
		return eris.New("questionbank: bank has no sections")
	}

	weightSum := 0
	seenSections := make(map[model.SectionID]bool)
	seenIDs := make(map[string]bool)

	for _, s := range b.Sections {
		if seenSections[s.ID] {
			return eris.Errorf("questionbank: duplicate section %s", s.ID)
		}
		seenSections[s.ID] = true
		weightSum += s.Weight

		if len(s.Questions) == 0 {
			return eris.Errorf("questionbank: section %s has no questions", s.ID)
		}
		if s.CompletionCriteria.MinimumQuestions > len(s.Questions) {
			return eris.Errorf("questionbank: section %s requires %d answers but has %d questions",
				s.ID, s.CompletionCriteria.MinimumQuestions, len(s.Questions))
		}

		sectionTags := make(map[string]bool)
		for _, q := range s.Questions {
			if seenIDs[q.ID] {
				return eris.Errorf("questionbank: duplicate question %s", q.ID)
			}
			seenIDs[q.ID] = true
			if q.Section != s.ID {
				return eris.Errorf("questionbank: question %s claims section %s but sits in %s",
					q.ID, q.Section, s.ID)
			}
			if q.Weight <= 0 {
				return eris.Errorf("questionbank: question %s has non-positive weight", q.ID)
			}
			for _, t := range q.Tags {
				sectionTags[t] = true
			}
		}

		// Required topics must be reachable through some question's tags,
		// otherwise the section can never complete.
		for _, topic := range s.CompletionCriteria.RequiredTopics {
			if !sectionTags[topic] {
				return eris.Errorf("questionbank: section %s requires topic %q but no question carries it",
					s.ID, topic)
			}
		}
	}

	if weightSum != 100 {
		return eris.Errorf("questionbank: section weights sum to %d, want 100", weightSum)
	}

	// Dependencies and follow-up triggers must resolve to known questions.
	for _, s := range b.Sections {
		for _, q := range s.Questions {
			for _, dep := range q.Dependencies {
				if !seenIDs[dep] {
					return eris.Errorf("questionbank: question %s depends on unknown question %s", q.ID, dep)
				}
			}
			for _, f := range q.FollowUpTriggers {
				if !seenIDs[f] {
					return eris.Errorf("questionbank: question %s triggers unknown question %s", q.ID, f)
				}
			}
		}
	}

	return nil
}
