package selection

import (
	"math"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// Progress recomputes all derived progress metrics for a session. The
// computation is pure: calling it repeatedly without intervening answers
// yields identical output.
func (s *Service) Progress(sess *model.Session) model.ProgressMetrics {
	metrics := model.ProgressMetrics{
		SectionProgress: make(map[model.SectionID]float64, len(s.bank.Sections)),
		TotalQuestions:  s.bank.TotalQuestions,
	}

	var overall float64
	requiredComplete := true

	for i := range s.bank.Sections {
		sec := &s.bank.Sections[i]
		answered := sess.AnsweredInSection(sec.ID)
		metrics.QuestionsAnswered += answered

		pct := math.Min(100, float64(answered)/float64(len(sec.Questions))*100)
		metrics.SectionProgress[sec.ID] = pct
		overall += pct * float64(sec.Weight) / 100

		if sec.Required && !s.sectionComplete(sec, sess) {
			requiredComplete = false
		}
	}

	metrics.OverallProgress = overall
	metrics.RequiredSectionsComplete = requiredComplete
	metrics.CanGenerateReport = s.isComplete(model.ProgressMetrics{
		OverallProgress:          overall,
		RequiredSectionsComplete: requiredComplete,
		QuestionsAnswered:        metrics.QuestionsAnswered,
	})

	remaining := s.bank.TotalQuestions - metrics.QuestionsAnswered
	if remaining < 0 {
		remaining = 0
	}
	metrics.EstimatedMinutesLeft = int(math.Ceil(float64(remaining) * minutesPerQuestion))

	return metrics
}

// sectionComplete applies the three-part section criteria: the minimum
// answer count is met, every required topic appears among the answered
// questions' tags, and, when the section contains any required question,
// at least one required question was answered.
func (s *Service) sectionComplete(sec *model.Section, sess *model.Session) bool {
	answers := sess.SectionAnswers[sec.ID]
	if len(answers) < sec.CompletionCriteria.MinimumQuestions {
		return false
	}

	answeredTags := make(map[string]bool)
	answeredRequired := false
	hasRequired := false
	for i := range sec.Questions {
		q := &sec.Questions[i]
		if q.Required {
			hasRequired = true
		}
		if !answers[q.ID] {
			continue
		}
		if q.Required {
			answeredRequired = true
		}
		for _, t := range q.Tags {
			answeredTags[t] = true
		}
	}

	for _, topic := range sec.CompletionCriteria.RequiredTopics {
		if !answeredTags[topic] {
			return false
		}
	}
	if hasRequired && !answeredRequired {
		return false
	}
	return true
}
