// Package selection implements next-question choice and weighted progress
// scoring over a questionnaire session.
package selection

import (
	"sort"

	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// Completion thresholds. The questionnaire is complete when all three hold.
// The absolute answer floor intentionally interacts with the percentage
// threshold; both are preserved from the original calibration.
const (
	completeOverallPct  = 70.0
	completeAnswerFloor = 35
)

// minutesPerQuestion drives the estimated-time-remaining figure.
const minutesPerQuestion = 0.5

// Service selects questions and scores progress for a single session. It
// mutates only the session it is given; all storage is the caller's concern.
type Service struct {
	bank *model.QuestionBank
}

// New creates a selection service over the given bank.
func New(bank *model.QuestionBank) *Service {
	return &Service{bank: bank}
}

// NextResult is the outcome of one NextQuestion call.
type NextResult struct {
	Question   *model.Question
	IsComplete bool
	Progress   model.ProgressMetrics
	// SectionTransition is set when selection moved the session to a new
	// section on this call.
	SectionTransition *model.Section
}

// NextQuestion picks the next question for the session, advancing the
// current-section pointer when the active section is done.
func (s *Service) NextQuestion(sess *model.Session) NextResult {
	progress := s.Progress(sess)
	if s.isComplete(progress) {
		return NextResult{IsComplete: true, Progress: progress}
	}

	target := s.targetSection(sess)
	if target == nil {
		// Topic coverage and dependencies can exhaust every askable
		// question before the completion thresholds are met. An empty
		// bank is terminal either way; a turn must carry a question or
		// the completion flag, never neither.
		zap.L().Info("selection: question bank exhausted",
			zap.String("session", sess.ID),
			zap.Float64("overall_progress", progress.OverallProgress),
		)
		return NextResult{IsComplete: true, Progress: progress}
	}

	var transition *model.Section
	if target.ID != sess.CurrentSection {
		transition = target
		sess.CurrentSection = target.ID
	}

	return NextResult{
		Question:          s.pickFrom(target, sess),
		Progress:          progress,
		SectionTransition: transition,
	}
}

// MarkAnswered records an answer and merges the extracted patch into the
// session context. Last write wins; no validation is applied to the patch.
func (s *Service) MarkAnswered(sess *model.Session, questionID string, patch model.ConversationContext) {
	q := s.bank.Question(questionID)
	if q == nil {
		zap.L().Warn("selection: mark answered for unknown question",
			zap.String("session", sess.ID),
			zap.String("question", questionID),
		)
		return
	}
	sess.RecordAnswer(q)
	sess.Context.Merge(patch)
}

// LoadProgress restores a previously persisted session snapshot: the given
// context is merged in and every answered ID is replayed through the bank.
func (s *Service) LoadProgress(sess *model.Session, ctx model.ConversationContext, answeredIDs []string) {
	sess.Context.Merge(ctx)
	for _, id := range answeredIDs {
		if q := s.bank.Question(id); q != nil {
			sess.RecordAnswer(q)
		}
	}
}

// isComplete applies the three-part completion predicate.
func (s *Service) isComplete(p model.ProgressMetrics) bool {
	return p.OverallProgress >= completeOverallPct &&
		p.RequiredSectionsComplete &&
		p.QuestionsAnswered >= completeAnswerFloor
}

// targetSection decides which section the next question should come from:
// stay in the current section until it reaches its minimum, then the first
// incomplete required section in declared order, then the first incomplete
// optional section. Returns nil when every section is exhausted.
func (s *Service) targetSection(sess *model.Session) *model.Section {
	if cur := s.bank.Section(sess.CurrentSection); cur != nil {
		if sess.AnsweredInSection(cur.ID) < cur.CompletionCriteria.MinimumQuestions && s.hasCandidate(cur, sess) {
			return cur
		}
	}
	for _, required := range []bool{true, false} {
		for i := range s.bank.Sections {
			sec := &s.bank.Sections[i]
			if sec.Required != required {
				continue
			}
			if s.sectionComplete(sec, sess) {
				continue
			}
			if s.hasCandidate(sec, sess) {
				return sec
			}
		}
	}
	return nil
}

// pickFrom filters and orders a section's questions, returning the best
// remaining candidate or nil when the section is exhausted.
func (s *Service) pickFrom(sec *model.Section, sess *model.Session) *model.Question {
	candidates := s.candidates(sec, sess)
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Required != b.Required {
			return a.Required
		}
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		return len(a.FollowUpTriggers) > 0 && len(b.FollowUpTriggers) == 0
	})
	return candidates[0]
}

// candidates returns the askable questions of a section: not yet answered,
// topic not already covered by context, and all dependencies satisfied.
func (s *Service) candidates(sec *model.Section, sess *model.Session) []*model.Question {
	var out []*model.Question
	for i := range sec.Questions {
		q := &sec.Questions[i]
		if sess.Answered(q.ID) {
			continue
		}
		if s.topicCovered(q, sess) {
			continue
		}
		if !s.dependenciesMet(q, sess) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// topicCovered applies the topic-coverage shortcut: any tag mapping to a
// populated context field counts the question as already answered in
// substance, even when its exact wording never ran.
func (s *Service) topicCovered(q *model.Question, sess *model.Session) bool {
	for _, tag := range q.Tags {
		if sess.Context.TopicCovered(tag) {
			return true
		}
	}
	return false
}

func (s *Service) dependenciesMet(q *model.Question, sess *model.Session) bool {
	for _, dep := range q.Dependencies {
		if !sess.Answered(dep) {
			return false
		}
	}
	return true
}

func (s *Service) hasCandidate(sec *model.Section, sess *model.Session) bool {
	return len(s.candidates(sec, sess)) > 0
}
