package questionnaire

import (
	"fmt"
	"strings"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// phrase renders the question text for this session: pick the variation
// matching the agent's business structure, then personalize with their
// name once we know it.
func (s *Service) phrase(q *model.Question, sess *model.Session) string {
	if q == nil {
		return ""
	}
	text := q.Text
	if sess.Context.BusinessStructure != nil {
		text = q.TextFor(*sess.Context.BusinessStructure)
	}
	if sess.Context.AgentName != nil && len(sess.AnsweredIDs) > 0 {
		name := firstName(*sess.Context.AgentName)
		if name != "" && !strings.Contains(text, name) {
			text = fmt.Sprintf("%s, %s", name, lowerFirst(text))
		}
	}
	return text
}

// transitionMessage announces a move into a new section.
func (s *Service) transitionMessage(sec *model.Section, sess *model.Session) string {
	if sec == nil {
		return ""
	}
	msg, ok := sectionIntros[sec.ID]
	if !ok {
		msg = fmt.Sprintf("Let's talk about %s.", strings.ToLower(sec.Name))
	}
	if sess.Context.AgentName != nil {
		if name := firstName(*sess.Context.AgentName); name != "" {
			return fmt.Sprintf("Thanks, %s. %s", name, msg)
		}
	}
	return msg
}

var sectionIntros = map[model.SectionID]string{
	model.SectionFoundation:   "Let's start with the basics of your business.",
	model.SectionSystems:      "Now let's look at the systems and tools running your day to day.",
	model.SectionLeadGen:      "Next up: how leads come in and what happens to them.",
	model.SectionMarketing:    "Let's cover how you market yourself and your listings.",
	model.SectionTransactions: "Now walk me through what happens once a deal goes under contract.",
	model.SectionMarket:       "A few questions about your market and where you compete.",
	model.SectionGoals:        "Last section: where you want to take the business from here.",
}

func firstName(full string) string {
	fields := strings.Fields(strings.TrimSpace(full))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// Leave acronyms and proper nouns alone; only soften a leading
	// sentence-case letter when the second rune is lowercase.
	r := []rune(s)
	if len(r) > 1 && r[1] >= 'a' && r[1] <= 'z' {
		r[0] = []rune(strings.ToLower(string(r[0])))[0]
	}
	return string(r)
}
