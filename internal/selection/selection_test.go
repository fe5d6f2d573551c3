package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/questionbank"
)

func newTestSession() (*Service, *model.Session) {
	bank := questionbank.Bank()
	return New(bank), model.NewSession("test-session", bank.Sections[0].ID)
}

func TestNextQuestion_FirstIsRequiredFoundation(t *testing.T) {
	svc, sess := newTestSession()

	res := svc.NextQuestion(sess)
	require.NotNil(t, res.Question)
	assert.False(t, res.IsComplete)
	assert.Equal(t, model.SectionFoundation, res.Question.Section)
	assert.True(t, res.Question.Required)
	assert.Zero(t, res.Progress.OverallProgress)
}

func TestNextQuestion_NeverRepeatsAnswered(t *testing.T) {
	svc, sess := newTestSession()

	seen := make(map[string]bool)
	for i := 0; i < 60; i++ {
		res := svc.NextQuestion(sess)
		if res.IsComplete || res.Question == nil {
			break
		}
		assert.False(t, seen[res.Question.ID], "question %s repeated", res.Question.ID)
		seen[res.Question.ID] = true
		svc.MarkAnswered(sess, res.Question.ID, model.ConversationContext{})
	}
	assert.NotEmpty(t, seen)
}

func TestNextQuestion_ProgressMonotonic(t *testing.T) {
	svc, sess := newTestSession()

	prev := -1.0
	for i := 0; i < 60; i++ {
		res := svc.NextQuestion(sess)
		require.GreaterOrEqual(t, res.Progress.OverallProgress, prev)
		prev = res.Progress.OverallProgress
		if res.IsComplete || res.Question == nil {
			break
		}
		svc.MarkAnswered(sess, res.Question.ID, model.ConversationContext{})
	}
}

func TestNextQuestion_TopicCoverageSkips(t *testing.T) {
	svc, sess := newTestSession()

	// A context that already knows the agent's experience should keep
	// experience-tagged questions off the table.
	sess.Context.Merge(model.ConversationContext{YearsExperience: model.Ptr(12)})

	for i := 0; i < 60; i++ {
		res := svc.NextQuestion(sess)
		if res.IsComplete || res.Question == nil {
			break
		}
		assert.False(t, res.Question.HasTag("experience"),
			"question %s asks covered topic", res.Question.ID)
		svc.MarkAnswered(sess, res.Question.ID, model.ConversationContext{})
	}
}

func TestNextQuestion_DependenciesGate(t *testing.T) {
	svc, sess := newTestSession()

	for i := 0; i < 60; i++ {
		res := svc.NextQuestion(sess)
		if res.IsComplete || res.Question == nil {
			break
		}
		for _, dep := range res.Question.Dependencies {
			assert.True(t, sess.Answered(dep),
				"question %s asked before dependency %s", res.Question.ID, dep)
		}
		svc.MarkAnswered(sess, res.Question.ID, model.ConversationContext{})
	}
}

func TestNextQuestion_SectionTransitionAnnounced(t *testing.T) {
	svc, sess := newTestSession()

	sawTransition := false
	for i := 0; i < 60; i++ {
		res := svc.NextQuestion(sess)
		if res.IsComplete || res.Question == nil {
			break
		}
		if res.SectionTransition != nil {
			sawTransition = true
			assert.Equal(t, res.SectionTransition.ID, sess.CurrentSection)
		}
		svc.MarkAnswered(sess, res.Question.ID, model.ConversationContext{})
	}
	assert.True(t, sawTransition)
}

func TestNextQuestion_CompletesAfterFullRun(t *testing.T) {
	svc, sess := newTestSession()

	var last NextResult
	for i := 0; i < 60; i++ {
		last = svc.NextQuestion(sess)
		if last.IsComplete || last.Question == nil {
			break
		}
		svc.MarkAnswered(sess, last.Question.ID, model.ConversationContext{})
	}

	assert.True(t, last.IsComplete)
	assert.GreaterOrEqual(t, last.Progress.QuestionsAnswered, completeAnswerFloor)
	assert.GreaterOrEqual(t, last.Progress.OverallProgress, completeOverallPct)
	assert.True(t, last.Progress.RequiredSectionsComplete)
}

func TestNextQuestion_ExhaustedCandidatesTerminate(t *testing.T) {
	svc, sess := newTestSession()

	// Covering every topic up front strips most of the bank, so the
	// candidate pool empties well before the completion thresholds are
	// reachable. The turn must still carry a question or the completion
	// flag, never neither.
	sess.Context.Merge(model.ConversationContext{
		AgentName:            model.Ptr("Sarah"),
		YearsExperience:      model.Ptr(8),
		LastYearGCI:          model.Ptr(180000.0),
		LastYearTransactions: model.Ptr(47),
		AvgSalePrice:         model.Ptr(450000.0),
		BusinessStructure:    model.Ptr(model.StructureSoloAgent),
		TeamSize:             model.Ptr(1),
		MarketArea:           model.Ptr("Austin"),
		MonthlyLeadVolume:    model.Ptr(40),
		LeadResponseTime:     model.Ptr("under_5min"),
		LeadSources:          []string{"referrals"},
		CurrentCRM:           model.Ptr("kvcore"),
		UsesAutomation:       model.Ptr(true),
		BiggestChallenges:    []string{"lead follow-up"},
		HoursPerWeek:         model.Ptr(50),
		AdminHoursPerWeek:    model.Ptr(12),
		TimeSpentOnTasks:     map[string]int{"admin": 12},
		GrowthGoal:           model.Ptr("double volume"),
		GrowthStage:          model.Ptr("scaling"),
		AutomationReadiness:  model.Ptr(80),
	})

	var last NextResult
	for i := 0; i < 60; i++ {
		last = svc.NextQuestion(sess)
		if last.IsComplete {
			break
		}
		require.NotNil(t, last.Question,
			"turn %d carried neither a question nor the completion flag", i)
		svc.MarkAnswered(sess, last.Question.ID, model.ConversationContext{})
	}

	assert.True(t, last.IsComplete)
	assert.Less(t, last.Progress.QuestionsAnswered, completeAnswerFloor)
}

func TestSectionComplete_Criteria(t *testing.T) {
	bank := &model.QuestionBank{
		Sections: []model.Section{{
			ID:       "tooling",
			Name:     "Tooling",
			Weight:   100,
			Required: true,
			Questions: []model.Question{
				{ID: "t1", Section: "tooling", Required: true, Tags: []string{"crm"}},
				{ID: "t2", Section: "tooling", Tags: []string{"automation"}},
				{ID: "t3", Section: "tooling", Tags: []string{"crm", "automation"}},
				{ID: "t4", Section: "tooling", Tags: []string{"crm"}},
			},
			CompletionCriteria: model.CompletionCriteria{
				MinimumQuestions: 2,
				RequiredTopics:   []string{"crm", "automation"},
			},
		}},
		TotalQuestions: 4,
	}
	svc := New(bank)
	sec := &bank.Sections[0]

	tests := []struct {
		name     string
		answered []string
		want     bool
	}{
		{name: "below minimum count", answered: []string{"t1"}, want: false},
		{name: "minimum met but required topic absent", answered: []string{"t1", "t4"}, want: false},
		{name: "topics covered by only optional questions", answered: []string{"t2", "t3"}, want: false},
		{name: "minimum, topics, and a required answer", answered: []string{"t1", "t2"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := model.NewSession("s", sec.ID)
			for _, id := range tt.answered {
				svc.MarkAnswered(sess, id, model.ConversationContext{})
			}
			assert.Equal(t, tt.want, svc.sectionComplete(sec, sess))
			assert.Equal(t, tt.want, svc.Progress(sess).RequiredSectionsComplete)
		})
	}
}

func TestProgress_Idempotent(t *testing.T) {
	svc, sess := newTestSession()

	res := svc.NextQuestion(sess)
	svc.MarkAnswered(sess, res.Question.ID, model.ConversationContext{})

	a := svc.Progress(sess)
	b := svc.Progress(sess)
	assert.Equal(t, a, b)
}

func TestProgress_SectionWeighting(t *testing.T) {
	bank := questionbank.Bank()
	svc := New(bank)
	sess := model.NewSession("s", bank.Sections[0].ID)

	// Answer every question in the foundation section only.
	foundation := bank.Section(model.SectionFoundation)
	for i := range foundation.Questions {
		svc.MarkAnswered(sess, foundation.Questions[i].ID, model.ConversationContext{})
	}

	p := svc.Progress(sess)
	assert.InDelta(t, 100.0, p.SectionProgress[model.SectionFoundation], 0.001)
	// Overall = 100% x foundation weight.
	assert.InDelta(t, float64(foundation.Weight), p.OverallProgress, 0.001)
	assert.False(t, p.CanGenerateReport)
}

func TestProgress_EstimatedMinutes(t *testing.T) {
	svc, sess := newTestSession()

	p := svc.Progress(sess)
	assert.Equal(t, 25, p.EstimatedMinutesLeft) // 50 questions x 0.5 min
}

func TestMarkAnswered_UnknownQuestionIgnored(t *testing.T) {
	svc, sess := newTestSession()

	svc.MarkAnswered(sess, "not-a-question", model.ConversationContext{AgentName: model.Ptr("X")})
	assert.Zero(t, svc.Progress(sess).QuestionsAnswered)
	assert.Nil(t, sess.Context.AgentName)
}

func TestMarkAnswered_MergesPatch(t *testing.T) {
	svc, sess := newTestSession()

	svc.MarkAnswered(sess, "foundation_name", model.ConversationContext{AgentName: model.Ptr("Sarah")})
	svc.MarkAnswered(sess, "foundation_experience", model.ConversationContext{YearsExperience: model.Ptr(8)})

	require.NotNil(t, sess.Context.AgentName)
	assert.Equal(t, "Sarah", *sess.Context.AgentName)
	require.NotNil(t, sess.Context.YearsExperience)
	assert.Equal(t, 8, *sess.Context.YearsExperience)
	assert.Equal(t, 2, svc.Progress(sess).QuestionsAnswered)
}

func TestLoadProgress_RestoresSupersetOfInput(t *testing.T) {
	svc, sess := newTestSession()

	snapshot := model.ConversationContext{
		AgentName:            model.Ptr("Dana"),
		LastYearTransactions: model.Ptr(31),
	}
	answered := []string{"foundation_name", "foundation_transactions", "bogus_id"}

	svc.LoadProgress(sess, snapshot, answered)

	require.NotNil(t, sess.Context.AgentName)
	assert.Equal(t, "Dana", *sess.Context.AgentName)
	require.NotNil(t, sess.Context.LastYearTransactions)
	assert.Equal(t, 31, *sess.Context.LastYearTransactions)

	assert.True(t, sess.Answered("foundation_name"))
	assert.True(t, sess.Answered("foundation_transactions"))
	assert.False(t, sess.Answered("bogus_id"))
	assert.Equal(t, 2, svc.Progress(sess).QuestionsAnswered)
}
