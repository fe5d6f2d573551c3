package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

func TestExtract_Name(t *testing.T) {
	res := Extract("Hi, my name is Sarah and I work in Austin")
	require.NotNil(t, res.Patch.AgentName)
	assert.Equal(t, "Sarah", *res.Patch.AgentName)
	assert.Equal(t, heuristicConfidence, res.Confidence)
}

func TestExtract_NameStopwords(t *testing.T) {
	res := Extract("i'm just getting going")
	assert.Nil(t, res.Patch.AgentName)
}

func TestExtract_Years(t *testing.T) {
	res := Extract("I've been doing this for 8 years now")
	require.NotNil(t, res.Patch.YearsExperience)
	assert.Equal(t, 8, *res.Patch.YearsExperience)
}

func TestExtract_GCI(t *testing.T) {
	res := Extract("my gci was around $150k last year")
	require.NotNil(t, res.Patch.LastYearGCI)
	assert.InDelta(t, 150000, *res.Patch.LastYearGCI, 0.01)
}

func TestExtract_GCIRequiresMoneyCue(t *testing.T) {
	// A bare count with no income keyword must not become GCI.
	res := Extract("47")
	assert.Nil(t, res.Patch.LastYearGCI)
}

func TestExtract_Transactions(t *testing.T) {
	res := Extract("closed about 30 deals")
	require.NotNil(t, res.Patch.LastYearTransactions)
	assert.Equal(t, 30, *res.Patch.LastYearTransactions)
}

func TestExtract_ResponseTime(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"i call back right away", "under_5min"},
		{"usually within the hour", "under_1hour"},
		{"by the end of the day", "same_day"},
		{"probably the next day", "next_day"},
		{"honestly it depends", "varies"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			res := Extract(tt.text)
			require.NotNil(t, res.Patch.LeadResponseTime, tt.text)
			assert.Equal(t, tt.want, *res.Patch.LeadResponseTime)
		})
	}
}

func TestExtract_CRM(t *testing.T) {
	res := Extract("we use follow up boss for everything")
	require.NotNil(t, res.Patch.CurrentCRM)
	assert.Equal(t, "Follow Up Boss", *res.Patch.CurrentCRM)

	res = Extract("just a spreadsheet honestly")
	require.NotNil(t, res.Patch.CurrentCRM)
	assert.Equal(t, "none", *res.Patch.CurrentCRM)
}

func TestExtract_Structure(t *testing.T) {
	res := Extract("it's just me, solo")
	require.NotNil(t, res.Patch.BusinessStructure)
	assert.Equal(t, model.StructureSoloAgent, *res.Patch.BusinessStructure)

	res = Extract("i run a team of 4 agents")
	require.NotNil(t, res.Patch.BusinessStructure)
	assert.Equal(t, model.StructureTeamLead, *res.Patch.BusinessStructure)
	require.NotNil(t, res.Patch.TeamSize)
	assert.Equal(t, 4, *res.Patch.TeamSize)
}

func TestExtract_Challenges(t *testing.T) {
	res := Extract("follow up is killing me and i'm always overwhelmed")
	assert.ElementsMatch(t, []string{"Follow-up consistency", "Time management"}, res.Patch.BiggestChallenges)
}

func TestExtract_Hours(t *testing.T) {
	res := Extract("maybe 15 hours of paperwork a week")
	require.NotNil(t, res.Patch.AdminHoursPerWeek)
	assert.Equal(t, 15, *res.Patch.AdminHoursPerWeek)
}

func TestExtract_NoMatch(t *testing.T) {
	res := Extract("sounds good, thanks")
	assert.Empty(t, res.Fields)
	assert.Zero(t, res.Confidence)
	assert.True(t, res.Patch.IsEmpty())
}

func TestExtractForQuestion_BareNumberAttribution(t *testing.T) {
	q := &model.Question{
		ID:      "foundation_transactions",
		Section: model.SectionFoundation,
		Tags:    []string{"volume", "transactions"},
	}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"bare count", "47", 47},
		{"plus suffix", "50+", 60},
		{"under", "under 20", 10},
		{"range", "25-50", 37},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ExtractForQuestion(q, tt.text)
			require.NotNil(t, res.Patch.LastYearTransactions)
			assert.Equal(t, tt.want, *res.Patch.LastYearTransactions)
		})
	}
}

func TestExtractForQuestion_ReadinessClamped(t *testing.T) {
	q := &model.Question{ID: "goals_readiness", Tags: []string{"readiness"}}

	res := ExtractForQuestion(q, "150")
	require.NotNil(t, res.Patch.AutomationReadiness)
	assert.Equal(t, 100, *res.Patch.AutomationReadiness)
}

func TestExtractForQuestion_DirectedDoesNotBlockCascade(t *testing.T) {
	q := &model.Question{ID: "leadgen_monthly_volume", Tags: []string{"leads"}}

	res := ExtractForQuestion(q, "around 40 leads, we track them in kvcore")
	require.NotNil(t, res.Patch.MonthlyLeadVolume)
	assert.Equal(t, 40, *res.Patch.MonthlyLeadVolume)
	require.NotNil(t, res.Patch.CurrentCRM)
	assert.Equal(t, "kvCORE", *res.Patch.CurrentCRM)
}

func TestExtractForQuestion_NilQuestion(t *testing.T) {
	res := ExtractForQuestion(nil, "closed 12 deals")
	require.NotNil(t, res.Patch.LastYearTransactions)
	assert.Equal(t, 12, *res.Patch.LastYearTransactions)
}

func TestRun_FirstMatchPerFieldWins(t *testing.T) {
	// "10 years" should populate years once; the bare-number cascade later
	// must not overwrite it.
	res := Extract("10 years, roughly 200 deals closed")
	require.NotNil(t, res.Patch.YearsExperience)
	assert.Equal(t, 10, *res.Patch.YearsExperience)
	require.NotNil(t, res.Patch.LastYearTransactions)
}
