package report

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// stubRecs is a canned recommendation client.
type stubRecs struct {
	opps []model.Opportunity
	err  error
}

func (s *stubRecs) Recommendations(ctx context.Context, profile model.BusinessProfile) ([]model.Opportunity, error) {
	return s.opps, s.err
}

func testSession() *model.Session {
	sess := model.NewSession("sess-1", model.SectionFoundation)
	sess.Context = model.ConversationContext{
		AgentName:            model.Ptr("Sarah Chen"),
		LastYearGCI:          model.Ptr(180000.0),
		LastYearTransactions: model.Ptr(47),
		TeamSize:             model.Ptr(2),
		GrowthStage:          model.Ptr("scaling"),
		BiggestChallenges:    []string{"Lead generation", "Time management"},
		AutomationReadiness:  model.Ptr(80),
		TimeSpentOnTasks:     map[string]int{"admin": 12, "follow-up": 10},
	}
	return sess
}

func TestGenerate_APIPath(t *testing.T) {
	recs := &stubRecs{opps: []model.Opportunity{
		{ID: "x", Title: "X", MonthlySavings: 500, ImplementationCost: 1000},
	}}
	g := NewGenerator(recs)

	rpt := g.Generate(context.Background(), testSession())

	assert.Equal(t, "sess-1", rpt.SessionID)
	assert.Equal(t, model.RecommendationSourceAPI, rpt.RecommendationSource)
	require.Len(t, rpt.Opportunities, 1)
	assert.Equal(t, "X", rpt.Opportunities[0].Title)
}

func TestGenerate_FallbackOnError(t *testing.T) {
	g := NewGenerator(&stubRecs{err: eris.New("reservoir: boom")})

	rpt := g.Generate(context.Background(), testSession())

	assert.Equal(t, model.RecommendationSourceFallback, rpt.RecommendationSource)
	assert.NotEmpty(t, rpt.Opportunities)
}

func TestGenerate_NilClientUsesFallback(t *testing.T) {
	g := NewGenerator(nil)

	rpt := g.Generate(context.Background(), testSession())

	assert.Equal(t, model.RecommendationSourceFallback, rpt.RecommendationSource)
	assert.NotEmpty(t, rpt.Opportunities)
	assert.NotEmpty(t, rpt.Recommendations)
	assert.Len(t, rpt.Roadmap, 3)
}

func TestGenerate_FullProfileNumbers(t *testing.T) {
	g := NewGenerator(nil)

	rpt := g.Generate(context.Background(), testSession())

	// GCI-derived monthly revenue of 15000 keeps base fallback economics;
	// scaling, team of two, readiness 80, 22 task hours.
	assert.Equal(t, 75, rpt.AutomationScore)
	assert.Equal(t, 22, rpt.Profile.WeeklyTaskHours)
	assert.InDelta(t, 15000, rpt.Profile.MonthlyRevenue, 0.001)

	require.NotNil(t, rpt.Competitive)
	assert.Equal(t, 90, rpt.Competitive.Percentile)
	assert.Equal(t, "Elite Agent", rpt.Competitive.Tier)
}

func TestBuildProfile_Defaults(t *testing.T) {
	p := BuildProfile(model.ConversationContext{})

	assert.Equal(t, "real_estate", p.Industry)
	assert.Zero(t, p.TeamSize)
	assert.Zero(t, p.MonthlyRevenue)
}

func TestBuildProfile_SoloImpliesTeamOfOne(t *testing.T) {
	p := BuildProfile(model.ConversationContext{
		BusinessStructure: model.Ptr(model.StructureSoloAgent),
	})
	assert.Equal(t, 1, p.TeamSize)
}

func TestBuildProfile_AdminHoursFallback(t *testing.T) {
	p := BuildProfile(model.ConversationContext{
		AdminHoursPerWeek: model.Ptr(14),
	})
	assert.Equal(t, 14, p.WeeklyTaskHours)
}

func TestFallbackOpportunities_Branching(t *testing.T) {
	base := fallbackOpportunities(model.BusinessProfile{})
	assert.Len(t, base, 2)

	withTxn := fallbackOpportunities(model.BusinessProfile{
		PrimaryChallenges: []string{"Transaction coordination"},
	})
	assert.Len(t, withTxn, 3)

	team := fallbackOpportunities(model.BusinessProfile{TeamSize: 4})
	assert.Len(t, team, 3)
}

func TestFallbackOpportunities_SavingsScale(t *testing.T) {
	small := fallbackOpportunities(model.BusinessProfile{MonthlyRevenue: 5000})
	big := fallbackOpportunities(model.BusinessProfile{MonthlyRevenue: 60000})
	assert.InDelta(t, small[0].MonthlySavings*2, big[0].MonthlySavings, 0.001)
}
