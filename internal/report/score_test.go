package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

func TestAutomationScore_ScalingTeamProfile(t *testing.T) {
	p := model.BusinessProfile{
		MonthlyRevenue:      25000,
		TeamSize:            2,
		GrowthStage:         "scaling",
		PrimaryChallenges:   []string{"Lead generation", "Time management"},
		AutomationReadiness: 80,
		WeeklyTaskHours:     22,
	}

	// 15 (revenue) + 10 (team) + 5 (scaling) + 10 (challenges) + 20
	// (readiness) + 20 (hours) = 80.
	assert.Equal(t, 80, AutomationScore(p))
}

func TestAutomationScore_EmptyProfile(t *testing.T) {
	assert.Equal(t, 0, AutomationScore(model.BusinessProfile{}))
}

func TestAutomationScore_CappedAt100(t *testing.T) {
	p := model.BusinessProfile{
		MonthlyRevenue:      80000,
		TeamSize:            10,
		GrowthStage:         "established",
		PrimaryChallenges:   []string{"a", "b", "c", "d", "e", "f", "g"},
		AutomationReadiness: 100,
		WeeklyTaskHours:     40,
	}
	assert.LessOrEqual(t, AutomationScore(p), 100)
}

func TestMaturityScore_Buckets(t *testing.T) {
	tests := []struct {
		name string
		p    model.BusinessProfile
		want int
	}{
		{"high revenue", model.BusinessProfile{MonthlyRevenue: 60000}, 20},
		{"mid revenue", model.BusinessProfile{MonthlyRevenue: 25000}, 15},
		{"low revenue", model.BusinessProfile{MonthlyRevenue: 8000}, 10},
		{"tiny revenue", model.BusinessProfile{MonthlyRevenue: 2000}, 0},
		{"solo", model.BusinessProfile{TeamSize: 1}, 0},
		{"team", model.BusinessProfile{TeamSize: 3}, 10},
		{"starting stage", model.BusinessProfile{GrowthStage: "starting"}, 0},
		{"scaling stage", model.BusinessProfile{GrowthStage: "scaling"}, 5},
		{"established stage", model.BusinessProfile{GrowthStage: "established"}, 5},
		{"capped", model.BusinessProfile{MonthlyRevenue: 60000, TeamSize: 4, GrowthStage: "scaling"}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maturityScore(tt.p))
		})
	}
}

func TestChallengeScore_Capped(t *testing.T) {
	p := model.BusinessProfile{PrimaryChallenges: make([]string, 8)}
	assert.Equal(t, challengesCap, challengeScore(p))
}

func TestReadinessScore(t *testing.T) {
	assert.Equal(t, 20, readinessScore(model.BusinessProfile{AutomationReadiness: 80}))
	assert.Equal(t, readinessCap, readinessScore(model.BusinessProfile{AutomationReadiness: 100}))
	assert.Equal(t, 0, readinessScore(model.BusinessProfile{}))
}

func TestTimeScore_Buckets(t *testing.T) {
	tests := []struct {
		hours int
		want  int
	}{
		{0, 0}, {3, 5}, {8, 10}, {15, 15}, {22, 20}, {60, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timeScore(model.BusinessProfile{WeeklyTaskHours: tt.hours}), "hours %d", tt.hours)
	}
}
