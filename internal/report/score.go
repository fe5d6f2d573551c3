package report

import "github.com/kevinvandever/reservoir-mvp-sub000/internal/model"

// Automation score component caps. The four buckets sum to at most 100.
const (
	maturityCap   = 30
	challengesCap = 25
	readinessCap  = 25
	timeCap       = 20

	pointsPerChallenge = 5
	readinessFactor    = 0.25
)

// AutomationScore computes the 0-100 automation opportunity score from a
// business profile. Four additive buckets: business maturity, challenge
// count, stated automation readiness, and weekly hours lost to manual work.
func AutomationScore(p model.BusinessProfile) int {
	score := maturityScore(p) + challengeScore(p) + readinessScore(p) + timeScore(p)
	if score > 100 {
		score = 100
	}
	return score
}

// maturityScore rewards established operations: revenue scale, having a
// team, and being in an active growth stage.
func maturityScore(p model.BusinessProfile) int {
	s := 0
	switch {
	case p.MonthlyRevenue > 50000:
		s += 20
	case p.MonthlyRevenue > 20000:
		s += 15
	case p.MonthlyRevenue > 5000:
		s += 10
	}
	if p.TeamSize > 1 {
		s += 10
	}
	switch p.GrowthStage {
	case "scaling", "established":
		s += 5
	}
	if s > maturityCap {
		s = maturityCap
	}
	return s
}

func challengeScore(p model.BusinessProfile) int {
	s := len(p.PrimaryChallenges) * pointsPerChallenge
	if s > challengesCap {
		s = challengesCap
	}
	return s
}

func readinessScore(p model.BusinessProfile) int {
	s := int(float64(p.AutomationReadiness) * readinessFactor)
	if s > readinessCap {
		s = readinessCap
	}
	return s
}

// timeScore buckets weekly hours spent on manual tasks.
func timeScore(p model.BusinessProfile) int {
	switch {
	case p.WeeklyTaskHours > 20:
		return 20
	case p.WeeklyTaskHours > 10:
		return 15
	case p.WeeklyTaskHours > 5:
		return 10
	case p.WeeklyTaskHours > 0:
		return 5
	default:
		return 0
	}
}
