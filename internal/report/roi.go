package report

import (
	"math"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

const (
	baseConfidence = 70
	minConfidence  = 40
	maxConfidence  = 95
)

// ProjectROI aggregates opportunity economics into payback and 3-year value
// figures. The confidence score starts at a fixed base and is nudged by how
// complete and how grounded the underlying profile is.
func ProjectROI(opps []model.Opportunity, p model.BusinessProfile, source model.RecommendationSource) model.ROIProjection {
	var monthly, cost float64
	for _, o := range opps {
		monthly += o.MonthlySavings
		cost += o.ImplementationCost
	}

	var payback float64
	if monthly > 0 {
		payback = cost / monthly
	}

	// 36 months of savings net of the one-time implementation cost.
	threeYear := monthly*36 - cost
	if threeYear < 0 {
		threeYear = 0
	}

	return model.ROIProjection{
		TotalMonthlySavings:     round2(monthly),
		TotalImplementationCost: round2(cost),
		PaybackMonths:           round2(payback),
		ThreeYearValue:          round2(threeYear),
		ConfidenceScore:         confidence(p, source),
	}
}

// confidence nudges the base score by fixed adjustments and clamps the
// result.
func confidence(p model.BusinessProfile, source model.RecommendationSource) int {
	c := baseConfidence
	if p.AnnualGCI > 0 {
		c += 5
	}
	if p.AnnualTransactions > 0 {
		c += 5
	}
	if p.WeeklyTaskHours > 0 {
		c += 5
	}
	if p.AutomationReadiness >= 70 {
		c += 5
	}
	if len(p.PrimaryChallenges) == 0 {
		c -= 10
	}
	if source == model.RecommendationSourceFallback {
		c -= 5
	}
	if c > maxConfidence {
		c = maxConfidence
	}
	if c < minConfidence {
		c = minConfidence
	}
	return c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
