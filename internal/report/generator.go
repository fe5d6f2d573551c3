package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/reservoir"
)

// Generator assembles full reports. The recommendation client is optional;
// without one every report uses the static opportunity list.
type Generator struct {
	recs reservoir.Client
}

func NewGenerator(recs reservoir.Client) *Generator {
	return &Generator{recs: recs}
}

// Generate builds the report for a session. A recommendation API failure is
// logged and substituted with the static list; it never fails the report.
func (g *Generator) Generate(ctx context.Context, sess *model.Session) *model.Report {
	profile := BuildProfile(sess.Context)
	score := AutomationScore(profile)

	opps, source := g.opportunities(ctx, profile)
	roi := ProjectROI(opps, profile, source)

	rpt := &model.Report{
		SessionID:            sess.ID,
		GeneratedAt:          time.Now().UTC(),
		Profile:              profile,
		AutomationScore:      score,
		Opportunities:        opps,
		RecommendationSource: source,
		ROI:                  roi,
		Roadmap:              Roadmap(opps),
		Competitive:          Competitive(profile),
		Recommendations:      Recommendations(profile, score, opps),
	}

	zap.L().Info("report: generated",
		zap.String("session_id", sess.ID),
		zap.Int("automation_score", score),
		zap.Int("opportunities", len(opps)),
		zap.String("source", string(source)),
		zap.Float64("monthly_savings", roi.TotalMonthlySavings),
	)
	return rpt
}

func (g *Generator) opportunities(ctx context.Context, p model.BusinessProfile) ([]model.Opportunity, model.RecommendationSource) {
	if g.recs != nil {
		opps, err := g.recs.Recommendations(ctx, p)
		if err == nil && len(opps) > 0 {
			return opps, model.RecommendationSourceAPI
		}
		if err != nil {
			zap.L().Warn("report: recommendation API failed, using static opportunities", zap.Error(err))
		}
	}
	return fallbackOpportunities(p), model.RecommendationSourceFallback
}
