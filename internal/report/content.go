package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/benchmark"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// Currency formats a dollar amount with thousands separators.
func Currency(v float64) string {
	return usd.Sprintf("$%.0f", v)
}

// Recommendations renders the templated next-step list from the score and
// the top opportunities.
func Recommendations(p model.BusinessProfile, score int, opps []model.Opportunity) []string {
	var recs []string

	switch {
	case score >= 70:
		recs = append(recs, "Your business is a strong automation candidate. Start with the critical-priority opportunities below; they pay back fastest.")
	case score >= 40:
		recs = append(recs, "You have meaningful automation upside. Tackle one high-priority opportunity per quarter rather than all at once.")
	default:
		recs = append(recs, "Focus on consistency before automation: document your current lead and transaction workflows first.")
	}

	for i, o := range opps {
		if i >= 3 {
			break
		}
		recs = append(recs, fmt.Sprintf("%s: est. %s/mo in savings, about %.0f hours back per week.",
			o.Title, Currency(o.MonthlySavings), o.HoursSavedPerWeek))
	}

	if p.WeeklyTaskHours > 15 {
		recs = append(recs, fmt.Sprintf("You reported %d hours per week on manual tasks. Reclaiming even half of that funds every opportunity on this list.", p.WeeklyTaskHours))
	}
	if p.CurrentCRM == "" {
		recs = append(recs, "Adopt a CRM before layering automation on top; every opportunity above assumes one system of record.")
	}

	return recs
}

// Roadmap lays out a three-phase implementation plan, slotting opportunities
// by priority.
func Roadmap(opps []model.Opportunity) []model.RoadmapPhase {
	phases := []model.RoadmapPhase{
		{Phase: 1, Title: "Quick Wins", Timeline: "Weeks 1-4"},
		{Phase: 2, Title: "Core Systems", Timeline: "Months 2-3"},
		{Phase: 3, Title: "Scale & Optimize", Timeline: "Months 4-6"},
	}

	for _, o := range opps {
		switch o.Priority {
		case "critical":
			phases[0].Items = append(phases[0].Items, o.Title)
		case "high":
			phases[1].Items = append(phases[1].Items, o.Title)
		default:
			phases[2].Items = append(phases[2].Items, o.Title)
		}
	}

	if len(phases[0].Items) == 0 {
		phases[0].Items = append(phases[0].Items, "Audit current tools and document lead workflow")
	}
	phases[2].Items = append(phases[2].Items, "Review metrics and expand what is working")
	return phases
}

// Competitive places the profile against industry benchmarks. Returns nil
// when no benchmarkable metric is present.
func Competitive(p model.BusinessProfile) *model.CompetitivePosition {
	var best *benchmark.Insight
	var notes []string

	if p.AnnualTransactions > 0 {
		if ins := benchmark.PerformanceInsight(benchmark.MetricTransactions, p.AnnualTransactions); ins != nil {
			best = ins
			notes = append(notes, ins.Encouragement)
		}
	}
	if p.AnnualGCI > 0 {
		if ins := benchmark.PerformanceInsight(benchmark.MetricGCI, p.AnnualGCI); ins != nil {
			if best == nil || ins.Percentile > best.Percentile {
				best = ins
			}
			notes = append(notes, ins.Encouragement)
		}
	}
	if best == nil {
		return nil
	}

	return &model.CompetitivePosition{
		Tier:       best.Tier,
		Percentile: best.Percentile,
		Summary:    fmt.Sprintf("You operate in the top %d%% of agents by %s.", 100-best.Percentile, best.Metric),
		Insights:   notes,
	}
}
