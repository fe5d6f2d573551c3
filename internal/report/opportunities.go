package report

import (
	"strings"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// fallbackOpportunities builds the static opportunity list used when the
// recommendation API is unavailable. The list branches on the profile's
// challenges and structure only; economics scale with stated revenue.
func fallbackOpportunities(p model.BusinessProfile) []model.Opportunity {
	opps := []model.Opportunity{
		{
			ID:                 "lead-response-automation",
			Title:              "Instant Lead Response System",
			Description:        "Automated first-touch replies and routing so every new lead hears back within five minutes, around the clock.",
			Category:           "lead_generation",
			MonthlySavings:     scaleSavings(1200, p),
			ImplementationCost: 2500,
			HoursSavedPerWeek:  6,
			Priority:           "critical",
		},
		{
			ID:                 "followup-sequences",
			Title:              "Automated Follow-Up Sequences",
			Description:        "Multi-channel drip sequences keyed to lead source and stage, replacing manual check-in reminders.",
			Category:           "nurture",
			MonthlySavings:     scaleSavings(800, p),
			ImplementationCost: 1500,
			HoursSavedPerWeek:  4,
			Priority:           "high",
		},
	}

	if hasChallenge(p, "transaction") || hasChallenge(p, "coordination") {
		opps = append(opps, model.Opportunity{
			ID:                 "transaction-pipeline",
			Title:              "Transaction Milestone Automation",
			Description:        "Checklist-driven milestone tracking with automatic client and vendor updates from contract to close.",
			Category:           "transaction_management",
			MonthlySavings:     scaleSavings(900, p),
			ImplementationCost: 2000,
			HoursSavedPerWeek:  5,
			Priority:           "high",
		})
	}
	if hasChallenge(p, "marketing") || hasChallenge(p, "content") {
		opps = append(opps, model.Opportunity{
			ID:                 "listing-marketing",
			Title:              "Listing Marketing Autopilot",
			Description:        "Templated listing announcements, social posts, and just-listed/just-sold campaigns generated per property.",
			Category:           "marketing",
			MonthlySavings:     scaleSavings(600, p),
			ImplementationCost: 1200,
			HoursSavedPerWeek:  3,
			Priority:           "medium",
		})
	}
	if hasChallenge(p, "database") || hasChallenge(p, "sphere") {
		opps = append(opps, model.Opportunity{
			ID:                 "database-reactivation",
			Title:              "Database Reactivation Campaigns",
			Description:        "Scheduled touch campaigns across the past-client database with anniversary and market-update triggers.",
			Category:           "nurture",
			MonthlySavings:     scaleSavings(700, p),
			ImplementationCost: 1000,
			HoursSavedPerWeek:  2,
			Priority:           "medium",
		})
	}
	if p.TeamSize > 1 {
		opps = append(opps, model.Opportunity{
			ID:                 "team-lead-routing",
			Title:              "Team Lead Routing & Accountability",
			Description:        "Round-robin lead assignment with response-time tracking and automatic reassignment on missed SLAs.",
			Category:           "operations",
			MonthlySavings:     scaleSavings(1000, p),
			ImplementationCost: 1800,
			HoursSavedPerWeek:  4,
			Priority:           "high",
		})
	}

	return opps
}

// scaleSavings bumps base savings for larger operations. Bands, not a
// formula, to keep the fallback numbers stable.
func scaleSavings(base float64, p model.BusinessProfile) float64 {
	switch {
	case p.MonthlyRevenue > 50000:
		return base * 2
	case p.MonthlyRevenue > 20000:
		return base * 1.5
	default:
		return base
	}
}

func hasChallenge(p model.BusinessProfile, keyword string) bool {
	for _, c := range p.PrimaryChallenges {
		if strings.Contains(strings.ToLower(c), keyword) {
			return true
		}
	}
	return false
}
