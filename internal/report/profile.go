// Package report turns a completed session into an automation-opportunity
// report: business profile, automation score, opportunity list with ROI
// projections, implementation roadmap, and competitive positioning.
package report

import (
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// BuildProfile normalizes a session context into the flat profile the
// scorers and content generators consume. Missing fields get zero values;
// monthly revenue is derived from GCI when not stated directly.
func BuildProfile(ctx model.ConversationContext) model.BusinessProfile {
	p := model.BusinessProfile{Industry: "real_estate"}

	if ctx.AgentName != nil {
		p.AgentName = *ctx.AgentName
	}
	if ctx.YearsExperience != nil {
		p.YearsExperience = *ctx.YearsExperience
	}
	if ctx.LastYearGCI != nil {
		p.AnnualGCI = *ctx.LastYearGCI
	}
	if ctx.LastYearTransactions != nil {
		p.AnnualTransactions = *ctx.LastYearTransactions
	}
	if ctx.MonthlyRevenue != nil {
		p.MonthlyRevenue = *ctx.MonthlyRevenue
	} else if p.AnnualGCI > 0 {
		p.MonthlyRevenue = p.AnnualGCI / 12
	}
	if ctx.TeamSize != nil {
		p.TeamSize = *ctx.TeamSize
	} else if ctx.BusinessStructure != nil && *ctx.BusinessStructure == model.StructureSoloAgent {
		p.TeamSize = 1
	}
	if ctx.GrowthStage != nil {
		p.GrowthStage = *ctx.GrowthStage
	}
	if len(ctx.BiggestChallenges) > 0 {
		p.PrimaryChallenges = ctx.BiggestChallenges
	}
	if ctx.AutomationReadiness != nil {
		p.AutomationReadiness = *ctx.AutomationReadiness
	}
	if ctx.CurrentCRM != nil {
		p.CurrentCRM = *ctx.CurrentCRM
	}

	p.WeeklyTaskHours = weeklyTaskHours(ctx)
	return p
}

// weeklyTaskHours totals the per-task time map, falling back to the stated
// admin hours when no breakdown was given.
func weeklyTaskHours(ctx model.ConversationContext) int {
	if len(ctx.TimeSpentOnTasks) > 0 {
		total := 0
		for _, h := range ctx.TimeSpentOnTasks {
			total += h
		}
		return total
	}
	if ctx.AdminHoursPerWeek != nil {
		return *ctx.AdminHoursPerWeek
	}
	return 0
}
