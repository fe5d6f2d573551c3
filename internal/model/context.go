package model

// ConversationContext is the accumulated record of business facts extracted
// from a session's answers. Every field is optional: nil (or empty slice/map)
// means "not yet known". The same type doubles as a patch: Merge copies the
// populated fields of a patch over the receiver, last write wins.
type ConversationContext struct {
	AgentName            *string            `json:"agent_name,omitempty"`
	YearsExperience      *int               `json:"years_experience,omitempty"`
	LastYearGCI          *float64           `json:"last_year_gci,omitempty"`
	LastYearTransactions *int               `json:"last_year_transactions,omitempty"`
	AvgSalePrice         *float64           `json:"avg_sale_price,omitempty"`
	BusinessStructure    *BusinessStructure `json:"business_structure,omitempty"`
	TeamSize             *int               `json:"team_size,omitempty"`
	MarketArea           *string            `json:"market_area,omitempty"`

	MonthlyLeadVolume *int     `json:"monthly_lead_volume,omitempty"`
	LeadResponseTime  *string  `json:"lead_response_time,omitempty"`
	LeadSources       []string `json:"lead_sources,omitempty"`

	CurrentCRM     *string `json:"current_crm,omitempty"`
	UsesAutomation *bool   `json:"uses_automation,omitempty"`

	BiggestChallenges []string `json:"biggest_challenges,omitempty"`

	HoursPerWeek      *int           `json:"hours_per_week,omitempty"`
	AdminHoursPerWeek *int           `json:"admin_hours_per_week,omitempty"`
	TimeSpentOnTasks  map[string]int `json:"time_spent_on_tasks,omitempty"`

	GrowthGoal          *string  `json:"growth_goal,omitempty"`
	GrowthStage         *string  `json:"growth_stage,omitempty"`
	MonthlyRevenue      *float64 `json:"monthly_revenue,omitempty"`
	AutomationReadiness *int     `json:"automation_readiness,omitempty"`
}

// Merge copies every populated field of patch into c. Unset patch fields
// leave the existing value untouched; set fields overwrite unconditionally.
func (c *ConversationContext) Merge(patch ConversationContext) {
	if patch.AgentName != nil {
		c.AgentName = patch.AgentName
	}
	if patch.YearsExperience != nil {
		c.YearsExperience = patch.YearsExperience
	}
	if patch.LastYearGCI != nil {
		c.LastYearGCI = patch.LastYearGCI
	}
	if patch.LastYearTransactions != nil {
		c.LastYearTransactions = patch.LastYearTransactions
	}
	if patch.AvgSalePrice != nil {
		c.AvgSalePrice = patch.AvgSalePrice
	}
	if patch.BusinessStructure != nil {
		c.BusinessStructure = patch.BusinessStructure
	}
	if patch.TeamSize != nil {
		c.TeamSize = patch.TeamSize
	}
	if patch.MarketArea != nil {
		c.MarketArea = patch.MarketArea
	}
	if patch.MonthlyLeadVolume != nil {
		c.MonthlyLeadVolume = patch.MonthlyLeadVolume
	}
	if patch.LeadResponseTime != nil {
		c.LeadResponseTime = patch.LeadResponseTime
	}
	if len(patch.LeadSources) > 0 {
		c.LeadSources = patch.LeadSources
	}
	if patch.CurrentCRM != nil {
		c.CurrentCRM = patch.CurrentCRM
	}
	if patch.UsesAutomation != nil {
		c.UsesAutomation = patch.UsesAutomation
	}
	if len(patch.BiggestChallenges) > 0 {
		c.BiggestChallenges = mergeStrings(c.BiggestChallenges, patch.BiggestChallenges)
	}
	if patch.HoursPerWeek != nil {
		c.HoursPerWeek = patch.HoursPerWeek
	}
	if patch.AdminHoursPerWeek != nil {
		c.AdminHoursPerWeek = patch.AdminHoursPerWeek
	}
	if len(patch.TimeSpentOnTasks) > 0 {
		if c.TimeSpentOnTasks == nil {
			c.TimeSpentOnTasks = make(map[string]int, len(patch.TimeSpentOnTasks))
		}
		for k, v := range patch.TimeSpentOnTasks {
			c.TimeSpentOnTasks[k] = v
		}
	}
	if patch.GrowthGoal != nil {
		c.GrowthGoal = patch.GrowthGoal
	}
	if patch.GrowthStage != nil {
		c.GrowthStage = patch.GrowthStage
	}
	if patch.MonthlyRevenue != nil {
		c.MonthlyRevenue = patch.MonthlyRevenue
	}
	if patch.AutomationReadiness != nil {
		c.AutomationReadiness = patch.AutomationReadiness
	}
}

// IsEmpty reports whether no field has been populated yet.
func (c ConversationContext) IsEmpty() bool {
	return c.FieldCount() == 0
}

// FieldCount returns the number of populated fields, used for extraction
// confidence and report completeness checks.
func (c ConversationContext) FieldCount() int {
	n := 0
	for _, set := range []bool{
		c.AgentName != nil,
		c.YearsExperience != nil,
		c.LastYearGCI != nil,
		c.LastYearTransactions != nil,
		c.AvgSalePrice != nil,
		c.BusinessStructure != nil,
		c.TeamSize != nil,
		c.MarketArea != nil,
		c.MonthlyLeadVolume != nil,
		c.LeadResponseTime != nil,
		len(c.LeadSources) > 0,
		c.CurrentCRM != nil,
		c.UsesAutomation != nil,
		len(c.BiggestChallenges) > 0,
		c.HoursPerWeek != nil,
		c.AdminHoursPerWeek != nil,
		len(c.TimeSpentOnTasks) > 0,
		c.GrowthGoal != nil,
		c.GrowthStage != nil,
		c.MonthlyRevenue != nil,
		c.AutomationReadiness != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// TopicCovered reports whether the context already holds a fact for the
// given topic tag. Questions whose tags are covered are skipped by
// selection: this is a topic-coverage shortcut, not literal answer tracking.
func (c ConversationContext) TopicCovered(tag string) bool {
	switch tag {
	case "identity", "name":
		return c.AgentName != nil
	case "experience":
		return c.YearsExperience != nil
	case "revenue", "performance", "gci":
		return c.LastYearGCI != nil
	case "volume", "transactions":
		return c.LastYearTransactions != nil
	case "pricing", "price_point":
		return c.AvgSalePrice != nil
	case "structure":
		return c.BusinessStructure != nil
	case "team":
		return c.TeamSize != nil
	case "market", "location":
		return c.MarketArea != nil
	case "leads", "lead_volume":
		return c.MonthlyLeadVolume != nil
	case "response_time", "speed":
		return c.LeadResponseTime != nil
	case "lead_sources":
		return len(c.LeadSources) > 0
	case "crm", "technology":
		return c.CurrentCRM != nil
	case "automation":
		return c.UsesAutomation != nil
	case "challenges", "pain_points":
		return len(c.BiggestChallenges) > 0
	case "time", "hours":
		return c.HoursPerWeek != nil
	case "admin_time":
		return c.AdminHoursPerWeek != nil
	case "task_time":
		return len(c.TimeSpentOnTasks) > 0
	case "goals", "growth":
		return c.GrowthGoal != nil
	case "stage":
		return c.GrowthStage != nil
	case "readiness":
		return c.AutomationReadiness != nil
	default:
		return false
	}
}

func mergeStrings(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	out := append([]string(nil), existing...)
	for _, s := range existing {
		seen[s] = true
	}
	for _, s := range incoming {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Ptr returns a pointer to v. Convenience for building context patches.
func Ptr[T any](v T) *T { return &v }
