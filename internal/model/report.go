package model

import "time"

// BusinessProfile is the normalized view of a session's context used by the
// report generators.
type BusinessProfile struct {
	AgentName           string   `json:"agent_name,omitempty"`
	Industry            string   `json:"industry"`
	YearsExperience     int      `json:"years_experience"`
	MonthlyRevenue      float64  `json:"monthly_revenue"`
	AnnualGCI           float64  `json:"annual_gci"`
	AnnualTransactions  int      `json:"annual_transactions"`
	TeamSize            int      `json:"team_size"`
	GrowthStage         string   `json:"growth_stage"`
	PrimaryChallenges   []string `json:"primary_challenges"`
	AutomationReadiness int      `json:"automation_readiness"`
	WeeklyTaskHours     int      `json:"weekly_task_hours"`
	CurrentCRM          string   `json:"current_crm,omitempty"`
}

// Opportunity is a single automation opportunity with its economics.
type Opportunity struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	MonthlySavings     float64 `json:"monthly_savings"`
	ImplementationCost float64 `json:"implementation_cost"`
	HoursSavedPerWeek  float64 `json:"hours_saved_per_week"`
	Priority           string  `json:"priority"`
}

// ROIProjection aggregates opportunity economics into payback numbers.
type ROIProjection struct {
	TotalMonthlySavings     float64 `json:"total_monthly_savings"`
	TotalImplementationCost float64 `json:"total_implementation_cost"`
	PaybackMonths           float64 `json:"payback_months"`
	ThreeYearValue          float64 `json:"three_year_value"`
	ConfidenceScore         int     `json:"confidence_score"`
}

// RoadmapPhase is one step of the implementation roadmap.
type RoadmapPhase struct {
	Phase    int      `json:"phase"`
	Title    string   `json:"title"`
	Timeline string   `json:"timeline"`
	Items    []string `json:"items"`
}

// CompetitivePosition summarizes benchmark standing for the report.
type CompetitivePosition struct {
	Tier       string   `json:"tier"`
	Percentile int      `json:"percentile"`
	Summary    string   `json:"summary"`
	Insights   []string `json:"insights,omitempty"`
}

// RecommendationSource records whether opportunities came from the live
// recommendation API or the static fallback list.
type RecommendationSource string

const (
	RecommendationSourceAPI      RecommendationSource = "api"
	RecommendationSourceFallback RecommendationSource = "fallback"
)

// Report is the full generated automation-opportunity report.
type Report struct {
	SessionID            string               `json:"session_id"`
	GeneratedAt          time.Time            `json:"generated_at"`
	Profile              BusinessProfile      `json:"profile"`
	AutomationScore      int                  `json:"automation_score"`
	Opportunities        []Opportunity        `json:"opportunities"`
	RecommendationSource RecommendationSource `json:"recommendation_source"`
	ROI                  ROIProjection        `json:"roi"`
	Roadmap              []RoadmapPhase       `json:"roadmap"`
	Competitive          *CompetitivePosition `json:"competitive,omitempty"`
	Recommendations      []string             `json:"recommendations"`
}
