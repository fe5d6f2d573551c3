package benchmark

// Metrics is the subset of extracted facts the opportunity score reads.
// Nil fields are simply skipped, contributing no points.
type Metrics struct {
	Transactions      *int
	GCI               *float64
	MonthlyLeadVolume *int
	LeadResponseTime  *string
}

// Per-metric opportunity points. Each qualifying metric adds a fixed slice
// toward the 0-100 total.
const (
	transactionsThreshold = 25
	transactionsPoints    = 25

	gciThreshold = 100_000.0
	gciPoints    = 25

	leadVolumeThreshold = 50
	leadVolumePoints    = 25

	slowResponsePoints = 25
)

// Priority labels and their score thresholds.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"

	criticalThreshold = 70
	highThreshold     = 50
	mediumThreshold   = 30
)

// AutomationOpportunity sums fixed point values for each qualifying metric
// into a 0-100 score: the bigger the business, the more automation pays.
func AutomationOpportunity(m Metrics) (score int, priority string) {
	if m.Transactions != nil && *m.Transactions >= transactionsThreshold {
		score += transactionsPoints
	}
	if m.GCI != nil && *m.GCI >= gciThreshold {
		score += gciPoints
	}
	if m.MonthlyLeadVolume != nil && *m.MonthlyLeadVolume >= leadVolumeThreshold {
		score += leadVolumePoints
	}
	if m.LeadResponseTime != nil && *m.LeadResponseTime != "under_5min" {
		score += slowResponsePoints
	}
	if score > 100 {
		score = 100
	}

	switch {
	case score >= criticalThreshold:
		priority = PriorityCritical
	case score >= highThreshold:
		priority = PriorityHigh
	case score >= mediumThreshold:
		priority = PriorityMedium
	default:
		priority = PriorityLow
	}
	return score, priority
}
