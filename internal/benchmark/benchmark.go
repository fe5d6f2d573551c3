// Package benchmark maps extracted business metrics to percentile tiers via
// static lookup tables. All data is embedded at compile time; there is no
// inference beyond first-matching-bucket lookup.
package benchmark

import "fmt"

// Metric names accepted by PerformanceInsight.
const (
	MetricTransactions = "transactions"
	MetricGCI          = "gci"
	MetricLeadVolume   = "leadVolume"
	MetricResponseTime = "responseTime"
)

// Insight is the benchmark placement for one metric value.
type Insight struct {
	Metric        string   `json:"metric"`
	UserValue     string   `json:"user_value"`
	Percentile    int      `json:"percentile"`
	Tier          string   `json:"tier"`
	Encouragement string   `json:"encouragement"`
	Insights      []string `json:"insights,omitempty"`
}

// bucket is one numeric benchmark band; a value v matches when
// min <= v <= max.
type bucket struct {
	min, max      float64
	percentile    int
	tier          string
	encouragement string
	insights      []string
}

var transactionBuckets = []bucket{
	{0, 5, 25, "Developing Agent", "Everyone starts somewhere — the habits you build now compound fast.",
		[]string{"Agents at this stage gain the most from a consistent follow-up system."}},
	{6, 15, 50, "Established Agent", "You're ahead of half the agents in the business.",
		[]string{"Consistency is your next multiplier: systematize what already works."}},
	{16, 30, 75, "High Performer", "Top quartile production — your pipeline clearly works.",
		[]string{"At this volume, manual coordination starts costing real deals."}},
	{31, 50, 90, "Elite Agent", "That puts you in the top 10% of agents nationally.",
		[]string{"Elite producers typically reclaim 10+ hours a week through automation."}},
	{51, 10000, 99, "Mega Producer", "Truly exceptional volume — top 1% territory.",
		[]string{"At this scale, leverage is everything: every manual task is a bottleneck."}},
}

var gciBuckets = []bucket{
	{0, 50_000, 25, "Building", "The foundation years are the hardest — keep going.", nil},
	{50_001, 100_000, 50, "Solid Producer", "A six-figure trajectory puts you ahead of most.", nil},
	{100_001, 250_000, 75, "Strong Producer", "Top-quartile income — your business model works.", nil},
	{250_001, 500_000, 90, "Top Producer", "Top 10% income nationally.", nil},
	{500_001, 100_000_000, 99, "Rainmaker", "Elite income — top 1% of the industry.", nil},
}

var leadVolumeBuckets = []bucket{
	{0, 10, 25, "Starter Pipeline", "A focused pipeline beats a leaky big one.", nil},
	{11, 30, 50, "Steady Pipeline", "Healthy flow — the question is conversion.", nil},
	{31, 75, 75, "Strong Pipeline", "More leads than most agents can follow up manually.",
		[]string{"Past ~30 leads/month, response speed drops without automation."}},
	{76, 150, 90, "High-Volume Pipeline", "Top-decile lead flow.",
		[]string{"At this volume, minutes of response delay measurably cost conversions."}},
	{151, 1_000_000, 99, "Lead Machine", "Extraordinary lead volume.", nil},
}

// responseTimeTiers is a string-keyed lookup rather than numeric buckets.
var responseTimeTiers = map[string]Insight{
	"under_5min": {
		Metric: MetricResponseTime, Percentile: 95, Tier: "Speed Leader",
		Encouragement: "Sub-5-minute response puts you in rare company — conversion rates are dramatically higher there.",
	},
	"under_1hour": {
		Metric: MetricResponseTime, Percentile: 75, Tier: "Fast Responder",
		Encouragement: "Within the hour is solid — the next jump, to minutes, is where automation shines.",
	},
	"same_day": {
		Metric: MetricResponseTime, Percentile: 50, Tier: "Average Responder",
		Encouragement: "Same-day is the norm, which means it's also where leads go cold.",
		Insights:      []string{"78% of buyers work with the first agent who responds."}},
	"next_day": {
		Metric: MetricResponseTime, Percentile: 25, Tier: "Slow Responder",
		Encouragement: "Next-day response is the single biggest conversion leak to fix — and the easiest to automate.",
	},
	"varies": {
		Metric: MetricResponseTime, Percentile: 30, Tier: "Inconsistent Responder",
		Encouragement: "Inconsistency is fixable: an instant auto-response buys you time on every lead.",
	},
}

// PerformanceInsight places a metric value into its benchmark bucket.
// Returns nil when the metric is unknown or no bucket matches.
func PerformanceInsight(metric string, value any) *Insight {
	switch metric {
	case MetricTransactions:
		return numericInsight(metric, value, transactionBuckets)
	case MetricGCI:
		return numericInsight(metric, value, gciBuckets)
	case MetricLeadVolume:
		return numericInsight(metric, value, leadVolumeBuckets)
	case MetricResponseTime:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		ins, ok := responseTimeTiers[s]
		if !ok {
			return nil
		}
		ins.UserValue = s
		return &ins
	default:
		return nil
	}
}

func numericInsight(metric string, value any, buckets []bucket) *Insight {
	v, ok := toFloat(value)
	if !ok {
		return nil
	}
	for _, b := range buckets {
		if v >= b.min && v <= b.max {
			return &Insight{
				Metric:        metric,
				UserValue:     formatValue(v),
				Percentile:    b.percentile,
				Tier:          b.tier,
				Encouragement: b.encouragement,
				Insights:      b.insights,
			}
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
