// Package extraction implements the best-effort heuristic parsing of
// free-text questionnaire answers into structured context patches. It is the
// deterministic fallback behind the AI extraction path: a cascade of pure
// extractor functions, first match per field wins, unmatched fields are
// simply omitted.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// heuristicConfidence is the flat confidence attached to regex extractions.
// There is no per-field calibration on this path.
const heuristicConfidence = 0.6

// Result is the outcome of one extraction pass.
type Result struct {
	Patch      model.ConversationContext
	Confidence float64
	// Fields lists which context fields the pass populated.
	Fields []string
}

// Extractor inspects a lowercased response and returns a context patch plus
// the field names it populated. A nil-field return means no match.
type Extractor func(text string) (model.ConversationContext, []string)

// cascade is the ordered extractor list. Order matters only across
// extractors that touch the same field; first populate wins.
var cascade = []Extractor{
	extractName,
	extractYears,
	extractGCI,
	extractTransactions,
	extractLeadVolume,
	extractResponseTime,
	extractCRM,
	extractStructure,
	extractTeamSize,
	extractChallenges,
	extractHours,
}

// Extract runs the full cascade over a free-text response.
func Extract(text string) Result {
	return run(strings.ToLower(strings.TrimSpace(text)), cascade)
}

// ExtractForQuestion runs extraction with the asked question as a hint: a
// bare numeric answer is attributed to the field the question asked about,
// then the general cascade fills anything else it can.
func ExtractForQuestion(q *model.Question, text string) Result {
	lower := strings.ToLower(strings.TrimSpace(text))

	var directed []Extractor
	if q != nil {
		if e := directedExtractor(q); e != nil {
			directed = append(directed, e)
		}
	}
	return run(lower, append(directed, cascade...))
}

func run(lower string, extractors []Extractor) Result {
	var res Result
	if lower == "" {
		return res
	}
	populated := make(map[string]bool)
	for _, extract := range extractors {
		patch, fields := extract(lower)
		if len(fields) == 0 {
			continue
		}
		fresh := false
		for _, f := range fields {
			if !populated[f] {
				populated[f] = true
				res.Fields = append(res.Fields, f)
				fresh = true
			}
		}
		if fresh {
			res.Patch.Merge(patch)
		}
	}
	if len(res.Fields) > 0 {
		res.Confidence = heuristicConfidence
	}
	return res
}

// directedExtractor maps a question's leading tag to a bare-value parser.
func directedExtractor(q *model.Question) Extractor {
	tag := ""
	if len(q.Tags) > 0 {
		tag = q.Tags[0]
	}
	switch tag {
	case "volume", "transactions":
		return func(text string) (model.ConversationContext, []string) {
			if n, ok := ApproxCount(text); ok {
				return model.ConversationContext{LastYearTransactions: model.Ptr(n)}, []string{"last_year_transactions"}
			}
			return model.ConversationContext{}, nil
		}
	case "leads", "lead_volume":
		return func(text string) (model.ConversationContext, []string) {
			if n, ok := ApproxCount(text); ok {
				return model.ConversationContext{MonthlyLeadVolume: model.Ptr(n)}, []string{"monthly_lead_volume"}
			}
			return model.ConversationContext{}, nil
		}
	case "gci":
		return func(text string) (model.ConversationContext, []string) {
			if v, ok := ApproxDollars(text); ok {
				return model.ConversationContext{LastYearGCI: model.Ptr(v)}, []string{"last_year_gci"}
			}
			return model.ConversationContext{}, nil
		}
	case "pricing", "price_point":
		return func(text string) (model.ConversationContext, []string) {
			if v, ok := ApproxDollars(text); ok {
				return model.ConversationContext{AvgSalePrice: model.Ptr(v)}, []string{"avg_sale_price"}
			}
			return model.ConversationContext{}, nil
		}
	case "experience":
		return func(text string) (model.ConversationContext, []string) {
			if n, ok := ApproxCount(text); ok {
				return model.ConversationContext{YearsExperience: model.Ptr(n)}, []string{"years_experience"}
			}
			return model.ConversationContext{}, nil
		}
	case "readiness":
		return func(text string) (model.ConversationContext, []string) {
			if n, ok := ApproxCount(text); ok {
				if n < 0 {
					n = 0
				}
				if n > 100 {
					n = 100
				}
				return model.ConversationContext{AutomationReadiness: model.Ptr(n)}, []string{"automation_readiness"}
			}
			return model.ConversationContext{}, nil
		}
	case "team":
		return func(text string) (model.ConversationContext, []string) {
			if n, ok := ApproxCount(text); ok {
				return model.ConversationContext{TeamSize: model.Ptr(n)}, []string{"team_size"}
			}
			return model.ConversationContext{}, nil
		}
	case "admin_time":
		return func(text string) (model.ConversationContext, []string) {
			if n, ok := ApproxCount(text); ok {
				return model.ConversationContext{AdminHoursPerWeek: model.Ptr(n)}, []string{"admin_hours_per_week"}
			}
			return model.ConversationContext{}, nil
		}
	case "time":
		return func(text string) (model.ConversationContext, []string) {
			if n, ok := ApproxCount(text); ok {
				return model.ConversationContext{HoursPerWeek: model.Ptr(n)}, []string{"hours_per_week"}
			}
			return model.ConversationContext{}, nil
		}
	case "market", "location":
		return func(text string) (model.ConversationContext, []string) {
			area := strings.TrimSpace(text)
			if area == "" || len(area) > 80 {
				return model.ConversationContext{}, nil
			}
			return model.ConversationContext{MarketArea: model.Ptr(area)}, []string{"market_area"}
		}
	case "stage":
		return extractStage
	case "goals", "growth":
		return func(text string) (model.ConversationContext, []string) {
			goal := strings.TrimSpace(text)
			if goal == "" {
				return model.ConversationContext{}, nil
			}
			return model.ConversationContext{GrowthGoal: model.Ptr(goal)}, []string{"growth_goal"}
		}
	}
	return nil
}

var namePattern = regexp.MustCompile(`(?:my name is|i'm|i am|im|this is|call me)\s+([a-z]+)`)

// nameStopwords are words that follow "I'm" without being a name.
var nameStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "not": true, "just": true,
	"pretty": true, "really": true, "doing": true, "working": true,
	"currently": true, "about": true, "only": true, "still": true,
}

func extractName(text string) (model.ConversationContext, []string) {
	m := namePattern.FindStringSubmatch(text)
	if m == nil || nameStopwords[m[1]] {
		return model.ConversationContext{}, nil
	}
	name := strings.ToUpper(m[1][:1]) + m[1][1:]
	return model.ConversationContext{AgentName: model.Ptr(name)}, []string{"agent_name"}
}

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years?|yrs?)`)

func extractYears(text string) (model.ConversationContext, []string) {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return model.ConversationContext{}, nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > 60 {
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{YearsExperience: model.Ptr(n)}, []string{"years_experience"}
}

func extractGCI(text string) (model.ConversationContext, []string) {
	if !containsAny(text, "gci", "commission", "income", "grossed", "earned", "made") {
		return model.ConversationContext{}, nil
	}
	v, ok := ApproxDollars(text)
	if !ok {
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{LastYearGCI: model.Ptr(v)}, []string{"last_year_gci"}
}

func extractTransactions(text string) (model.ConversationContext, []string) {
	if !containsAny(text, "transaction", "deal", "close", "sale", "side", "unit") {
		return model.ConversationContext{}, nil
	}
	n, ok := ApproxCount(text)
	if !ok {
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{LastYearTransactions: model.Ptr(n)}, []string{"last_year_transactions"}
}

func extractLeadVolume(text string) (model.ConversationContext, []string) {
	if !strings.Contains(text, "lead") {
		return model.ConversationContext{}, nil
	}
	n, ok := ApproxCount(text)
	if !ok {
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{MonthlyLeadVolume: model.Ptr(n)}, []string{"monthly_lead_volume"}
}

// responseTimeBuckets maps answer phrases to the canonical response-time
// keys used by the benchmark tables.
var responseTimeBuckets = []struct {
	keywords []string
	value    string
}{
	{[]string{"5 min", "five min", "immediately", "right away", "instantly", "within minutes"}, "under_5min"},
	{[]string{"within the hour", "an hour", "1 hour", "under an hour", "30 min", "half hour"}, "under_1hour"},
	{[]string{"same day", "that day", "by the end of the day", "few hours"}, "same_day"},
	{[]string{"next day", "24 hours", "day or two", "tomorrow"}, "next_day"},
	{[]string{"varies", "depends", "when i can", "whenever"}, "varies"},
}

func extractResponseTime(text string) (model.ConversationContext, []string) {
	for _, b := range responseTimeBuckets {
		if containsAny(text, b.keywords...) {
			return model.ConversationContext{LeadResponseTime: model.Ptr(b.value)}, []string{"lead_response_time"}
		}
	}
	return model.ConversationContext{}, nil
}

// knownCRMs is the fixed short list the heuristic matches against.
var knownCRMs = []struct {
	keyword   string
	canonical string
}{
	{"follow up boss", "Follow Up Boss"},
	{"followup boss", "Follow Up Boss"},
	{"fub", "Follow Up Boss"},
	{"kvcore", "kvCORE"},
	{"chime", "Chime"},
	{"wise agent", "Wise Agent"},
	{"top producer", "Top Producer"},
	{"liondesk", "LionDesk"},
	{"sierra", "Sierra Interactive"},
	{"boomtown", "BoomTown"},
	{"salesforce", "Salesforce"},
	{"hubspot", "HubSpot"},
	{"realgeeks", "Real Geeks"},
}

func extractCRM(text string) (model.ConversationContext, []string) {
	for _, c := range knownCRMs {
		if strings.Contains(text, c.keyword) {
			return model.ConversationContext{CurrentCRM: model.Ptr(c.canonical)}, []string{"current_crm"}
		}
	}
	if containsAny(text, "no crm", "don't have a crm", "dont have a crm", "spreadsheet", "sticky notes") {
		return model.ConversationContext{CurrentCRM: model.Ptr("none")}, []string{"current_crm"}
	}
	return model.ConversationContext{}, nil
}

func extractStructure(text string) (model.ConversationContext, []string) {
	var bs model.BusinessStructure
	switch {
	case containsAny(text, "solo", "by myself", "on my own", "just me"):
		bs = model.StructureSoloAgent
	case containsAny(text, "broker owner", "broker/owner", "own a brokerage", "own the brokerage", "my brokerage"):
		bs = model.StructureBrokerageOwner
	case containsAny(text, "team lead", "run a team", "lead a team", "my team of"):
		bs = model.StructureTeamLead
	case containsAny(text, "on a team", "part of a team", "team member"):
		bs = model.StructureTeamMember
	default:
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{BusinessStructure: model.Ptr(bs)}, []string{"business_structure"}
}

var teamSizePattern = regexp.MustCompile(`team of (\d+)|(\d+)\s*(?:agents|people) on`)

func extractTeamSize(text string) (model.ConversationContext, []string) {
	m := teamSizePattern.FindStringSubmatch(text)
	if m == nil {
		return model.ConversationContext{}, nil
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{TeamSize: model.Ptr(n)}, []string{"team_size"}
}

// challengeBuckets maps keyword groups to canonical challenge labels.
var challengeBuckets = []struct {
	keywords []string
	label    string
}{
	{[]string{"lead gen", "not enough leads", "need more leads", "finding leads", "finding clients"}, "Lead generation"},
	{[]string{"follow up", "follow-up", "following up", "leads slip", "falling through the cracks"}, "Follow-up consistency"},
	{[]string{"time management", "not enough time", "no time", "too busy", "overwhelmed", "burned out", "burnt out"}, "Time management"},
	{[]string{"transaction", "paperwork", "contract to close", "coordination"}, "Transaction coordination"},
	{[]string{"marketing", "social media", "staying visible", "brand"}, "Marketing"},
	{[]string{"database", "past clients", "sphere", "staying in touch"}, "Database management"},
}

func extractChallenges(text string) (model.ConversationContext, []string) {
	var found []string
	for _, b := range challengeBuckets {
		if containsAny(text, b.keywords...) {
			found = append(found, b.label)
		}
	}
	if len(found) == 0 {
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{BiggestChallenges: found}, []string{"biggest_challenges"}
}

var hoursPattern = regexp.MustCompile(`(\d+)\s*(?:\+\s*)?hours?`)

func extractHours(text string) (model.ConversationContext, []string) {
	m := hoursPattern.FindStringSubmatch(text)
	if m == nil {
		return model.ConversationContext{}, nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > 120 {
		return model.ConversationContext{}, nil
	}
	if containsAny(text, "admin", "paperwork", "data entry") {
		return model.ConversationContext{AdminHoursPerWeek: model.Ptr(n)}, []string{"admin_hours_per_week"}
	}
	if containsAny(text, "week", "weekly") {
		return model.ConversationContext{HoursPerWeek: model.Ptr(n)}, []string{"hours_per_week"}
	}
	return model.ConversationContext{}, nil
}

func extractStage(text string) (model.ConversationContext, []string) {
	var stage string
	switch {
	case containsAny(text, "just start", "starting out", "new to", "first year"):
		stage = "starting"
	case containsAny(text, "scaling", "growing", "growth mode", "expanding"):
		stage = "scaling"
	case containsAny(text, "established", "mature", "steady", "plateau"):
		stage = "established"
	default:
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext{GrowthStage: model.Ptr(stage)}, []string{"growth_stage"}
}
