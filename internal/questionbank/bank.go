// Package questionbank holds the static questionnaire catalog: seven
// weighted sections covering fifty questions about a real-estate agent's
// business. The bank is compiled in; LoadYAML allows a vetted override file.
package questionbank

import (
	"sync"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

var (
	bankOnce sync.Once
	bank     *model.QuestionBank
)

// Bank returns the singleton question bank with question counts populated.
func Bank() *model.QuestionBank {
	bankOnce.Do(func() {
		bank = build()
		finalize(bank)
	})
	return bank
}

// finalize fills derived counts on a bank.
func finalize(b *model.QuestionBank) {
	b.TotalQuestions = 0
	b.RequiredQuestions = 0
	for _, s := range b.Sections {
		b.TotalQuestions += len(s.Questions)
		b.RequiredQuestions += s.RequiredCount()
	}
}

func build() *model.QuestionBank {
	return &model.QuestionBank{Sections: []model.Section{
		foundationSection(),
		systemsSection(),
		leadGenSection(),
		marketingSection(),
		transactionSection(),
		marketSection(),
		goalsSection(),
	}}
}

func foundationSection() model.Section {
	return model.Section{
		ID:          model.SectionFoundation,
		Name:        "Business Foundation",
		Description: "Who you are and the shape of your business today.",
		Weight:      15,
		Required:    true,
		CompletionCriteria: model.CompletionCriteria{
			MinimumQuestions: 6,
			RequiredTopics:   []string{"experience", "volume"},
		},
		Questions: []model.Question{
			{
				ID: "foundation_name", Section: model.SectionFoundation,
				Text:    "Before we dig in, what's your name?",
				Purpose: "Personalize the conversation and the report.",
				Weight:  10, Required: true,
				Tags: []string{"identity"},
			},
			{
				ID: "foundation_experience", Section: model.SectionFoundation,
				Text:    "How many years have you been in real estate?",
				Purpose: "Anchor benchmarks to career stage.",
				Weight:  10, Required: true,
				Tags:           []string{"experience"},
				QuickResponses: []string{"Less than 2 years", "2-5 years", "5-10 years", "10+ years"},
			},
			{
				ID: "foundation_transactions", Section: model.SectionFoundation,
				Text:    "Roughly how many transactions did you close last year?",
				Purpose: "Primary volume metric for benchmarking.",
				Weight:  10, Required: true,
				Tags: []string{"volume"},
				Variations: map[model.BusinessStructure]string{
					model.StructureTeamLead:       "Roughly how many transactions did your team close last year?",
					model.StructureBrokerageOwner: "Roughly how many transactions did your brokerage close last year?",
				},
				QuickResponses:   []string{"Under 10", "10-25", "25-50", "50+"},
				FollowUpTriggers: []string{"foundation_gci"},
			},
			{
				ID: "foundation_gci", Section: model.SectionFoundation,
				Text:    "What was your GCI (gross commission income) last year, ballpark?",
				Purpose: "Revenue metric for ROI sizing.",
				Weight:  9, Required: true,
				Tags:           []string{"gci"},
				QuickResponses: []string{"Under $100k", "$100k-$250k", "$250k-$500k", "$500k+"},
			},
			{
				ID: "foundation_structure", Section: model.SectionFoundation,
				Text:    "How is your business structured?",
				Purpose: "Switch question phrasing and opportunity templates.",
				Weight:  9, Required: true,
				Tags:             []string{"structure"},
				QuickResponses:   []string{"Solo agent", "Team lead", "Team member", "Broker/owner"},
				FollowUpTriggers: []string{"foundation_team_size"},
			},
			{
				ID: "foundation_market_area", Section: model.SectionFoundation,
				Text:    "What market area do you primarily work in?",
				Purpose: "Localize competitive framing.",
				Weight:  8, Required: true,
				Tags: []string{"market"},
			},
			{
				ID: "foundation_team_size", Section: model.SectionFoundation,
				Text:    "How many people are on your team, including you?",
				Purpose: "Team size drives delegation opportunities.",
				Weight:  6, Required: false,
				Tags:         []string{"team"},
				Dependencies: []string{"foundation_structure"},
			},
			{
				ID: "foundation_avg_price", Section: model.SectionFoundation,
				Text:    "What's your average sale price?",
				Purpose: "Convert transaction counts to dollar volume.",
				Weight:  5, Required: false,
				Tags: []string{"pricing"},
			},
		},
	}
}

func systemsSection() model.Section {
	return model.Section{
		ID:          model.SectionSystems,
		Name:        "Current Systems",
		Description: "The tools and processes running your business day to day.",
		Weight:      20,
		Required:    true,
		CompletionCriteria: model.CompletionCriteria{
			MinimumQuestions: 5,
			RequiredTopics:   []string{"crm"},
		},
		Questions: []model.Question{
			{
				ID: "systems_crm", Section: model.SectionSystems,
				Text:    "What CRM are you using right now, if any?",
				Purpose: "Integration anchor for automation recommendations.",
				Weight:  10, Required: true,
				Tags:           []string{"crm"},
				QuickResponses: []string{"Follow Up Boss", "kvCORE", "Chime", "Wise Agent", "Something else", "No CRM"},
			},
			{
				ID: "systems_automation", Section: model.SectionSystems,
				Text:    "Do you have any automated follow-up running today — drip campaigns, auto-texts, anything like that?",
				Purpose: "Baseline automation maturity.",
				Weight:  9, Required: true,
				Tags:           []string{"automation"},
				QuickResponses: []string{"Yes, quite a bit", "A little", "No, it's all manual"},
			},
			{
				ID: "systems_lead_routing", Section: model.SectionSystems,
				Text:    "When a new lead comes in, walk me through what happens first.",
				Purpose: "Find manual hand-offs in the intake path.",
				Weight:  8, Required: true,
				Tags: []string{"workflow"},
			},
			{
				ID: "systems_followup_process", Section: model.SectionSystems,
				Text:    "How do you keep track of who needs a follow-up call or text each day?",
				Purpose: "Reveal reminder and cadence gaps.",
				Weight:  8, Required: true,
				Tags: []string{"followup"},
			},
			{
				ID: "systems_admin_hours", Section: model.SectionSystems,
				Text:    "How many hours a week do you spend on admin work — data entry, scheduling, paperwork?",
				Purpose: "Quantify recoverable time.",
				Weight:  8, Required: true,
				Tags:           []string{"admin_time"},
				QuickResponses: []string{"Under 5", "5-10", "10-20", "20+"},
			},
			{
				ID: "systems_task_time", Section: model.SectionSystems,
				Text:    "Which tasks eat the most of your week? Give me your top two or three with rough hours.",
				Purpose: "Feed the time-wasted bucket of the automation score.",
				Weight:  7, Required: true,
				Tags: []string{"task_time"},
			},
			{
				ID: "systems_tools", Section: model.SectionSystems,
				Text:    "What other tools are in your stack — dialers, transaction platforms, marketing software?",
				Purpose: "Map the integration surface.",
				Weight:  6, Required: false,
				Tags: []string{"tools"},
			},
			{
				ID: "systems_pain", Section: model.SectionSystems,
				Text:    "Where does your current setup frustrate you the most?",
				Purpose: "Surface challenges in the owner's own words.",
				Weight:  5, Required: false,
				Tags: []string{"pain_points"},
			},
		},
	}
}

func leadGenSection() model.Section {
	return model.Section{
		ID:          model.SectionLeadGen,
		Name:        "Lead Generation",
		Description: "Where business comes from and how fast you respond.",
		Weight:      20,
		Required:    true,
		CompletionCriteria: model.CompletionCriteria{
			MinimumQuestions: 5,
			RequiredTopics:   []string{"leads"},
		},
		Questions: []model.Question{
			{
				ID: "leadgen_monthly_volume", Section: model.SectionLeadGen,
				Text:    "About how many new leads do you get in a typical month?",
				Purpose: "Volume metric for benchmark tiers.",
				Weight:  10, Required: true,
				Tags:           []string{"leads"},
				QuickResponses: []string{"Under 10", "10-30", "30-75", "75+"},
			},
			{
				ID: "leadgen_sources", Section: model.SectionLeadGen,
				Text:    "Where do most of those leads come from?",
				Purpose: "Channel mix informs nurture recommendations.",
				Weight:  9, Required: true,
				Tags:           []string{"lead_sources"},
				QuickResponses: []string{"Referrals", "Zillow/portals", "Social media", "Sphere", "Paid ads", "Open houses"},
			},
			{
				ID: "leadgen_response_time", Section: model.SectionLeadGen,
				Text:    "When a new lead comes in, how quickly do you usually get back to them?",
				Purpose: "Speed-to-lead is the largest conversion lever.",
				Weight:  9, Required: true,
				Tags:           []string{"response_time"},
				QuickResponses: []string{"Within 5 minutes", "Within the hour", "Same day", "Next day", "Honestly, it varies"},
			},
			{
				ID: "leadgen_conversion", Section: model.SectionLeadGen,
				Text:    "Of the leads you get, roughly what share turns into a client?",
				Purpose: "Conversion baseline for ROI math.",
				Weight:  8, Required: true,
				Tags: []string{"conversion"},
			},
			{
				ID: "leadgen_followup_cadence", Section: model.SectionLeadGen,
				Text:    "How many times do you typically follow up with a lead before you let it go?",
				Purpose: "Persistence gap detection.",
				Weight:  7, Required: true,
				Tags: []string{"cadence"},
			},
			{
				ID: "leadgen_nurture", Section: model.SectionLeadGen,
				Text:    "What happens to leads that aren't ready to buy or sell for six months or more?",
				Purpose: "Long-term nurture is the most automatable gap.",
				Weight:  7, Required: true,
				Tags: []string{"nurture"},
			},
			{
				ID: "leadgen_cost", Section: model.SectionLeadGen,
				Text:    "Do you know roughly what you pay per lead on your paid channels?",
				Purpose: "Cost basis for ROI projections.",
				Weight:  6, Required: false,
				Tags: []string{"lead_cost"},
			},
			{
				ID: "leadgen_database_size", Section: model.SectionLeadGen,
				Text:    "How many contacts are sitting in your database right now?",
				Purpose: "Dormant-database reactivation sizing.",
				Weight:  5, Required: false,
				Tags: []string{"database"},
			},
		},
	}
}

func marketingSection() model.Section {
	return model.Section{
		ID:          model.SectionMarketing,
		Name:        "Marketing",
		Description: "How you stay visible to your market and your sphere.",
		Weight:      15,
		Required:    false,
		CompletionCriteria: model.CompletionCriteria{
			MinimumQuestions: 4,
		},
		Questions: []model.Question{
			{
				ID: "marketing_channels", Section: model.SectionMarketing,
				Text:    "Which marketing channels are you active on today?",
				Purpose: "Channel inventory.",
				Weight:  9, Required: true,
				Tags:           []string{"channels"},
				QuickResponses: []string{"Social media", "Email", "Direct mail", "Video", "Events"},
			},
			{
				ID: "marketing_social", Section: model.SectionMarketing,
				Text:    "How often do you post to social media, and who creates the content?",
				Purpose: "Content automation candidate.",
				Weight:  8, Required: true,
				Tags: []string{"social"},
			},
			{
				ID: "marketing_content", Section: model.SectionMarketing,
				Text:    "Do you send a regular newsletter or market update to your database?",
				Purpose: "Recurring content cadence check.",
				Weight:  7, Required: true,
				Tags: []string{"content"},
			},
			{
				ID: "marketing_budget", Section: model.SectionMarketing,
				Text:    "What does a typical month of marketing spend look like for you?",
				Purpose: "Budget envelope for recommendations.",
				Weight:  7, Required: true,
				Tags: []string{"budget"},
			},
			{
				ID: "marketing_listing", Section: model.SectionMarketing,
				Text:    "When you take a new listing, what marketing happens automatically versus by hand?",
				Purpose: "Listing-launch automation candidate.",
				Weight:  6, Required: false,
				Tags: []string{"listing_marketing"},
			},
			{
				ID: "marketing_sphere", Section: model.SectionMarketing,
				Text:    "How do you stay in touch with past clients and your sphere?",
				Purpose: "Repeat/referral engine check.",
				Weight:  5, Required: false,
				Tags: []string{"sphere"},
			},
			{
				ID: "marketing_brand", Section: model.SectionMarketing,
				Text:    "Anything you do that sets your brand apart locally?",
				Purpose: "Differentiators for the competitive section.",
				Weight:  4, Required: false,
				Tags: []string{"brand"},
			},
		},
	}
}

func transactionSection() model.Section {
	return model.Section{
		ID:          model.SectionTransactions,
		Name:        "Transaction Management",
		Description: "Contract-to-close, the most checklist-driven part of the business.",
		Weight:      15,
		Required:    true,
		CompletionCriteria: model.CompletionCriteria{
			MinimumQuestions: 4,
			RequiredTopics:   []string{"coordination"},
		},
		Questions: []model.Question{
			{
				ID: "transaction_coordination", Section: model.SectionTransactions,
				Text:    "Who handles transaction coordination once a contract is signed — you, a TC, or your team?",
				Purpose: "Coordination model drives the biggest recommendations.",
				Weight:  9, Required: true,
				Tags:           []string{"coordination"},
				QuickResponses: []string{"I do it myself", "Dedicated TC", "Shared with team", "Outsourced"},
			},
			{
				ID: "transaction_checklist", Section: model.SectionTransactions,
				Text:    "Do you run deals off a standard checklist, or does each one get managed ad hoc?",
				Purpose: "Process maturity check.",
				Weight:  8, Required: true,
				Tags: []string{"checklists"},
			},
			{
				ID: "transaction_communication", Section: model.SectionTransactions,
				Text:    "How do clients get status updates during a transaction?",
				Purpose: "Client-update automation candidate.",
				Weight:  8, Required: true,
				Tags: []string{"client_updates"},
			},
			{
				ID: "transaction_compliance", Section: model.SectionTransactions,
				Text:    "How do you make sure required documents and deadlines don't slip?",
				Purpose: "Deadline-tracking automation candidate.",
				Weight:  7, Required: true,
				Tags: []string{"compliance"},
			},
			{
				ID: "transaction_closing", Section: model.SectionTransactions,
				Text:    "What does the week before closing look like for you?",
				Purpose: "Concentrated manual effort window.",
				Weight:  7, Required: true,
				Tags: []string{"closing"},
			},
			{
				ID: "transaction_volume_handling", Section: model.SectionTransactions,
				Text:    "At what number of simultaneous deals do things start to crack?",
				Purpose: "Capacity ceiling for growth planning.",
				Weight:  5, Required: false,
				Tags: []string{"capacity"},
			},
			{
				ID: "transaction_post_close", Section: model.SectionTransactions,
				Text:    "What happens with a client after closing day?",
				Purpose: "Post-close nurture check.",
				Weight:  5, Required: false,
				Tags: []string{"post_close"},
			},
		},
	}
}

func marketSection() model.Section {
	return model.Section{
		ID:          model.SectionMarket,
		Name:        "Market Analysis",
		Description: "Your competitive position in the local market.",
		Weight:      5,
		Required:    false,
		CompletionCriteria: model.CompletionCriteria{
			MinimumQuestions: 2,
		},
		Questions: []model.Question{
			{
				ID: "market_competition", Section: model.SectionMarket,
				Text:    "Who are you usually up against for listings in your area?",
				Purpose: "Competitive framing for the report.",
				Weight:  7, Required: true,
				Tags: []string{"competition"},
			},
			{
				ID: "market_trends", Section: model.SectionMarket,
				Text:    "How has your local market shifted over the past year?",
				Purpose: "Market context for recommendations.",
				Weight:  6, Required: true,
				Tags: []string{"trends"},
			},
			{
				ID: "market_inventory", Section: model.SectionMarket,
				Text:    "Is inventory tight enough that buyer-side speed matters more than usual?",
				Purpose: "Adjust speed-to-lead emphasis.",
				Weight:  5, Required: false,
				Tags: []string{"inventory"},
			},
			{
				ID: "market_niche", Section: model.SectionMarket,
				Text:    "Do you specialize in a niche — luxury, first-time buyers, investors, relocation?",
				Purpose: "Tailor opportunity templates.",
				Weight:  4, Required: false,
				Tags: []string{"niche"},
			},
			{
				ID: "market_geographic_focus", Section: model.SectionMarket,
				Text:    "Do you farm specific neighborhoods, or work the whole metro?",
				Purpose: "Geographic farming automation candidate.",
				Weight:  4, Required: false,
				Tags: []string{"geo_focus"},
			},
		},
	}
}

func goalsSection() model.Section {
	return model.Section{
		ID:          model.SectionGoals,
		Name:        "Goals",
		Description: "Where you want the business to go and what's in the way.",
		Weight:      10,
		Required:    true,
		CompletionCriteria: model.CompletionCriteria{
			MinimumQuestions: 3,
			RequiredTopics:   []string{"goals"},
		},
		Questions: []model.Question{
			{
				ID: "goals_growth", Section: model.SectionGoals,
				Text:    "What's the big goal for the next twelve months?",
				Purpose: "North star for the roadmap.",
				Weight:  10, Required: true,
				Tags: []string{"goals"},
			},
			{
				ID: "goals_challenges", Section: model.SectionGoals,
				Text:    "What's the single biggest thing holding you back right now?",
				Purpose: "Primary challenge drives opportunity ranking.",
				Weight:  9, Required: true,
				Tags:           []string{"challenges"},
				QuickResponses: []string{"Lead generation", "Follow-up consistency", "Time management", "Transaction chaos", "Marketing"},
			},
			{
				ID: "goals_readiness", Section: model.SectionGoals,
				Text:    "On a scale of 1 to 100, how ready are you to hand routine work to automation?",
				Purpose: "Readiness feeds the automation score directly.",
				Weight:  8, Required: true,
				Tags: []string{"readiness"},
			},
			{
				ID: "goals_stage", Section: model.SectionGoals,
				Text:    "How would you describe the stage of your business: just starting, scaling, or established?",
				Purpose: "Stage gates the maturity bucket.",
				Weight:  7, Required: true,
				Tags:           []string{"stage"},
				QuickResponses: []string{"Just starting", "Scaling", "Established"},
			},
			{
				ID: "goals_hours", Section: model.SectionGoals,
				Text:    "How many hours a week are you working these days?",
				Purpose: "Workload baseline for time-savings framing.",
				Weight:  6, Required: false,
				Tags: []string{"time"},
			},
			{
				ID: "goals_revenue_target", Section: model.SectionGoals,
				Text:    "Is there a monthly revenue number you're aiming for?",
				Purpose: "Revenue target for ROI framing.",
				Weight:  5, Required: false,
				Tags: []string{"revenue_target"},
			},
			{
				ID: "goals_timeline", Section: model.SectionGoals,
				Text:    "How fast do you want to move on changes — weeks, or quarters?",
				Purpose: "Roadmap pacing.",
				Weight:  4, Required: false,
				Tags: []string{"timeline"},
			},
		},
	}
}
