package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/salesforce"
)

// SalesforceExporter inserts each assessment as a Lead sObject.
type SalesforceExporter struct {
	client salesforce.Client
}

func NewSalesforceExporter(client salesforce.Client) *SalesforceExporter {
	return &SalesforceExporter{client: client}
}

func (e *SalesforceExporter) Export(ctx context.Context, rpt *model.Report) (string, error) {
	first, last := splitName(rpt.Profile.AgentName)

	if existing, err := e.findLead(ctx, first, last); err != nil {
		return "", err
	} else if existing != "" {
		zap.L().Info("export: lead already in salesforce",
			zap.String("session_id", rpt.SessionID),
			zap.String("lead_id", existing),
		)
		return existing, nil
	}

	record := map[string]any{
		"FirstName":         first,
		"LastName":          last,
		"Company":           "Self (Real Estate Agent)",
		"Industry":          rpt.Profile.Industry,
		"LeadSource":        "Automation Assessment",
		"Description":       leadDescription(rpt),
		"AnnualRevenue":     rpt.Profile.AnnualGCI,
		"NumberOfEmployees": rpt.Profile.TeamSize,
	}

	id, err := e.client.InsertOne(ctx, "Lead", record)
	if err != nil {
		return "", eris.Wrap(err, "export: salesforce insert lead")
	}

	zap.L().Info("export: lead pushed to salesforce",
		zap.String("session_id", rpt.SessionID),
		zap.String("lead_id", id),
	)
	return id, nil
}

// leadRecord is the SOQL shape for lead-existence lookups.
type leadRecord struct {
	ID string `json:"Id" salesforce:"Id"`
}

// findLead checks for an assessment-sourced Lead with the same name so a
// regenerated report does not create a duplicate.
func (e *SalesforceExporter) findLead(ctx context.Context, first, last string) (string, error) {
	soql := fmt.Sprintf(
		"SELECT Id FROM Lead WHERE FirstName = '%s' AND LastName = '%s' AND LeadSource = 'Automation Assessment' LIMIT 1",
		escapeSoql(first), escapeSoql(last),
	)

	var leads []leadRecord
	if err := e.client.Query(ctx, soql, &leads); err != nil {
		return "", eris.Wrap(err, "export: salesforce lead lookup")
	}
	if len(leads) == 0 {
		return "", nil
	}
	return leads[0].ID, nil
}

// escapeSoql escapes single quotes in SOQL string literals to prevent injection.
func escapeSoql(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

func leadDescription(rpt *model.Report) string {
	var b strings.Builder
	b.WriteString("Automation assessment ")
	b.WriteString(rpt.SessionID)
	b.WriteString("\n")
	for _, r := range rpt.Recommendations {
		b.WriteString("- ")
		b.WriteString(r)
		b.WriteString("\n")
	}
	return b.String()
}

// splitName breaks a full name into first/last. Salesforce requires a
// LastName, so a missing name becomes "Unknown".
func splitName(full string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(full))
	switch len(fields) {
	case 0:
		return "", "Unknown"
	case 1:
		return "", fields[0]
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
