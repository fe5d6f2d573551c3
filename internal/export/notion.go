package export

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/notion"
)

// NotionExporter creates one page per assessment in a Notion leads database.
type NotionExporter struct {
	client notion.Client
	leadDB string
}

func NewNotionExporter(client notion.Client, leadDB string) *NotionExporter {
	return &NotionExporter{client: client, leadDB: leadDB}
}

func (e *NotionExporter) Export(ctx context.Context, rpt *model.Report) (string, error) {
	if e.leadDB == "" {
		return "", eris.New("export: notion lead database ID not configured")
	}

	if existing, err := e.findBySession(ctx, rpt.SessionID); err != nil {
		return "", err
	} else if existing != "" {
		zap.L().Info("export: lead already in notion",
			zap.String("session_id", rpt.SessionID),
			zap.String("page_id", existing),
		)
		return existing, nil
	}

	name := rpt.Profile.AgentName
	if name == "" {
		name = fmt.Sprintf("Assessment %s", rpt.SessionID)
	}

	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(e.leadDB),
		},
		Properties: notionapi.Properties{
			"Name": notionapi.TitleProperty{
				Title: []notionapi.RichText{{Text: &notionapi.Text{Content: name}}},
			},
			"Automation Score": notionapi.NumberProperty{
				Number: float64(rpt.AutomationScore),
			},
			"Monthly Savings": notionapi.NumberProperty{
				Number: rpt.ROI.TotalMonthlySavings,
			},
			"Payback Months": notionapi.NumberProperty{
				Number: rpt.ROI.PaybackMonths,
			},
			"Session ID": notionapi.RichTextProperty{
				RichText: []notionapi.RichText{{Text: &notionapi.Text{Content: rpt.SessionID}}},
			},
			"Source": notionapi.SelectProperty{
				Select: notionapi.Option{Name: string(rpt.RecommendationSource)},
			},
		},
	}

	page, err := e.client.CreatePage(ctx, req)
	if err != nil {
		return "", eris.Wrap(err, "export: notion create lead page")
	}

	zap.L().Info("export: lead pushed to notion",
		zap.String("session_id", rpt.SessionID),
		zap.String("page_id", string(page.ID)),
	)
	return string(page.ID), nil
}

// findBySession looks up an existing lead page by its Session ID property so
// a regenerated report does not create a duplicate lead.
func (e *NotionExporter) findBySession(ctx context.Context, sessionID string) (string, error) {
	resp, err := e.client.QueryDatabase(ctx, e.leadDB, &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "Session ID",
			RichText: &notionapi.TextFilterCondition{Equals: sessionID},
		},
		PageSize: 1,
	})
	if err != nil {
		return "", eris.Wrap(err, "export: notion lead lookup")
	}
	if len(resp.Results) == 0 {
		return "", nil
	}
	return string(resp.Results[0].ID), nil
}
