package export

import (
	"context"
	"strings"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

func testReport() *model.Report {
	return &model.Report{
		SessionID: "sess-42",
		Profile: model.BusinessProfile{
			AgentName: "Sarah Chen",
			Industry:  "real_estate",
			AnnualGCI: 180000,
			TeamSize:  2,
		},
		AutomationScore:      75,
		RecommendationSource: model.RecommendationSourceFallback,
		ROI: model.ROIProjection{
			TotalMonthlySavings: 2000,
			PaybackMonths:       2.0,
		},
		Recommendations: []string{"Automate lead response"},
	}
}

type stubNotionClient struct {
	queryReq  *notionapi.DatabaseQueryRequest
	queryResp *notionapi.DatabaseQueryResponse
	queryErr  error
	created   *notionapi.PageCreateRequest
}

func (s *stubNotionClient) QueryDatabase(_ context.Context, _ string, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	s.queryReq = req
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if s.queryResp != nil {
		return s.queryResp, nil
	}
	return &notionapi.DatabaseQueryResponse{}, nil
}

func (s *stubNotionClient) CreatePage(_ context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	s.created = req
	return &notionapi.Page{ID: "page-1"}, nil
}

func TestNotionExport_CreatesLeadPage(t *testing.T) {
	client := &stubNotionClient{}
	exp := NewNotionExporter(client, "leads-db")

	ref, err := exp.Export(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "page-1", ref)

	// The duplicate lookup filters on the session ID property.
	require.NotNil(t, client.queryReq)
	pf, ok := client.queryReq.Filter.(notionapi.PropertyFilter)
	require.True(t, ok)
	assert.Equal(t, "Session ID", pf.Property)
	require.NotNil(t, pf.RichText)
	assert.Equal(t, "sess-42", pf.RichText.Equals)

	require.NotNil(t, client.created)
	title, ok := client.created.Properties["Name"].(notionapi.TitleProperty)
	require.True(t, ok)
	require.NotEmpty(t, title.Title)
	assert.Equal(t, "Sarah Chen", title.Title[0].Text.Content)
}

func TestNotionExport_ExistingLeadNotDuplicated(t *testing.T) {
	client := &stubNotionClient{
		queryResp: &notionapi.DatabaseQueryResponse{
			Results: []notionapi.Page{{ID: "page-existing"}},
		},
	}
	exp := NewNotionExporter(client, "leads-db")

	ref, err := exp.Export(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "page-existing", ref)
	assert.Nil(t, client.created)
}

func TestNotionExport_LookupFailureSurfaces(t *testing.T) {
	client := &stubNotionClient{queryErr: eris.New("notion: down")}
	exp := NewNotionExporter(client, "leads-db")

	_, err := exp.Export(context.Background(), testReport())
	require.Error(t, err)
	assert.Nil(t, client.created)
}

func TestNotionExport_MissingDatabase(t *testing.T) {
	exp := NewNotionExporter(&stubNotionClient{}, "")

	_, err := exp.Export(context.Background(), testReport())
	assert.Error(t, err)
}

type stubSFClient struct {
	existingIDs []string
	gotSOQL     string
	inserted    map[string]any
}

func (s *stubSFClient) Query(_ context.Context, soql string, out any) error {
	s.gotSOQL = soql
	leads := out.(*[]leadRecord)
	for _, id := range s.existingIDs {
		*leads = append(*leads, leadRecord{ID: id})
	}
	return nil
}

func (s *stubSFClient) InsertOne(_ context.Context, _ string, record map[string]any) (string, error) {
	s.inserted = record
	return "00Q000000000001", nil
}

func TestSalesforceExport_InsertsLead(t *testing.T) {
	client := &stubSFClient{}
	exp := NewSalesforceExporter(client)

	id, err := exp.Export(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "00Q000000000001", id)

	assert.Contains(t, client.gotSOQL, "FirstName = 'Sarah'")
	assert.Contains(t, client.gotSOQL, "LastName = 'Chen'")
	assert.Contains(t, client.gotSOQL, "LeadSource = 'Automation Assessment'")

	require.NotNil(t, client.inserted)
	assert.Equal(t, "Sarah", client.inserted["FirstName"])
	assert.Equal(t, "Chen", client.inserted["LastName"])
	assert.Equal(t, "Automation Assessment", client.inserted["LeadSource"])
	assert.Equal(t, 180000.0, client.inserted["AnnualRevenue"])
	desc, ok := client.inserted["Description"].(string)
	require.True(t, ok)
	assert.True(t, strings.Contains(desc, "sess-42"))
}

func TestSalesforceExport_ExistingLeadNotDuplicated(t *testing.T) {
	client := &stubSFClient{existingIDs: []string{"00QEXISTING"}}
	exp := NewSalesforceExporter(client)

	id, err := exp.Export(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "00QEXISTING", id)
	assert.Nil(t, client.inserted)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full  string
		first string
		last  string
	}{
		{full: "Sarah Chen", first: "Sarah", last: "Chen"},
		{full: "Sarah", first: "", last: "Sarah"},
		{full: "", first: "", last: "Unknown"},
		{full: "Mary Jo van Dyke", first: "Mary", last: "Jo van Dyke"},
	}
	for _, tt := range tests {
		first, last := splitName(tt.full)
		assert.Equal(t, tt.first, first)
		assert.Equal(t, tt.last, last)
	}
}

func TestEscapeSoql(t *testing.T) {
	assert.Equal(t, `O\'Brien`, escapeSoql("O'Brien"))
}
