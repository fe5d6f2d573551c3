package reservoir

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

func TestRecommendations(t *testing.T) {
	var gotAuth, gotPath string
	var gotProfile model.BusinessProfile

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotProfile))

		json.NewEncoder(w).Encode(map[string]any{
			"opportunities": []model.Opportunity{
				{ID: "lead-response-automation", Title: "Instant lead response", MonthlySavings: 1200},
				{ID: "followup-sequences", Title: "Follow-up sequences", MonthlySavings: 800},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	opps, err := c.Recommendations(context.Background(), model.BusinessProfile{
		Industry:       "real_estate",
		MonthlyRevenue: 15000,
		TeamSize:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/recommendations", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, 15000.0, gotProfile.MonthlyRevenue)
	require.Len(t, opps, 2)
	assert.Equal(t, "lead-response-automation", opps[0].ID)
	assert.Equal(t, 1200.0, opps[0].MonthlySavings)
}

func TestRecommendations_NoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"opportunities": []model.Opportunity{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Recommendations(context.Background(), model.BusinessProfile{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRecommendations_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.Recommendations(context.Background(), model.BusinessProfile{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRecommendations_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.Recommendations(context.Background(), model.BusinessProfile{})
	assert.Error(t, err)
}

func TestRecommendations_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.Recommendations(context.Background(), model.BusinessProfile{})
	assert.Error(t, err)
}
