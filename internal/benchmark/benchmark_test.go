package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceInsight_Transactions(t *testing.T) {
	tests := []struct {
		value      int
		percentile int
		tier       string
	}{
		{3, 25, "Developing Agent"},
		{6, 50, "Established Agent"},
		{15, 50, "Established Agent"},
		{16, 75, "High Performer"},
		{47, 90, "Elite Agent"},
		{51, 99, "Mega Producer"},
	}
	for _, tt := range tests {
		ins := PerformanceInsight(MetricTransactions, tt.value)
		require.NotNil(t, ins, "value %d", tt.value)
		assert.Equal(t, tt.percentile, ins.Percentile, "value %d", tt.value)
		assert.Equal(t, tt.tier, ins.Tier, "value %d", tt.value)
	}
}

func TestPerformanceInsight_GCI(t *testing.T) {
	ins := PerformanceInsight(MetricGCI, 150000.0)
	require.NotNil(t, ins)
	assert.Equal(t, 75, ins.Percentile)
	assert.Equal(t, "Strong Producer", ins.Tier)

	ins = PerformanceInsight(MetricGCI, 600000.0)
	require.NotNil(t, ins)
	assert.Equal(t, 99, ins.Percentile)
	assert.Equal(t, "Rainmaker", ins.Tier)
}

func TestPerformanceInsight_LeadVolume(t *testing.T) {
	ins := PerformanceInsight(MetricLeadVolume, 40)
	require.NotNil(t, ins)
	assert.Equal(t, 75, ins.Percentile)

	ins = PerformanceInsight(MetricLeadVolume, 100)
	require.NotNil(t, ins)
	assert.Equal(t, 90, ins.Percentile)
}

func TestPerformanceInsight_ResponseTime(t *testing.T) {
	ins := PerformanceInsight(MetricResponseTime, "under_5min")
	require.NotNil(t, ins)
	assert.Equal(t, 95, ins.Percentile)
	assert.Equal(t, "Speed Leader", ins.Tier)
	assert.Equal(t, "under_5min", ins.UserValue)

	assert.Nil(t, PerformanceInsight(MetricResponseTime, "carrier_pigeon"))
	assert.Nil(t, PerformanceInsight(MetricResponseTime, 5))
}

func TestPerformanceInsight_UnknownMetric(t *testing.T) {
	assert.Nil(t, PerformanceInsight("closings_per_moon_phase", 12))
}

func TestPerformanceInsight_NonNumeric(t *testing.T) {
	assert.Nil(t, PerformanceInsight(MetricTransactions, "plenty"))
}

func TestBucketTables_ContiguousAscending(t *testing.T) {
	for name, buckets := range map[string][]bucket{
		"transactions": transactionBuckets,
		"gci":          gciBuckets,
		"leadVolume":   leadVolumeBuckets,
	} {
		prev := buckets[0]
		assert.Zero(t, prev.min, name)
		for _, b := range buckets[1:] {
			assert.Greater(t, b.min, prev.max, "%s bucket order", name)
			assert.Greater(t, b.percentile, prev.percentile, "%s percentile order", name)
			prev = b
		}
	}
}
