package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"bare number", "i did 47 last year", 47, true},
		{"range midpoint", "somewhere around 25-50", 37, true},
		{"plus suffix", "50+", 60, true},
		{"plus suffix inline", "we handle 100+ deals", 110, true},
		{"under halves", "under 20", 10, true},
		{"about prefix", "about 12 i think", 12, true},
		{"no number", "quite a few honestly", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ApproxCount(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestApproxCount_UnderBeatsBare(t *testing.T) {
	// "under 20" must not parse as a bare 20.
	got, ok := ApproxCount("probably under 20")
	assert.True(t, ok)
	assert.Equal(t, 10, got)
}

func TestApproxDollars(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"dollar sign", "$150000", 150000, true},
		{"k suffix", "150k", 150000, true},
		{"dollar k", "$150k", 150000, true},
		{"m suffix", "1.2m", 1200000, true},
		{"dollar commas", "$1,200,000", 1200000, true},
		{"bare number rejected", "150000", 0, false},
		{"no amount", "a decent year", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ApproxDollars(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.01)
			}
		})
	}
}
