package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.005, 10.01},
		{10.004, 10.0},
		{-10.005, -10.01},
		{0.1 + 0.2, 0.3},
		{100, 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.in), 1e-9)
	}
}

func TestSettled(t *testing.T) {
	assert.True(t, Settled(0, 0.01))
	assert.True(t, Settled(0.01, 0.01))
	assert.True(t, Settled(-0.009, 0.01))
	assert.False(t, Settled(0.02, 0.01))
	assert.False(t, Settled(-5, 0.01))
}
