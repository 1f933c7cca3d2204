package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowth(t *testing.T) {
	assert.Equal(t, 50.0, Growth(150, 100))
	assert.Equal(t, -25.0, Growth(75, 100))
	assert.Equal(t, 0.0, Growth(100, 100))
}

func TestGrowthZeroBaseline(t *testing.T) {
	// uniform policy: zero baseline with activity reports 100, without reports 0
	assert.Equal(t, 100.0, Growth(50, 0))
	assert.Equal(t, 0.0, Growth(0, 0))
	assert.Equal(t, 100.0, GrowthInt(1, 0))
	assert.Equal(t, 0.0, GrowthInt(0, 0))
}

func TestGrowthRounding(t *testing.T) {
	// 1/3 growth is 33.333..., rounded to one decimal
	assert.Equal(t, 33.3, Growth(4, 3))
	assert.Equal(t, 66.7, Growth(5, 3))
	assert.Equal(t, -33.3, Growth(2, 3))
}

func TestGrowthIdempotent(t *testing.T) {
	first := Growth(123, 77)
	second := Growth(123, 77)
	assert.Equal(t, first, second)
	// recomputing from the rounded result's inputs reproduces the value
	assert.Equal(t, first, Growth(123, 77))
}

func TestGrowthDecimal(t *testing.T) {
	cur := decimal.RequireFromString("1234.56")
	prev := decimal.RequireFromString("1000.00")
	assert.Equal(t, 23.5, GrowthDecimal(cur, prev))

	assert.Equal(t, 100.0, GrowthDecimal(cur, decimal.Zero))
	assert.Equal(t, 0.0, GrowthDecimal(decimal.Zero, decimal.Zero))
}
