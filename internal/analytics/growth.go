package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// Growth returns the percentage change from previous to current, rounded to
// one decimal place. The zero-baseline policy is uniform across every call
// site: growth from a zero baseline is reported as 100 when there is any
// current activity and as 0 when both values are zero.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	pct := (current - previous) / previous * 100
	return math.Round(pct*10) / 10
}

// GrowthInt is Growth over integer counts.
func GrowthInt(current, previous int) float64 {
	return Growth(float64(current), float64(previous))
}

// GrowthDecimal is Growth over monetary amounts.
func GrowthDecimal(current, previous decimal.Decimal) float64 {
	cur, _ := current.Float64()
	prev, _ := previous.Float64()
	return Growth(cur, prev)
}
