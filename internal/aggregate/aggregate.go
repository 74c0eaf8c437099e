// Package aggregate derives the summary figures shown on dashboard tiles:
// group counts, guarded percentages, and currency sums over display strings.
package aggregate

import (
	"math"
	"strconv"
	"strings"
)

// CountBy groups records by key and counts each group. The counts always
// sum to len(records).
func CountBy[T any, K comparable](records []T, key func(T) K) map[K]int {
	counts := make(map[K]int, 8)
	for _, record := range records {
		counts[key(record)]++
	}
	return counts
}

// Percent returns part/total as an integer percentage. A zero total yields
// 0 rather than NaN.
func Percent(part int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Round2 rounds to two decimal places for currency display.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// SumCurrency parses display cost strings ("￥150", "¥19.90") and returns
// their sum rounded to two decimals. Unparseable values count as zero.
func SumCurrency(values []string) float64 {
	var sum float64
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		trimmed = strings.TrimPrefix(trimmed, "￥")
		trimmed = strings.TrimPrefix(trimmed, "¥")
		parsed, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
		if err != nil {
			continue
		}
		sum += parsed
	}
	return Round2(sum)
}
