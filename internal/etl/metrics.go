package etl

import (
	"math"
	"sort"
)

// YoYChange returns the year-over-year percentage change from prev to cur.
// A zero or unavailable base year has no meaningful change.
func YoYChange(prev, cur float64) (float64, bool) {
	if prev == 0 || math.IsNaN(prev) || math.IsNaN(cur) {
		return 0, false
	}
	return (cur - prev) / prev * 100, true
}

// ShareOfTotal returns part as a percentage of total.
func ShareOfTotal(part, total float64) (float64, bool) {
	if total == 0 || math.IsNaN(part) || math.IsNaN(total) {
		return 0, false
	}
	return part / total * 100, true
}

// DenseRanks assigns descending dense ranks (1 = highest value). Equal
// values share a rank and the next distinct value gets the following rank.
func DenseRanks(values []float64) []int {
	distinct := make([]float64, 0, len(values))
	seen := make(map[float64]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		rankOf[v] = i + 1
	}

	ranks := make([]int, len(values))
	for i, v := range values {
		ranks[i] = rankOf[v]
	}
	return ranks
}

// Round2 rounds to two decimals, the precision both source tables publish.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
