// Package vocational implements the weighted-score career simulator.
// Estimated section scores in [0,1000] are combined with each career's
// weight table and ranked.
package vocational

import (
	"math"
	"sort"

	"github.com/camposb/preu/internal/catalog"
)

// MaxScore bounds each section score input.
const MaxScore = 1000

// Ranking is one career with its weighted total.
type Ranking struct {
	Career catalog.Career
	Total  int
}

// ClampScore pulls a section score into [0,1000].
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

// Rank computes the weighted total for every catalog career, highest
// first. Missing sections count as 0; input scores are clamped. Careers
// with equal totals keep catalog order.
func Rank(scores map[string]int) []Ranking {
	careers := catalog.Careers()
	out := make([]Ranking, 0, len(careers))
	for _, c := range careers {
		total := 0.0
		for section, weight := range c.Weight {
			total += float64(ClampScore(scores[section])) * weight
		}
		out = append(out, Ranking{Career: c, Total: int(math.Round(total))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
