package renderer

import (
	"sort"

	"github.com/juvenalculino/carteira"
	"github.com/juvenalculino/carteira/date"
)

// mergedDays returns the sorted union of the observation days of every series.
func mergedDays(series []carteira.TickerSeries) []date.Date {
	seen := make(map[date.Date]bool)
	var days []date.Date
	for _, s := range series {
		for day := range s.Series.Values() {
			if seen[day] {
				continue
			}
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
