package chart

import (
	"sort"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// RankLegend returns the series names of a chart in legend order.
//
// SortByName sorts names ascending; SortByRelevance sorts by descending sum
// of raw values, so the dominant series comes first. Both sorts are stable,
// ties keep discovery order. The result is always a permutation of the
// input names.
func RankLegend(series []models.Series, mode models.SortMode) ([]string, error) {
	ranked := make([]models.Series, len(series))
	copy(ranked, series)

	switch mode {
	case models.SortByName:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Name < ranked[j].Name
		})
	case models.SortByRelevance:
		sums := make([]float64, len(series))
		idx := make([]int, len(series))
		for i, s := range series {
			idx[i] = i
			sums[i] = s.Sum()
		}
		sort.SliceStable(idx, func(i, j int) bool {
			return sums[idx[i]] > sums[idx[j]]
		})
		for i, k := range idx {
			ranked[i] = series[k]
		}
	default:
		return nil, models.NewConfigurationError("sort", string(mode))
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}
	return names, nil
}
