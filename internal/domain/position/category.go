package position

import "fmt"

// Category buckets the pitch into the coarse zones used when benchmarking
// players against others with a comparable job.
type Category string

const (
	CategoryGoalkeeper         Category = "GK"
	CategoryCentreBack         Category = "CB"
	CategoryFullBack           Category = "FB"
	CategoryDefensiveMidfield  Category = "DM"
	CategoryCentralMidfield    Category = "CM"
	CategoryAttackingMidfield  Category = "AM"
	CategoryWinger             Category = "W"
	CategoryStriker            Category = "ST"
)

var AllCategories = map[Category]struct{}{
	CategoryGoalkeeper:        {},
	CategoryCentreBack:        {},
	CategoryFullBack:          {},
	CategoryDefensiveMidfield: {},
	CategoryCentralMidfield:   {},
	CategoryAttackingMidfield: {},
	CategoryWinger:            {},
	CategoryStriker:           {},
}

func (c Category) Validate() error {
	if _, ok := AllCategories[c]; !ok {
		return fmt.Errorf("unknown position category: %s", c)
	}
	return nil
}

// AggregateGroup collapses outfield categories into the wider baseline
// groups used when a division lacks enough players in a specific category.
func (c Category) AggregateGroup() string {
	switch c {
	case CategoryCentreBack, CategoryFullBack:
		return "Defenders"
	case CategoryDefensiveMidfield, CategoryCentralMidfield, CategoryAttackingMidfield:
		return "Midfielders"
	case CategoryWinger, CategoryStriker:
		return "Attackers"
	default:
		return ""
	}
}

// FitMetrics lists the per-90 metrics that characterise each category. They
// are used to break ties when a position string maps to more than one
// category: the category whose metrics the player actually produces wins.
var FitMetrics = map[Category][]string{
	CategoryGoalkeeper:        {"save_pct", "conceded_90", "xgp_90"},
	CategoryCentreBack:        {"tackles_90", "header_win_pct", "clearances_90", "interceptions_90", "blocks_90"},
	CategoryFullBack:          {"tackles_90", "interceptions_90", "crosses_90", "pressures_90"},
	CategoryDefensiveMidfield: {"tackles_90", "interceptions_90", "pressures_90", "pass_pct"},
	CategoryCentralMidfield:   {"key_passes_90", "prog_passes_90", "xassists_90", "pass_pct"},
	CategoryAttackingMidfield: {"key_passes_90", "xassists_90", "dribbles_90", "xg_90"},
	CategoryWinger:            {"dribbles_90", "crosses_90", "sprints_90", "key_passes_90"},
	CategoryStriker:           {"xg_90", "shots_on_target_90", "conversion_pct", "headers_won_90"},
}

// FitScore averages the player's values over the category's characteristic
// metrics. Only metrics that are present and positive count; a player with
// none of them scores zero.
func FitScore(c Category, stats map[string]float64) float64 {
	metrics := FitMetrics[c]
	var sum float64
	var n int
	for _, m := range metrics {
		if v, ok := stats[m]; ok && v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
