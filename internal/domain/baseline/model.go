package baseline

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
)

// MinPlayersForBaseline is the sample floor under which a specific
// division/position baseline is not trusted and the aggregated group is
// used instead.
const MinPlayersForBaseline = 30

// Baseline holds the wage distribution for one position within a division.
// Aggregated entries cover a whole position group ("Defenders",
// "Midfielders", "Attackers") instead of a single category.
type Baseline struct {
	Division         string  `json:"division"`
	Position         string  `json:"position"`
	PositionCategory string  `json:"position_category"`
	AverageWage      float64 `json:"average_wage"`
	MedianWage       float64 `json:"median_wage"`
	Percentile25     float64 `json:"percentile_25"`
	Percentile75     float64 `json:"percentile_75"`
	PlayerCount      int     `json:"player_count"`
	IsAggregated     bool    `json:"is_aggregated"`
}

func (b Baseline) Validate() error {
	if b.Division == "" {
		return fmt.Errorf("baseline division is required")
	}
	if b.PositionCategory == "" {
		return fmt.Errorf("baseline position category is required")
	}
	if b.AverageWage <= 0 {
		return fmt.Errorf("baseline average wage must be positive")
	}
	if b.MedianWage <= 0 {
		return fmt.Errorf("baseline median wage must be positive")
	}
	if b.Percentile25 > b.MedianWage || b.MedianWage > b.Percentile75 {
		return fmt.Errorf("baseline quartiles out of order: %v/%v/%v", b.Percentile25, b.MedianWage, b.Percentile75)
	}
	return nil
}

// WagePercentile places a wage into the coarse quartile bands of this
// baseline's distribution: 25th, 50th, 75th, or above the 75th.
func (b Baseline) WagePercentile(wage float64) float64 {
	switch {
	case wage <= b.Percentile25:
		return 25
	case wage <= b.MedianWage:
		return 50
	case wage <= b.Percentile75:
		return 75
	default:
		return 90
	}
}

// Collection is a versioned set of league wage baselines. DivisionMetadata
// maps each known division to its sampled player count.
type Collection struct {
	Version          string         `json:"version"`
	GeneratedDate    string         `json:"generated_date"`
	GKWageMultiplier float64        `json:"gk_wage_multiplier"`
	DivisionMetadata map[string]int `json:"division_metadata"`
	Baselines        []Baseline     `json:"baselines"`
}

func (c Collection) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("collection version is required")
	}
	if c.GKWageMultiplier <= 0 {
		return fmt.Errorf("gk wage multiplier must be positive")
	}
	for i, b := range c.Baselines {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("baseline %d: %w", i, err)
		}
	}
	return nil
}

// Lookup resolves the wage baseline for a position category in a division.
// It prefers the specific category baseline when its sample is big enough,
// falls back to the aggregated outfield group, and finally synthesises a
// goalkeeper baseline from the division's outfield wages.
func (c Collection) Lookup(division string, category position.Category) (Baseline, bool) {
	if b, ok := c.find(division, string(category)); ok && b.PlayerCount >= MinPlayersForBaseline {
		return b, true
	}
	if group := category.AggregateGroup(); group != "" {
		if b, ok := c.find(division, group); ok {
			return b, true
		}
	}
	if category == position.CategoryGoalkeeper {
		return c.estimateGoalkeeper(division)
	}
	return Baseline{}, false
}

func (c Collection) find(division, category string) (Baseline, bool) {
	for _, b := range c.Baselines {
		if b.Division == division && b.PositionCategory == category {
			return b, true
		}
	}
	return Baseline{}, false
}

// outfieldCategories in the order keeper estimation samples them.
var outfieldCategories = []position.Category{
	position.CategoryCentreBack,
	position.CategoryFullBack,
	position.CategoryDefensiveMidfield,
	position.CategoryCentralMidfield,
	position.CategoryAttackingMidfield,
	position.CategoryWinger,
	position.CategoryStriker,
}

// estimateGoalkeeper builds a synthetic keeper baseline because keeper
// samples are always small. It averages the division's resolved outfield
// average wages and applies the configured multiplier. The result carries
// a zero player count to flag it as estimated.
func (c Collection) estimateGoalkeeper(division string) (Baseline, bool) {
	var sum float64
	var n int
	for _, cat := range outfieldCategories {
		b, ok := c.find(division, string(cat))
		if !ok || b.PlayerCount < MinPlayersForBaseline {
			if group := cat.AggregateGroup(); group != "" {
				b, ok = c.find(division, group)
			}
		}
		if !ok {
			continue
		}
		sum += b.AverageWage
		n++
	}
	if n == 0 {
		return Baseline{}, false
	}
	wage := sum / float64(n) * c.GKWageMultiplier
	return Baseline{
		Division:         division,
		Position:         "GK (Estimated)",
		PositionCategory: string(position.CategoryGoalkeeper),
		AverageWage:      wage,
		MedianWage:       wage,
		Percentile25:     wage * 0.6,
		Percentile75:     wage * 1.4,
		PlayerCount:      0,
	}, true
}

// Divisions lists every division present in the metadata, or failing
// that, in the baselines themselves.
func (c Collection) Divisions() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for name := range c.DivisionMetadata {
		add(name)
	}
	for _, b := range c.Baselines {
		add(b.Division)
	}
	sort.Strings(out)
	return out
}

// DivisionPlayerCount reports how many players the division sample holds.
func (c Collection) DivisionPlayerCount(division string) int {
	return c.DivisionMetadata[division]
}

// Repository describes baseline persistence needs from use cases.
type Repository interface {
	Save(ctx context.Context, collection Collection) error
	Latest(ctx context.Context) (Collection, bool, error)
}
