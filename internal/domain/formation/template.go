package formation

import (
	"fmt"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
)

// Template is one tactical shape expressed as the number of players each
// position category must field.
type Template struct {
	Name         string
	Requirements map[position.Category]int
}

func (t Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	var total int
	for category, required := range t.Requirements {
		if err := category.Validate(); err != nil {
			return fmt.Errorf("template %s: %w", t.Name, err)
		}
		if required <= 0 {
			return fmt.Errorf("template %s: %s requirement must be positive", t.Name, category)
		}
		total += required
	}
	if total != 11 {
		return fmt.Errorf("template %s: requirements sum to %d, want 11", t.Name, total)
	}
	if t.Requirements[position.CategoryGoalkeeper] != 1 {
		return fmt.Errorf("template %s: exactly one goalkeeper is required", t.Name)
	}
	return nil
}

// Outfield returns the number of required players outside goal.
func (t Template) Outfield() int {
	var total int
	for category, required := range t.Requirements {
		if category != position.CategoryGoalkeeper {
			total += required
		}
	}
	return total
}

// Templates is the catalogue of supported tactical shapes, in preference
// order for stable ranking ties.
var Templates = []Template{
	{
		Name: "4-2-3-1 DM AM Wide",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        2,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 2,
			position.CategoryAttackingMidfield: 1,
			position.CategoryWinger:            2,
			position.CategoryStriker:           1,
		},
	},
	{
		Name: "4-3-3 DM Wide",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        2,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 1,
			position.CategoryCentralMidfield:   2,
			position.CategoryWinger:            2,
			position.CategoryStriker:           1,
		},
	},
	{
		Name: "4-3-2-1 DM AM Narrow",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        2,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 1,
			position.CategoryCentralMidfield:   2,
			position.CategoryAttackingMidfield: 2,
			position.CategoryStriker:           1,
		},
	},
	{
		Name: "5-2-2-1 DM AM",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        3,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 2,
			position.CategoryAttackingMidfield: 2,
			position.CategoryStriker:           1,
		},
	},
	{
		Name: "5-2-3 DM Wide",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        3,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 2,
			position.CategoryWinger:            2,
			position.CategoryStriker:           1,
		},
	},
	{
		Name: "4-4-2",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:      1,
			position.CategoryCentreBack:      2,
			position.CategoryFullBack:        2,
			position.CategoryCentralMidfield: 2,
			position.CategoryWinger:          2,
			position.CategoryStriker:         2,
		},
	},
	{
		Name: "4-2-4 DM Wide",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        2,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 2,
			position.CategoryWinger:            2,
			position.CategoryStriker:           2,
		},
	},
	{
		Name: "4-4-2 Diamond Narrow",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        2,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 1,
			position.CategoryCentralMidfield:   2,
			position.CategoryAttackingMidfield: 1,
			position.CategoryStriker:           2,
		},
	},
	{
		Name: "4-2-2-2 DM AM Narrow",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        2,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 2,
			position.CategoryAttackingMidfield: 2,
			position.CategoryStriker:           2,
		},
	},
	{
		Name: "5-3-2 DM WB",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:        1,
			position.CategoryCentreBack:        3,
			position.CategoryFullBack:          2,
			position.CategoryDefensiveMidfield: 1,
			position.CategoryCentralMidfield:   2,
			position.CategoryStriker:           2,
		},
	},
	{
		Name: "3-4-3",
		Requirements: map[position.Category]int{
			position.CategoryGoalkeeper:      1,
			position.CategoryCentreBack:      3,
			position.CategoryFullBack:        2,
			position.CategoryCentralMidfield: 2,
			position.CategoryWinger:          2,
			position.CategoryStriker:         1,
		},
	},
}

// ByName finds a catalogue template.
func ByName(name string) (Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// ValidateTemplates checks the whole catalogue. Call once at startup.
func ValidateTemplates() error {
	seen := make(map[string]struct{}, len(Templates))
	for _, t := range Templates {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("duplicate template name %s", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

// BenchCoverage is the substitute seat plan shared by every template:
// one keeper, two defensive covers, one central midfield cover, two
// attacking covers and one striker.
var BenchCoverage = []BenchSeat{
	{Label: "GK cover", Categories: []position.Category{position.CategoryGoalkeeper}},
	{Label: "Defensive cover", Categories: []position.Category{position.CategoryCentreBack, position.CategoryFullBack}},
	{Label: "Defensive cover", Categories: []position.Category{position.CategoryCentreBack, position.CategoryFullBack}},
	{Label: "Central cover", Categories: []position.Category{position.CategoryCentralMidfield, position.CategoryDefensiveMidfield}},
	{Label: "Attacking cover", Categories: []position.Category{position.CategoryAttackingMidfield, position.CategoryWinger}},
	{Label: "Attacking cover", Categories: []position.Category{position.CategoryAttackingMidfield, position.CategoryWinger}},
	{Label: "Striker cover", Categories: []position.Category{position.CategoryStriker}},
}

// BenchSeat is one substitute slot and the categories that can cover it.
type BenchSeat struct {
	Label      string
	Categories []position.Category
}

// Covers reports whether a player of the given category can take the seat.
func (s BenchSeat) Covers(c position.Category) bool {
	for _, candidate := range s.Categories {
		if candidate == c {
			return true
		}
	}
	return false
}
