package role

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

// Role names as they appear in reports.
const (
	Goalkeeper        = "GK"
	Stopper           = "CB-STOPPER"
	BallPlayingCB     = "BCB"
	FullBack          = "FB"
	WingBack          = "WB"
	MidfieldAnchor    = "MD"
	MidfieldCreator   = "MC"
	AttackingMid      = "AM(C)"
	WingerProvider    = "WAP"
	WingerScorer      = "WAS"
	StrikerProvider   = "ST-PROVIDER"
	StrikerGoalscorer = "ST-GS"
)

// Catalog holds every role definition keyed by role name.
var Catalog = map[string]Definition{
	Goalkeeper: {
		Name:        Goalkeeper,
		DisplayName: "Goalkeeper",
		Category:    position.CategoryGoalkeeper,
		Metrics: map[string]Thresholds{
			squad.MetricXGPrevented:   {Good: 0.25, Ok: 0, Poor: -0.38},
			squad.MetricConceded:      {Good: 0.75, Ok: 1.41, Poor: 2.15, Inverted: true},
			squad.MetricInterceptions: {Good: 0.22, Ok: 0.1, Poor: 0.04},
			squad.MetricPassPct:       {Good: 97, Ok: 78, Poor: 47},
		},
		Primary:   []string{squad.MetricXGPrevented, squad.MetricConceded},
		Secondary: []string{squad.MetricPassPct, squad.MetricInterceptions},
	},
	Stopper: {
		Name:        Stopper,
		DisplayName: "Center-Back",
		Category:    position.CategoryCentreBack,
		Metrics: map[string]Thresholds{
			squad.MetricTackles:       {Good: 2.38, Ok: 1.29, Poor: 0.8},
			squad.MetricHeaderWinPct:  {Good: 82, Ok: 72, Poor: 59},
			squad.MetricClearances:    {Good: 1.64, Ok: 0.85, Poor: 0.44},
			squad.MetricInterceptions: {Good: 3.18, Ok: 2.15, Poor: 1.36},
			squad.MetricBlocks:        {Good: 0.72, Ok: 0.42, Poor: 0.19},
		},
		Primary:     []string{squad.MetricHeaderWinPct, squad.MetricTackles, squad.MetricInterceptions},
		Secondary:   []string{squad.MetricBlocks, squad.MetricClearances},
		Interchange: []string{BallPlayingCB},
	},
	BallPlayingCB: {
		Name:        BallPlayingCB,
		DisplayName: "Ball-Playing Center-Back",
		Category:    position.CategoryCentreBack,
		Metrics: map[string]Thresholds{
			squad.MetricTackles:       {Good: 2.0, Ok: 1.2, Poor: 0.7},
			squad.MetricClearances:    {Good: 1.5, Ok: 0.8, Poor: 0.4},
			squad.MetricInterceptions: {Good: 3.0, Ok: 2.0, Poor: 1.3},
			squad.MetricBlocks:        {Good: 0.6, Ok: 0.35, Poor: 0.15},
			squad.MetricProgPasses:    {Good: 5.5, Ok: 3.5, Poor: 2.0},
			squad.MetricPassPct:       {Good: 92, Ok: 85, Poor: 78},
		},
		Primary:     []string{squad.MetricProgPasses, squad.MetricPassPct, squad.MetricInterceptions},
		Secondary:   []string{squad.MetricTackles, squad.MetricClearances, squad.MetricBlocks},
		Interchange: []string{Stopper, FullBack},
	},
	FullBack: {
		Name:        FullBack,
		DisplayName: "Full-Back",
		Category:    position.CategoryFullBack,
		Metrics: map[string]Thresholds{
			squad.MetricTackles:       {Good: 2.2, Ok: 1.4, Poor: 0.9},
			squad.MetricInterceptions: {Good: 2.8, Ok: 1.8, Poor: 1.0},
			squad.MetricPressures:     {Good: 12, Ok: 8, Poor: 5},
			squad.MetricCrosses:       {Good: 0.5, Ok: 0.25, Poor: 0.1},
			squad.MetricProgPasses:    {Good: 4.5, Ok: 2.5, Poor: 1.5},
			squad.MetricPassPct:       {Good: 88, Ok: 80, Poor: 72},
		},
		Primary:     []string{squad.MetricTackles, squad.MetricInterceptions, squad.MetricPressures},
		Secondary:   []string{squad.MetricCrosses, squad.MetricProgPasses, squad.MetricPassPct},
		Interchange: []string{WingBack, BallPlayingCB},
	},
	WingBack: {
		Name:        WingBack,
		DisplayName: "Wing-Back",
		Category:    position.CategoryFullBack,
		Metrics: map[string]Thresholds{
			squad.MetricTackles:       {Good: 2.0, Ok: 1.2, Poor: 0.7},
			squad.MetricInterceptions: {Good: 2.5, Ok: 1.5, Poor: 0.9},
			squad.MetricPressures:     {Good: 11, Ok: 7.5, Poor: 4.5},
			squad.MetricDribbles:      {Good: 3.0, Ok: 1.8, Poor: 1.0},
			squad.MetricCrosses:       {Good: 0.6, Ok: 0.3, Poor: 0.15},
			squad.MetricSprints:       {Good: 14, Ok: 10, Poor: 7},
		},
		Primary:     []string{squad.MetricDribbles, squad.MetricCrosses, squad.MetricSprints},
		Secondary:   []string{squad.MetricTackles, squad.MetricInterceptions, squad.MetricPressures},
		Interchange: []string{FullBack, WingerProvider},
	},
	MidfieldAnchor: {
		Name:        MidfieldAnchor,
		DisplayName: "Defensive Midfielder",
		Category:    position.CategoryDefensiveMidfield,
		Metrics: map[string]Thresholds{
			squad.MetricTackles:       {Good: 2.5, Ok: 1.6, Poor: 1.0},
			squad.MetricInterceptions: {Good: 3.0, Ok: 2.0, Poor: 1.2},
			squad.MetricBlocks:        {Good: 0.5, Ok: 0.3, Poor: 0.15},
			squad.MetricPressures:     {Good: 13, Ok: 9, Poor: 6},
			squad.MetricPassPct:       {Good: 90, Ok: 83, Poor: 76},
		},
		Primary:     []string{squad.MetricTackles, squad.MetricInterceptions, squad.MetricPressures},
		Secondary:   []string{squad.MetricBlocks, squad.MetricPassPct},
		Interchange: []string{MidfieldCreator},
	},
	MidfieldCreator: {
		Name:        MidfieldCreator,
		DisplayName: "Central Midfielder",
		Category:    position.CategoryCentralMidfield,
		Metrics: map[string]Thresholds{
			squad.MetricKeyPasses:  {Good: 1.5, Ok: 0.8, Poor: 0.4},
			squad.MetricProgPasses: {Good: 5.0, Ok: 3.0, Poor: 1.8},
			squad.MetricXAssists:   {Good: 0.15, Ok: 0.08, Poor: 0.04},
			squad.MetricDribbles:   {Good: 2.5, Ok: 1.5, Poor: 0.8},
			squad.MetricPassPct:    {Good: 89, Ok: 82, Poor: 75},
			squad.MetricTackles:    {Good: 1.8, Ok: 1.0, Poor: 0.5},
		},
		Primary:     []string{squad.MetricKeyPasses, squad.MetricProgPasses, squad.MetricXAssists},
		Secondary:   []string{squad.MetricDribbles, squad.MetricPassPct, squad.MetricTackles},
		Interchange: []string{MidfieldAnchor, AttackingMid},
	},
	AttackingMid: {
		Name:        AttackingMid,
		DisplayName: "Attacking Midfielder (C)",
		Category:    position.CategoryAttackingMidfield,
		Metrics: map[string]Thresholds{
			squad.MetricKeyPasses:     {Good: 2.0, Ok: 1.2, Poor: 0.6},
			squad.MetricXAssists:      {Good: 0.2, Ok: 0.12, Poor: 0.06},
			squad.MetricDribbles:      {Good: 3.5, Ok: 2.0, Poor: 1.0},
			squad.MetricPassPct:       {Good: 86, Ok: 78, Poor: 70},
			squad.MetricShotsOnTarget: {Good: 0.8, Ok: 0.5, Poor: 0.25},
			squad.MetricXG:            {Good: 0.25, Ok: 0.15, Poor: 0.08},
		},
		Primary:     []string{squad.MetricKeyPasses, squad.MetricXAssists, squad.MetricDribbles},
		Secondary:   []string{squad.MetricPassPct, squad.MetricShotsOnTarget, squad.MetricXG},
		Interchange: []string{MidfieldCreator, WingerProvider, WingerScorer},
	},
	WingerProvider: {
		Name:        WingerProvider,
		DisplayName: "Winger",
		Category:    position.CategoryWinger,
		Metrics: map[string]Thresholds{
			squad.MetricDribbles:  {Good: 4.0, Ok: 2.5, Poor: 1.5},
			squad.MetricCrosses:   {Good: 0.7, Ok: 0.4, Poor: 0.2},
			squad.MetricSprints:   {Good: 16, Ok: 12, Poor: 8},
			squad.MetricKeyPasses: {Good: 1.8, Ok: 1.0, Poor: 0.5},
			squad.MetricXAssists:  {Good: 0.22, Ok: 0.13, Poor: 0.07},
		},
		Primary:     []string{squad.MetricDribbles, squad.MetricCrosses, squad.MetricSprints},
		Secondary:   []string{squad.MetricKeyPasses, squad.MetricXAssists},
		Interchange: []string{WingerScorer, AttackingMid, WingBack},
	},
	WingerScorer: {
		Name:        WingerScorer,
		DisplayName: "Inside Forward",
		Category:    position.CategoryWinger,
		Metrics: map[string]Thresholds{
			squad.MetricDribbles:      {Good: 4.5, Ok: 3.0, Poor: 1.8},
			squad.MetricShotsOnTarget: {Good: 1.2, Ok: 0.7, Poor: 0.4},
			squad.MetricSprints:       {Good: 17, Ok: 13, Poor: 9},
			squad.MetricXG:            {Good: 0.38, Ok: 0.22, Poor: 0.12},
			squad.MetricConversionPct: {Good: 25, Ok: 18, Poor: 12},
		},
		Primary:     []string{squad.MetricDribbles, squad.MetricShotsOnTarget, squad.MetricXG},
		Secondary:   []string{squad.MetricSprints, squad.MetricConversionPct},
		Interchange: []string{WingerProvider, StrikerGoalscorer, AttackingMid},
	},
	StrikerProvider: {
		Name:        StrikerProvider,
		DisplayName: "Target Forward",
		Category:    position.CategoryStriker,
		Metrics: map[string]Thresholds{
			squad.MetricHeadersWon:    {Good: 1.2, Ok: 0.7, Poor: 0.4},
			squad.MetricXAssists:      {Good: 0.18, Ok: 0.1, Poor: 0.05},
			squad.MetricXG:            {Good: 0.35, Ok: 0.22, Poor: 0.13},
			squad.MetricShotsOnTarget: {Good: 1.0, Ok: 0.6, Poor: 0.35},
			squad.MetricKeyPasses:     {Good: 1.3, Ok: 0.7, Poor: 0.35},
		},
		Primary:     []string{squad.MetricHeadersWon, squad.MetricXAssists, squad.MetricKeyPasses},
		Secondary:   []string{squad.MetricXG, squad.MetricShotsOnTarget},
		Interchange: []string{StrikerGoalscorer, WingerProvider},
	},
	StrikerGoalscorer: {
		Name:        StrikerGoalscorer,
		DisplayName: "Advanced Forward",
		Category:    position.CategoryStriker,
		Metrics: map[string]Thresholds{
			squad.MetricHeadersWon:    {Good: 1.0, Ok: 0.6, Poor: 0.3},
			squad.MetricDribbles:      {Good: 2.5, Ok: 1.5, Poor: 0.8},
			squad.MetricXG:            {Good: 0.45, Ok: 0.28, Poor: 0.16},
			squad.MetricShotsOnTarget: {Good: 1.5, Ok: 0.9, Poor: 0.5},
			squad.MetricConversionPct: {Good: 28, Ok: 20, Poor: 14},
		},
		Primary:     []string{squad.MetricHeadersWon, squad.MetricDribbles, squad.MetricXG},
		Secondary:   []string{squad.MetricShotsOnTarget, squad.MetricConversionPct},
		Interchange: []string{StrikerProvider, WingerScorer},
	},
}

// Names returns every catalog role name in stable alphabetical order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns role names belonging to a position category, in
// stable order.
func ByCategory(c position.Category) []string {
	var names []string
	for _, name := range Names() {
		if Catalog[name].Category == c {
			names = append(names, name)
		}
	}
	return names
}

// ValidateCatalog checks every definition, including that interchange
// targets exist. Call it once at startup; the catalog is static data and a
// broken entry should fail fast.
func ValidateCatalog() error {
	for name, def := range Catalog {
		if name != def.Name {
			return fmt.Errorf("catalog key %s does not match role name %s", name, def.Name)
		}
		if err := def.Validate(); err != nil {
			return err
		}
		for _, target := range def.Interchange {
			if _, ok := Catalog[target]; !ok {
				return fmt.Errorf("role %s: unknown interchange target %s", name, target)
			}
		}
	}
	return nil
}
