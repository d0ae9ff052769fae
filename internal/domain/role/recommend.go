package role

import (
	"fmt"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

// RolesForPosition maps a raw position string such as "D (RC)" or
// "AM (RL), ST (C)" onto the catalog roles a player in that position can
// be evaluated for. Unknown strings yield nil.
func RolesForPosition(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(names ...string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	for _, seg := range position.ParseSegments(raw) {
		for _, band := range seg.Bands {
			central := seg.Sides == "" || containsRune(seg.Sides, 'C')
			wide := containsRune(seg.Sides, 'R') || containsRune(seg.Sides, 'L')
			switch band {
			case "GK":
				add(Goalkeeper)
			case "D":
				if central {
					add(Stopper, BallPlayingCB)
				}
				if wide {
					add(FullBack, WingBack)
				}
			case "WB":
				add(FullBack, WingBack)
			case "DM":
				add(MidfieldAnchor)
			case "M":
				if central {
					add(MidfieldAnchor, MidfieldCreator)
				}
				if wide {
					add(WingerProvider, WingerScorer)
				}
			case "AM":
				if central {
					add(AttackingMid)
				}
				if wide {
					add(WingerProvider, WingerScorer)
				}
			case "ST", "S", "F":
				add(StrikerProvider, StrikerGoalscorer)
			}
		}
	}
	return out
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// ChangeSuggestion proposes retraining a player from one catalog role into
// another, with a short human-readable reason.
type ChangeSuggestion struct {
	FromRole string
	ToRole   string
	Note     string
}

type changeDetector struct {
	from  string
	to    string
	match func(stats map[string]float64) bool
	note  string
}

// Profile detectors for the classic retraining paths. Each fires on a
// statistical signature even when the score gap alone would not justify
// the switch.
var changeDetectors = []changeDetector{
	{
		from: Stopper, to: BallPlayingCB,
		match: func(s map[string]float64) bool {
			return s[squad.MetricProgPasses] > 5.5 && s[squad.MetricTackles] > 1.5 && s[squad.MetricPassPct] > 90
		},
		note: "distribution numbers fit a ball-playing centre back",
	},
	{
		from: FullBack, to: WingBack,
		match: func(s map[string]float64) bool {
			return s[squad.MetricDribbles] > 3.0 && s[squad.MetricCrosses] > 0.3 && s[squad.MetricSprints] > 14
		},
		note: "attacking output fits an advanced wing back",
	},
	{
		from: MidfieldAnchor, to: MidfieldCreator,
		match: func(s map[string]float64) bool {
			return s[squad.MetricKeyPasses] > 1.5 && s[squad.MetricTackles] > 1.5 && s[squad.MetricProgPasses] > 5
		},
		note: "creative passing fits a deep-lying creator",
	},
	{
		from: AttackingMid, to: WingerProvider,
		match: func(s map[string]float64) bool {
			return s[squad.MetricDribbles] > 3.5 && s[squad.MetricCrosses] > 0.4
		},
		note: "carrying and crossing fit a wide provider",
	},
	{
		from: AttackingMid, to: WingerScorer,
		match: func(s map[string]float64) bool {
			return s[squad.MetricShotsOnTarget] > 1.0 && s[squad.MetricXG] > 0.35 && s[squad.MetricConversionPct] > 25
		},
		note: "finishing numbers fit a wide goalscorer",
	},
}

const (
	detectorScoreGap    = 12
	interchangeScoreGap = 10
	changeMinScore      = 65
)

// Interchangeable reports whether two roles are declared interchangeable
// in either direction.
func Interchangeable(a, b string) bool {
	if def, ok := Catalog[a]; ok {
		for _, name := range def.Interchange {
			if name == b {
				return true
			}
		}
	}
	if def, ok := Catalog[b]; ok {
		for _, name := range def.Interchange {
			if name == a {
				return true
			}
		}
	}
	return false
}

// SuggestChange looks for a role the player should retrain into, given the
// evaluation of the current role and of every other role already computed.
// Every candidate must reach at least 65 in the target role. Profile
// detectors fire first; otherwise any role interchangeable in either
// direction that beats the current score by 10 points qualifies, and the
// best such role wins.
func SuggestChange(current Score, all map[string]Score, stats map[string]float64) *ChangeSuggestion {
	for _, det := range changeDetectors {
		if det.from != current.Role {
			continue
		}
		target, ok := all[det.to]
		if !ok || target.Score < changeMinScore {
			continue
		}
		if det.match(stats) && target.Score > current.Score {
			return &ChangeSuggestion{FromRole: det.from, ToRole: det.to, Note: det.note}
		}
		if target.Score >= current.Score+detectorScoreGap {
			return &ChangeSuggestion{
				FromRole: det.from,
				ToRole:   det.to,
				Note:     fmt.Sprintf("scores %.0f as %s against %.0f in the current role", target.Score, det.to, current.Score),
			}
		}
	}

	var best *ChangeSuggestion
	var bestScore float64
	for name, target := range all {
		if name == current.Role || !Interchangeable(current.Role, name) {
			continue
		}
		if target.Score < current.Score+interchangeScoreGap || target.Score < changeMinScore {
			continue
		}
		if best == nil || target.Score > bestScore || (target.Score == bestScore && name < best.ToRole) {
			best = &ChangeSuggestion{
				FromRole: current.Role,
				ToRole:   name,
				Note:     fmt.Sprintf("scores %.0f as %s against %.0f in the current role", target.Score, name, current.Score),
			}
			bestScore = target.Score
		}
	}
	return best
}
