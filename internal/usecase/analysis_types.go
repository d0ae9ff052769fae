package usecase

import (
	"github.com/riskibarqy/squad-audit/internal/domain/position"
	"github.com/riskibarqy/squad-audit/internal/domain/role"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

// DataQuality reports how trustworthy a player's sample is.
type DataQuality string

const (
	DataQualityFull         DataQuality = "FULL"
	DataQualityProjected    DataQuality = "PROJECTED"
	DataQualityInsufficient DataQuality = "INSUFFICIENT"
)

// Recommendation is the action verdict attached to a player.
type Recommendation struct {
	Badge           string
	Color           string
	Explanation     string
	ContractWarning string
}

// PlayerAnalysis is the complete evaluation of one squad member. The
// league fields are populated only when a division was selected and a
// baseline could be resolved for the player's category.
type PlayerAnalysis struct {
	Player           squad.Player
	Category         position.Category
	Playable         bool
	BestRole         *role.Score
	AllRoles         []role.Score
	RoleChange       *role.ChangeSuggestion
	PerformanceIndex float64
	Verdict          role.Tier
	ValueScore       float64
	LeagueValueScore *float64
	WagePercentile   *float64
	TopMetrics       []string
	DataQuality      DataQuality
	Recommendation   Recommendation
}

// SquadAnalysisResult is the full squad report. Benchmarks holds the
// per-category per-metric squad averages the reliability adjustment
// blended toward.
type SquadAnalysisResult struct {
	SquadName      string
	Division       string
	Analyses       []PlayerAnalysis
	Benchmarks     map[position.Category]map[string]float64
	SquadAvgWage   float64
	TotalPlayers   int
	SkippedPlayers int
}

// ElitePlayers returns every analysis with an ELITE verdict, in roster
// order.
func (r SquadAnalysisResult) ElitePlayers() []PlayerAnalysis {
	return r.filterByVerdict(role.TierElite)
}

// PoorPerformers returns every analysis with a POOR verdict, in roster
// order.
func (r SquadAnalysisResult) PoorPerformers() []PlayerAnalysis {
	return r.filterByVerdict(role.TierPoor)
}

// TransferListedElite returns elite performers the club has listed, the
// cases worth a second look before the sale goes through.
func (r SquadAnalysisResult) TransferListedElite() []PlayerAnalysis {
	var out []PlayerAnalysis
	for _, a := range r.Analyses {
		if a.Verdict == role.TierElite && a.Player.Status.TransferListed {
			out = append(out, a)
		}
	}
	return out
}

func (r SquadAnalysisResult) filterByVerdict(tier role.Tier) []PlayerAnalysis {
	var out []PlayerAnalysis
	for _, a := range r.Analyses {
		if a.Verdict == tier {
			out = append(out, a)
		}
	}
	return out
}
