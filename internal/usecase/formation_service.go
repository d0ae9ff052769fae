package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/squad-audit/internal/domain/formation"
	"github.com/riskibarqy/squad-audit/internal/domain/position"
	"github.com/riskibarqy/squad-audit/internal/domain/role"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

const (
	formationScoreElite = 10
	formationScoreGood  = 4
	formationScoreOther = 1

	versatilityPenaltyStep  = 0.05
	versatilityPenaltyFloor = 0.7

	defaultFormationTopN    = 5
	formationRankingWorkers = 4

	maxBenchSeats = 11
)

// categoryFillOrder is the canonical traversal order for template
// categories, keeping assignment deterministic.
var categoryFillOrder = []position.Category{
	position.CategoryGoalkeeper,
	position.CategoryCentreBack,
	position.CategoryFullBack,
	position.CategoryDefensiveMidfield,
	position.CategoryCentralMidfield,
	position.CategoryAttackingMidfield,
	position.CategoryWinger,
	position.CategoryStriker,
}

// PlayerAssignment places one player into a formation slot. Score is the
// player's score in the best role belonging to the slot's category, and
// NaturalFit reports whether the slot matches their classified position.
type PlayerAssignment struct {
	PlayerID   string
	PlayerName string
	Category   position.Category
	Role       string
	Score      float64
	Tier       role.Tier
	NaturalFit bool
}

// BenchGap records a substitute seat nobody in the squad can cover.
type BenchGap struct {
	Seat   string
	Reason string
}

// FormationXI is the best starting eleven and bench for one template.
type FormationXI struct {
	FormationName     string
	StartingXI        []PlayerAssignment
	Bench             []PlayerAssignment
	BenchGaps         []BenchGap
	TotalQualityScore float64
}

// FormationSuggestion ranks one template against the squad.
type FormationSuggestion struct {
	FormationName    string
	Score            int
	RecruitmentNeeds map[position.Category]int
	XI               FormationXI
}

// FormationService picks lineups and ranks tactical shapes against an
// analyzed squad.
type FormationService struct {
	audit *AuditService
}

func NewFormationService(audit *AuditService) *FormationService {
	return &FormationService{audit: audit}
}

// SuggestForSquad analyzes a raw roster and ranks formations in one call.
func (s *FormationService) SuggestForSquad(ctx context.Context, input squad.Squad, topN int) ([]FormationSuggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "FormationService.SuggestForSquad")
	defer span.End()

	result, err := s.audit.AnalyzeSquad(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.SuggestFormations(ctx, result, topN)
}

// BuildForSquad analyzes a raw roster and assembles the eleven for one
// named template.
func (s *FormationService) BuildForSquad(ctx context.Context, input squad.Squad, formationName string) (FormationXI, error) {
	ctx, span := startUsecaseSpan(ctx, "FormationService.BuildForSquad")
	defer span.End()

	result, err := s.audit.AnalyzeSquad(ctx, input)
	if err != nil {
		return FormationXI{}, err
	}
	return s.BuildXI(ctx, result, formationName)
}

// BuildXI assembles the strongest eleven and bench for one named
// template.
func (s *FormationService) BuildXI(ctx context.Context, result SquadAnalysisResult, formationName string) (FormationXI, error) {
	_, span := startUsecaseSpan(ctx, "FormationService.BuildXI")
	defer span.End()

	formationName = strings.TrimSpace(formationName)
	tmpl, ok := formation.ByName(formationName)
	if !ok {
		return FormationXI{}, fmt.Errorf("%w: unknown formation %q", ErrInvalidInput, formationName)
	}
	if len(result.Analyses) == 0 {
		return FormationXI{}, fmt.Errorf("%w: analysis has no players", ErrInvalidInput)
	}
	return buildXI(tmpl, result.Analyses), nil
}

// SuggestFormations scores every catalogue template against the squad and
// returns the strongest fits, best first. Shapes the squad cannot field
// at all are omitted.
func (s *FormationService) SuggestFormations(ctx context.Context, result SquadAnalysisResult, topN int) ([]FormationSuggestion, error) {
	_, span := startUsecaseSpan(ctx, "FormationService.SuggestFormations")
	defer span.End()

	if len(result.Analyses) == 0 {
		return nil, fmt.Errorf("%w: analysis has no players", ErrInvalidInput)
	}
	if topN <= 0 {
		topN = defaultFormationTopN
	}

	type ranked struct {
		index      int
		feasible   bool
		suggestion FormationSuggestion
	}

	workers := pool.NewWithResults[ranked]().WithMaxGoroutines(formationRankingWorkers)
	for i, tmpl := range formation.Templates {
		i, tmpl := i, tmpl
		workers.Go(func() ranked {
			suggestion, feasible := rankTemplate(tmpl, result.Analyses)
			return ranked{index: i, feasible: feasible, suggestion: suggestion}
		})
	}
	results := workers.Wait()

	// Completion order is not deterministic; re-anchor on catalogue order
	// before ranking.
	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	var suggestions []FormationSuggestion
	for _, r := range results {
		if r.feasible {
			suggestions = append(suggestions, r.suggestion)
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions, nil
}

func rankTemplate(tmpl formation.Template, analyses []PlayerAnalysis) (FormationSuggestion, bool) {
	suggestion := FormationSuggestion{
		FormationName:    tmpl.Name,
		RecruitmentNeeds: make(map[position.Category]int),
	}

	for _, category := range categoryFillOrder {
		required, ok := tmpl.Requirements[category]
		if !ok {
			continue
		}

		var elite, good, total int
		for _, a := range analyses {
			if a.Category != category {
				continue
			}
			total++
			switch a.Verdict {
			case role.TierElite:
				elite++
			case role.TierGood:
				good++
			}
		}
		if total < required {
			return FormationSuggestion{}, false
		}

		eliteFilled := min(elite, required)
		goodFilled := min(good, required-eliteFilled)
		othersFilled := required - eliteFilled - goodFilled
		suggestion.Score += eliteFilled*formationScoreElite + goodFilled*formationScoreGood + othersFilled*formationScoreOther

		if need := required - (elite + good); need > 0 {
			suggestion.RecruitmentNeeds[category] = need
		}
	}

	suggestion.XI = buildXI(tmpl, analyses)
	return suggestion, true
}

// buildXI runs the two-pass assignment: categories with barely enough
// viable players are filled first so deeper positions cannot strip them,
// then the rest are filled scarcest-first. Versatile players are nudged
// down the candidate ordering so they stay available for positions only
// they can cover; their real score still counts toward quality.
func buildXI(tmpl formation.Template, analyses []PlayerAnalysis) FormationXI {
	xi := FormationXI{FormationName: tmpl.Name}
	assigned := make([]bool, len(analyses))

	type categoryDemand struct {
		category position.Category
		required int
		viable   int
	}
	var demands []categoryDemand
	for _, category := range categoryFillOrder {
		required, ok := tmpl.Requirements[category]
		if !ok {
			continue
		}
		var viable int
		for i := range analyses {
			if eligibleFor(analyses[i], category) && isViable(analyses[i]) {
				viable++
			}
		}
		demands = append(demands, categoryDemand{category: category, required: required, viable: viable})
	}

	critical := func(d categoryDemand) bool { return d.viable <= d.required }
	sort.SliceStable(demands, func(i, j int) bool {
		ci, cj := critical(demands[i]), critical(demands[j])
		if ci != cj {
			return ci
		}
		return demands[i].viable < demands[j].viable
	})

	unfilled := make(map[position.Category]bool, len(demands))
	for _, d := range demands {
		unfilled[d.category] = true
	}

	for _, d := range demands {
		// The versatility nudge only applies once the scarce categories are
		// safe; critical picks go purely on tier and position score.
		picks := pickForCategory(analyses, assigned, d.category, d.required, unfilled, !critical(d))
		for _, idx := range picks {
			assigned[idx] = true
			assignment := assignmentFor(analyses[idx], d.category)
			xi.StartingXI = append(xi.StartingXI, assignment)
			xi.TotalQualityScore += assignment.Score
		}
		unfilled[d.category] = false
	}

	// Top up to eleven with the best leftovers when positions went unfilled.
	if len(xi.StartingXI) < 11 {
		leftovers := unassignedIndexes(analyses, assigned)
		sortByStrength(analyses, leftovers)
		for _, idx := range leftovers {
			if len(xi.StartingXI) == 11 {
				break
			}
			assigned[idx] = true
			assignment := assignmentFor(analyses[idx], analyses[idx].Category)
			xi.StartingXI = append(xi.StartingXI, assignment)
			xi.TotalQualityScore += assignment.Score
		}
	}

	for _, seat := range formation.BenchCoverage {
		idx := -1
		for _, candidate := range unassignedIndexes(analyses, assigned) {
			if !seat.Covers(analyses[candidate].Category) {
				continue
			}
			if idx == -1 || strongerThan(analyses[candidate], analyses[idx]) {
				idx = candidate
			}
		}
		if idx == -1 {
			xi.BenchGaps = append(xi.BenchGaps, BenchGap{Seat: seat.Label, Reason: "no unassigned player covers this seat"})
			continue
		}
		assigned[idx] = true
		xi.Bench = append(xi.Bench, assignmentFor(analyses[idx], analyses[idx].Category))
	}

	// Coverage only guarantees seven seats; the remaining bench spots go to
	// the best unused players outright, up to eleven substitutes.
	if len(xi.Bench) < maxBenchSeats {
		leftovers := unassignedIndexes(analyses, assigned)
		sortByStrength(analyses, leftovers)
		for _, idx := range leftovers {
			if len(xi.Bench) == maxBenchSeats {
				break
			}
			assigned[idx] = true
			xi.Bench = append(xi.Bench, assignmentFor(analyses[idx], analyses[idx].Category))
		}
	}

	return xi
}

func isViable(a PlayerAnalysis) bool {
	return a.Playable && a.Verdict.Rank() >= role.TierAverage.Rank()
}

// eligibleFor reports whether a player can take a slot of the given
// category, either through any category their position string spans or,
// for unparseable positions, their classified category.
func eligibleFor(a PlayerAnalysis, category position.Category) bool {
	candidates := position.Candidates(a.Player.Position)
	if len(candidates) == 0 {
		return a.Category == category
	}
	for _, c := range candidates {
		if c == category {
			return true
		}
	}
	return false
}

// versatilityPenalty discounts a candidate's ordering weight for every
// other still-unfilled category they could also cover.
func versatilityPenalty(a PlayerAnalysis, current position.Category, unfilled map[position.Category]bool) float64 {
	var others int
	for category, open := range unfilled {
		if !open || category == current {
			continue
		}
		if eligibleFor(a, category) {
			others++
		}
	}
	penalty := 1 - versatilityPenaltyStep*float64(others)
	if penalty < versatilityPenaltyFloor {
		penalty = versatilityPenaltyFloor
	}
	return penalty
}

func pickForCategory(analyses []PlayerAnalysis, assigned []bool, category position.Category, required int, unfilled map[position.Category]bool, applyPenalty bool) []int {
	var candidates []int
	for i := range analyses {
		if !assigned[i] && eligibleFor(analyses[i], category) {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(x, y int) bool {
		a, b := analyses[candidates[x]], analyses[candidates[y]]
		if va, vb := isViable(a), isViable(b); va != vb {
			return va
		}
		if a.Verdict.Rank() != b.Verdict.Rank() {
			return a.Verdict.Rank() > b.Verdict.Rank()
		}
		ea := positionScore(a, category)
		eb := positionScore(b, category)
		if applyPenalty {
			ea *= versatilityPenalty(a, category, unfilled)
			eb *= versatilityPenalty(b, category, unfilled)
		}
		if ea != eb {
			return ea > eb
		}
		return a.Player.Name < b.Player.Name
	})

	if len(candidates) > required {
		candidates = candidates[:required]
	}
	return candidates
}

func assignmentFor(a PlayerAnalysis, category position.Category) PlayerAssignment {
	name, score := bestRoleForCategory(a, category)
	return PlayerAssignment{
		PlayerID:   a.Player.ID,
		PlayerName: a.Player.Name,
		Category:   category,
		Role:       name,
		Score:      score,
		Tier:       a.Verdict,
		NaturalFit: a.Category == category,
	}
}

// positionScore is the player's score in their best role for the slot's
// category, or their overall index when no role of that category was
// evaluated.
func positionScore(a PlayerAnalysis, category position.Category) float64 {
	_, score := bestRoleForCategory(a, category)
	return score
}

// bestRoleForCategory picks the player's best-scored role belonging to the
// slot's category, falling back to their overall best role. AllRoles is
// already sorted best-first, so the first category match wins.
func bestRoleForCategory(a PlayerAnalysis, category position.Category) (string, float64) {
	for _, sc := range a.AllRoles {
		def, ok := role.Catalog[sc.Role]
		if ok && def.Category == category {
			return sc.Role, sc.Score
		}
	}
	if a.BestRole != nil {
		return a.BestRole.Role, a.PerformanceIndex
	}
	return "", a.PerformanceIndex
}

func unassignedIndexes(analyses []PlayerAnalysis, assigned []bool) []int {
	var out []int
	for i := range analyses {
		if !assigned[i] {
			out = append(out, i)
		}
	}
	return out
}

func sortByStrength(analyses []PlayerAnalysis, indexes []int) {
	sort.SliceStable(indexes, func(x, y int) bool {
		return strongerThan(analyses[indexes[x]], analyses[indexes[y]])
	})
}

func strongerThan(a, b PlayerAnalysis) bool {
	if a.Verdict.Rank() != b.Verdict.Rank() {
		return a.Verdict.Rank() > b.Verdict.Rank()
	}
	if a.PerformanceIndex != b.PerformanceIndex {
		return a.PerformanceIndex > b.PerformanceIndex
	}
	return a.Player.Name < b.Player.Name
}
