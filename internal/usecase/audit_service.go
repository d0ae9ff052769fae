package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
	"github.com/riskibarqy/squad-audit/internal/domain/position"
	"github.com/riskibarqy/squad-audit/internal/domain/role"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
	"github.com/riskibarqy/squad-audit/internal/platform/cache"
	idgen "github.com/riskibarqy/squad-audit/internal/platform/id"
)

const (
	defaultAnalysisWorkers = 8
	topMetricCount         = 2
)

// AuditService runs full squad evaluations: role scores, reliability
// adjustment, value and wage context, and per-player recommendations.
type AuditService struct {
	snapshotRepo squad.SnapshotRepository
	baselineRepo baseline.Repository
	store        *cache.Store
	idGen        idgen.Generator
	workerCount  int
	now          func() time.Time
}

func NewAuditService(
	snapshotRepo squad.SnapshotRepository,
	baselineRepo baseline.Repository,
	store *cache.Store,
	idGen idgen.Generator,
) *AuditService {
	return &AuditService{
		snapshotRepo: snapshotRepo,
		baselineRepo: baselineRepo,
		store:        store,
		idGen:        idGen,
		workerCount:  defaultAnalysisWorkers,
		now:          time.Now,
	}
}

// AnalyzeSquad evaluates every roster entry. Players with an empty name
// or no usable position are skipped and counted rather than failing the
// whole import. Output order follows the input roster.
func (s *AuditService) AnalyzeSquad(ctx context.Context, input squad.Squad) (SquadAnalysisResult, error) {
	ctx, span := startUsecaseSpan(ctx, "AuditService.AnalyzeSquad")
	defer span.End()

	if len(input.Players) == 0 {
		return SquadAnalysisResult{}, fmt.Errorf("%w: squad has no players", ErrInvalidInput)
	}

	players := make([]squad.Player, 0, len(input.Players))
	var skipped int
	for _, p := range input.Players {
		if strings.TrimSpace(p.Name) == "" || p.ValidateBasic() != nil {
			skipped++
			continue
		}
		players = append(players, p)
	}
	if len(players) == 0 {
		return SquadAnalysisResult{}, fmt.Errorf("%w: no analyzable players in squad", ErrInvalidInput)
	}

	avgWage := squad.Squad{Players: players}.AverageWage()

	var collection baseline.Collection
	var haveBaselines bool
	if s.baselineRepo != nil {
		loaded, ok, err := s.baselineRepo.Latest(ctx)
		if err != nil {
			return SquadAnalysisResult{}, fmt.Errorf("load league baselines: %w", err)
		}
		collection, haveBaselines = loaded, ok
	}

	// Classification is cheap and the positional benchmarks need every
	// player's category before anyone can be scored, so that runs up
	// front. Small-sample players then evaluate on a blended copy of
	// their stats rather than the raw numbers.
	categories := make([]position.Category, len(players))
	for i, p := range players {
		categories[i] = position.Classify(p.Position, p.PositionSelected, p.Stats)
	}
	benchmarks := positionalBenchmarks(categories, players)

	// Role evaluation is embarrassingly parallel: each player depends on
	// nothing but the precomputed benchmarks. Results are index-addressed
	// so worker completion order cannot reorder the roster.
	evaluations := make([]playerEvaluation, len(players))

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return SquadAnalysisResult{}, fmt.Errorf("create analysis worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := range players {
		i := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			evaluations[i] = evaluatePlayer(players[i], categories[i], benchmarks[categories[i]])
		}); err != nil {
			workers.Done()
			return SquadAnalysisResult{}, fmt.Errorf("submit player evaluation: %w", err)
		}
	}
	workers.Wait()

	now := s.now()
	analyses := make([]PlayerAnalysis, len(players))
	for i, p := range players {
		analyses[i] = s.finishAnalysis(p, evaluations[i], benchmarks, avgWage, collection, haveBaselines, input.Division, now)
	}

	return SquadAnalysisResult{
		SquadName:      input.Name,
		Division:       input.Division,
		Analyses:       analyses,
		Benchmarks:     benchmarks,
		SquadAvgWage:   avgWage,
		TotalPlayers:   len(players),
		SkippedPlayers: skipped,
	}, nil
}

// playerEvaluation is the parallel evaluation output for one player. The
// role scores are computed on the reliability-adjusted stats, so the best
// role's score IS the performance index for a gradeable sample.
type playerEvaluation struct {
	category position.Category
	playable bool
	allRoles []role.Score
	best     *role.Score
	change   *role.ChangeSuggestion
}

func evaluatePlayer(p squad.Player, category position.Category, benchmarks map[string]float64) playerEvaluation {
	stats := adjustedStats(p, benchmarks)

	candidates := role.RolesForPosition(p.Position)
	playable := len(candidates) > 0
	if !playable {
		candidates = role.ByCategory(category)
	}

	scores := role.EvaluateAll(candidates, stats)
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Role < scores[j].Role
	})

	ev := playerEvaluation{
		category: category,
		playable: playable,
		allRoles: scores,
	}
	if len(scores) == 0 {
		return ev
	}

	best := scores[0]
	ev.best = &best

	byRole := make(map[string]role.Score, len(scores))
	for _, sc := range scores {
		byRole[sc.Role] = sc
	}
	ev.change = role.SuggestChange(best, byRole, stats)
	return ev
}

func (s *AuditService) finishAnalysis(
	p squad.Player,
	ev playerEvaluation,
	benchmarks map[position.Category]map[string]float64,
	avgWage float64,
	collection baseline.Collection,
	haveBaselines bool,
	division string,
	now time.Time,
) PlayerAnalysis {
	analysis := PlayerAnalysis{
		Player:      p,
		Category:    ev.category,
		Playable:    ev.playable,
		BestRole:    ev.best,
		AllRoles:    ev.allRoles,
		RoleChange:  ev.change,
		DataQuality: dataQualityFor(p),
	}

	minutes, known := sampleMinutes(p)
	if known && minutes < minMinutesForAnalysis {
		// The role labels are still worth showing, but the sample is too
		// thin to grade or price the player on.
		analysis.PerformanceIndex = 0
		analysis.Verdict = role.TierPoor
		analysis.ValueScore = neutralValueScore
		analysis.Recommendation = recommendFor(p, analysis.Verdict, analysis.ValueScore, now)
		return analysis
	}

	if ev.best != nil {
		analysis.PerformanceIndex = ev.best.Score
	}
	analysis.Verdict = role.TierForScore(analysis.PerformanceIndex)
	analysis.ValueScore = valueScore(analysis.PerformanceIndex, p.Wage, avgWage)
	analysis.TopMetrics = topMetrics(p, ev.category, benchmarks[ev.category])

	if haveBaselines && division != "" && p.Wage > 0 {
		if b, ok := collection.Lookup(division, ev.category); ok {
			lv := valueScore(analysis.PerformanceIndex, p.Wage, b.AverageWage)
			analysis.LeagueValueScore = &lv
			pct := b.WagePercentile(p.Wage)
			analysis.WagePercentile = &pct
		}
	}

	analysis.Recommendation = recommendFor(p, analysis.Verdict, analysis.ValueScore, now)
	return analysis
}

// topMetrics summarises the two stats that most outperform the squad's
// positional average, as "Name: value" pairs for the report.
func topMetrics(p squad.Player, category position.Category, benchmarks map[string]float64) []string {
	type ranked struct {
		metric   string
		value    float64
		relative float64
	}

	var scored []ranked
	for _, metric := range position.FitMetrics[category] {
		value, ok := p.Metric(metric)
		if !ok {
			continue
		}
		avg := benchmarks[metric]
		if avg == 0 {
			continue
		}
		scored = append(scored, ranked{metric: metric, value: value, relative: value / avg})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].relative != scored[j].relative {
			return scored[i].relative > scored[j].relative
		}
		return scored[i].metric < scored[j].metric
	})

	n := topMetricCount
	if n > len(scored) {
		n = len(scored)
	}
	out := make([]string, 0, n)
	for _, m := range scored[:n] {
		out = append(out, fmt.Sprintf("%s: %.2f", squad.DisplayName(m.metric), m.value))
	}
	return out
}

// ImportSnapshot persists a roster so analyses can be re-run later.
func (s *AuditService) ImportSnapshot(ctx context.Context, input squad.Squad) (squad.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "AuditService.ImportSnapshot")
	defer span.End()

	if err := input.ValidateBasic(); err != nil {
		return squad.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return squad.Snapshot{}, fmt.Errorf("generate snapshot id: %w", err)
	}

	snapshot := squad.Snapshot{
		ID:        newID,
		Name:      input.Name,
		Division:  input.Division,
		Players:   input.Players,
		CreatedAt: s.now().UTC(),
	}
	if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
		return squad.Snapshot{}, fmt.Errorf("save squad snapshot: %w", err)
	}
	return snapshot, nil
}

// AnalyzeSnapshot re-runs the analysis for a stored roster. Results are
// cached per snapshot since rosters are immutable once imported.
func (s *AuditService) AnalyzeSnapshot(ctx context.Context, snapshotID string) (SquadAnalysisResult, error) {
	ctx, span := startUsecaseSpan(ctx, "AuditService.AnalyzeSnapshot")
	defer span.End()

	snapshotID = strings.TrimSpace(snapshotID)
	if snapshotID == "" {
		return SquadAnalysisResult{}, fmt.Errorf("%w: snapshot id is required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		snapshot, exists, err := s.snapshotRepo.GetByID(ctx, snapshotID)
		if err != nil {
			return nil, fmt.Errorf("get squad snapshot: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: snapshot %s", ErrNotFound, snapshotID)
		}
		result, err := s.AnalyzeSquad(ctx, squad.Squad{
			Name:     snapshot.Name,
			Division: snapshot.Division,
			Players:  snapshot.Players,
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	if s.store == nil {
		result, err := load(ctx)
		if err != nil {
			return SquadAnalysisResult{}, err
		}
		return result.(SquadAnalysisResult), nil
	}

	value, err := s.store.GetOrLoad(ctx, "analysis:"+snapshotID, load)
	if err != nil {
		return SquadAnalysisResult{}, err
	}
	return value.(SquadAnalysisResult), nil
}

// ListSnapshots returns stored rosters, newest first.
func (s *AuditService) ListSnapshots(ctx context.Context, limit int) ([]squad.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "AuditService.ListSnapshots")
	defer span.End()

	if limit <= 0 {
		limit = 50
	}
	snapshots, err := s.snapshotRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list squad snapshots: %w", err)
	}
	return snapshots, nil
}

// Divisions lists the divisions the loaded baseline collection knows.
func (s *AuditService) Divisions(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "AuditService.Divisions")
	defer span.End()

	if s.baselineRepo == nil {
		return nil, nil
	}
	collection, ok, err := s.baselineRepo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load league baselines: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return collection.Divisions(), nil
}

// LoadBaselines stores a new baseline collection.
func (s *AuditService) LoadBaselines(ctx context.Context, collection baseline.Collection) error {
	ctx, span := startUsecaseSpan(ctx, "AuditService.LoadBaselines")
	defer span.End()

	if err := collection.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.baselineRepo.Save(ctx, collection); err != nil {
		return fmt.Errorf("save league baselines: %w", err)
	}
	return nil
}
