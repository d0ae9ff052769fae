package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/squad-audit/internal/domain/role"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
	"github.com/riskibarqy/squad-audit/internal/usecase"
)

type analyzeSquadRequest struct {
	SquadName string          `json:"squad_name" validate:"required,max=120"`
	Division  string          `json:"division" validate:"omitempty,max=120"`
	Players   []playerPayload `json:"players" validate:"required,min=1,dive"`
}

type playerPayload struct {
	ID               string             `json:"id" validate:"omitempty,max=64"`
	Name             string             `json:"name" validate:"required,max=120"`
	Age              int                `json:"age" validate:"gte=0,lte=60"`
	Position         string             `json:"position" validate:"required,max=40"`
	PositionSelected string             `json:"position_selected" validate:"omitempty,max=40"`
	Wage             float64            `json:"wage" validate:"gte=0"`
	Apps             int                `json:"apps" validate:"gte=0"`
	Subs             int                `json:"subs" validate:"gte=0"`
	Minutes          *int               `json:"minutes,omitempty" validate:"omitempty,gte=0"`
	Status           string             `json:"status" validate:"omitempty,max=40"`
	ContractExpires  string             `json:"contract_expires" validate:"omitempty,max=16"`
	Stats            map[string]float64 `json:"stats"`
}

type suggestFormationsRequest struct {
	Squad analyzeSquadRequest `json:"squad" validate:"required"`
	TopN  int                 `json:"top_n" validate:"gte=0,lte=11"`
}

type buildFormationRequest struct {
	Squad     analyzeSquadRequest `json:"squad" validate:"required"`
	Formation string              `json:"formation" validate:"required,max=60"`
}

type listSnapshotsRequest struct {
	Limit int `validate:"gte=0,lte=200"`
}

type thresholdsDTO struct {
	Good     float64 `json:"good"`
	Ok       float64 `json:"ok"`
	Poor     float64 `json:"poor"`
	Inverted bool    `json:"inverted,omitempty"`
}

type metricScoreDTO struct {
	Metric     string        `json:"metric"`
	Label      string        `json:"label"`
	Value      float64       `json:"value"`
	Score      float64       `json:"score"`
	Tier       string        `json:"tier"`
	Weight     string        `json:"weight"`
	Thresholds thresholdsDTO `json:"thresholds"`
}

type roleScoreDTO struct {
	Role           string           `json:"role"`
	DisplayName    string           `json:"display_name,omitempty"`
	Score          float64          `json:"score"`
	Tier           string           `json:"tier"`
	Metrics        []metricScoreDTO `json:"metrics,omitempty"`
	MissingMetrics []string         `json:"missing_metrics,omitempty"`
	Strengths      []string         `json:"strengths,omitempty"`
	Weaknesses     []string         `json:"weaknesses,omitempty"`
}

type roleChangeDTO struct {
	FromRole string `json:"from_role"`
	ToRole   string `json:"to_role"`
	Note     string `json:"note,omitempty"`
}

type recommendationDTO struct {
	Badge           string `json:"badge"`
	Color           string `json:"color"`
	Explanation     string `json:"explanation"`
	ContractWarning string `json:"contract_warning,omitempty"`
}

type playerAnalysisDTO struct {
	ID               string            `json:"id,omitempty"`
	Name             string            `json:"name"`
	Age              int               `json:"age"`
	Position         string            `json:"position"`
	Category         string            `json:"category"`
	Playable         bool              `json:"playable"`
	Wage             float64           `json:"wage"`
	BestRole         *roleScoreDTO     `json:"best_role,omitempty"`
	AllRoles         []roleScoreDTO    `json:"all_roles,omitempty"`
	RoleChange       *roleChangeDTO    `json:"role_change,omitempty"`
	PerformanceIndex float64           `json:"performance_index"`
	Verdict          string            `json:"verdict"`
	ValueScore       float64           `json:"value_score"`
	LeagueValueScore *float64          `json:"league_value_score,omitempty"`
	WagePercentile   *float64          `json:"wage_percentile,omitempty"`
	Status           string            `json:"status,omitempty"`
	TopMetrics       []string          `json:"top_metrics,omitempty"`
	DataQuality      string            `json:"data_quality"`
	Recommendation   recommendationDTO `json:"recommendation"`
}

type squadAnalysisDTO struct {
	SquadName      string                        `json:"squad_name"`
	Division       string                        `json:"division,omitempty"`
	SquadAvgWage   float64                       `json:"squad_avg_wage"`
	TotalPlayers   int                           `json:"total_players"`
	SkippedPlayers int                           `json:"skipped_players"`
	Benchmarks     map[string]map[string]float64 `json:"benchmarks,omitempty"`
	Players        []playerAnalysisDTO           `json:"players"`
}

type assignmentDTO struct {
	PlayerID   string  `json:"player_id,omitempty"`
	PlayerName string  `json:"player_name"`
	Category   string  `json:"category"`
	Role       string  `json:"role,omitempty"`
	Score      float64 `json:"score"`
	Tier       string  `json:"tier"`
	NaturalFit bool    `json:"natural_fit"`
}

type benchGapDTO struct {
	Seat   string `json:"seat"`
	Reason string `json:"reason"`
}

type formationXIDTO struct {
	Formation         string          `json:"formation"`
	StartingXI        []assignmentDTO `json:"starting_xi"`
	Bench             []assignmentDTO `json:"bench"`
	BenchGaps         []benchGapDTO   `json:"bench_gaps,omitempty"`
	TotalQualityScore float64         `json:"total_quality_score"`
}

type formationSuggestionDTO struct {
	Formation        string         `json:"formation"`
	Score            int            `json:"score"`
	RecruitmentNeeds map[string]int `json:"recruitment_needs,omitempty"`
	XI               formationXIDTO `json:"xi"`
}

type snapshotDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Division     string `json:"division,omitempty"`
	PlayerCount  int    `json:"player_count"`
	CreatedAtUTC string `json:"created_at_utc"`
}

type divisionsDTO struct {
	Divisions []string `json:"divisions"`
}

type baselineUploadDTO struct {
	Version   string `json:"version"`
	Baselines int    `json:"baselines"`
	Divisions int    `json:"divisions"`
}

func squadFromRequest(ctx context.Context, req analyzeSquadRequest) squad.Squad {
	ctx, span := startSpan(ctx, "httpapi.squadFromRequest")
	defer span.End()

	players := make([]squad.Player, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, playerFromPayload(ctx, p))
	}

	return squad.Squad{
		Name:     req.SquadName,
		Division: req.Division,
		Players:  players,
	}
}

func playerFromPayload(ctx context.Context, p playerPayload) squad.Player {
	ctx, span := startSpan(ctx, "httpapi.playerFromPayload")
	defer span.End()

	return squad.Player{
		ID:               p.ID,
		Name:             p.Name,
		Age:              p.Age,
		Position:         p.Position,
		PositionSelected: p.PositionSelected,
		Wage:             p.Wage,
		Apps:             p.Apps,
		Subs:             p.Subs,
		Minutes:          p.Minutes,
		Status:           squad.ParseStatusFlag(p.Status),
		ContractExpires:  p.ContractExpires,
		Stats:            p.Stats,
	}
}

func analysisToDTO(ctx context.Context, result usecase.SquadAnalysisResult) squadAnalysisDTO {
	ctx, span := startSpan(ctx, "httpapi.analysisToDTO")
	defer span.End()

	players := make([]playerAnalysisDTO, 0, len(result.Analyses))
	for _, a := range result.Analyses {
		players = append(players, playerAnalysisToDTO(ctx, a))
	}

	var benchmarks map[string]map[string]float64
	if len(result.Benchmarks) > 0 {
		benchmarks = make(map[string]map[string]float64, len(result.Benchmarks))
		for category, metrics := range result.Benchmarks {
			averages := make(map[string]float64, len(metrics))
			for metric, value := range metrics {
				averages[metric] = value
			}
			benchmarks[string(category)] = averages
		}
	}

	return squadAnalysisDTO{
		SquadName:      result.SquadName,
		Division:       result.Division,
		SquadAvgWage:   result.SquadAvgWage,
		TotalPlayers:   result.TotalPlayers,
		SkippedPlayers: result.SkippedPlayers,
		Benchmarks:     benchmarks,
		Players:        players,
	}
}

func playerAnalysisToDTO(ctx context.Context, a usecase.PlayerAnalysis) playerAnalysisDTO {
	ctx, span := startSpan(ctx, "httpapi.playerAnalysisToDTO")
	defer span.End()

	dto := playerAnalysisDTO{
		ID:               a.Player.ID,
		Name:             a.Player.Name,
		Age:              a.Player.Age,
		Position:         a.Player.Position,
		Category:         string(a.Category),
		Playable:         a.Playable,
		Wage:             a.Player.Wage,
		PerformanceIndex: round1(ctx, a.PerformanceIndex),
		Verdict:          string(a.Verdict),
		ValueScore:       round1(ctx, a.ValueScore),
		LeagueValueScore: roundPtr(ctx, a.LeagueValueScore),
		WagePercentile:   a.WagePercentile,
		Status:           a.Player.Status.String(),
		TopMetrics:       append([]string(nil), a.TopMetrics...),
		DataQuality:      string(a.DataQuality),
		Recommendation: recommendationDTO{
			Badge:           a.Recommendation.Badge,
			Color:           a.Recommendation.Color,
			Explanation:     a.Recommendation.Explanation,
			ContractWarning: a.Recommendation.ContractWarning,
		},
	}

	if a.BestRole != nil {
		best := roleScoreToDTO(ctx, *a.BestRole)
		dto.BestRole = &best
	}
	if len(a.AllRoles) > 0 {
		dto.AllRoles = make([]roleScoreDTO, 0, len(a.AllRoles))
		for _, rs := range a.AllRoles {
			dto.AllRoles = append(dto.AllRoles, roleScoreToDTO(ctx, rs))
		}
	}
	if a.RoleChange != nil {
		dto.RoleChange = &roleChangeDTO{
			FromRole: a.RoleChange.FromRole,
			ToRole:   a.RoleChange.ToRole,
			Note:     a.RoleChange.Note,
		}
	}

	return dto
}

func roleScoreToDTO(ctx context.Context, rs role.Score) roleScoreDTO {
	ctx, span := startSpan(ctx, "httpapi.roleScoreToDTO")
	defer span.End()

	metrics := make([]metricScoreDTO, 0, len(rs.Metrics))
	for _, m := range rs.Metrics {
		metrics = append(metrics, metricScoreDTO{
			Metric: m.Metric,
			Label:  squad.DisplayName(m.Metric),
			Value:  m.Value,
			Score:  round1(ctx, m.Score),
			Tier:   string(m.Tier),
			Weight: string(m.Weight),
			Thresholds: thresholdsDTO{
				Good:     m.Thresholds.Good,
				Ok:       m.Thresholds.Ok,
				Poor:     m.Thresholds.Poor,
				Inverted: m.Thresholds.Inverted,
			},
		})
	}

	var displayName string
	if def, ok := role.Catalog[rs.Role]; ok {
		displayName = def.DisplayName
	}

	return roleScoreDTO{
		Role:           rs.Role,
		DisplayName:    displayName,
		Score:          round1(ctx, rs.Score),
		Tier:           string(rs.Tier),
		Metrics:        metrics,
		MissingMetrics: append([]string(nil), rs.MissingMetrics...),
		Strengths:      append([]string(nil), rs.Strengths...),
		Weaknesses:     append([]string(nil), rs.Weaknesses...),
	}
}

func formationXIToDTO(ctx context.Context, xi usecase.FormationXI) formationXIDTO {
	ctx, span := startSpan(ctx, "httpapi.formationXIToDTO")
	defer span.End()

	gaps := make([]benchGapDTO, 0, len(xi.BenchGaps))
	for _, gap := range xi.BenchGaps {
		gaps = append(gaps, benchGapDTO{Seat: gap.Seat, Reason: gap.Reason})
	}

	return formationXIDTO{
		Formation:         xi.FormationName,
		StartingXI:        assignmentsToDTO(ctx, xi.StartingXI),
		Bench:             assignmentsToDTO(ctx, xi.Bench),
		BenchGaps:         gaps,
		TotalQualityScore: round1(ctx, xi.TotalQualityScore),
	}
}

func assignmentsToDTO(ctx context.Context, assignments []usecase.PlayerAssignment) []assignmentDTO {
	ctx, span := startSpan(ctx, "httpapi.assignmentsToDTO")
	defer span.End()

	out := make([]assignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, assignmentDTO{
			PlayerID:   a.PlayerID,
			PlayerName: a.PlayerName,
			Category:   string(a.Category),
			Role:       a.Role,
			Score:      round1(ctx, a.Score),
			Tier:       string(a.Tier),
			NaturalFit: a.NaturalFit,
		})
	}

	return out
}

func formationSuggestionsToDTO(ctx context.Context, suggestions []usecase.FormationSuggestion) []formationSuggestionDTO {
	ctx, span := startSpan(ctx, "httpapi.formationSuggestionsToDTO")
	defer span.End()

	out := make([]formationSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		var needs map[string]int
		if len(s.RecruitmentNeeds) > 0 {
			needs = make(map[string]int, len(s.RecruitmentNeeds))
			for category, count := range s.RecruitmentNeeds {
				needs[string(category)] = count
			}
		}

		out = append(out, formationSuggestionDTO{
			Formation:        s.FormationName,
			Score:            s.Score,
			RecruitmentNeeds: needs,
			XI:               formationXIToDTO(ctx, s.XI),
		})
	}

	return out
}

func snapshotToDTO(ctx context.Context, s squad.Snapshot) snapshotDTO {
	ctx, span := startSpan(ctx, "httpapi.snapshotToDTO")
	defer span.End()

	return snapshotDTO{
		ID:           s.ID,
		Name:         s.Name,
		Division:     s.Division,
		PlayerCount:  len(s.Players),
		CreatedAtUTC: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func round1(ctx context.Context, v float64) float64 {
	ctx, span := startSpan(ctx, "httpapi.round1")
	defer span.End()

	return float64(int(v*10+0.5)) / 10.0
}

func roundPtr(ctx context.Context, v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := round1(ctx, *v)
	return &rounded
}
