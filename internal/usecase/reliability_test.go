package usecase

import (
	"testing"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

func minutesPtr(v int) *int { return &v }

func TestReliabilityWeight(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{200, 0},
		{350, 0.5},
		{500, 1},
		{2700, 1},
		{100, 0},
	}
	for _, tt := range tests {
		if got := reliabilityWeight(tt.minutes); got != tt.want {
			t.Fatalf("reliabilityWeight(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestAdjustedStatsBlendsEachMetric(t *testing.T) {
	p := squad.Player{
		Name:    "x",
		Minutes: minutesPtr(350),
		Stats:   map[string]float64{"alpha": 10, "beta": 4},
	}
	benchmarks := map[string]float64{"alpha": 6, "beta": 8}

	got := adjustedStats(p, benchmarks)
	// Half trust: each value lands midway between raw and the squad mean.
	if got["alpha"] != 8.0 {
		t.Fatalf("alpha = %v, want 8.0", got["alpha"])
	}
	if got["beta"] != 6.0 {
		t.Fatalf("beta = %v, want 6.0", got["beta"])
	}
	if p.Stats["alpha"] != 10 {
		t.Fatal("player stats must not be mutated")
	}
}

func TestAdjustedStatsAtFloorUsesSquadAverage(t *testing.T) {
	p := squad.Player{Name: "x", Minutes: minutesPtr(200), Stats: map[string]float64{"alpha": 10}}
	got := adjustedStats(p, map[string]float64{"alpha": 6})
	if got["alpha"] != 6 {
		t.Fatalf("alpha at zero trust = %v, want 6", got["alpha"])
	}
}

func TestAdjustedStatsFullTrustPassesThrough(t *testing.T) {
	p := squad.Player{Name: "x", Minutes: minutesPtr(500), Stats: map[string]float64{"alpha": 10}}
	got := adjustedStats(p, map[string]float64{"alpha": 6})
	if got["alpha"] != 10 {
		t.Fatalf("full sample adjusted to %v", got["alpha"])
	}
}

func TestAdjustedStatsNilMinutesBypasses(t *testing.T) {
	p := squad.Player{Name: "x", Stats: map[string]float64{"alpha": 10}}
	got := adjustedStats(p, map[string]float64{"alpha": 6})
	if got["alpha"] != 10 {
		t.Fatalf("missing minutes adjusted to %v", got["alpha"])
	}
}

func TestAdjustedStatsUnderFloorBypasses(t *testing.T) {
	// Scoring bypasses these samples entirely, so the labels computed from
	// them should show the raw numbers.
	p := squad.Player{Name: "x", Minutes: minutesPtr(150), Stats: map[string]float64{"alpha": 10}}
	got := adjustedStats(p, map[string]float64{"alpha": 6})
	if got["alpha"] != 10 {
		t.Fatalf("under-floor sample adjusted to %v", got["alpha"])
	}
}

func TestAdjustedStatsMetricWithoutBenchmark(t *testing.T) {
	p := squad.Player{Name: "x", Minutes: minutesPtr(300), Stats: map[string]float64{"alpha": 10}}
	got := adjustedStats(p, map[string]float64{"beta": 6})
	if got["alpha"] != 10 {
		t.Fatalf("unbenchmarked metric adjusted to %v", got["alpha"])
	}
}

func TestDataQualityBuckets(t *testing.T) {
	tests := []struct {
		name    string
		minutes *int
		want    DataQuality
	}{
		{"nil minutes", nil, DataQualityFull},
		{"tiny sample", minutesPtr(150), DataQualityInsufficient},
		{"projected", minutesPtr(350), DataQualityProjected},
		{"full", minutesPtr(900), DataQualityFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := squad.Player{Name: "x", Minutes: tt.minutes}
			if got := dataQualityFor(p); got != tt.want {
				t.Fatalf("dataQualityFor = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPositionalBenchmarksAverageWholeCategory(t *testing.T) {
	players := []squad.Player{
		{Name: "a", Minutes: minutesPtr(2700), Stats: map[string]float64{"xg_90": 0.45, "dribbles_90": 3.0}},
		{Name: "b", Minutes: minutesPtr(350), Stats: map[string]float64{"xg_90": 0.10}},
		{Name: "c", Minutes: minutesPtr(2500), Stats: map[string]float64{"tackles_90": 2.0}},
	}
	categories := []position.Category{
		position.CategoryStriker,
		position.CategoryStriker,
		position.CategoryCentreBack,
	}

	benchmarks := positionalBenchmarks(categories, players)

	strikers := benchmarks[position.CategoryStriker]
	// Small samples still count toward the squad mean.
	if got := strikers["xg_90"]; got != (0.45+0.10)/2 {
		t.Fatalf("striker xg benchmark = %v, want %v", got, (0.45+0.10)/2)
	}
	// Players missing a metric do not drag its mean down.
	if got := strikers["dribbles_90"]; got != 3.0 {
		t.Fatalf("striker dribbles benchmark = %v, want 3.0", got)
	}
	if got := benchmarks[position.CategoryCentreBack]["tackles_90"]; got != 2.0 {
		t.Fatalf("centre back tackles benchmark = %v, want 2.0", got)
	}
}
