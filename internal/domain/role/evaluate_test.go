package role

import (
	"testing"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
)

func testDefinition() Definition {
	return Definition{
		Name:        "TEST",
		DisplayName: "Test Role",
		Category:    position.CategoryCentralMidfield,
		Metrics: map[string]Thresholds{
			"alpha": {Good: 10, Ok: 6, Poor: 2},
			"beta":  {Good: 10, Ok: 6, Poor: 2},
		},
		Primary:   []string{"alpha"},
		Secondary: []string{"beta"},
	}
}

func TestEvaluateWeightsPrimarySeventyThirty(t *testing.T) {
	// alpha=10 scores 100 elite, beta=4 scores 55 average.
	got := Evaluate(testDefinition(), map[string]float64{"alpha": 10, "beta": 4})
	want := 0.7*100 + 0.3*55
	if !almostEqual(got.Score, want) {
		t.Fatalf("Score = %v, want %v", got.Score, want)
	}
	if got.Tier != TierElite {
		t.Fatalf("Tier = %s, want %s", got.Tier, TierElite)
	}
	if len(got.Metrics) != 2 {
		t.Fatalf("expected 2 metric scores, got %d", len(got.Metrics))
	}
}

func TestEvaluateTracksStrengthsAndWeaknesses(t *testing.T) {
	// alpha=12 grades ELITE, beta=1 grades CRITICAL.
	got := Evaluate(testDefinition(), map[string]float64{"alpha": 12, "beta": 1})
	if len(got.Strengths) != 1 || got.Strengths[0] != "alpha" {
		t.Fatalf("Strengths = %v, want [alpha]", got.Strengths)
	}
	if len(got.Weaknesses) != 1 || got.Weaknesses[0] != "beta" {
		t.Fatalf("Weaknesses = %v, want [beta]", got.Weaknesses)
	}
}

func TestEvaluateCarriesWeightAndThresholds(t *testing.T) {
	got := Evaluate(testDefinition(), map[string]float64{"alpha": 10, "beta": 4})
	for _, ms := range got.Metrics {
		want := WeightSecondary
		if ms.Metric == "alpha" {
			want = WeightPrimary
		}
		if ms.Weight != want {
			t.Fatalf("metric %s weight = %s, want %s", ms.Metric, ms.Weight, want)
		}
		if ms.Thresholds != (Thresholds{Good: 10, Ok: 6, Poor: 2}) {
			t.Fatalf("metric %s thresholds = %+v", ms.Metric, ms.Thresholds)
		}
	}
}

func TestEvaluateMissingSecondaryShiftsFullWeight(t *testing.T) {
	got := Evaluate(testDefinition(), map[string]float64{"alpha": 10})
	if !almostEqual(got.Score, 100) {
		t.Fatalf("Score = %v, want 100", got.Score)
	}
	if len(got.MissingMetrics) != 1 || got.MissingMetrics[0] != "beta" {
		t.Fatalf("MissingMetrics = %v", got.MissingMetrics)
	}
}

func TestEvaluateMissingPrimaryShiftsFullWeight(t *testing.T) {
	got := Evaluate(testDefinition(), map[string]float64{"beta": 8})
	if !almostEqual(got.Score, 85) {
		t.Fatalf("Score = %v, want 85", got.Score)
	}
}

func TestEvaluateNoMetricsScoresZero(t *testing.T) {
	got := Evaluate(testDefinition(), nil)
	if got.Score != 0 || got.Tier != TierPoor {
		t.Fatalf("empty stats: got score=%v tier=%s", got.Score, got.Tier)
	}
	if len(got.MissingMetrics) != 2 {
		t.Fatalf("MissingMetrics = %v", got.MissingMetrics)
	}
}

func TestEvaluateRenormalizesWithinGroup(t *testing.T) {
	def := testDefinition()
	def.Metrics["gamma"] = Thresholds{Good: 10, Ok: 6, Poor: 2}
	def.Primary = []string{"alpha", "gamma"}

	// gamma missing: primary average must come from alpha alone.
	got := Evaluate(def, map[string]float64{"alpha": 10, "beta": 4})
	want := 0.7*100 + 0.3*55
	if !almostEqual(got.Score, want) {
		t.Fatalf("Score = %v, want %v", got.Score, want)
	}
}

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{90, TierElite}, {85, TierElite},
		{84.9, TierGood}, {70, TierGood},
		{69.9, TierAverage}, {50, TierAverage},
		{49.9, TierPoor}, {0, TierPoor},
	}
	for _, tt := range tests {
		if got := TierForScore(tt.score); got != tt.want {
			t.Fatalf("TierForScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

func TestCatalogCoversAllCategories(t *testing.T) {
	for category := range position.AllCategories {
		if len(ByCategory(category)) == 0 {
			t.Fatalf("no roles for category %s", category)
		}
	}
}
