package formation

import (
	"testing"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
)

func TestValidateTemplates(t *testing.T) {
	if err := ValidateTemplates(); err != nil {
		t.Fatalf("catalogue invalid: %v", err)
	}
}

func TestTemplatesFieldEleven(t *testing.T) {
	for _, tmpl := range Templates {
		var total int
		for _, required := range tmpl.Requirements {
			total += required
		}
		if total != 11 {
			t.Fatalf("%s fields %d players", tmpl.Name, total)
		}
		if tmpl.Outfield() != 10 {
			t.Fatalf("%s fields %d outfielders", tmpl.Name, tmpl.Outfield())
		}
	}
}

func TestByName(t *testing.T) {
	tmpl, ok := ByName("4-4-2")
	if !ok {
		t.Fatal("4-4-2 missing from catalogue")
	}
	if tmpl.Requirements[position.CategoryStriker] != 2 {
		t.Fatalf("4-4-2 strikers = %d", tmpl.Requirements[position.CategoryStriker])
	}
	if _, ok := ByName("2-3-5"); ok {
		t.Fatal("unknown template must not resolve")
	}
}

func TestBenchCoverageSevenSeats(t *testing.T) {
	if len(BenchCoverage) != 7 {
		t.Fatalf("bench has %d seats, want 7", len(BenchCoverage))
	}
	gk := BenchCoverage[0]
	if !gk.Covers(position.CategoryGoalkeeper) || gk.Covers(position.CategoryStriker) {
		t.Fatal("first seat must be keeper-only")
	}
}
