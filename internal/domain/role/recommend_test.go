package role

import (
	"testing"

	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

func TestRolesForPosition(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"GK", []string{Goalkeeper}},
		{"D (C)", []string{Stopper, BallPlayingCB}},
		{"D (RL)", []string{FullBack, WingBack}},
		{"D/WB (R)", []string{FullBack, WingBack}},
		{"DM", []string{MidfieldAnchor}},
		{"M (C)", []string{MidfieldAnchor, MidfieldCreator}},
		{"AM (C)", []string{AttackingMid}},
		{"AM (RL)", []string{WingerProvider, WingerScorer}},
		{"M (R)", []string{WingerProvider, WingerScorer}},
		{"ST (C)", []string{StrikerProvider, StrikerGoalscorer}},
		{"ST", []string{StrikerProvider, StrikerGoalscorer}},
		{"garbage", nil},
	}
	for _, tt := range tests {
		got := RolesForPosition(tt.raw)
		if len(got) != len(tt.want) {
			t.Fatalf("RolesForPosition(%q) = %v, want %v", tt.raw, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("RolesForPosition(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		}
	}
}

func TestRolesForPositionMultiSegment(t *testing.T) {
	got := RolesForPosition("AM (RL), ST (C)")
	want := map[string]struct{}{
		WingerProvider: {}, WingerScorer: {}, StrikerProvider: {}, StrikerGoalscorer: {},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for _, name := range got {
		if _, ok := want[name]; !ok {
			t.Fatalf("unexpected role %s in %v", name, got)
		}
	}
}

func TestSuggestChangeDetectorFires(t *testing.T) {
	stats := map[string]float64{
		squad.MetricProgPasses: 6.0,
		squad.MetricTackles:    1.8,
		squad.MetricPassPct:    92,
	}
	current := Score{Role: Stopper, Score: 60}
	all := map[string]Score{
		Stopper:       current,
		BallPlayingCB: {Role: BallPlayingCB, Score: 68},
	}
	suggestion := SuggestChange(current, all, stats)
	if suggestion == nil {
		t.Fatal("expected a suggestion")
	}
	if suggestion.ToRole != BallPlayingCB {
		t.Fatalf("ToRole = %s, want %s", suggestion.ToRole, BallPlayingCB)
	}
}

func TestSuggestChangeDetectorNeedsBetterTarget(t *testing.T) {
	stats := map[string]float64{
		squad.MetricProgPasses: 6.0,
		squad.MetricTackles:    1.8,
		squad.MetricPassPct:    92,
	}
	current := Score{Role: Stopper, Score: 70}
	all := map[string]Score{
		Stopper:       current,
		BallPlayingCB: {Role: BallPlayingCB, Score: 65},
	}
	if s := SuggestChange(current, all, stats); s != nil {
		t.Fatalf("detector must not fire when the target scores worse, got %+v", s)
	}
}

func TestSuggestChangeDetectorNeedsFloor(t *testing.T) {
	stats := map[string]float64{
		squad.MetricProgPasses: 6.0,
		squad.MetricTackles:    1.8,
		squad.MetricPassPct:    92,
	}
	// Signature matches and the target outscores the current role, but it
	// stays under the 65 floor every retraining path requires.
	current := Score{Role: Stopper, Score: 50}
	all := map[string]Score{
		Stopper:       current,
		BallPlayingCB: {Role: BallPlayingCB, Score: 62},
	}
	if s := SuggestChange(current, all, stats); s != nil {
		t.Fatalf("detector must respect the floor, got %+v", s)
	}
}

func TestSuggestChangeScoreGapFallbackNeedsFloor(t *testing.T) {
	// +12 gap, but the target is still below 65.
	current := Score{Role: FullBack, Score: 48}
	all := map[string]Score{
		FullBack: current,
		WingBack: {Role: WingBack, Score: 60},
	}
	if s := SuggestChange(current, all, nil); s != nil {
		t.Fatalf("gap fallback must respect the floor, got %+v", s)
	}
}

func TestSuggestChangeScoreGapFallback(t *testing.T) {
	// No statistical signature, but the target outscores by 12.
	current := Score{Role: FullBack, Score: 55}
	all := map[string]Score{
		FullBack: current,
		WingBack: {Role: WingBack, Score: 67},
	}
	suggestion := SuggestChange(current, all, nil)
	if suggestion == nil || suggestion.ToRole != WingBack {
		t.Fatalf("expected wing back suggestion, got %+v", suggestion)
	}
}

func TestSuggestChangeInterchangePath(t *testing.T) {
	current := Score{Role: WingerProvider, Score: 58}
	all := map[string]Score{
		WingerProvider: current,
		WingerScorer:   {Role: WingerScorer, Score: 72},
		AttackingMid:   {Role: AttackingMid, Score: 66},
	}
	suggestion := SuggestChange(current, all, nil)
	if suggestion == nil || suggestion.ToRole != WingerScorer {
		t.Fatalf("expected winger scorer suggestion, got %+v", suggestion)
	}
}

func TestSuggestChangeInterchangeNeedsFloor(t *testing.T) {
	// +10 gap but below the 65 floor.
	current := Score{Role: WingerProvider, Score: 50}
	all := map[string]Score{
		WingerProvider: current,
		WingerScorer:   {Role: WingerScorer, Score: 61},
	}
	if s := SuggestChange(current, all, nil); s != nil {
		t.Fatalf("suggestion below floor: %+v", s)
	}
}

func TestSuggestChangeInterchangeEitherDirection(t *testing.T) {
	// Target forwards list wingers as interchangeable; the reverse entry is
	// absent, and the switch must still be offered from the winger side.
	if !Interchangeable(WingerProvider, StrikerProvider) {
		t.Fatal("interchange must work in either direction")
	}
	current := Score{Role: WingerProvider, Score: 58}
	all := map[string]Score{
		WingerProvider:  current,
		StrikerProvider: {Role: StrikerProvider, Score: 75},
	}
	suggestion := SuggestChange(current, all, nil)
	if suggestion == nil || suggestion.ToRole != StrikerProvider {
		t.Fatalf("expected target forward suggestion, got %+v", suggestion)
	}
}

func TestSuggestChangeGoalkeeperHasNoPaths(t *testing.T) {
	current := Score{Role: Goalkeeper, Score: 40}
	if s := SuggestChange(current, map[string]Score{Goalkeeper: current}, nil); s != nil {
		t.Fatalf("goalkeepers cannot retrain, got %+v", s)
	}
}
