package role

import (
	"fmt"

	"github.com/riskibarqy/squad-audit/internal/domain/position"
)

// Tier labels a score band. Metric scores bottom out at CRITICAL while
// aggregated role scores bottom out at POOR.
type Tier string

const (
	TierElite    Tier = "ELITE"
	TierGood     Tier = "GOOD"
	TierAverage  Tier = "AVERAGE"
	TierPoor     Tier = "POOR"
	TierCritical Tier = "CRITICAL"
)

// TierForScore maps an aggregated role score onto its band.
func TierForScore(score float64) Tier {
	switch {
	case score >= 85:
		return TierElite
	case score >= 70:
		return TierGood
	case score >= 50:
		return TierAverage
	default:
		return TierPoor
	}
}

// Rank orders tiers from POOR/CRITICAL up to ELITE for sorting.
func (t Tier) Rank() int {
	switch t {
	case TierElite:
		return 4
	case TierGood:
		return 3
	case TierAverage:
		return 2
	case TierPoor:
		return 1
	default:
		return 0
	}
}

// Thresholds encodes the good/ok/poor cut points for one metric. Inverted
// means lower values are better, e.g. goals conceded.
type Thresholds struct {
	Good     float64
	Ok       float64
	Poor     float64
	Inverted bool
}

func (t Thresholds) Validate() error {
	if t.Inverted {
		if !(t.Good < t.Ok && t.Ok < t.Poor) {
			return fmt.Errorf("inverted thresholds must satisfy good < ok < poor, got %+v", t)
		}
		return nil
	}
	if !(t.Good > t.Ok && t.Ok > t.Poor) {
		return fmt.Errorf("thresholds must satisfy good > ok > poor, got %+v", t)
	}
	return nil
}

// Definition is one tactical role: its position category, the metrics it
// is judged on with their cut points, the primary/secondary weighting
// split, and the roles a player can plausibly retrain into.
type Definition struct {
	Name        string
	DisplayName string
	Category    position.Category
	Metrics     map[string]Thresholds
	Primary     []string
	Secondary   []string
	Interchange []string
}

func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("role name is required")
	}
	if d.DisplayName == "" {
		return fmt.Errorf("role %s: display name is required", d.Name)
	}
	if err := d.Category.Validate(); err != nil {
		return fmt.Errorf("role %s: %w", d.Name, err)
	}
	if len(d.Metrics) == 0 {
		return fmt.Errorf("role %s: metrics are required", d.Name)
	}
	for metric, th := range d.Metrics {
		if err := th.Validate(); err != nil {
			return fmt.Errorf("role %s metric %s: %w", d.Name, metric, err)
		}
	}

	primarySet := make(map[string]struct{}, len(d.Primary))
	for _, metric := range d.Primary {
		if _, ok := d.Metrics[metric]; !ok {
			return fmt.Errorf("role %s: primary metric %s has no thresholds", d.Name, metric)
		}
		primarySet[metric] = struct{}{}
	}
	for _, metric := range d.Secondary {
		if _, ok := d.Metrics[metric]; !ok {
			return fmt.Errorf("role %s: secondary metric %s has no thresholds", d.Name, metric)
		}
		if _, dup := primarySet[metric]; dup {
			return fmt.Errorf("role %s: metric %s is both primary and secondary", d.Name, metric)
		}
	}
	if len(d.Primary) == 0 {
		return fmt.Errorf("role %s: primary metrics are required", d.Name)
	}
	if len(d.Primary)+len(d.Secondary) != len(d.Metrics) {
		return fmt.Errorf("role %s: every metric must be primary or secondary", d.Name)
	}
	return nil
}

// Weight tags which group a metric contributed to in an evaluation.
type Weight string

const (
	WeightPrimary   Weight = "PRIMARY"
	WeightSecondary Weight = "SECONDARY"
)

// MetricScore is the per-metric verdict inside a role evaluation. It keeps
// the thresholds the value was graded against so callers can render them.
type MetricScore struct {
	Metric     string
	Value      float64
	Score      float64
	Tier       Tier
	Weight     Weight
	Thresholds Thresholds
}

// Score is a full role evaluation for one player. Strengths collects the
// metrics graded ELITE, Weaknesses the ones graded CRITICAL.
type Score struct {
	Role           string
	Score          float64
	Tier           Tier
	Metrics        []MetricScore
	MissingMetrics []string
	Strengths      []string
	Weaknesses     []string
}
