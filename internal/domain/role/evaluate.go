package role

const (
	primaryWeight   = 0.7
	secondaryWeight = 0.3
)

// Evaluate grades a player's stats against one role. Primary metrics carry
// 70% of the weight and secondary metrics 30%; metrics absent from the
// stats map are skipped and the remaining weight renormalizes within each
// group. When one whole group is missing the other carries full weight.
func Evaluate(def Definition, stats map[string]float64) Score {
	result := Score{Role: def.Name}

	primaryAvg, primaryN := groupAverage(def, def.Primary, WeightPrimary, stats, &result)
	secondaryAvg, secondaryN := groupAverage(def, def.Secondary, WeightSecondary, stats, &result)

	switch {
	case primaryN > 0 && secondaryN > 0:
		result.Score = primaryWeight*primaryAvg + secondaryWeight*secondaryAvg
	case primaryN > 0:
		result.Score = primaryAvg
	case secondaryN > 0:
		result.Score = secondaryAvg
	default:
		result.Score = 0
	}
	result.Tier = TierForScore(result.Score)
	return result
}

func groupAverage(def Definition, metrics []string, weight Weight, stats map[string]float64, out *Score) (float64, int) {
	var sum float64
	var n int
	for _, metric := range metrics {
		value, ok := stats[metric]
		if !ok {
			out.MissingMetrics = append(out.MissingMetrics, metric)
			continue
		}
		ms := ScoreMetric(value, def.Metrics[metric])
		ms.Metric = metric
		ms.Weight = weight
		ms.Thresholds = def.Metrics[metric]
		out.Metrics = append(out.Metrics, ms)
		switch ms.Tier {
		case TierElite:
			out.Strengths = append(out.Strengths, metric)
		case TierCritical:
			out.Weaknesses = append(out.Weaknesses, metric)
		}
		sum += ms.Score
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// EvaluateAll grades the stats against every catalog role for the given
// candidate role names, keeping the input order.
func EvaluateAll(names []string, stats map[string]float64) []Score {
	scores := make([]Score, 0, len(names))
	for _, name := range names {
		def, ok := Catalog[name]
		if !ok {
			continue
		}
		scores = append(scores, Evaluate(def, stats))
	}
	return scores
}
