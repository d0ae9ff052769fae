package usecase

import (
	"github.com/riskibarqy/squad-audit/internal/domain/position"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

const (
	// Below this many minutes the sample tells us nothing.
	minMinutesForAnalysis = 200
	// Between the floor and this bound stats blend toward the squad mean.
	minMinutesForFullTrust = 500
)

// sampleMinutes resolves the minutes a player's sample covers. A missing
// minutes column means the export had no playing-time data at all, which
// we treat as a full sample rather than an empty one.
func sampleMinutes(p squad.Player) (int, bool) {
	if p.Minutes == nil {
		return 0, false
	}
	return *p.Minutes, true
}

// dataQualityFor buckets a player's sample size.
func dataQualityFor(p squad.Player) DataQuality {
	minutes, known := sampleMinutes(p)
	switch {
	case !known:
		return DataQualityFull
	case minutes < minMinutesForAnalysis:
		return DataQualityInsufficient
	case minutes < minMinutesForFullTrust:
		return DataQualityProjected
	default:
		return DataQualityFull
	}
}

// reliabilityWeight is the trust placed on a raw metric value, rising
// linearly from 0 at 200 minutes to 1 at 500.
func reliabilityWeight(minutes int) float64 {
	if minutes >= minMinutesForFullTrust {
		return 1
	}
	if minutes <= minMinutesForAnalysis {
		return 0
	}
	return float64(minutes-minMinutesForAnalysis) / float64(minMinutesForFullTrust-minMinutesForAnalysis)
}

// adjustedStats regresses each metric of a small-sample player toward the
// squad's positional mean for that metric, before any role evaluation sees
// the numbers. Full samples pass through untouched, as do under-floor
// samples (they bypass scoring entirely) and metrics with no benchmark.
// The result is always a copy; the player's stats are never mutated.
func adjustedStats(p squad.Player, benchmarks map[string]float64) map[string]float64 {
	minutes, known := sampleMinutes(p)
	if !known || minutes >= minMinutesForFullTrust || minutes < minMinutesForAnalysis || len(benchmarks) == 0 {
		return p.Stats
	}

	w := reliabilityWeight(minutes)
	out := make(map[string]float64, len(p.Stats))
	for metric, raw := range p.Stats {
		if avg, ok := benchmarks[metric]; ok {
			out[metric] = w*raw + (1-w)*avg
		} else {
			out[metric] = raw
		}
	}
	return out
}

// positionalBenchmarks computes the per-metric mean for each position
// category over every squad player classified into it, regardless of
// sample size. An absent metric does not drag the mean down.
func positionalBenchmarks(categories []position.Category, players []squad.Player) map[position.Category]map[string]float64 {
	sums := make(map[position.Category]map[string]float64)
	counts := make(map[position.Category]map[string]int)
	for i, p := range players {
		category := categories[i]
		if sums[category] == nil {
			sums[category] = make(map[string]float64)
			counts[category] = make(map[string]int)
		}
		for metric, value := range p.Stats {
			sums[category][metric] += value
			counts[category][metric]++
		}
	}

	out := make(map[position.Category]map[string]float64, len(sums))
	for category, metricSums := range sums {
		avgs := make(map[string]float64, len(metricSums))
		for metric, sum := range metricSums {
			avgs[metric] = sum / float64(counts[category][metric])
		}
		out[category] = avgs
	}
	return out
}
