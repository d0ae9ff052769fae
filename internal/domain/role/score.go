package role

// ScoreMetric grades a single metric value against its cut points on a
// 0-120 scale. Band boundaries interpolate linearly; values beyond the
// good cut earn a bonus capped at 20 points.
func ScoreMetric(value float64, th Thresholds) MetricScore {
	if th.Inverted {
		return scoreInverted(value, th)
	}

	ms := MetricScore{Value: value}
	switch {
	case value >= th.Good:
		ms.Tier = TierElite
		ms.Score = 100
		if th.Good > 0 {
			bonus := (value - th.Good) / th.Good * 10
			if bonus > 20 {
				bonus = 20
			}
			ms.Score += bonus
		}
	case value >= th.Ok:
		ms.Tier = TierGood
		if span := th.Good - th.Ok; span > 0 {
			ms.Score = 70 + 30*(value-th.Ok)/span
		} else {
			ms.Score = 85
		}
	case value >= th.Poor:
		ms.Tier = TierAverage
		if span := th.Ok - th.Poor; span > 0 {
			ms.Score = 40 + 30*(value-th.Poor)/span
		} else {
			ms.Score = 55
		}
	default:
		ms.Tier = TierCritical
		if th.Poor > 0 {
			ms.Score = 40 * value / th.Poor
			if ms.Score < 0 {
				ms.Score = 0
			}
		} else {
			ms.Score = 20
		}
	}
	return ms
}

func scoreInverted(value float64, th Thresholds) MetricScore {
	ms := MetricScore{Value: value}
	switch {
	case value <= th.Good:
		ms.Tier = TierElite
		ms.Score = 100
		if th.Good > 0 {
			bonus := (th.Good - value) / th.Good * 10
			if bonus > 20 {
				bonus = 20
			}
			ms.Score += bonus
		}
	case value <= th.Ok:
		ms.Tier = TierGood
		if span := th.Ok - th.Good; span > 0 {
			ms.Score = 70 + 30*(th.Ok-value)/span
		} else {
			ms.Score = 85
		}
	case value <= th.Poor:
		ms.Tier = TierAverage
		if span := th.Poor - th.Ok; span > 0 {
			ms.Score = 40 + 30*(th.Poor-value)/span
		} else {
			ms.Score = 55
		}
	default:
		ms.Tier = TierCritical
		if value > 0 && th.Poor > 0 {
			ms.Score = 40 * th.Poor / value
		} else {
			ms.Score = 20
		}
	}
	return ms
}
