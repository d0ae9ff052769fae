package usecase

// Neutral value returned when wages cannot be compared.
const neutralValueScore = 100

// Wage ratio floor so near-free players do not produce absurd value
// scores.
const minWageRatio = 0.1

// valueScore relates performance to relative pay: a player performing at
// 120 on two thirds of the average wage scores 180. Without a usable wage
// or squad average the comparison is meaningless and the score is neutral.
func valueScore(performance, wage, squadAvgWage float64) float64 {
	if wage <= 0 || squadAvgWage <= 0 {
		return neutralValueScore
	}
	ratio := wage / squadAvgWage
	if ratio < minWageRatio {
		ratio = minWageRatio
	}
	return performance / ratio
}
