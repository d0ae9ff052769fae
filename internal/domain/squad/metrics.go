package squad

// Normalized metric names shared across evaluation, baselines and import.
// All rate metrics are per 90 minutes; _pct metrics are percentages.
const (
	MetricTackles       = "tackles_90"
	MetricHeadersWon    = "headers_won_90"
	MetricHeaderWinPct  = "header_win_pct"
	MetricClearances    = "clearances_90"
	MetricInterceptions = "interceptions_90"
	MetricBlocks        = "blocks_90"
	MetricProgPasses    = "prog_passes_90"
	MetricPressures     = "pressures_90"
	MetricDribbles      = "dribbles_90"
	MetricKeyPasses     = "key_passes_90"
	MetricXAssists      = "xassists_90"
	MetricCrosses       = "crosses_90"
	MetricSprints       = "sprints_90"
	MetricShotsOnTarget = "shots_on_target_90"
	MetricXG            = "xg_90"
	MetricConversionPct = "conversion_pct"
	MetricPassPct       = "pass_pct"
	MetricXGPrevented   = "xgp_90"
	MetricConceded      = "conceded_90"
	MetricSavePct       = "save_pct"
)

// AllMetrics enumerates every metric name the engine understands.
var AllMetrics = map[string]struct{}{
	MetricTackles:       {},
	MetricHeadersWon:    {},
	MetricHeaderWinPct:  {},
	MetricClearances:    {},
	MetricInterceptions: {},
	MetricBlocks:        {},
	MetricProgPasses:    {},
	MetricPressures:     {},
	MetricDribbles:      {},
	MetricKeyPasses:     {},
	MetricXAssists:      {},
	MetricCrosses:       {},
	MetricSprints:       {},
	MetricShotsOnTarget: {},
	MetricXG:            {},
	MetricConversionPct: {},
	MetricPassPct:       {},
	MetricXGPrevented:   {},
	MetricConceded:      {},
	MetricSavePct:       {},
}

// DisplayNames maps metric keys to the labels used in reports and exports.
var DisplayNames = map[string]string{
	MetricTackles:       "Tackles/90",
	MetricHeadersWon:    "Headers Won/90",
	MetricHeaderWinPct:  "Header Win %",
	MetricClearances:    "Clearances/90",
	MetricInterceptions: "Interceptions/90",
	MetricBlocks:        "Blocks/90",
	MetricProgPasses:    "Progressive Passes/90",
	MetricPressures:     "Pressures/90",
	MetricDribbles:      "Dribbles/90",
	MetricKeyPasses:     "Key Passes/90",
	MetricXAssists:      "xA/90",
	MetricCrosses:       "Crosses/90",
	MetricSprints:       "Sprints/90",
	MetricShotsOnTarget: "Shots on Target/90",
	MetricXG:            "xG/90",
	MetricConversionPct: "Conversion %",
	MetricPassPct:       "Pass %",
	MetricXGPrevented:   "xG Prevented/90",
	MetricConceded:      "Conceded/90",
	MetricSavePct:       "Save %",
}

// DisplayName returns the report label for a metric, or the raw key when
// no label is registered.
func DisplayName(metric string) string {
	if label, ok := DisplayNames[metric]; ok {
		return label
	}
	return metric
}
