package memory

import (
	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

// SeedBaselines is a small built-in baseline set so the service is usable
// without loading a full collection.
func SeedBaselines() baseline.Collection {
	return baseline.Collection{
		Version:          "builtin-2026.1",
		GeneratedDate:    "2026-07-01",
		GKWageMultiplier: 0.8,
		DivisionMetadata: map[string]int{
			"Premier Division": 680,
			"Division One":     630,
		},
		Baselines: []baseline.Baseline{
			{Division: "Premier Division", Position: "Defenders", PositionCategory: "Defenders", AverageWage: 12200, MedianWage: 11000, Percentile25: 7000, Percentile75: 18000, PlayerCount: 240, IsAggregated: true},
			{Division: "Premier Division", Position: "Midfielders", PositionCategory: "Midfielders", AverageWage: 13600, MedianWage: 12500, Percentile25: 8000, Percentile75: 21000, PlayerCount: 260, IsAggregated: true},
			{Division: "Premier Division", Position: "Attackers", PositionCategory: "Attackers", AverageWage: 15400, MedianWage: 14000, Percentile25: 9000, Percentile75: 24000, PlayerCount: 180, IsAggregated: true},
			{Division: "Premier Division", Position: "Centre Back", PositionCategory: "CB", AverageWage: 11300, MedianWage: 10500, Percentile25: 6500, Percentile75: 17000, PlayerCount: 120},
			{Division: "Division One", Position: "Defenders", PositionCategory: "Defenders", AverageWage: 4200, MedianWage: 3800, Percentile25: 2400, Percentile75: 6200, PlayerCount: 220, IsAggregated: true},
			{Division: "Division One", Position: "Midfielders", PositionCategory: "Midfielders", AverageWage: 4700, MedianWage: 4300, Percentile25: 2700, Percentile75: 7100, PlayerCount: 240, IsAggregated: true},
			{Division: "Division One", Position: "Attackers", PositionCategory: "Attackers", AverageWage: 5400, MedianWage: 4900, Percentile25: 3100, Percentile75: 8300, PlayerCount: 170, IsAggregated: true},
		},
	}
}

func intPtr(v int) *int { return &v }

// SeedSquad is a compact demo roster covering every position category.
func SeedSquad() squad.Squad {
	return squad.Squad{
		Name:     "Demo FC",
		Division: "Premier Division",
		Players: []squad.Player{
			{
				ID: "demo-gk-01", Name: "Viktor Hale", Age: 28, Position: "GK", Wage: 9000,
				Apps: 30, Minutes: intPtr(2700), ContractExpires: "30/06/2028",
				Stats: map[string]float64{
					squad.MetricXGPrevented: 0.2, squad.MetricConceded: 1.1,
					squad.MetricInterceptions: 0.15, squad.MetricPassPct: 84,
				},
			},
			{
				ID: "demo-cb-01", Name: "Aldo Brant", Age: 26, Position: "D (C)", Wage: 11000,
				Apps: 31, Minutes: intPtr(2790), ContractExpires: "30/06/2027",
				Stats: map[string]float64{
					squad.MetricTackles: 2.5, squad.MetricHeaderWinPct: 83,
					squad.MetricClearances: 1.7, squad.MetricInterceptions: 3.2,
					squad.MetricBlocks: 0.8,
				},
			},
			{
				ID: "demo-cb-02", Name: "Maris Okafor", Age: 24, Position: "D (C)", Wage: 9500,
				Apps: 28, Minutes: intPtr(2520), ContractExpires: "30/06/2027",
				Stats: map[string]float64{
					squad.MetricTackles: 1.9, squad.MetricProgPasses: 5.8,
					squad.MetricPassPct: 92, squad.MetricInterceptions: 2.9,
					squad.MetricClearances: 1.1, squad.MetricBlocks: 0.5,
				},
			},
			{
				ID: "demo-fb-01", Name: "Joss Whitlow", Age: 23, Position: "D/WB (R)", Wage: 7000,
				Apps: 29, Minutes: intPtr(2610), ContractExpires: "30/06/2026",
				Stats: map[string]float64{
					squad.MetricTackles: 2.3, squad.MetricInterceptions: 2.7,
					squad.MetricPressures: 11, squad.MetricCrosses: 0.45,
					squad.MetricDribbles: 3.2, squad.MetricSprints: 15,
				},
			},
			{
				ID: "demo-fb-02", Name: "Elkan Puri", Age: 27, Position: "D (L)", Wage: 6800,
				Apps: 27, Minutes: intPtr(2430), ContractExpires: "30/06/2027",
				Stats: map[string]float64{
					squad.MetricTackles: 2.1, squad.MetricInterceptions: 2.4,
					squad.MetricPressures: 9.5, squad.MetricCrosses: 0.3,
					squad.MetricProgPasses: 3.4, squad.MetricPassPct: 83,
				},
			},
			{
				ID: "demo-dm-01", Name: "Ciro Mantel", Age: 29, Position: "DM", Wage: 12500,
				Apps: 32, Minutes: intPtr(2880), ContractExpires: "30/06/2027",
				Stats: map[string]float64{
					squad.MetricTackles: 2.7, squad.MetricInterceptions: 3.1,
					squad.MetricBlocks: 0.55, squad.MetricPressures: 13.5,
					squad.MetricPassPct: 89,
				},
			},
			{
				ID: "demo-cm-01", Name: "Rufus Adeyemi", Age: 25, Position: "M (C)", Wage: 13000,
				Apps: 30, Minutes: intPtr(2700), ContractExpires: "30/06/2028",
				Stats: map[string]float64{
					squad.MetricKeyPasses: 1.7, squad.MetricProgPasses: 5.4,
					squad.MetricXAssists: 0.17, squad.MetricDribbles: 2.1,
					squad.MetricPassPct: 88, squad.MetricTackles: 1.4,
				},
			},
			{
				ID: "demo-cm-02", Name: "Dmitri Valenta", Age: 21, Position: "DM, M (C)", Wage: 4200,
				Apps: 8, Subs: 6, Minutes: intPtr(840), Status: squad.ParseStatusFlag("U21"),
				ContractExpires: "30/06/2026",
				Stats: map[string]float64{
					squad.MetricTackles: 2.2, squad.MetricInterceptions: 2.3,
					squad.MetricPressures: 10.5, squad.MetricPassPct: 84,
					squad.MetricBlocks: 0.35,
				},
			},
			{
				ID: "demo-am-01", Name: "Teo Laskaris", Age: 26, Position: "AM (C)", Wage: 14500,
				Apps: 31, Minutes: intPtr(2790), Status: squad.ParseStatusFlag("Wnt"),
				ContractExpires: "31/12/2026",
				Stats: map[string]float64{
					squad.MetricKeyPasses: 2.2, squad.MetricXAssists: 0.24,
					squad.MetricDribbles: 3.3, squad.MetricPassPct: 85,
					squad.MetricShotsOnTarget: 0.9, squad.MetricXG: 0.22,
				},
			},
			{
				ID: "demo-w-01", Name: "Nilo Ferraz", Age: 24, Position: "AM (RL)", Wage: 12000,
				Apps: 30, Minutes: intPtr(2700), ContractExpires: "30/06/2028",
				Stats: map[string]float64{
					squad.MetricDribbles: 4.3, squad.MetricCrosses: 0.75,
					squad.MetricSprints: 16.5, squad.MetricKeyPasses: 1.9,
					squad.MetricXAssists: 0.23,
				},
			},
			{
				ID: "demo-w-02", Name: "Kofi Mensah", Age: 22, Position: "M (R)", Wage: 8800,
				Apps: 26, Subs: 4, Minutes: intPtr(2430), ContractExpires: "30/06/2027",
				Stats: map[string]float64{
					squad.MetricDribbles: 4.6, squad.MetricShotsOnTarget: 1.1,
					squad.MetricSprints: 17.2, squad.MetricXG: 0.34,
					squad.MetricConversionPct: 21,
				},
			},
			{
				ID: "demo-st-01", Name: "Bran Kowalski", Age: 27, Position: "ST (C)", Wage: 16000,
				Apps: 32, Minutes: intPtr(2880), ContractExpires: "30/06/2027",
				Stats: map[string]float64{
					squad.MetricHeadersWon: 1.1, squad.MetricDribbles: 2.2,
					squad.MetricXG: 0.48, squad.MetricShotsOnTarget: 1.6,
					squad.MetricConversionPct: 27,
				},
			},
			{
				ID: "demo-st-02", Name: "Sandro Veloso", Age: 20, Position: "ST (C)", Wage: 3500,
				Apps: 2, Subs: 5, Minutes: intPtr(190), Status: squad.ParseStatusFlag("U21"),
				ContractExpires: "30/06/2026",
				Stats: map[string]float64{
					squad.MetricHeadersWon: 0.7, squad.MetricXG: 0.3,
					squad.MetricShotsOnTarget: 0.8, squad.MetricConversionPct: 15,
					squad.MetricDribbles: 1.4,
				},
			},
		},
	}
}
