package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

var csvHeader = []string{
	"name", "age", "position", "category", "best_role", "performance_index",
	"verdict", "value_score", "league_value_score", "status",
	"contract_expires", "wage", "data_quality", "recommendation",
	"explanation", "contract_warning", "top_metric_1", "top_metric_2",
	"role_change",
}

// ExportCSV renders a squad analysis as a CSV report, row order matching
// the analysis order.
func (s *AuditService) ExportCSV(ctx context.Context, result SquadAnalysisResult) ([]byte, error) {
	_, span := startUsecaseSpan(ctx, "AuditService.ExportCSV")
	defer span.End()

	if len(result.Analyses) == 0 {
		return nil, fmt.Errorf("%w: analysis has no players", ErrInvalidInput)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range result.Analyses {
		if err := w.Write(csvRow(a)); err != nil {
			return nil, fmt.Errorf("write csv row for %s: %w", a.Player.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func csvRow(a PlayerAnalysis) []string {
	bestRole := ""
	if a.BestRole != nil {
		bestRole = a.BestRole.Role
	}
	roleChange := ""
	if a.RoleChange != nil {
		roleChange = fmt.Sprintf("%s -> %s (%s)", a.RoleChange.FromRole, a.RoleChange.ToRole, a.RoleChange.Note)
	}
	leagueValue := "-"
	if a.LeagueValueScore != nil {
		leagueValue = strconv.FormatFloat(*a.LeagueValueScore, 'f', 1, 64)
	}
	status := a.Player.Status.String()
	if status == "" {
		status = "-"
	}
	expires := strings.TrimSpace(a.Player.ContractExpires)
	if expires == "" {
		expires = "-"
	}
	topMetric := func(i int) string {
		if i < len(a.TopMetrics) {
			return a.TopMetrics[i]
		}
		return "-"
	}
	return []string{
		a.Player.Name,
		strconv.Itoa(a.Player.Age),
		a.Player.Position,
		string(a.Category),
		bestRole,
		strconv.FormatFloat(a.PerformanceIndex, 'f', 1, 64),
		string(a.Verdict),
		strconv.FormatFloat(a.ValueScore, 'f', 1, 64),
		leagueValue,
		status,
		expires,
		strconv.FormatFloat(a.Player.Wage, 'f', 0, 64),
		string(a.DataQuality),
		a.Recommendation.Badge,
		a.Recommendation.Explanation,
		a.Recommendation.ContractWarning,
		topMetric(0),
		topMetric(1),
		roleChange,
	}
}
