package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/squad-audit/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/squad-audit/internal/platform/cache"
	idgen "github.com/riskibarqy/squad-audit/internal/platform/id"
	"github.com/riskibarqy/squad-audit/internal/usecase"
)

const testInternalJobToken = "test-job-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	auditService := usecase.NewAuditService(
		memory.NewSnapshotRepository(),
		memory.NewBaselineRepositoryWith(memory.SeedBaselines()),
		cache.NewStore(time.Minute),
		idgen.NewRandomGenerator(),
	)
	formationService := usecase.NewFormationService(auditService)
	handler := NewHandler(auditService, formationService, nil)

	return NewRouter(handler, nil, true, []string{"*"}, testInternalJobToken)
}

const analyzePayload = `{
	"squad_name": "Test FC",
	"division": "Premier Division",
	"players": [
		{
			"name": "Alan Reach",
			"age": 27,
			"position": "GK",
			"wage": 9000,
			"apps": 30,
			"minutes": 2700,
			"stats": {"save_pct": 74, "xgp_90": 0.2, "pass_pct": 80, "conceded_90": 1.0}
		},
		{
			"name": "Bo Granger",
			"age": 24,
			"position": "D (C)",
			"wage": 12000,
			"apps": 28,
			"minutes": 2500,
			"stats": {"tck_90": 3.2, "int_90": 2.1, "hdr_pct": 76, "blk_90": 1.1, "clr_90": 4.5, "aer_90": 3.0}
		},
		{
			"name": "Ciro Vance",
			"age": 22,
			"position": "ST (C)",
			"wage": 15000,
			"apps": 26,
			"minutes": 2300,
			"status": "Wnt",
			"contract_expires": "30/06/2027",
			"stats": {"gls_90": 0.6, "xg_90": 0.5, "sot_90": 1.4, "conv_pct": 18, "drb_90": 1.2}
		}
	]
}`

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestAnalyzeSquadRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/squads/analyze", analyzePayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object in response")
	}
	if got, _ := data["squad_name"].(string); got != "Test FC" {
		t.Fatalf("expected squad_name=Test FC, got %v", data["squad_name"])
	}
	players, ok := data["players"].([]any)
	if !ok || len(players) != 3 {
		t.Fatalf("expected 3 analyzed players, got %v", data["players"])
	}

	first, _ := players[0].(map[string]any)
	if got, _ := first["category"].(string); got != "GK" {
		t.Fatalf("expected first player category GK, got %v", first["category"])
	}
	if _, ok := first["recommendation"]; !ok {
		t.Fatalf("expected recommendation on analyzed player")
	}

	striker, _ := players[2].(map[string]any)
	if _, ok := striker["league_value_score"]; !ok {
		t.Fatalf("expected league value score with division and baselines set")
	}
	if got, _ := striker["status"].(string); got != "Wnt" {
		t.Fatalf("expected status Wnt, got %v", striker["status"])
	}
}

func TestAnalyzeSquadRoute_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/squads/analyze", `{"squad_name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAnalyzeSquadRoute_MissingPlayers(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/squads/analyze", `{"squad_name":"Empty FC","players":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestExportSquadCSVRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/squads/analyze/csv", analyzePayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", got)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "name,age,position") {
		t.Fatalf("unexpected csv header: %q", lines[0])
	}
}

func TestSnapshotRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/snapshots", analyzePayload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	snapshotID, _ := data["id"].(string)
	if snapshotID == "" {
		t.Fatalf("expected snapshot id in import response")
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/snapshots", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 listing snapshots, got %d", rec.Code)
	}
	listBody := decodeEnvelope(t, rec)
	items, _ := listBody["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(items))
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/snapshots/"+snapshotID+"/analysis", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 analyzing snapshot, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/snapshots/"+snapshotID+"/formations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for snapshot formations, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyzeSnapshotRoute_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/snapshots/missing/analysis", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestBuildFormationXIRoute_UnknownFormation(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"formation":"9-0-1","squad":` + analyzePayload + `}`
	rec := doJSON(t, router, http.MethodPost, "/v1/squads/formations/xi", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBuildFormationXIRoute(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"formation":"4-4-2","squad":` + analyzePayload + `}`
	rec := doJSON(t, router, http.MethodPost, "/v1/squads/formations/xi", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["formation"].(string); got != "4-4-2" {
		t.Fatalf("expected formation 4-4-2, got %v", data["formation"])
	}
}

func TestListDivisionsRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/baselines/divisions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	divisions, _ := data["divisions"].([]any)
	if len(divisions) == 0 {
		t.Fatalf("expected seeded divisions, got %v", data["divisions"])
	}
}

func TestUploadBaselinesRoute_TokenRequired(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"version": "upload-1",
		"generated_date": "2026-08-01",
		"gk_wage_multiplier": 0.8,
		"division_metadata": {"Premier Division": 120},
		"baselines": [
			{"division": "Premier Division", "position": "Defenders", "position_category": "Defenders", "average_wage": 9800, "median_wage": 9000, "percentile_25": 4000, "percentile_75": 20000, "player_count": 120, "is_aggregated": true}
		]
	}`

	rec := doJSON(t, router, http.MethodPut, "/v1/internal/baselines", payload)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPut, "/v1/internal/baselines", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Job-Token", testInternalJobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["version"].(string); got != "upload-1" {
		t.Fatalf("expected version=upload-1, got %v", data["version"])
	}
}

func TestHealthzRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
