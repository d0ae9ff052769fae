package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuditRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/squads/analyze", handler.AnalyzeSquad)
	mux.HandleFunc("POST /v1/squads/analyze/csv", handler.ExportSquadCSV)
	mux.HandleFunc("POST /v1/squads/formations", handler.SuggestFormations)
	mux.HandleFunc("POST /v1/squads/formations/xi", handler.BuildFormationXI)
	mux.HandleFunc("POST /v1/snapshots", handler.ImportSnapshot)
	mux.HandleFunc("GET /v1/snapshots", handler.ListSnapshots)
	mux.HandleFunc("GET /v1/snapshots/{snapshotID}/analysis", handler.AnalyzeSnapshot)
	mux.HandleFunc("GET /v1/snapshots/{snapshotID}/formations", handler.SuggestSnapshotFormations)
	mux.HandleFunc("GET /v1/baselines/divisions", handler.ListDivisions)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("PUT /v1/internal/baselines", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UploadBaselines)))
}
