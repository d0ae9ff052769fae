package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
	"github.com/riskibarqy/squad-audit/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) AnalyzeSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeSquad")
	defer span.End()

	var req analyzeSquadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auditService.AnalyzeSquad(ctx, squadFromRequest(ctx, req))
	if err != nil {
		h.logger.WarnContext(ctx, "analyze squad failed", "squad_name", req.SquadName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysisToDTO(ctx, result))
}

func (h *Handler) ExportSquadCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportSquadCSV")
	defer span.End()

	var req analyzeSquadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auditService.AnalyzeSquad(ctx, squadFromRequest(ctx, req))
	if err != nil {
		h.logger.WarnContext(ctx, "analyze squad for export failed", "squad_name", req.SquadName, "error", err)
		writeError(ctx, w, err)
		return
	}

	payload, err := h.auditService.ExportCSV(ctx, result)
	if err != nil {
		h.logger.WarnContext(ctx, "export squad csv failed", "squad_name", req.SquadName, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="squad-audit.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportSnapshot")
	defer span.End()

	var req analyzeSquadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshot, err := h.auditService.ImportSnapshot(ctx, squadFromRequest(ctx, req))
	if err != nil {
		h.logger.WarnContext(ctx, "import snapshot failed", "squad_name", req.SquadName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, snapshotToDTO(ctx, snapshot))
}

func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSnapshots")
	defer span.End()

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}
	if err := h.validateRequest(ctx, listSnapshotsRequest{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshots, err := h.auditService.ListSnapshots(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list snapshots failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]snapshotDTO, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, snapshotToDTO(ctx, s))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AnalyzeSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeSnapshot")
	defer span.End()

	snapshotID := strings.TrimSpace(r.PathValue("snapshotID"))
	if snapshotID == "" {
		writeError(ctx, w, fmt.Errorf("%w: snapshot id is required", usecase.ErrInvalidInput))
		return
	}

	result, err := h.auditService.AnalyzeSnapshot(ctx, snapshotID)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze snapshot failed", "snapshot_id", snapshotID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysisToDTO(ctx, result))
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	divisions, err := h.auditService.Divisions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list divisions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, divisionsDTO{Divisions: divisions})
}

func (h *Handler) UploadBaselines(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadBaselines")
	defer span.End()

	collection, err := baseline.Decode(r.Body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid baseline payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.auditService.LoadBaselines(ctx, collection); err != nil {
		h.logger.WarnContext(ctx, "load baselines failed", "version", collection.Version, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, baselineUploadDTO{
		Version:   collection.Version,
		Baselines: len(collection.Baselines),
		Divisions: len(collection.Divisions()),
	})
}
