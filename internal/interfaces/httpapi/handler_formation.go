package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/squad-audit/internal/usecase"
)

func (h *Handler) SuggestFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestFormations")
	defer span.End()

	var req suggestFormationsRequest
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

	suggestions, err := h.formationService.SuggestForSquad(ctx, squadFromRequest(ctx, req.Squad), req.TopN)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest formations failed", "squad_name", req.Squad.SquadName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationSuggestionsToDTO(ctx, suggestions))
}

func (h *Handler) BuildFormationXI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BuildFormationXI")
	defer span.End()

	var req buildFormationRequest
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

	xi, err := h.formationService.BuildForSquad(ctx, squadFromRequest(ctx, req.Squad), req.Formation)
	if err != nil {
		h.logger.WarnContext(ctx, "build formation failed", "squad_name", req.Squad.SquadName, "formation", req.Formation, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationXIToDTO(ctx, xi))
}

func (h *Handler) SuggestSnapshotFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestSnapshotFormations")
	defer span.End()

	snapshotID := strings.TrimSpace(r.PathValue("snapshotID"))
	if snapshotID == "" {
		writeError(ctx, w, fmt.Errorf("%w: snapshot id is required", usecase.ErrInvalidInput))
		return
	}

	result, err := h.auditService.AnalyzeSnapshot(ctx, snapshotID)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze snapshot for formations failed", "snapshot_id", snapshotID, "error", err)
		writeError(ctx, w, err)
		return
	}

	suggestions, err := h.formationService.SuggestFormations(ctx, result, 0)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest snapshot formations failed", "snapshot_id", snapshotID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationSuggestionsToDTO(ctx, suggestions))
}
