package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/squad-audit/internal/platform/logging"
	"github.com/riskibarqy/squad-audit/internal/usecase"
)

type Handler struct {
	auditService     *usecase.AuditService
	formationService *usecase.FormationService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	auditService *usecase.AuditService,
	formationService *usecase.FormationService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		auditService:     auditService,
		formationService: formationService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
