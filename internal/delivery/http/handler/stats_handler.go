package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/utils"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

// StatsHandler serves the per-category count breakdown.
type StatsHandler struct {
	filterUC    *usecase.FilterUseCase
	viewStateUC *usecase.ViewStateUseCase
	logger      *zap.Logger
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(filterUC *usecase.FilterUseCase, viewStateUC *usecase.ViewStateUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		filterUC:    filterUC,
		viewStateUC: viewStateUC,
		logger:      logger,
	}
}

// GetStats returns the stat lines and summary text for the current filters.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	state, err := decodeViewState(c, h.viewStateUC)
	if err != nil {
		return utils.SendError(c, err)
	}

	data := h.filterUC.FilterData(state.Selection)
	stats := h.filterUC.Stats(&data, state.Selection)

	return utils.SendSuccess(c, stats, nil)
}
