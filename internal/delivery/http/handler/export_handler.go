package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/metrics"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/utils"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

// ExportHandler streams the visible records as a CSV download.
type ExportHandler struct {
	filterUC    *usecase.FilterUseCase
	exportUC    *usecase.ExportUseCase
	viewStateUC *usecase.ViewStateUseCase
	metrics     *metrics.Provider
	logger      *zap.Logger
}

// NewExportHandler creates a new ExportHandler instance.
func NewExportHandler(
	filterUC *usecase.FilterUseCase,
	exportUC *usecase.ExportUseCase,
	viewStateUC *usecase.ViewStateUseCase,
	metrics *metrics.Provider,
	logger *zap.Logger,
) *ExportHandler {
	return &ExportHandler{
		filterUC:    filterUC,
		exportUC:    exportUC,
		viewStateUC: viewStateUC,
		metrics:     metrics,
		logger:      logger,
	}
}

// ExportCSV builds the download. complete=true ignores the filters and
// exports the whole dataset.
func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	req, err := bindExportRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	state := h.viewStateUC.Decode(queryValues(c))

	sel := state.Selection
	if req.Complete {
		sel = domain.DefaultFilterSelection()
	}

	data := h.filterUC.FilterData(sel)
	filename, payload, err := h.exportUC.Export(&data, sel, req.Complete, time.Now())
	if err != nil {
		return utils.SendError(c, err)
	}

	scope := "filtered"
	if req.Complete {
		scope = "complete"
	}
	h.metrics.ExportsTotal.WithLabelValues(scope).Inc()

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
