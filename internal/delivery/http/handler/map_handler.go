package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/metrics"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/utils"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase/dto"
)

// MapHandler serves the rendered map frame: one filter pass, layer routing
// and the viewport decision in a single response.
type MapHandler struct {
	filterUC    *usecase.FilterUseCase
	renderUC    *usecase.RenderUseCase
	viewStateUC *usecase.ViewStateUseCase
	metrics     *metrics.Provider
	logger      *zap.Logger
}

// NewMapHandler creates a new MapHandler instance.
func NewMapHandler(
	filterUC *usecase.FilterUseCase,
	renderUC *usecase.RenderUseCase,
	viewStateUC *usecase.ViewStateUseCase,
	metrics *metrics.Provider,
	logger *zap.Logger,
) *MapHandler {
	return &MapHandler{
		filterUC:    filterUC,
		renderUC:    renderUC,
		viewStateUC: viewStateUC,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetMap runs a full filter pass and returns the frame. An explicit camera
// in the query wins over any fitting heuristic.
func (h *MapHandler) GetMap(c *fiber.Ctx) error {
	state, err := decodeViewState(c, h.viewStateUC)
	if err != nil {
		return utils.SendError(c, err)
	}
	centerOnCountry := c.QueryBool("center_on_country")

	start := time.Now()
	data := h.filterUC.FilterData(state.Selection)
	layers, clustered := h.renderUC.Route(&data, state.Selection)
	h.metrics.ObserveFilterPass(time.Since(start), data.VisibleCount(state.Selection))

	var viewport dto.ViewportResponse
	if state.HasCamera {
		viewport = dto.ViewportResponse{
			Mode: "fixed",
			Lat:  state.Lat,
			Lng:  state.Lng,
			Zoom: state.Zoom,
		}
	} else {
		viewport = h.renderUC.Viewport(layers, state.Selection, centerOnCountry)
	}

	return utils.SendSuccess(c, dto.MapResponse{
		Layers:    layers,
		Clustered: clustered,
		Viewport:  viewport,
		Total:     data.VisibleCount(state.Selection),
	}, nil)
}
