package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/metrics"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/utils"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/validator"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase/dto"
)

// ShareHandler mints and resolves share links.
type ShareHandler struct {
	shareUC     *usecase.ShareUseCase
	viewStateUC *usecase.ViewStateUseCase
	metrics     *metrics.Provider
	logger      *zap.Logger
}

// NewShareHandler creates a new ShareHandler instance.
func NewShareHandler(
	shareUC *usecase.ShareUseCase,
	viewStateUC *usecase.ViewStateUseCase,
	metrics *metrics.Provider,
	logger *zap.Logger,
) *ShareHandler {
	return &ShareHandler{
		shareUC:     shareUC,
		viewStateUC: viewStateUC,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateShare snapshots the posted view state behind a fresh token.
func (h *ShareHandler) CreateShare(c *fiber.Ctx) error {
	var req dto.ShareRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		h.logger.Debug("Share request failed validation", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.shareUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.metrics.ShareLinksTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ResolveShare redirects a share token to the map with the snapshotted
// query string, so old links keep working after client changes.
func (h *ShareHandler) ResolveShare(c *fiber.Ctx) error {
	req, err := h.shareUC.Resolve(c.Context(), c.Params("token"))
	if err != nil {
		return utils.SendError(c, err)
	}

	sel := domain.DefaultFilterSelection()
	sel.Country = req.Country
	if sel.Country == "" {
		sel.Country = domain.CountryAll
	}
	sel.State = req.State
	if sel.State == "" {
		sel.State = domain.StateAll
	}
	sel.SearchTerm = req.Search
	if req.Layers != nil {
		sel.SetActiveLayers(req.Layers)
	}

	values := h.viewStateUC.Encode(usecase.ViewState{
		Lat:       req.Lat,
		Lng:       req.Lng,
		Zoom:      req.Zoom,
		HasCamera: true,
		Selection: sel,
	})
	return c.Redirect("/?"+values.Encode(), fiber.StatusFound)
}
