package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/utils"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

// DataHandler exposes the filtered collections directly, one endpoint per
// feed shape.
type DataHandler struct {
	filterUC    *usecase.FilterUseCase
	viewStateUC *usecase.ViewStateUseCase
	logger      *zap.Logger
}

// NewDataHandler creates a new DataHandler instance.
func NewDataHandler(filterUC *usecase.FilterUseCase, viewStateUC *usecase.ViewStateUseCase, logger *zap.Logger) *DataHandler {
	return &DataHandler{
		filterUC:    filterUC,
		viewStateUC: viewStateUC,
		logger:      logger,
	}
}

// GetFacilities returns the filtered facility buckets.
func (h *DataHandler) GetFacilities(c *fiber.Ctx) error {
	state, err := decodeViewState(c, h.viewStateUC)
	if err != nil {
		return utils.SendError(c, err)
	}
	data := h.filterUC.FilterData(state.Selection)

	return utils.SendSuccess(c, fiber.Map{
		"slaughterhouses":       data.Slaughterhouses,
		"processing_plants":     data.ProcessingPlants,
		"breeding_facilities":   data.BreedingFacilities,
		"exhibition_facilities": data.ExhibitionFacilities,
	}, nil)
}

// GetLabs returns the filtered lab records.
func (h *DataHandler) GetLabs(c *fiber.Ctx) error {
	state, err := decodeViewState(c, h.viewStateUC)
	if err != nil {
		return utils.SendError(c, err)
	}
	data := h.filterUC.FilterData(state.Selection)

	return utils.SendSuccess(c, data.Labs, &utils.Meta{Total: len(data.Labs)})
}

// GetInspections returns the filtered, license-gated inspection reports.
func (h *DataHandler) GetInspections(c *fiber.Ctx) error {
	state, err := decodeViewState(c, h.viewStateUC)
	if err != nil {
		return utils.SendError(c, err)
	}
	data := h.filterUC.FilterData(state.Selection)

	return utils.SendSuccess(c, data.Inspections, &utils.Meta{Total: len(data.Inspections)})
}
