package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/utils"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

// OptionsHandler feeds the filter selector dropdowns.
type OptionsHandler struct {
	storeUC *usecase.StoreUseCase
	logger  *zap.Logger
}

// NewOptionsHandler creates a new OptionsHandler instance.
func NewOptionsHandler(storeUC *usecase.StoreUseCase, logger *zap.Logger) *OptionsHandler {
	return &OptionsHandler{
		storeUC: storeUC,
		logger:  logger,
	}
}

// GetFilterOptions returns the country list and the state list for the
// requested country.
func (h *OptionsHandler) GetFilterOptions(c *fiber.Ctx) error {
	country := c.Query("country", domain.CountryAll)

	options := h.storeUC.StateOptions(country)
	options.Countries = h.storeUC.CountryOptions()

	return utils.SendSuccess(c, options, nil)
}
