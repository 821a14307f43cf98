package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/utils"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/validator"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase/dto"
)

// queryValues collects the request's query parameters into url.Values so
// the view-state codec can work on both live requests and stored links.
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}

// bindFilterRequest parses and validates the filter dimensions shared by
// every read endpoint.
func bindFilterRequest(c *fiber.Ctx) (dto.FilterRequest, error) {
	req := dto.FilterRequest{
		Country: c.Query("country"),
		State:   c.Query("state"),
		Search:  c.Query("search"),
	}
	if c.Context().QueryArgs().Has("layers") {
		req.Layers = splitQueryList(c.Query("layers"))
	}
	for _, token := range req.Layers {
		if !domain.KnownLayerToken(token) {
			return req, errors.ErrInvalidLayerToken
		}
	}
	if err := validator.Validate(req); err != nil {
		return req, errors.ErrInvalidRequest
	}
	return req, nil
}

// bindMapRequest adds the optional explicit camera on top of the filter
// dimensions.
func bindMapRequest(c *fiber.Ctx) (dto.MapRequest, error) {
	filter, err := bindFilterRequest(c)
	if err != nil {
		return dto.MapRequest{}, err
	}
	req := dto.MapRequest{FilterRequest: filter}

	if v := c.Query("lat"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errors.ErrInvalidCoordinates
		}
		req.Lat = &f
	}
	if v := c.Query("lng"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errors.ErrInvalidCoordinates
		}
		req.Lng = &f
	}
	if v := c.Query("zoom"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 19 {
			return req, errors.ErrInvalidZoom
		}
		req.Zoom = &n
	}
	if req.Lat != nil && req.Lng != nil && !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
		return req, errors.ErrInvalidCoordinates
	}
	if err := validator.Validate(req); err != nil {
		return req, errors.ErrInvalidRequest
	}
	return req, nil
}

// bindExportRequest is the filter dimensions plus the complete-dataset
// switch.
func bindExportRequest(c *fiber.Ctx) (dto.ExportRequest, error) {
	filter, err := bindFilterRequest(c)
	if err != nil {
		return dto.ExportRequest{}, err
	}
	return dto.ExportRequest{
		FilterRequest: filter,
		Complete:      c.QueryBool("complete"),
	}, nil
}

// decodeViewState parses the shared filter/camera parameters of a request.
// Binding rejects malformed parameters up front; the decode itself stays
// lenient so stored share links never hard-fail.
func decodeViewState(c *fiber.Ctx, viewStateUC *usecase.ViewStateUseCase) (usecase.ViewState, error) {
	if _, err := bindMapRequest(c); err != nil {
		return usecase.ViewState{}, err
	}
	return viewStateUC.Decode(queryValues(c)), nil
}

func splitQueryList(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
