package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
)

func newBindTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/map", func(c *fiber.Ctx) error {
		if _, err := bindMapRequest(c); err != nil {
			appErr := err.(*errors.AppError)
			return c.Status(appErr.StatusCode).SendString(appErr.Code)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestBindMapRequestValidation(t *testing.T) {
	app := newBindTestApp()

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"no parameters", "/map", fiber.StatusOK, ""},
		{"full valid state", "/map?country=US&state=CA&search=acme&layers=slaughter,labs&lat=36.77825&lng=-119.41793&zoom=6", fiber.StatusOK, ""},
		{"unknown country", "/map?country=ZZ", fiber.StatusBadRequest, "INVALID_REQUEST"},
		{"oversized search", "/map?search=" + strings.Repeat("a", 201), fiber.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown layer token", "/map?layers=slaughter,plutonium", fiber.StatusBadRequest, "INVALID_LAYER_TOKEN"},
		{"non-numeric latitude", "/map?lat=abc&lng=0&zoom=2", fiber.StatusBadRequest, "INVALID_COORDINATES"},
		{"latitude off the globe", "/map?lat=123.0&lng=0&zoom=2", fiber.StatusBadRequest, "INVALID_COORDINATES"},
		{"non-numeric zoom", "/map?zoom=deep", fiber.StatusBadRequest, "INVALID_ZOOM"},
		{"zoom out of range", "/map?zoom=99", fiber.StatusBadRequest, "INVALID_ZOOM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.code != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.code, string(body))
			}
		})
	}
}
