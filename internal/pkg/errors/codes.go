package errors

import "net/http"

var (
	ErrFeedUnavailable = New(
		"FEED_UNAVAILABLE",
		"Upstream data feed is unavailable",
		http.StatusBadGateway,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidZoom = New(
		"INVALID_ZOOM",
		"Invalid zoom level",
		http.StatusBadRequest,
	)

	ErrInvalidLayerToken = New(
		"INVALID_LAYER_TOKEN",
		"Unknown layer token",
		http.StatusBadRequest,
	)

	ErrNothingToExport = New(
		"NOTHING_TO_EXPORT",
		"No visible records to export",
		http.StatusUnprocessableEntity,
	)

	ErrShareNotFound = New(
		"SHARE_NOT_FOUND",
		"Share link not found or expired",
		http.StatusNotFound,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
