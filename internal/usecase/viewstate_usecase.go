package usecase

import (
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/geo"
)

// ViewState is the complete shareable snapshot: camera plus filters.
type ViewState struct {
	Lat       float64
	Lng       float64
	Zoom      int
	HasCamera bool
	Selection domain.FilterSelection
}

// ViewStateUseCase serializes view state into URL query parameters and
// restores it, so a pasted link reproduces the exact view.
type ViewStateUseCase struct {
	logger *zap.Logger
}

// NewViewStateUseCase creates a new ViewStateUseCase instance.
func NewViewStateUseCase(logger *zap.Logger) *ViewStateUseCase {
	return &ViewStateUseCase{logger: logger}
}

// Encode writes the state into query parameters. Coordinates keep 5 decimal
// places; the layers parameter appears only when at least one category is
// active.
func (uc *ViewStateUseCase) Encode(state ViewState) url.Values {
	values := url.Values{}
	if state.HasCamera {
		values.Set("lat", strconv.FormatFloat(state.Lat, 'f', 5, 64))
		values.Set("lng", strconv.FormatFloat(state.Lng, 'f', 5, 64))
		values.Set("zoom", strconv.Itoa(state.Zoom))
	}
	values.Set("country", state.Selection.Country)
	values.Set("state", state.Selection.State)
	if state.Selection.SearchTerm != "" {
		values.Set("search", state.Selection.SearchTerm)
	}
	if layers := state.Selection.ActiveLayers(); len(layers) > 0 {
		values.Set("layers", strings.Join(layers, ","))
	}
	return values
}

// Decode restores a ViewState from query parameters. When only a state
// parameter is present the country is re-derived by reverse lookup through
// the membership tables. Camera presence (all of lat/lng/zoom) suppresses
// the load-time auto-fit; the shared viewport wins over any fitting
// heuristic.
func (uc *ViewStateUseCase) Decode(values url.Values) ViewState {
	state := ViewState{Selection: domain.DefaultFilterSelection()}

	lat, latErr := strconv.ParseFloat(values.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(values.Get("lng"), 64)
	zoom, zoomErr := strconv.Atoi(values.Get("zoom"))
	if latErr == nil && lngErr == nil && zoomErr == nil {
		state.Lat = lat
		state.Lng = lng
		state.Zoom = zoom
		state.HasCamera = true
	}

	if country := values.Get("country"); country != "" {
		state.Selection.Country = country
	}
	if st := values.Get("state"); st != "" {
		state.Selection.State = st
		if values.Get("country") == "" && st != domain.StateAll {
			state.Selection.Country = geo.CountryForState(st)
		}
	}
	state.Selection.SearchTerm = values.Get("search")

	if values.Has("layers") {
		state.Selection.SetActiveLayers(splitLayers(values.Get("layers")))
	}

	return state
}

func splitLayers(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
