package dto

import "github.com/eliperez-dev/UntilEveryCage/internal/domain"

// MapResponse is one rendered frame: the populated layers, whether
// clustering kicked in, and the viewport decision.
type MapResponse struct {
	Layers    map[domain.LayerID][]domain.Marker `json:"layers"`
	Clustered bool                               `json:"clustered"`
	Viewport  ViewportResponse                   `json:"viewport"`
	Total     int                                `json:"total"`
}

// ViewportResponse tells the client where to point the camera. Mode is
// either "fit" (bounds are set) or "world" (center/zoom are set).
type ViewportResponse struct {
	Mode   string               `json:"mode"`
	Bounds *domain.LatLngBounds `json:"bounds,omitempty"`
	Lat    float64              `json:"lat,omitempty"`
	Lng    float64              `json:"lng,omitempty"`
	Zoom   int                  `json:"zoom,omitempty"`
}

// StatLine is one row of the per-category breakdown.
type StatLine struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	// Count formatted with locale digit grouping.
	Formatted string `json:"formatted"`
}

// StatsResponse is the visible-count breakdown for the current filters.
type StatsResponse struct {
	Lines   []StatLine `json:"lines"`
	Summary string     `json:"summary"`
	Total   int        `json:"total"`
}

// OptionResponse is one entry of a selector dropdown.
type OptionResponse struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

// FilterOptionsResponse feeds the country and state selectors.
type FilterOptionsResponse struct {
	Countries []OptionResponse `json:"countries"`
	States    []OptionResponse `json:"states"`
	// True when the state selector is a no-op for the chosen country.
	StatesDisabled bool `json:"states_disabled,omitempty"`
}

// ShareResponse returns the minted share token and its resolve path.
type ShareResponse struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}
