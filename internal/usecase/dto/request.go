package dto

// FilterRequest carries the filter dimensions shared by the map, stats and
// export endpoints. Layer tokens arrive comma-joined in the query string and
// are split by the handler.
type FilterRequest struct {
	Country string   `json:"country" validate:"omitempty,oneof=all US DE ES FR CA MX DK UK NZ"`
	State   string   `json:"state"`
	Search  string   `json:"search" validate:"omitempty,max=200"`
	Layers  []string `json:"layers" validate:"omitempty,dive,oneof=slaughter processing labs breeders dealers exhibitors"`
}

// MapRequest is a filter plus an optional explicit camera. When all three
// camera fields are present the viewport is taken verbatim and auto-fit is
// skipped.
type MapRequest struct {
	FilterRequest
	Lat  *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng  *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	Zoom *int     `json:"zoom" validate:"omitempty,min=0,max=19"`
}

// ShareRequest is the view state snapshotted behind a share token.
type ShareRequest struct {
	Lat     float64  `json:"lat" validate:"min=-90,max=90"`
	Lng     float64  `json:"lng" validate:"min=-180,max=180"`
	Zoom    int      `json:"zoom" validate:"min=0,max=19"`
	Country string   `json:"country" validate:"omitempty,oneof=all US DE ES FR CA MX DK UK NZ"`
	State   string   `json:"state"`
	Search  string   `json:"search" validate:"omitempty,max=200"`
	Layers  []string `json:"layers" validate:"omitempty,dive,oneof=slaughter processing labs breeders dealers exhibitors"`
}

// ExportRequest selects between the complete dataset and the filtered view.
type ExportRequest struct {
	FilterRequest
	Complete bool `json:"complete"`
}
