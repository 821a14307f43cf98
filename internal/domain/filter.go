package domain

// CountryAll / StateAll are the "no filter" sentinels used by selectors
// and URL parameters.
const (
	CountryAll = "all"
	StateAll   = "all"
)

// DefaultClusterThreshold is the visible-marker count at which rendering
// switches from discrete per-category layers to one shared cluster layer.
const DefaultClusterThreshold = 2800

// FilterSelection is the ephemeral view state driving a filter pass:
// country, state/region, free-text search, one visibility toggle per
// category, and the cluster threshold.
type FilterSelection struct {
	Country          string
	State            string
	SearchTerm       string
	ShowSlaughter    bool
	ShowProcessing   bool
	ShowLabs         bool
	ShowBreeders     bool
	ShowDealers      bool
	ShowExhibitors   bool
	ClusterThreshold int
}

// DefaultFilterSelection returns the selection used when no URL state is
// present: everything visible, no filters.
func DefaultFilterSelection() FilterSelection {
	return FilterSelection{
		Country:          CountryAll,
		State:            StateAll,
		ShowSlaughter:    true,
		ShowProcessing:   true,
		ShowLabs:         true,
		ShowBreeders:     true,
		ShowDealers:      true,
		ShowExhibitors:   true,
		ClusterThreshold: DefaultClusterThreshold,
	}
}

// AllStates reports whether the state dimension is unfiltered.
func (s FilterSelection) AllStates() bool {
	return s.State == StateAll || s.State == ""
}

// ActiveLayers returns the comma-joinable tokens for the currently visible
// categories, in the canonical order used by the layers URL parameter.
func (s FilterSelection) ActiveLayers() []string {
	var layers []string
	if s.ShowSlaughter {
		layers = append(layers, "slaughter")
	}
	if s.ShowProcessing {
		layers = append(layers, "processing")
	}
	if s.ShowLabs {
		layers = append(layers, "labs")
	}
	if s.ShowBreeders {
		layers = append(layers, "breeders")
	}
	if s.ShowDealers {
		layers = append(layers, "dealers")
	}
	if s.ShowExhibitors {
		layers = append(layers, "exhibitors")
	}
	return layers
}

// KnownLayerToken reports whether a layers URL token names one of the six
// categories.
func KnownLayerToken(token string) bool {
	switch token {
	case "slaughter", "processing", "labs", "breeders", "dealers", "exhibitors":
		return true
	}
	return false
}

// SetActiveLayers applies a layer token set to the visibility toggles.
// Tokens not in the set are switched off.
func (s *FilterSelection) SetActiveLayers(tokens []string) {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	s.ShowSlaughter = set["slaughter"]
	s.ShowProcessing = set["processing"]
	s.ShowLabs = set["labs"]
	s.ShowBreeders = set["breeders"]
	s.ShowDealers = set["dealers"]
	s.ShowExhibitors = set["exhibitors"]
}

// FilteredData is the result of one filter pass: the four facility buckets
// partitioned by classification, plus the filtered labs and inspection
// reports.
type FilteredData struct {
	Slaughterhouses      []FacilityRecord
	ProcessingPlants     []FacilityRecord
	BreedingFacilities   []FacilityRecord
	ExhibitionFacilities []FacilityRecord
	Labs                 []LabRecord
	Inspections          []InspectionRecord
}

// VisibleCount sums the sizes of the buckets whose toggles are on.
// Inspection reports always count: they are pre-gated by license type
// during filtering, so every surviving report is visible.
func (d *FilteredData) VisibleCount(sel FilterSelection) int {
	total := 0
	if sel.ShowSlaughter {
		total += len(d.Slaughterhouses)
	}
	if sel.ShowProcessing {
		total += len(d.ProcessingPlants)
	}
	if sel.ShowBreeders {
		total += len(d.BreedingFacilities)
	}
	if sel.ShowExhibitors {
		total += len(d.ExhibitionFacilities)
	}
	if sel.ShowLabs {
		total += len(d.Labs)
	}
	total += len(d.Inspections)
	return total
}
