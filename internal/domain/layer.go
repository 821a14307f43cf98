package domain

// Marker is one plotted point: position, icon and a reference back to the
// record it was built from.
type Marker struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	IconKey   string  `json:"icon"`
	Label     string  `json:"label,omitempty"`
	RecordID  string  `json:"record_id,omitempty"`
}

// MarkerLayer is the narrow surface the rendering coordinator needs from a
// layer backend. Keeping the clustering engine behind this interface makes
// the threshold routing testable without a real map.
type MarkerLayer interface {
	Add(m Marker)
	Clear()
	Len() int
	Each(fn func(m Marker))
}

// LayerID names one of the render layers markers are routed into.
type LayerID string

const (
	LayerCluster    LayerID = "cluster"
	LayerSlaughter  LayerID = "slaughter"
	LayerProcessing LayerID = "processing"
	LayerBreeder    LayerID = "breeders"
	LayerExhibitor  LayerID = "exhibitors"
	LayerLab        LayerID = "labs"
	LayerInspection LayerID = "inspections"
)

// MemoryLayer is the in-memory MarkerLayer used by the API (the browser
// client owns the real rendering backend).
type MemoryLayer struct {
	markers []Marker
}

func NewMemoryLayer() *MemoryLayer { return &MemoryLayer{} }

func (l *MemoryLayer) Add(m Marker) { l.markers = append(l.markers, m) }

func (l *MemoryLayer) Clear() { l.markers = l.markers[:0] }

func (l *MemoryLayer) Len() int { return len(l.markers) }

func (l *MemoryLayer) Each(fn func(m Marker)) {
	for _, m := range l.markers {
		fn(m)
	}
}

// Markers returns a copy of the layer contents.
func (l *MemoryLayer) Markers() []Marker {
	out := make([]Marker, len(l.markers))
	copy(out, l.markers)
	return out
}

// LatLngBounds is a simple bounding box over marker coordinates.
type LatLngBounds struct {
	SouthWestLat float64 `json:"sw_lat"`
	SouthWestLng float64 `json:"sw_lng"`
	NorthEastLat float64 `json:"ne_lat"`
	NorthEastLng float64 `json:"ne_lng"`
}

// Extend grows the bounds to include the given point.
func (b *LatLngBounds) Extend(lat, lng float64) {
	if b.SouthWestLat == 0 && b.SouthWestLng == 0 && b.NorthEastLat == 0 && b.NorthEastLng == 0 {
		b.SouthWestLat, b.NorthEastLat = lat, lat
		b.SouthWestLng, b.NorthEastLng = lng, lng
		return
	}
	if lat < b.SouthWestLat {
		b.SouthWestLat = lat
	}
	if lat > b.NorthEastLat {
		b.NorthEastLat = lat
	}
	if lng < b.SouthWestLng {
		b.SouthWestLng = lng
	}
	if lng > b.NorthEastLng {
		b.NorthEastLng = lng
	}
}

// Pad expands the bounds by the given ratio on each side, the way the map
// client pads fitted bounds.
func (b LatLngBounds) Pad(ratio float64) LatLngBounds {
	latPad := (b.NorthEastLat - b.SouthWestLat) * ratio
	lngPad := (b.NorthEastLng - b.SouthWestLng) * ratio
	return LatLngBounds{
		SouthWestLat: b.SouthWestLat - latPad,
		SouthWestLng: b.SouthWestLng - lngPad,
		NorthEastLat: b.NorthEastLat + latPad,
		NorthEastLng: b.NorthEastLng + lngPad,
	}
}
