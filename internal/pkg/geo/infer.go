package geo

// Bounding boxes used to infer a country for records the source data left
// untagged. Denmark must be checked before Germany: the boxes overlap, and
// the Danish one is the more specific of the two.
var (
	denmarkBounds = boundingBox{minLat: 54.5, maxLat: 58, minLng: 8, maxLng: 16}
	germanyBounds = boundingBox{minLat: 47, maxLat: 55.2, minLng: 5, maxLng: 16}
)

type boundingBox struct {
	minLat, maxLat float64
	minLng, maxLng float64
}

func (b boundingBox) contains(lat, lng float64) bool {
	return lat > b.minLat && lat < b.maxLat && lng > b.minLng && lng < b.maxLng
}

// InferCountry guesses the lowercase country code for a record without an
// explicit country tag, from its county field and coordinates. Returns ""
// when no heuristic applies; best-effort only.
func InferCountry(county string, lat, lng float64) string {
	if county == "Denmark" || denmarkBounds.contains(lat, lng) {
		return "dk"
	}
	if germanyBounds.contains(lat, lng) {
		return "de"
	}
	return ""
}
