package utils

// ValidateCoordinates reports whether a lat/lng pair is on the globe.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
