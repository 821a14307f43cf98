package domain

// FacilityRecord is one entry from the facility locations feed. Field names
// follow the feed's JSON shape. The country field is inferred during
// enrichment for records the source data leaves untagged.
type FacilityRecord struct {
	EstablishmentID   string  `json:"establishment_id"`
	EstablishmentName string  `json:"establishment_name"`
	DBAs              string  `json:"dbas,omitempty"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	County            string  `json:"county,omitempty"`
	Country           string  `json:"country,omitempty"`
	Type              string  `json:"type"`
	Slaughter         string  `json:"slaughter,omitempty"`
	AnimalsSlaughtered string `json:"animals_slaughtered,omitempty"`
	AnimalsProcessed   string `json:"animals_processed,omitempty"`
	// Ordinal volume codes, "0.0" through "5.0"; "0.0" means unknown.
	SlaughterVolumeCategory  string `json:"slaughter_volume_category,omitempty"`
	ProcessingVolumeCategory string `json:"processing_volume_category,omitempty"`
	Phone                    string `json:"phone,omitempty"`
	GrantDate                string `json:"grant_date,omitempty"`
}

// HasCoordinates reports whether the record carries a usable position.
// Records geocoded to (0,0) are treated as missing.
func (f *FacilityRecord) HasCoordinates() bool {
	return f.Latitude != 0 && f.Longitude != 0
}
