package domain

import "strings"

// LicenseType is the closed enum carried by inspection reports.
type LicenseType string

const (
	LicenseBreeder   LicenseType = "Class A - Breeder"
	LicenseDealer    LicenseType = "Class B - Dealer"
	LicenseExhibitor LicenseType = "Class C - Exhibitor"
)

// IconKey maps a license type to the marker icon used for it. Unknown
// license types fall back to the breeder icon.
func (t LicenseType) IconKey() string {
	switch t {
	case LicenseBreeder:
		return IconBreeder
	case LicenseDealer:
		return IconDealer
	case LicenseExhibitor:
		return IconExhibitor
	default:
		return IconBreeder
	}
}

// InspectionRecord is one entry from the inspection reports feed. State is a
// discrete field here, unlike lab records.
type InspectionRecord struct {
	AccountName       string      `json:"Account Name"`
	CustomerNumber    string      `json:"Customer Number,omitempty"`
	CertificateNumber string      `json:"Certificate Number"`
	LicenseType       LicenseType `json:"License Type"`
	AddressLine1      string      `json:"Address Line 1,omitempty"`
	AddressLine2      string      `json:"Address Line 2,omitempty"`
	CityStateZip      string      `json:"City-State-Zip"`
	County            string      `json:"County,omitempty"`
	City              string      `json:"City,omitempty"`
	State             string      `json:"State"`
	Zip               string      `json:"Zip,omitempty"`
	Latitude          float64     `json:"Geocodio Latitude"`
	Longitude         float64     `json:"Geocodio Longitude"`
}

// CityName returns the city portion of the composite address, preferring the
// discrete field when the feed populated it.
func (r *InspectionRecord) CityName() string {
	if r.City != "" {
		return r.City
	}
	city, _, ok := strings.Cut(r.CityStateZip, ",")
	if !ok {
		return strings.TrimSpace(r.CityStateZip)
	}
	return strings.TrimSpace(city)
}

// ZipCode returns the trailing zip portion of the composite address.
func (r *InspectionRecord) ZipCode() string {
	if r.Zip != "" {
		return r.Zip
	}
	fields := strings.Fields(r.CityStateZip)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// HasCoordinates reports whether the record carries a usable position.
func (r *InspectionRecord) HasCoordinates() bool {
	return r.Latitude != 0 && r.Longitude != 0
}
