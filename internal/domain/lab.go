package domain

import (
	"regexp"
	"strings"
)

// LabRecord is one entry from the lab registrations feed. Unlike facility
// records, city/state/zip arrive as a single composite string and must be
// parsed out by pattern.
type LabRecord struct {
	AccountName       string  `json:"Account Name"`
	CustomerNumber    string  `json:"Customer Number_x,omitempty"`
	CertificateNumber string  `json:"Certificate Number"`
	RegistrationType  string  `json:"Registration Type,omitempty"`
	AddressLine1      string  `json:"Address Line 1,omitempty"`
	AddressLine2      string  `json:"Address Line 2,omitempty"`
	CityStateZip      string  `json:"City-State-Zip"`
	County            string  `json:"County,omitempty"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	AnimalsTestedOn   string  `json:"Animals Tested On,omitempty"`
}

var cityStateZipStateRe = regexp.MustCompile(`, ([A-Z]{2})`)

// StateFromCityStateZip extracts the 2-letter state code from a composite
// "City, ST 12345" string, or "" when none is present.
func StateFromCityStateZip(cityStateZip string) string {
	m := cityStateZipStateRe.FindStringSubmatch(cityStateZip)
	if m == nil {
		return ""
	}
	return m[1]
}

// StateCode returns the parsed state portion of the composite address.
func (l *LabRecord) StateCode() string {
	return StateFromCityStateZip(l.CityStateZip)
}

// CityName returns the city portion of the composite address.
func (l *LabRecord) CityName() string {
	city, _, ok := strings.Cut(l.CityStateZip, ",")
	if !ok {
		return strings.TrimSpace(l.CityStateZip)
	}
	return strings.TrimSpace(city)
}

// ZipCode returns the trailing zip portion of the composite address.
func (l *LabRecord) ZipCode() string {
	fields := strings.Fields(l.CityStateZip)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// HasCoordinates reports whether the record carries a usable position.
func (l *LabRecord) HasCoordinates() bool {
	return l.Latitude != 0 && l.Longitude != 0
}
