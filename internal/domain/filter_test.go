package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
)

func TestDefaultFilterSelection(t *testing.T) {
	sel := domain.DefaultFilterSelection()

	assert.Equal(t, domain.CountryAll, sel.Country)
	assert.Equal(t, domain.StateAll, sel.State)
	assert.Empty(t, sel.SearchTerm)
	assert.Equal(t, domain.DefaultClusterThreshold, sel.ClusterThreshold)
	assert.Equal(t,
		[]string{"slaughter", "processing", "labs", "breeders", "dealers", "exhibitors"},
		sel.ActiveLayers())
}

func TestActiveLayersRoundTrip(t *testing.T) {
	sel := domain.DefaultFilterSelection()
	sel.SetActiveLayers([]string{"labs", "slaughter"})

	assert.True(t, sel.ShowSlaughter)
	assert.True(t, sel.ShowLabs)
	assert.False(t, sel.ShowProcessing)
	assert.False(t, sel.ShowBreeders)
	assert.False(t, sel.ShowDealers)
	assert.False(t, sel.ShowExhibitors)
	assert.Equal(t, []string{"slaughter", "labs"}, sel.ActiveLayers())
}

func TestSetActiveLayersIgnoresUnknownTokens(t *testing.T) {
	sel := domain.DefaultFilterSelection()
	sel.SetActiveLayers([]string{"bogus"})
	assert.Empty(t, sel.ActiveLayers())
}

func TestKnownLayerToken(t *testing.T) {
	for _, token := range []string{"slaughter", "processing", "labs", "breeders", "dealers", "exhibitors"} {
		assert.True(t, domain.KnownLayerToken(token), token)
	}
	assert.False(t, domain.KnownLayerToken("bogus"))
	assert.False(t, domain.KnownLayerToken(""))
}

func TestVisibleCount(t *testing.T) {
	data := &domain.FilteredData{
		Slaughterhouses:      make([]domain.FacilityRecord, 3),
		ProcessingPlants:     make([]domain.FacilityRecord, 5),
		BreedingFacilities:   make([]domain.FacilityRecord, 2),
		ExhibitionFacilities: make([]domain.FacilityRecord, 1),
		Labs:                 make([]domain.LabRecord, 4),
		Inspections:          make([]domain.InspectionRecord, 7),
	}

	sel := domain.DefaultFilterSelection()
	assert.Equal(t, 22, data.VisibleCount(sel))

	sel.ShowProcessing = false
	sel.ShowLabs = false
	assert.Equal(t, 13, data.VisibleCount(sel))

	// Inspections count even with every toggle off.
	sel.SetActiveLayers(nil)
	assert.Equal(t, 7, data.VisibleCount(sel))
}

func TestStateFromCityStateZip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cambridge, MA 02138", "MA"},
		{"St. Louis, MO 63110-1234", "MO"},
		{"Somewhere", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.StateFromCityStateZip(tt.in))
	}
}

func TestLabRecordCompositeAddress(t *testing.T) {
	l := domain.LabRecord{CityStateZip: "Cambridge, MA 02138"}
	assert.Equal(t, "MA", l.StateCode())
	assert.Equal(t, "Cambridge", l.CityName())
	assert.Equal(t, "02138", l.ZipCode())
}

func TestLicenseTypeIconKey(t *testing.T) {
	assert.Equal(t, domain.IconBreeder, domain.LicenseBreeder.IconKey())
	assert.Equal(t, domain.IconDealer, domain.LicenseDealer.IconKey())
	assert.Equal(t, domain.IconExhibitor, domain.LicenseExhibitor.IconKey())
	assert.Equal(t, domain.IconBreeder, domain.LicenseType("Class X").IconKey())
}

func TestLatLngBoundsExtendAndPad(t *testing.T) {
	var b domain.LatLngBounds
	b.Extend(10, 20)
	b.Extend(30, -10)

	assert.Equal(t, 10.0, b.SouthWestLat)
	assert.Equal(t, 30.0, b.NorthEastLat)
	assert.Equal(t, -10.0, b.SouthWestLng)
	assert.Equal(t, 20.0, b.NorthEastLng)

	padded := b.Pad(0.1)
	assert.InDelta(t, 8.0, padded.SouthWestLat, 1e-9)
	assert.InDelta(t, 32.0, padded.NorthEastLat, 1e-9)
	assert.InDelta(t, -13.0, padded.SouthWestLng, 1e-9)
	assert.InDelta(t, 23.0, padded.NorthEastLng, 1e-9)
}
