package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/config"
	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

func newRenderUseCase() *usecase.RenderUseCase {
	return usecase.NewRenderUseCase(config.MapConfig{
		ClusterThreshold: 2800,
		DefaultLat:       31.42841,
		DefaultLng:       -49.57343,
		DefaultZoom:      2,
	}, zap.NewNop())
}

func facilityBatch(n int) []domain.FacilityRecord {
	records := make([]domain.FacilityRecord, n)
	for i := range records {
		records[i] = domain.FacilityRecord{
			EstablishmentName: "Plant",
			Type:              "Cattle Slaughterhouse",
			Latitude:          40.0 + float64(i)*0.001,
			Longitude:         -75.0,
		}
	}
	return records
}

func TestRouteDiscreteBelowThreshold(t *testing.T) {
	uc := newRenderUseCase()
	data := &domain.FilteredData{Slaughterhouses: facilityBatch(5)}
	sel := domain.DefaultFilterSelection()

	layers, clustered := uc.Route(data, sel)

	assert.False(t, clustered)
	assert.Len(t, layers[domain.LayerSlaughter], 5)
	assert.Empty(t, layers[domain.LayerCluster])
}

func TestRouteClustersAtThresholdBoundary(t *testing.T) {
	uc := newRenderUseCase()
	data := &domain.FilteredData{Slaughterhouses: facilityBatch(10)}
	sel := domain.DefaultFilterSelection()

	// Count equal to threshold clusters: the comparison is >=, not >.
	sel.ClusterThreshold = 10
	layers, clustered := uc.Route(data, sel)
	assert.True(t, clustered)
	assert.Len(t, layers[domain.LayerCluster], 10)
	assert.Empty(t, layers[domain.LayerSlaughter])

	sel.ClusterThreshold = 11
	_, clustered = uc.Route(data, sel)
	assert.False(t, clustered)
}

func TestRouteClusteringIsGlobal(t *testing.T) {
	uc := newRenderUseCase()
	data := &domain.FilteredData{
		Slaughterhouses: facilityBatch(6),
		Labs: []domain.LabRecord{
			{AccountName: "Lab", Latitude: 42.0, Longitude: -71.0},
		},
	}
	sel := domain.DefaultFilterSelection()
	sel.ClusterThreshold = 7

	layers, clustered := uc.Route(data, sel)

	// 6 facilities + 1 lab hit the threshold; everything clusters together.
	assert.True(t, clustered)
	assert.Len(t, layers[domain.LayerCluster], 7)
	assert.Empty(t, layers[domain.LayerLab])
}

func TestRouteSkipsRecordsWithoutCoordinates(t *testing.T) {
	uc := newRenderUseCase()
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{
			{EstablishmentName: "Good", Type: "Cattle Slaughterhouse", Latitude: 40.0, Longitude: -75.0},
			{EstablishmentName: "Ungeocoded", Type: "Cattle Slaughterhouse"},
		},
	}
	sel := domain.DefaultFilterSelection()

	layers, _ := uc.Route(data, sel)
	require.Len(t, layers[domain.LayerSlaughter], 1)
	assert.Equal(t, "Good", layers[domain.LayerSlaughter][0].Label)
}

func TestRouteRespectsToggles(t *testing.T) {
	uc := newRenderUseCase()
	data := &domain.FilteredData{
		Slaughterhouses: facilityBatch(3),
		Labs: []domain.LabRecord{
			{AccountName: "Lab", Latitude: 42.0, Longitude: -71.0},
		},
		Inspections: []domain.InspectionRecord{
			{AccountName: "Kennel", LicenseType: domain.LicenseBreeder, Latitude: 33.0, Longitude: -112.0},
		},
	}
	sel := domain.DefaultFilterSelection()
	sel.ShowSlaughter = false
	sel.ShowLabs = false

	layers, _ := uc.Route(data, sel)
	assert.Empty(t, layers[domain.LayerSlaughter])
	assert.Empty(t, layers[domain.LayerLab])
	// Inspections were license-gated upstream and always render.
	assert.Len(t, layers[domain.LayerInspection], 1)
}

func TestRouteMarkerIcons(t *testing.T) {
	uc := newRenderUseCase()
	data := &domain.FilteredData{
		Inspections: []domain.InspectionRecord{
			{AccountName: "Broker", LicenseType: domain.LicenseDealer, Latitude: 33.0, Longitude: -112.0},
		},
	}
	layers, _ := uc.Route(data, domain.DefaultFilterSelection())

	require.Len(t, layers[domain.LayerInspection], 1)
	assert.Equal(t, domain.IconDealer, layers[domain.LayerInspection][0].IconKey)
}

func TestViewportFitWhenStateSelected(t *testing.T) {
	uc := newRenderUseCase()
	layers := map[domain.LayerID][]domain.Marker{
		domain.LayerSlaughter: {
			{Latitude: 30, Longitude: -100},
			{Latitude: 40, Longitude: -90},
		},
	}
	sel := domain.DefaultFilterSelection()
	sel.State = "TX"

	vp := uc.Viewport(layers, sel, false)
	require.Equal(t, "fit", vp.Mode)
	require.NotNil(t, vp.Bounds)
	assert.InDelta(t, 29.0, vp.Bounds.SouthWestLat, 1e-9)
	assert.InDelta(t, 41.0, vp.Bounds.NorthEastLat, 1e-9)
}

func TestViewportWorldWhenAllStates(t *testing.T) {
	uc := newRenderUseCase()
	layers := map[domain.LayerID][]domain.Marker{
		domain.LayerSlaughter: {{Latitude: 30, Longitude: -100}},
	}
	sel := domain.DefaultFilterSelection()

	vp := uc.Viewport(layers, sel, false)
	assert.Equal(t, "world", vp.Mode)
	assert.Equal(t, 31.42841, vp.Lat)
	assert.Equal(t, -49.57343, vp.Lng)
	assert.Equal(t, 2, vp.Zoom)
}

func TestViewportFitOnExplicitCountryChoice(t *testing.T) {
	uc := newRenderUseCase()
	layers := map[domain.LayerID][]domain.Marker{
		domain.LayerSlaughter: {{Latitude: 30, Longitude: -100}},
	}
	sel := domain.DefaultFilterSelection()

	vp := uc.Viewport(layers, sel, true)
	assert.Equal(t, "fit", vp.Mode)
}

func TestViewportWorldWhenNothingVisible(t *testing.T) {
	uc := newRenderUseCase()
	sel := domain.DefaultFilterSelection()
	sel.State = "TX"

	vp := uc.Viewport(nil, sel, false)
	assert.Equal(t, "world", vp.Mode)
}
