package usecase

import (
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/config"
	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase/dto"
)

// RenderUseCase routes filtered records into marker layers and decides the
// viewport. The clustering switch is global: either every visible marker
// goes to the shared cluster layer, or each category gets its own discrete
// layer. Mixed states would break cluster expansion on the client.
type RenderUseCase struct {
	mapCfg config.MapConfig
	logger *zap.Logger
}

// NewRenderUseCase creates a new RenderUseCase instance.
func NewRenderUseCase(mapCfg config.MapConfig, logger *zap.Logger) *RenderUseCase {
	return &RenderUseCase{
		mapCfg: mapCfg,
		logger: logger,
	}
}

// Route clears and rebuilds the layer set for one frame. Records without
// coordinates are skipped, never errors.
func (uc *RenderUseCase) Route(data *domain.FilteredData, sel domain.FilterSelection) (map[domain.LayerID][]domain.Marker, bool) {
	threshold := sel.ClusterThreshold
	if threshold <= 0 {
		threshold = uc.mapCfg.ClusterThreshold
	}
	clustered := data.VisibleCount(sel) >= threshold

	layers := map[domain.LayerID]domain.MarkerLayer{
		domain.LayerCluster:    domain.NewMemoryLayer(),
		domain.LayerSlaughter:  domain.NewMemoryLayer(),
		domain.LayerProcessing: domain.NewMemoryLayer(),
		domain.LayerBreeder:    domain.NewMemoryLayer(),
		domain.LayerExhibitor:  domain.NewMemoryLayer(),
		domain.LayerLab:        domain.NewMemoryLayer(),
		domain.LayerInspection: domain.NewMemoryLayer(),
	}

	target := func(discrete domain.LayerID) domain.MarkerLayer {
		if clustered {
			return layers[domain.LayerCluster]
		}
		return layers[discrete]
	}

	addFacilities := func(records []domain.FacilityRecord, discrete domain.LayerID) {
		layer := target(discrete)
		for i := range records {
			r := &records[i]
			if !r.HasCoordinates() {
				continue
			}
			c := domain.ClassifyFacility(r.Type, r.EstablishmentName)
			layer.Add(domain.Marker{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				IconKey:   c.IconKey,
				Label:     r.EstablishmentName,
				RecordID:  r.EstablishmentID,
			})
		}
	}

	if sel.ShowSlaughter {
		addFacilities(data.Slaughterhouses, domain.LayerSlaughter)
	}
	if sel.ShowProcessing {
		addFacilities(data.ProcessingPlants, domain.LayerProcessing)
	}
	if sel.ShowBreeders {
		addFacilities(data.BreedingFacilities, domain.LayerBreeder)
	}
	if sel.ShowExhibitors {
		addFacilities(data.ExhibitionFacilities, domain.LayerExhibitor)
	}
	if sel.ShowLabs {
		layer := target(domain.LayerLab)
		for i := range data.Labs {
			l := &data.Labs[i]
			if !l.HasCoordinates() {
				continue
			}
			layer.Add(domain.Marker{
				Latitude:  l.Latitude,
				Longitude: l.Longitude,
				IconKey:   domain.IconLab,
				Label:     l.AccountName,
				RecordID:  l.CertificateNumber,
			})
		}
	}
	{
		// Inspections were already license-gated in the filter pass.
		layer := target(domain.LayerInspection)
		for i := range data.Inspections {
			r := &data.Inspections[i]
			if !r.HasCoordinates() {
				continue
			}
			layer.Add(domain.Marker{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				IconKey:   r.LicenseType.IconKey(),
				Label:     r.AccountName,
				RecordID:  r.CertificateNumber,
			})
		}
	}

	out := make(map[domain.LayerID][]domain.Marker, len(layers))
	for id, layer := range layers {
		ml := layer.(*domain.MemoryLayer)
		if ml.Len() == 0 {
			continue
		}
		out[id] = ml.Markers()
	}
	return out, clustered
}

// Viewport decides where the camera goes. A state selection fits bounds to
// the visible markers with 10% padding; "all states" fits only when a
// country was just explicitly chosen; anything else is the fixed world view.
func (uc *RenderUseCase) Viewport(layers map[domain.LayerID][]domain.Marker, sel domain.FilterSelection, shouldCenterOnCountry bool) dto.ViewportResponse {
	fit := !sel.AllStates() || shouldCenterOnCountry
	if fit {
		var bounds domain.LatLngBounds
		extended := false
		for _, markers := range layers {
			for _, m := range markers {
				bounds.Extend(m.Latitude, m.Longitude)
				extended = true
			}
		}
		if extended {
			padded := bounds.Pad(0.1)
			return dto.ViewportResponse{Mode: "fit", Bounds: &padded}
		}
	}
	return dto.ViewportResponse{
		Mode: "world",
		Lat:  uc.mapCfg.DefaultLat,
		Lng:  uc.mapCfg.DefaultLng,
		Zoom: uc.mapCfg.DefaultZoom,
	}
}
