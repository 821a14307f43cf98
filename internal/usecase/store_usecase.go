package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/domain/repository"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/geo"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase/dto"
)

// StoreUseCase owns the three record collections. Load fetches them as an
// all-or-nothing join and runs the enrichment pass; afterwards the
// collections are read-only and safe for concurrent readers.
type StoreUseCase struct {
	feedRepo repository.FeedRepository
	logger   *zap.Logger

	mu          sync.RWMutex
	facilities  []domain.FacilityRecord
	labs        []domain.LabRecord
	inspections []domain.InspectionRecord
	loaded      bool
}

// NewStoreUseCase creates a new StoreUseCase instance.
func NewStoreUseCase(feedRepo repository.FeedRepository, logger *zap.Logger) *StoreUseCase {
	return &StoreUseCase{
		feedRepo: feedRepo,
		logger:   logger,
	}
}

// Load fetches the three feeds concurrently. Any failure fails the whole
// load; partial data is never installed.
func (uc *StoreUseCase) Load(ctx context.Context) error {
	var (
		facilities  []domain.FacilityRecord
		labs        []domain.LabRecord
		inspections []domain.InspectionRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		facilities, err = uc.feedRepo.FetchFacilities(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		labs, err = uc.feedRepo.FetchLabs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		inspections, err = uc.feedRepo.FetchInspections(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load feeds: %w", err)
	}

	enriched := enrichFacilities(facilities)

	uc.mu.Lock()
	uc.facilities = enriched
	uc.labs = labs
	uc.inspections = inspections
	uc.loaded = true
	uc.mu.Unlock()

	uc.logger.Info("Data store loaded",
		zap.Int("facilities", len(enriched)),
		zap.Int("labs", len(labs)),
		zap.Int("inspections", len(inspections)),
	)
	return nil
}

// enrichFacilities runs the one-time post-load pass over a copy of the
// fetched records: country inference for untagged records and German state
// disambiguation. Danish records keep an empty state; there is no province
// concept to fill in.
func enrichFacilities(records []domain.FacilityRecord) []domain.FacilityRecord {
	out := make([]domain.FacilityRecord, len(records))
	copy(out, records)

	for i := range out {
		r := &out[i]
		if r.Country == "" {
			r.Country = geo.InferCountry(r.County, r.Latitude, r.Longitude)
		}
		if r.Country == "de" && r.State == "" {
			if state := geo.GermanStateFromEstablishmentID(r.EstablishmentID); state != "" {
				r.State = state
			} else {
				r.State = geo.GermanStateUnknown
			}
		}
	}
	return out
}

// Loaded reports whether Load has completed successfully.
func (uc *StoreUseCase) Loaded() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loaded
}

// Facilities returns the enriched facility collection.
func (uc *StoreUseCase) Facilities() []domain.FacilityRecord {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.facilities
}

// Labs returns the lab collection.
func (uc *StoreUseCase) Labs() []domain.LabRecord {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.labs
}

// Inspections returns the inspection report collection.
func (uc *StoreUseCase) Inspections() []domain.InspectionRecord {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.inspections
}

// AllStateValues returns the distinct state/region values present across
// the three collections, sorted for display.
func (uc *StoreUseCase) AllStateValues() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	seen := make(map[string]struct{})
	for i := range uc.facilities {
		if s := uc.facilities[i].State; s != "" {
			seen[s] = struct{}{}
		}
	}
	for i := range uc.labs {
		if s := uc.labs[i].StateCode(); s != "" {
			seen[s] = struct{}{}
		}
	}
	for i := range uc.inspections {
		if s := uc.inspections[i].State; s != "" {
			seen[s] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for s := range seen {
		values = append(values, s)
	}
	sortDisplay(values)
	return values
}

// CountryOptions returns the country selector entries, "all" first, then
// only the countries actually present in the loaded data.
func (uc *StoreUseCase) CountryOptions() []dto.OptionResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	present := make(map[string]bool)
	for i := range uc.facilities {
		r := &uc.facilities[i]
		if r.Country != "" {
			present[geo.CountryForCode(r.Country)] = true
		} else if r.State != "" {
			present[geo.CountryForState(r.State)] = true
		}
	}
	// Labs and inspections are US-only feeds.
	if len(uc.labs) > 0 || len(uc.inspections) > 0 {
		present[geo.CountryUS] = true
	}

	options := []dto.OptionResponse{{Value: domain.CountryAll, Label: "All Countries"}}
	for _, c := range []struct{ code, label string }{
		{geo.CountryUS, "United States"},
		{geo.CountryUK, "United Kingdom"},
		{geo.CountryDE, "Germany"},
		{geo.CountryES, "Spain"},
		{geo.CountryFR, "France"},
		{geo.CountryCA, "Canada"},
		{geo.CountryMX, "Mexico"},
		{geo.CountryDK, "Denmark"},
		{geo.CountryNZ, "New Zealand"},
	} {
		if present[c.code] {
			options = append(options, dto.OptionResponse{Value: c.code, Label: c.label})
		}
	}
	return options
}

// StateOptions returns the state selector entries for a chosen country.
// Denmark lists city names (it has no province concept); France has no
// department data and gets a disabled placeholder; New Zealand lists its
// regions from the records' state field.
func (uc *StoreUseCase) StateOptions(country string) dto.FilterOptionsResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	all := dto.OptionResponse{Value: domain.StateAll, Label: "All States/Regions"}

	switch country {
	case geo.CountryFR:
		return dto.FilterOptionsResponse{
			States:         []dto.OptionResponse{{Value: domain.StateAll, Label: "No regions available", Disabled: true}},
			StatesDisabled: true,
		}
	case geo.CountryDK:
		cities := uc.danishCitiesLocked()
		options := []dto.OptionResponse{all}
		for _, c := range cities {
			options = append(options, dto.OptionResponse{Value: c, Label: c})
		}
		return dto.FilterOptionsResponse{States: options}
	}

	seen := make(map[string]struct{})
	for i := range uc.facilities {
		r := &uc.facilities[i]
		if r.State == "" {
			continue
		}
		if stateBelongsToCountry(r.State, r.Country, country) {
			seen[r.State] = struct{}{}
		}
	}
	if country == geo.CountryUS || country == domain.CountryAll {
		for i := range uc.labs {
			if s := uc.labs[i].StateCode(); s != "" {
				seen[s] = struct{}{}
			}
		}
		for i := range uc.inspections {
			if s := uc.inspections[i].State; s != "" {
				seen[s] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for s := range seen {
		values = append(values, s)
	}
	sortDisplay(values)

	options := []dto.OptionResponse{all}
	for _, v := range values {
		label := geo.StateDisplayName(v)
		if label == "" {
			label = v
		}
		options = append(options, dto.OptionResponse{Value: v, Label: label})
	}
	return dto.FilterOptionsResponse{States: options}
}

func (uc *StoreUseCase) danishCitiesLocked() []string {
	seen := make(map[string]struct{})
	for i := range uc.facilities {
		r := &uc.facilities[i]
		if r.Country == "dk" && r.City != "" {
			seen[r.City] = struct{}{}
		}
	}
	cities := make([]string, 0, len(seen))
	for c := range seen {
		cities = append(cities, c)
	}
	sortDisplay(cities)
	return cities
}

// stateBelongsToCountry reports whether a record's state value should show
// up in the selector for the chosen country.
func stateBelongsToCountry(state, recordCountry, selected string) bool {
	if selected == domain.CountryAll {
		return true
	}
	if geo.CountryForState(state) == selected {
		return true
	}
	// Records tagged with an explicit country keep their states listed even
	// when the code is absent from the static tables.
	return recordCountry != "" && geo.CountryForCode(recordCountry) == selected
}

// sortDisplay sorts selector values with locale-aware collation so that
// accented Spanish region names order sensibly.
func sortDisplay(values []string) {
	collate.New(language.English, collate.Loose).SortStrings(values)
}
