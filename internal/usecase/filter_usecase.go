package usecase

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/geo"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase/dto"
)

// Search phrases that should surface labs. Matching is reverse containment:
// the search term must be a substring of the phrase, so "la" finds labs.
var labSynonymPhrases = []string{
	"lab",
	"laboratory",
	"research facility",
	"testing facility",
	"research laboratory",
}

// FilterUseCase runs one filter pass over the store's collections. It is
// stateless; every call recomputes from scratch.
type FilterUseCase struct {
	store  *StoreUseCase
	logger *zap.Logger

	printer *message.Printer
}

// NewFilterUseCase creates a new FilterUseCase instance.
func NewFilterUseCase(store *StoreUseCase, logger *zap.Logger) *FilterUseCase {
	return &FilterUseCase{
		store:   store,
		logger:  logger,
		printer: message.NewPrinter(language.English),
	}
}

// FilterData applies the country/state/search dimensions to all three
// collections and partitions facilities into category buckets by re-running
// the classifier on each record. Bucket membership is never read from a
// stored field.
func (uc *FilterUseCase) FilterData(sel domain.FilterSelection) domain.FilteredData {
	var data domain.FilteredData
	term := normalizeSearchTerm(sel.SearchTerm)

	for _, r := range uc.store.Facilities() {
		if !facilityCountryMatch(&r, sel.Country) {
			continue
		}
		if !facilityStateMatch(&r, sel) {
			continue
		}
		c := domain.ClassifyFacility(r.Type, r.EstablishmentName)
		if term != "" && !facilitySearchMatch(&r, c, term) {
			continue
		}
		switch c.Category {
		case domain.CategorySlaughter:
			data.Slaughterhouses = append(data.Slaughterhouses, r)
		case domain.CategoryBreeder:
			data.BreedingFacilities = append(data.BreedingFacilities, r)
		case domain.CategoryExhibitor:
			data.ExhibitionFacilities = append(data.ExhibitionFacilities, r)
		default:
			data.ProcessingPlants = append(data.ProcessingPlants, r)
		}
	}

	for _, l := range uc.store.Labs() {
		if !recordCountryMatch(l.StateCode(), "", sel.Country) {
			continue
		}
		if !sel.AllStates() && !stateFilterIsNoop(sel.Country) && l.StateCode() != sel.State {
			continue
		}
		if term != "" && !labSearchMatch(&l, term) {
			continue
		}
		data.Labs = append(data.Labs, l)
	}

	for _, r := range uc.store.Inspections() {
		if !recordCountryMatch(r.State, "", sel.Country) {
			continue
		}
		if !sel.AllStates() && !stateFilterIsNoop(sel.Country) && r.State != sel.State {
			continue
		}
		if term != "" && !inspectionSearchMatch(&r, term) {
			continue
		}
		// License gating happens here, not at render time: dealers exist
		// only as a subset of inspection reports.
		if !licenseVisible(r.LicenseType, sel) {
			continue
		}
		data.Inspections = append(data.Inspections, r)
	}

	return data
}

func licenseVisible(t domain.LicenseType, sel domain.FilterSelection) bool {
	switch t {
	case domain.LicenseDealer:
		return sel.ShowDealers
	case domain.LicenseExhibitor:
		return sel.ShowExhibitors
	default:
		return sel.ShowBreeders
	}
}

// facilityCountryMatch tests a facility against the selected country. A
// record tagged with an explicit country matches through that tag; an
// untagged record matches through its state code, with UK resolved by
// exclusion over the state tables.
func facilityCountryMatch(r *domain.FacilityRecord, selected string) bool {
	return recordCountryMatch(r.State, r.Country, selected)
}

func recordCountryMatch(state, recordCountry, selected string) bool {
	if selected == domain.CountryAll {
		return true
	}
	if recordCountry != "" {
		// An explicit tag is authoritative. NZ in particular is resolved
		// only through it; NZ region names must never fall into the UK
		// exclusion bucket.
		return geo.CountryForCode(recordCountry) == selected
	}
	return geo.CountryForState(state) == selected
}

// facilityStateMatch applies the per-country state semantics: Denmark
// filters by city, France has no department data and the filter is a no-op,
// everything else compares the state field.
func facilityStateMatch(r *domain.FacilityRecord, sel domain.FilterSelection) bool {
	if sel.AllStates() {
		return true
	}
	if stateFilterIsNoop(sel.Country) {
		return true
	}
	if sel.Country == geo.CountryDK {
		return r.City == sel.State
	}
	return r.State == sel.State
}

// stateFilterIsNoop reports whether the state dimension is deliberately
// inert for the selected country. The source data genuinely lacks the
// subdivision; this degradation is intended, not a bug to fix.
func stateFilterIsNoop(country string) bool {
	return country == geo.CountryFR
}

func normalizeSearchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// animalSearchTerm expands the cow/cows synonym. Applied to the search term
// only, and only for the animal free-text match; names containing "cow"
// must not start matching cattle records.
func animalSearchTerm(term string) string {
	if term == "cow" || term == "cows" {
		return "cattle"
	}
	return term
}

func facilitySearchMatch(r *domain.FacilityRecord, c domain.Classification, term string) bool {
	if strings.Contains(strings.ToLower(r.EstablishmentName), term) {
		return true
	}
	if r.DBAs != "" && strings.Contains(strings.ToLower(r.DBAs), term) {
		return true
	}
	animalTerm := animalSearchTerm(term)
	if strings.Contains(strings.ToLower(r.AnimalsSlaughtered), animalTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(r.AnimalsProcessed), animalTerm) {
		return true
	}
	return strings.Contains(strings.ToLower(c.DisplayLabel), term)
}

// inspectionSearchMatch tests the account name and the license type. The
// license match mirrors the lab synonym logic: a plain substring of the
// full enum text, plus reverse containment of the short category word, so
// "deal" surfaces every Class B record.
func inspectionSearchMatch(r *domain.InspectionRecord, term string) bool {
	if strings.Contains(strings.ToLower(r.AccountName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(string(r.LicenseType)), term) {
		return true
	}
	switch r.LicenseType {
	case domain.LicenseBreeder:
		return strings.Contains("breeder", term)
	case domain.LicenseDealer:
		return strings.Contains("dealer", term)
	case domain.LicenseExhibitor:
		return strings.Contains("exhibitor", term)
	}
	return false
}

func labSearchMatch(l *domain.LabRecord, term string) bool {
	if strings.Contains(strings.ToLower(l.AccountName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(l.AnimalsTestedOn), term) {
		return true
	}
	for _, phrase := range labSynonymPhrases {
		if strings.Contains(phrase, term) {
			return true
		}
	}
	return false
}

// Stats produces the per-category count lines for the status display.
// Hidden categories and empty buckets get no line. Counts are formatted
// with digit grouping.
func (uc *FilterUseCase) Stats(data *domain.FilteredData, sel domain.FilterSelection) dto.StatsResponse {
	type bucket struct {
		label   string
		count   int
		visible bool
	}
	buckets := []bucket{
		{"Slaughterhouses", len(data.Slaughterhouses), sel.ShowSlaughter},
		{"Processing Plants", len(data.ProcessingPlants), sel.ShowProcessing},
		{"Production Facilities", len(data.BreedingFacilities), sel.ShowBreeders},
		{"Exhibition Facilities", len(data.ExhibitionFacilities), sel.ShowExhibitors},
		{"Animal Labs", len(data.Labs), sel.ShowLabs},
		{"Other Locations", len(data.Inspections), true},
	}

	var lines []dto.StatLine
	var parts []string
	total := 0
	for _, b := range buckets {
		if !b.visible || b.count == 0 {
			continue
		}
		formatted := uc.printer.Sprintf("%d", b.count)
		lines = append(lines, dto.StatLine{Label: b.label, Count: b.count, Formatted: formatted})
		parts = append(parts, formatted+" "+b.label)
		total += b.count
	}

	summary := "No facilities match the current filters."
	if total > 0 {
		summary = "Showing: " + strings.Join(parts, ", ")
	}

	return dto.StatsResponse{
		Lines:   lines,
		Summary: summary,
		Total:   total,
	}
}
