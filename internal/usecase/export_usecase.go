package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/geo"
)

// ExportUseCase turns the visible records into a denormalized CSV. Columns
// are the union of keys across row shapes, in first-appearance order;
// absent values render empty.
type ExportUseCase struct {
	logger *zap.Logger
}

// NewExportUseCase creates a new ExportUseCase instance.
func NewExportUseCase(logger *zap.Logger) *ExportUseCase {
	return &ExportUseCase{logger: logger}
}

// exportRow keeps insertion order so the header preserves the row shape's
// natural column order.
type exportRow struct {
	keys   []string
	values map[string]string
}

func newExportRow() *exportRow {
	return &exportRow{values: make(map[string]string)}
}

func (r *exportRow) set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Export renders the CSV and its filename. Only visible buckets contribute
// rows; ErrNothingToExport when nothing is visible.
func (uc *ExportUseCase) Export(data *domain.FilteredData, sel domain.FilterSelection, complete bool, now time.Time) (string, []byte, error) {
	rows := uc.buildRows(data, sel)
	if len(rows) == 0 {
		return "", nil, errors.ErrNothingToExport
	}

	// Union of keys across all rows, first appearance wins the position.
	var header []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, k := range row.keys {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", nil, fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, k := range header {
			record[i] = row.values[k]
		}
		if err := w.Write(record); err != nil {
			return "", nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("flush csv: %w", err)
	}

	scope := "filtered"
	if complete {
		scope = "complete"
	}
	filename := fmt.Sprintf("untileverycage-visible-%s-%s.csv", now.Format("2006-01-02"), scope)

	uc.logger.Debug("Export built",
		zap.Int("rows", len(rows)),
		zap.String("filename", filename),
	)
	return filename, buf.Bytes(), nil
}

func (uc *ExportUseCase) buildRows(data *domain.FilteredData, sel domain.FilterSelection) []*exportRow {
	var rows []*exportRow

	addFacilities := func(records []domain.FacilityRecord, visible bool) {
		if !visible {
			return
		}
		for i := range records {
			rows = append(rows, facilityRow(&records[i]))
		}
	}
	addFacilities(data.Slaughterhouses, sel.ShowSlaughter)
	addFacilities(data.ProcessingPlants, sel.ShowProcessing)
	addFacilities(data.BreedingFacilities, sel.ShowBreeders)
	addFacilities(data.ExhibitionFacilities, sel.ShowExhibitors)

	if sel.ShowLabs {
		for i := range data.Labs {
			rows = append(rows, labRow(&data.Labs[i]))
		}
	}
	for i := range data.Inspections {
		rows = append(rows, inspectionRow(&data.Inspections[i]))
	}
	return rows
}

func facilityRow(r *domain.FacilityRecord) *exportRow {
	c := domain.ClassifyFacility(r.Type, r.EstablishmentName)
	row := newExportRow()
	row.set("Type", c.DisplayLabel)
	row.set("Name", r.EstablishmentName)
	row.set("State", geo.StateDisplayName(r.State))
	row.set("City", r.City)
	row.set("ZIP", r.Zip)
	row.set("Address", r.Street)
	row.set("Latitude", formatCoord(r.Latitude))
	row.set("Longitude", formatCoord(r.Longitude))
	row.set("EstablishmentID", r.EstablishmentID)
	row.set("Phone", r.Phone)
	row.set("AnimalsProcessed", r.AnimalsProcessed)
	// Mexican records carry no meaningful slaughter-volume data; the field
	// is suppressed rather than exported empty-but-present.
	if r.Country != "mx" {
		row.set("AnimalsSlaughtered", r.AnimalsSlaughtered)
	}
	return row
}

func labRow(l *domain.LabRecord) *exportRow {
	row := newExportRow()
	row.set("Type", "Lab")
	row.set("Name", l.AccountName)
	row.set("State", l.StateCode())
	row.set("City", l.CityName())
	row.set("ZIP", l.ZipCode())
	row.set("Address", l.AddressLine1)
	row.set("Latitude", formatCoord(l.Latitude))
	row.set("Longitude", formatCoord(l.Longitude))
	row.set("CertificateNumber", l.CertificateNumber)
	row.set("AnimalsTestedOn", l.AnimalsTestedOn)
	return row
}

// licenseExportLabel collapses the license enum into the short category
// word the Type column carries.
func licenseExportLabel(t domain.LicenseType) string {
	switch t {
	case domain.LicenseBreeder:
		return "Breeder"
	case domain.LicenseDealer:
		return "Dealer"
	case domain.LicenseExhibitor:
		return "Exhibitor"
	default:
		return "Other"
	}
}

func inspectionRow(r *domain.InspectionRecord) *exportRow {
	row := newExportRow()
	row.set("Type", licenseExportLabel(r.LicenseType))
	row.set("Name", r.AccountName)
	row.set("State", r.State)
	row.set("City", r.CityName())
	row.set("ZIP", r.ZipCode())
	row.set("Address", r.AddressLine1)
	row.set("Latitude", formatCoord(r.Latitude))
	row.set("Longitude", formatCoord(r.Longitude))
	row.set("CertificateNumber", r.CertificateNumber)
	return row
}

func formatCoord(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
