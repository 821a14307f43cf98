package usecase_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

var exportNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestExportFilename(t *testing.T) {
	uc := usecase.NewExportUseCase(zap.NewNop())
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{
			{EstablishmentName: "Plant", Type: "Cattle Slaughterhouse"},
		},
	}

	name, _, err := uc.Export(data, domain.DefaultFilterSelection(), false, exportNow)
	require.NoError(t, err)
	assert.Equal(t, "untileverycage-visible-2025-03-14-filtered.csv", name)

	name, _, err = uc.Export(data, domain.DefaultFilterSelection(), true, exportNow)
	require.NoError(t, err)
	assert.Equal(t, "untileverycage-visible-2025-03-14-complete.csv", name)
}

func TestExportNothingToExport(t *testing.T) {
	uc := usecase.NewExportUseCase(zap.NewNop())

	_, _, err := uc.Export(&domain.FilteredData{}, domain.DefaultFilterSelection(), false, exportNow)
	assert.ErrorIs(t, err, errors.ErrNothingToExport)

	// Records exist but every toggle hiding them means nothing to export.
	sel := domain.DefaultFilterSelection()
	sel.SetActiveLayers(nil)
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{{EstablishmentName: "Plant"}},
	}
	_, _, err = uc.Export(data, sel, false, exportNow)
	assert.ErrorIs(t, err, errors.ErrNothingToExport)
}

func TestExportQuotingRoundTrip(t *testing.T) {
	uc := usecase.NewExportUseCase(zap.NewNop())
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{
			{
				EstablishmentName: `Smith, Jones "and Sons" Farm`,
				Type:              "Cattle Slaughterhouse",
				State:             "TX",
				Latitude:          31.0,
				Longitude:         -100.0,
			},
		},
	}

	_, payload, err := uc.Export(data, domain.DefaultFilterSelection(), false, exportNow)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header, row := rows[0], rows[1]
	nameIdx := -1
	for i, h := range header {
		if h == "Name" {
			nameIdx = i
		}
	}
	require.NotEqual(t, -1, nameIdx)
	assert.Equal(t, `Smith, Jones "and Sons" Farm`, row[nameIdx])
}

func TestExportHeaderIsUnionOfKeys(t *testing.T) {
	uc := usecase.NewExportUseCase(zap.NewNop())
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{
			{EstablishmentName: "Plant", EstablishmentID: "M1", Type: "Cattle Slaughterhouse"},
		},
		Labs: []domain.LabRecord{
			{AccountName: "Lab", CertificateNumber: "23-R-0001", CityStateZip: "Cambridge, MA 02138"},
		},
	}

	_, payload, err := uc.Export(data, domain.DefaultFilterSelection(), false, exportNow)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	assert.Contains(t, header, "EstablishmentID")
	assert.Contains(t, header, "CertificateNumber")
	assert.Contains(t, header, "AnimalsTestedOn")

	// The facility row has no CertificateNumber; the column renders empty.
	certIdx := -1
	for i, h := range header {
		if h == "CertificateNumber" {
			certIdx = i
		}
	}
	assert.Empty(t, rows[1][certIdx])
	assert.Equal(t, "23-R-0001", rows[2][certIdx])
}

func TestExportSuppressesMexicanSlaughterVolume(t *testing.T) {
	uc := usecase.NewExportUseCase(zap.NewNop())
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{
			{EstablishmentName: "Rastro", Country: "mx", Type: "Cattle Slaughterhouse", AnimalsSlaughtered: "Cattle"},
		},
	}

	_, payload, err := uc.Export(data, domain.DefaultFilterSelection(), false, exportNow)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	assert.NotContains(t, rows[0], "AnimalsSlaughtered")
}

func TestExportColumnNamesAndValueRendering(t *testing.T) {
	uc := usecase.NewExportUseCase(zap.NewNop())
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{
			{EstablishmentName: "Plant", EstablishmentID: "M1", Type: "Cattle Slaughterhouse", State: "TX", AnimalsProcessed: "Cattle", AnimalsSlaughtered: "Cattle"},
		},
		Inspections: []domain.InspectionRecord{
			{AccountName: "Brokers", LicenseType: domain.LicenseDealer, State: "AZ"},
			{AccountName: "Unlicensed", LicenseType: "Unknown", State: "AZ"},
		},
	}

	_, payload, err := uc.Export(data, domain.DefaultFilterSelection(), false, exportNow)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	header := rows[0]
	assert.Equal(t, []string{
		"Type", "Name", "State", "City", "ZIP", "Address",
		"Latitude", "Longitude", "EstablishmentID", "Phone",
		"AnimalsProcessed", "AnimalsSlaughtered", "CertificateNumber",
	}, header)

	col := func(row []string, name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("column %s not in header", name)
		return ""
	}

	// Facility state codes render as display names.
	assert.Equal(t, "Texas", col(rows[1], "State"))
	// Inspection Type is the short category word, not the license enum.
	assert.Equal(t, "Dealer", col(rows[2], "Type"))
	assert.Equal(t, "Other", col(rows[3], "Type"))
	// Inspection state stays the raw code.
	assert.Equal(t, "AZ", col(rows[2], "State"))
}

func TestExportRespectsToggles(t *testing.T) {
	uc := usecase.NewExportUseCase(zap.NewNop())
	sel := domain.DefaultFilterSelection()
	sel.ShowLabs = false
	data := &domain.FilteredData{
		Slaughterhouses: []domain.FacilityRecord{
			{EstablishmentName: "Plant", Type: "Cattle Slaughterhouse"},
		},
		Labs: []domain.LabRecord{
			{AccountName: "Hidden Lab"},
		},
		Inspections: []domain.InspectionRecord{
			{AccountName: "Kennel", LicenseType: domain.LicenseBreeder},
		},
	}

	_, payload, err := uc.Export(data, sel, false, exportNow)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "Hidden Lab")
	assert.Contains(t, string(payload), "Kennel")
}
