package repository

import (
	"context"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
)

// FeedRepository fetches the three upstream datasets. Implementations are
// cache-first: a cached payload is served immediately and refreshed in the
// background.
type FeedRepository interface {
	// FetchFacilities returns the facility locations feed.
	FetchFacilities(ctx context.Context) ([]domain.FacilityRecord, error)

	// FetchLabs returns the lab registrations feed.
	FetchLabs(ctx context.Context) ([]domain.LabRecord, error)

	// FetchInspections returns the inspection reports feed.
	FetchInspections(ctx context.Context) ([]domain.InspectionRecord, error)
}
