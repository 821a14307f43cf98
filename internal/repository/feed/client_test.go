package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/config"
	"github.com/eliperez-dev/UntilEveryCage/internal/metrics"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
	"github.com/eliperez-dev/UntilEveryCage/internal/repository/cache"
)

const facilitiesJSON = `[
	{"establishment_id": "M123", "establishment_name": "ACME Meats", "latitude": 40.1, "longitude": -75.2, "state": "PA", "type": "Cattle Slaughterhouse"}
]`

func testConfig(primary, fallback string) config.FeedsConfig {
	return config.FeedsConfig{
		PrimaryBaseURL:  primary,
		FallbackBaseURL: fallback,
		PrimaryTimeout:  2 * time.Second,
		FallbackTimeout: 2 * time.Second,
	}
}

func TestFetchFacilities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/locations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(facilitiesJSON))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), nil, 0, metrics.Init(), zap.NewNop())

	records, err := client.FetchFacilities(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "M123", records[0].EstablishmentID)
	assert.Equal(t, "ACME Meats", records[0].EstablishmentName)
	assert.Equal(t, 40.1, records[0].Latitude)
}

func TestFetchFallsBackWhenPrimaryFails(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	var fallbackHits atomic.Int32
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackHits.Add(1)
		_, _ = w.Write([]byte(facilitiesJSON))
	}))
	defer fallback.Close()

	provider := metrics.Init()
	client := NewClient(testConfig(primary.URL, fallback.URL), nil, 0, provider, zap.NewNop())

	records, err := client.FetchFacilities(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int32(1), fallbackHits.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(provider.FeedFetches.WithLabelValues("/api/locations", "fallback")))
	assert.Equal(t, 0.0, testutil.ToFloat64(provider.FeedFetches.WithLabelValues("/api/locations", "success")))
}

func TestFetchBothEndpointsDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	provider := metrics.Init()
	client := NewClient(testConfig(srv.URL, srv.URL), nil, 0, provider, zap.NewNop())

	_, err := client.FetchFacilities(context.Background())
	assert.ErrorIs(t, err, errors.ErrFeedUnavailable)
	assert.Equal(t, 1.0, testutil.ToFloat64(provider.FeedFetches.WithLabelValues("/api/locations", "failure")))
}

func TestFetchServesFromCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(facilitiesJSON))
	}))
	defer srv.Close()

	cacheRepo, err := cache.NewMemoryRepository(8, zap.NewNop())
	require.NoError(t, err)

	provider := metrics.Init()
	client := NewClient(testConfig(srv.URL, srv.URL), cacheRepo, time.Minute, provider, zap.NewNop())
	ctx := context.Background()

	_, err = client.FetchFacilities(ctx)
	require.NoError(t, err)
	firstHits := hits.Load()
	assert.Equal(t, int32(1), firstHits)

	// Second fetch is served from cache; the only network traffic is the
	// background refresh.
	records, err := client.FetchFacilities(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// One cold lookup, one hit. The background refresh never reads the
	// cache, so these counts are stable.
	assert.Equal(t, 1.0, testutil.ToFloat64(provider.FeedCacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(provider.FeedCacheLookups.WithLabelValues("hit")))
}

func TestFetchLabsAndInspectionsPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/aphis-reports":
			_, _ = w.Write([]byte(`[{"Account Name": "Test Lab", "Certificate Number": "23-R-0001", "City-State-Zip": "Cambridge, MA 02138", "latitude": 42.37, "longitude": -71.11}]`))
		case "/api/inspection-reports":
			_, _ = w.Write([]byte(`[{"Account Name": "Kennel Co", "Certificate Number": "32-A-0002", "License Type": "Class A - Breeder", "State": "AZ", "Geocodio Latitude": 33.44, "Geocodio Longitude": -112.07}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), nil, 0, metrics.Init(), zap.NewNop())
	ctx := context.Background()

	labs, err := client.FetchLabs(ctx)
	require.NoError(t, err)
	require.Len(t, labs, 1)
	assert.Equal(t, "Test Lab", labs[0].AccountName)
	assert.Equal(t, "MA", labs[0].StateCode())

	inspections, err := client.FetchInspections(ctx)
	require.NoError(t, err)
	require.Len(t, inspections, 1)
	assert.Equal(t, "Kennel Co", inspections[0].AccountName)
	assert.Equal(t, 33.44, inspections[0].Latitude)
}
