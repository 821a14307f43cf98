package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/config"
	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
	"github.com/eliperez-dev/UntilEveryCage/internal/domain/repository"
	"github.com/eliperez-dev/UntilEveryCage/internal/metrics"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
)

// Feed paths relative to a base URL.
const (
	pathLocations         = "/api/locations"
	pathAphisReports      = "/api/aphis-reports"
	pathInspectionReports = "/api/inspection-reports"
)

// Client fetches the three upstream feeds. Each fetch tries the primary
// base first with a long timeout, then the fallback base with a short one.
// Payloads are cached by exact URL; a cached payload is served immediately
// and refreshed in the background.
type Client struct {
	cfg       config.FeedsConfig
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	http      *http.Client
	metrics   *metrics.Provider
	logger    *zap.Logger
}

// NewClient creates a new feed Client. cacheRepo may be nil to disable
// caching.
func NewClient(cfg config.FeedsConfig, cacheRepo repository.CacheRepository, cacheTTL time.Duration, provider *metrics.Provider, logger *zap.Logger) *Client {
	return &Client{
		cfg:       cfg,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		http:      &http.Client{},
		metrics:   provider,
		logger:    logger,
	}
}

var _ repository.FeedRepository = (*Client)(nil)

// FetchFacilities returns the facility locations feed.
func (c *Client) FetchFacilities(ctx context.Context) ([]domain.FacilityRecord, error) {
	return fetchFeed[domain.FacilityRecord](ctx, c, pathLocations)
}

// FetchLabs returns the lab registrations feed.
func (c *Client) FetchLabs(ctx context.Context) ([]domain.LabRecord, error) {
	return fetchFeed[domain.LabRecord](ctx, c, pathAphisReports)
}

// FetchInspections returns the inspection reports feed.
func (c *Client) FetchInspections(ctx context.Context) ([]domain.InspectionRecord, error) {
	return fetchFeed[domain.InspectionRecord](ctx, c, pathInspectionReports)
}

func fetchFeed[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	primaryURL := c.cfg.PrimaryBaseURL + path

	if payload, ok := c.cachedPayload(ctx, primaryURL); ok {
		go c.refresh(primaryURL, path)
		var records []T
		if err := json.Unmarshal(payload, &records); err == nil {
			return records, nil
		}
		// Corrupt cache entry; fall through to the network.
		c.logger.Warn("Discarding corrupt cached feed", zap.String("url", primaryURL))
		_ = c.cacheRepo.Delete(ctx, primaryURL)
	}

	payload, err := c.download(ctx, path)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode feed %s: %w", path, err)
	}

	c.storePayload(ctx, primaryURL, payload)
	return records, nil
}

func (c *Client) cachedPayload(ctx context.Context, url string) ([]byte, bool) {
	if c.cacheRepo == nil {
		return nil, false
	}
	payload, err := c.cacheRepo.Get(ctx, url)
	if err != nil {
		if err != repository.ErrCacheMiss {
			c.logger.Warn("Feed cache read failed", zap.String("url", url), zap.Error(err))
		}
		c.metrics.FeedCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	c.metrics.FeedCacheLookups.WithLabelValues("hit").Inc()
	return payload, true
}

func (c *Client) storePayload(ctx context.Context, url string, payload []byte) {
	if c.cacheRepo == nil {
		return
	}
	if err := c.cacheRepo.Set(ctx, url, payload, c.cacheTTL); err != nil {
		c.logger.Warn("Feed cache write failed", zap.String("url", url), zap.Error(err))
	}
}

// refresh re-downloads a feed behind a served cache hit so the next load
// sees fresh data.
func (c *Client) refresh(url, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.PrimaryTimeout)
	defer cancel()

	payload, err := c.download(ctx, path)
	if err != nil {
		c.logger.Warn("Background feed refresh failed", zap.String("url", url), zap.Error(err))
		return
	}
	c.storePayload(ctx, url, payload)
}

// download tries the primary endpoint, then the fallback. Both failing is
// a feed outage.
func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	payload, primaryErr := c.get(ctx, c.cfg.PrimaryBaseURL+path, c.cfg.PrimaryTimeout)
	if primaryErr == nil {
		c.metrics.FeedFetches.WithLabelValues(path, "success").Inc()
		return payload, nil
	}
	c.logger.Warn("Primary feed endpoint failed, trying fallback",
		zap.String("path", path),
		zap.Error(primaryErr),
	)

	payload, fallbackErr := c.get(ctx, c.cfg.FallbackBaseURL+path, c.cfg.FallbackTimeout)
	if fallbackErr == nil {
		c.metrics.FeedFetches.WithLabelValues(path, "fallback").Inc()
		return payload, nil
	}
	c.metrics.FeedFetches.WithLabelValues(path, "failure").Inc()
	c.logger.Error("All feed endpoints failed",
		zap.String("path", path),
		zap.NamedError("primary", primaryErr),
		zap.NamedError("fallback", fallbackErr),
	)
	return nil, errors.ErrFeedUnavailable
}

func (c *Client) get(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return payload, nil
}
