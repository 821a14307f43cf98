// Package metrics exposes Prometheus metrics for the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Provider struct {
	reg *prometheus.Registry

	FilterPasses     prometheus.Counter
	FilterDuration   prometheus.Histogram
	VisibleMarkers   prometheus.Gauge
	FeedFetches      *prometheus.CounterVec
	FeedCacheLookups *prometheus.CounterVec
	ExportsTotal     *prometheus.CounterVec
	ShareLinksTotal  prometheus.Counter
}

// Init builds a Provider with its own registry so tests never collide on
// the global default registry.
func Init() *Provider {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	p := &Provider{
		reg: reg,
		FilterPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "uec_filter_passes_total",
			Help: "Number of full filter passes executed.",
		}),
		FilterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "uec_filter_duration_seconds",
			Help:    "Wall time of one full filter pass.",
			Buckets: prometheus.DefBuckets,
		}),
		VisibleMarkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uec_visible_markers",
			Help: "Visible marker count after the most recent filter pass.",
		}),
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uec_feed_fetches_total",
			Help: "Feed downloads by feed path and outcome (success, fallback, failure).",
		}, []string{"feed", "outcome"}),
		FeedCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uec_feed_cache_lookups_total",
			Help: "Feed cache lookups by result.",
		}, []string{"result"}),
		ExportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uec_exports_total",
			Help: "CSV exports by scope.",
		}, []string{"scope"}),
		ShareLinksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "uec_share_links_total",
			Help: "Share links minted.",
		}),
	}

	reg.MustRegister(
		p.FilterPasses,
		p.FilterDuration,
		p.VisibleMarkers,
		p.FeedFetches,
		p.FeedCacheLookups,
		p.ExportsTotal,
		p.ShareLinksTotal,
	)
	return p
}

// ObserveFilterPass records one completed filter pass.
func (p *Provider) ObserveFilterPass(d time.Duration, visible int) {
	p.FilterPasses.Inc()
	p.FilterDuration.Observe(d.Seconds())
	p.VisibleMarkers.Set(float64(visible))
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

func (p *Provider) Registerer() prometheus.Registerer { return p.reg }
