package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry        *prom.Registry
	loadDuration    prom.Histogram
	loadOutcomes    *prom.CounterVec
	pluginsResolved *prom.GaugeVec
	docsVersions    *prom.GaugeVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "config_load_duration_seconds",
			Help:      "Duration of site definition loads",
			Buckets:   prom.DefBuckets,
		}),
		loadOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_loads_total",
			Help:      "Site definition loads by outcome and error category",
		}, []string{"outcome", "category"}),
		pluginsResolved: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "plugins_resolved",
			Help:      "Instances resolved by the last successful load, per kind",
		}, []string{"kind"}),
		docsVersions: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "docs_versions",
			Help:      "Published versions per docs instance",
		}, []string{"instance"}),
	}
	reg.MustRegister(pr.loadDuration, pr.loadOutcomes, pr.pluginsResolved, pr.docsVersions)
	return pr
}

// Registry returns the registry the collectors are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	if p == nil || p.loadDuration == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLoadOutcome(outcome OutcomeLabel, category string) {
	if p == nil || p.loadOutcomes == nil {
		return
	}
	p.loadOutcomes.WithLabelValues(string(outcome), category).Inc()
}

func (p *PrometheusRecorder) SetPluginsResolved(kind string, n int) {
	if p == nil || p.pluginsResolved == nil {
		return
	}
	p.pluginsResolved.WithLabelValues(kind).Set(float64(n))
}

func (p *PrometheusRecorder) SetDocsVersions(instance string, n int) {
	if p == nil || p.docsVersions == nil {
		return
	}
	p.docsVersions.WithLabelValues(instance).Set(float64(n))
}

// HTTPHandler serves the recorder's registry in the Prometheus exposition format.
func (p *PrometheusRecorder) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// WriteTextfile writes the gathered metrics to path in the node-exporter textfile format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return ferrors.FileSystemError("failed to write metrics textfile").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}
	return nil
}
