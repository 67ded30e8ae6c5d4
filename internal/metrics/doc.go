// Package metrics records the outcome of site definition loads.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	site.Load(path, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the given registry. The
// gathered values can be scraped over HTTP (HTTPHandler) or written once to a
// node-exporter textfile (WriteTextfile), which suits one-shot CLI runs.
package metrics
