// Package metrics provides observability hooks for navigation builds.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	gen := generate.New(cfg, generate.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the supplied registry and
// HTTPHandler exposes that registry for scraping (watch mode).
package metrics
