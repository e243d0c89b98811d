// Package metrics provides observability hooks for barrel generation runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so recording sites never need nil checks:
//
//	session := generation.New(cfg, logger, generation.WithRecorder(metrics.NoopRecorder{}))
//
// PrometheusRecorder registers the real collectors on a registry. A CLI run is
// short-lived, so the registry is written once as a node_exporter textfile with
// WriteTextfile instead of being scraped.
package metrics
