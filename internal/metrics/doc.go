// Package metrics records resolution statistics in a private Prometheus
// registry and exports them in the node_exporter textfile format.
package metrics
