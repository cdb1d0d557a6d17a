// Package telemetry records per-tick scalar series from a running clock
// and stores finished runs as a metadata.json plus series.csv directory.
package telemetry
