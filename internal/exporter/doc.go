// Package exporter writes the pipeline's aggregate views as CSV summary
// files in the results directory. Output is deterministic: row order is
// fixed by sorted keys and floats are formatted with a fixed precision, so
// re-running on unchanged input produces byte-identical files.
package exporter
