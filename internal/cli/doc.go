// Package cli implements the drillkit command-line interface: plan
// (compute one job or a batch), watch (recompute on tables-file
// changes) and tables (dump effective constants). The calculation core
// itself lives in internal/engine; this package only parses inputs and
// renders outputs.
package cli
