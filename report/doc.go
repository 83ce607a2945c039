// Package report renders the outcome of an analysis run.
//
// A Result gathers the run identity, dataset size, effect correlations and
// the SC/FC variance decompositions. Reporters are sinks for it:
//
//   - Text – fixed-width console tables.
//   - JSON – one JSON object; undefined values encode as null.
//   - Log  – structured slog records.
package report
