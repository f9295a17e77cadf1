// Package tosstrades turns plain-text Toss Securities transaction statements
// into structured records and compact, AI-friendly summaries.
//
// The package is a synchronous, side-effect free pipeline of three stages:
//   - Segmentation: raw multi-line text is merged into one flattened string
//     per statement entry, dropping pagination, headers, footers and other
//     noise (see Segment).
//   - Extraction: each flattened entry is mapped to a Record, dispatching
//     between the domestic single-currency layout and the cross-border
//     dual-currency layout (see Extract).
//   - Aggregation: records are classified into trades and other cash events
//     and folded into a Summary, per day or per month, grouped by symbol or
//     by date (see Compact).
//
// Malformed or incomplete statement rows never abort the pipeline: missing
// fields degrade to nil and under-specified trades are silently left out of
// the aggregation. Format-specific tunables (the cross-border token
// threshold, the price/amount swap heuristic) live in Policy so they can be
// adjusted without touching the extraction logic.
//
// This package serves as the foundational logic for the `tts` command-line
// tool.
package tosstrades
