// Package kpifolio is a reporting and aggregation engine for a portfolio
// of projects. It consumes an immutable snapshot of tabular records
// (managers, projects, spend entries, milestones, forecasts, purchase
// orders, completions and KPI definitions) and derives the figures a BI
// dashboard needs, without ever mutating its input.
//
// The core functionalities include:
//   - Entity Store: an in-memory, append-once snapshot of the eight
//     entity kinds, loaded from a JSONL stream by an external collaborator.
//   - Integrity Checker: referential and value-range rules producing a
//     flat list of violations; nothing short-circuits and nothing panics.
//   - Quality Scanner: ten independent data-quality checks (duplicates,
//     missing values, outliers, deviations) producing findings, where an
//     empty result is the expected steady state.
//   - Aggregation Engine: spend totals, budget variance, purchase-order
//     conversion, forecast variance, periodic burn rate and milestone
//     health, each recomputed fresh from the snapshot on every call.
//   - KPI Views: budget utilization, portfolio on-budget and portfolio
//     on-time rollups with stable field names for downstream consumers.
//
// This package serves as the foundational logic for the `kpr` command-line
// tool; persistence, transport and dashboard rendering are left to the
// surrounding layers.
package kpifolio
