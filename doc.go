// Package rebalance provides the calculation engine for a manually-entered
// investment portfolio: positions are keyed by ticker or display name,
// joined against user-declared target allocations, and compared to produce
// concrete buy/sell rebalancing suggestions and historical performance
// metrics.
//
// The core functionalities include:
//   - Identity Resolution: a single canonical key (uppercased ticker, or
//     trimmed display name) joins the independently-entered position and
//     target sets.
//   - Valuation: per-position market value and unrealized gains, always
//     recomputed from quantity, average price, and current price.
//   - Aggregation: portfolio totals and per-asset weight percentages.
//   - Rebalancing: a flat drift-threshold heuristic that ranks buy/sell
//     suggestions by absolute deviation from target.
//   - Performance Analysis: return, annualized return, volatility, Sharpe
//     ratio, and maximum drawdown over a time series of snapshots.
//   - Data Persistence: encoding and decoding of the book and its snapshot
//     history to a human-readable, version-controllable JSONL format, plus
//     a JSON backup and a flattened CSV export.
//
// Every calculation is a deterministic mapping from inputs to outputs: the
// engine performs no I/O, holds no state between calls, and resolves all
// degenerate arithmetic (zero totals, zero cost basis, empty series) to
// well-defined zero values instead of errors. This package serves as the
// foundational logic for the `ral` command-line tool.
package rebalance
