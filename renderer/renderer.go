// Package renderer turns engine values into markdown reports for the
// terminal. It owns all display formatting; the engine only computes.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
)

// HoldingsMarkdown renders the holdings table: every position (including the
// synthetic zero-quantity rows for unheld targets) with its valuation, and
// the portfolio totals.
func HoldingsMarkdown(on date.Date, positions []rebalance.Position, totals rebalance.Totals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings on %s\n\n", on)
	fmt.Fprintln(&b, "| Asset | Quantity | Avg Price | Price | Market Value | Gain | Gain % |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, p := range positions {
		v := p.Valuation()
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			label(p),
			p.Quantity(),
			p.AvgPrice(),
			p.Price(),
			v.MarketValue,
			v.UnrealizedGain.SignedString(),
			v.UnrealizedGainPct.SignedString(),
		)
	}
	fmt.Fprintf(&b, "\nTotal value: **%s**, total gain: **%s** (%s)\n",
		totals.TotalValue, totals.TotalGain.SignedString(), totals.TotalGainPct.SignedString())
	return b.String()
}

// AllocationMarkdown renders current weights against targets, one row per
// asset in the merged view.
func AllocationMarkdown(positions []rebalance.Position, targets []rebalance.Target) string {
	weights := rebalance.ComputeWeights(positions)
	targetByID := make(map[string]rebalance.Target, len(targets))
	for _, t := range targets {
		targetByID[rebalance.Identify(t)] = t
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Allocation\n\n")
	fmt.Fprintln(&b, "| Asset | Weight | Target | Deviation | Group |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|:---|")

	var targetSum rebalance.Percent
	seen := make(map[string]bool, len(positions))
	for _, p := range positions {
		id := rebalance.Identify(p)
		if seen[id] {
			continue
		}
		seen[id] = true
		weight := weights[id]

		target, group := "unallocated", ""
		var deviation string
		if t, ok := targetByID[id]; ok {
			target = t.Weight().String()
			group = t.Group()
			deviation = (weight - t.Weight()).SignedString()
			targetSum += t.Weight()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", label(p), weight, target, deviation, group)
	}
	// Targets with no position at all.
	for _, t := range targets {
		id := rebalance.Identify(t)
		if seen[id] {
			continue
		}
		seen[id] = true
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			id, rebalance.Percent(0), t.Weight(), (-t.Weight()).SignedString(), t.Group())
		targetSum += t.Weight()
	}

	if targetSum > 100 {
		fmt.Fprintf(&b, "\nWarning: declared targets sum to %s, above 100%%.\n", targetSum)
	}
	return b.String()
}

// SuggestionsMarkdown renders rebalancing suggestions, largest drift first.
func SuggestionsMarkdown(suggestions []rebalance.Suggestion, threshold rebalance.Percent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalancing suggestions (threshold %s)\n\n", threshold)
	if len(suggestions) == 0 {
		fmt.Fprintln(&b, "Portfolio is on target, nothing to do.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Asset | Action | Quantity | Amount | Weight | Target | Deviation |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s | %s |\n",
			s.Identifier, s.Action, s.Quantity, s.Amount,
			s.CurrentWeight, s.TargetWeight, s.Deviation.SignedString())
	}
	return b.String()
}

// PerformanceMarkdown renders the metrics of one analysis window.
func PerformanceMarkdown(w rebalance.Window, m rebalance.Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Performance (%s)\n\n", w)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total return | %s (%s) |\n", m.TotalReturn.SignedString(), m.TotalReturnPct.SignedString())
	fmt.Fprintf(&b, "| Annualized return | %s |\n", m.AnnualizedReturn.SignedString())
	fmt.Fprintf(&b, "| Volatility | %s |\n", m.Volatility)
	fmt.Fprintf(&b, "| Sharpe ratio | %.2f |\n", m.SharpeRatio)
	fmt.Fprintf(&b, "| Max drawdown | %s |\n", m.MaxDrawdown)
	return b.String()
}

// label renders the asset column: ticker when present, name as detail.
func label(p rebalance.Position) string {
	if p.Ticker() != "" {
		return fmt.Sprintf("%s (%s)", rebalance.Identify(p), p.Name())
	}
	return p.Name()
}
