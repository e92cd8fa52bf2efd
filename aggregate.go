package rebalance

// Totals holds portfolio-level aggregates over a list of positions.
type Totals struct {
	TotalValue   Money
	TotalGain    Money
	TotalGainPct Percent
}

// AggregateTotals sums positions into portfolio-level totals.
//
// The gain percentage relates the total gain to the total cost
// (totalValue − totalGain); a zero or negative cost yields zero.
func AggregateTotals(positions []Position) Totals {
	var totalValue, totalGain Money
	for _, p := range positions {
		totalValue = totalValue.Add(p.MarketValue())
		totalGain = totalGain.Add(p.UnrealizedGain())
	}

	var pct Percent
	totalCost := totalValue.Sub(totalGain)
	if totalCost.IsPositive() {
		pct = Percent(100 * totalGain.AsFloat() / totalCost.AsFloat())
	}
	return Totals{TotalValue: totalValue, TotalGain: totalGain, TotalGainPct: pct}
}

// ComputeWeights returns each position's market value as a percentage of the
// total portfolio value, keyed by canonical identifier.
//
// When the total value is zero the map is empty: no zeros, no NaN, so that
// downstream comparisons never see a division-by-zero artifact. Positions
// resolving to the same identifier (only possible on hand-built slices, the
// book rejects them at entry) are summed deterministically.
func ComputeWeights(positions []Position) map[string]Percent {
	var totalValue Money
	values := make(map[string]Money, len(positions))
	for _, p := range positions {
		id := Identify(p)
		values[id] = values[id].Add(p.MarketValue())
		totalValue = totalValue.Add(p.MarketValue())
	}

	if totalValue.IsZero() {
		return map[string]Percent{}
	}

	weights := make(map[string]Percent, len(values))
	total := totalValue.AsFloat()
	for id, value := range values {
		weights[id] = Percent(100 * value.AsFloat() / total)
	}
	return weights
}
