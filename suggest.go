package rebalance

import (
	"fmt"
	"sort"
)

// Action is the direction of a rebalancing trade.
type Action string

const (
	Buy  Action = "buy"
	Sell Action = "sell"
)

// DefaultThreshold is the drift threshold, in percentage points, below which
// a target is considered on track and no suggestion is emitted.
const DefaultThreshold = Percent(5)

// Suggestion is a concrete trade proposal bringing one asset back toward its
// target weight. Suggestions are ephemeral: recomputed on every call, never
// persisted.
type Suggestion struct {
	Identifier    string
	Action        Action
	Quantity      int64 // whole units, floor of amount / price
	Amount        Money
	CurrentWeight Percent
	TargetWeight  Percent
	Deviation     Percent // signed, current − target
	Reason        string
}

// SuggestOptions tunes the rebalancing heuristic.
type SuggestOptions struct {
	// Threshold is the minimum absolute deviation, in percentage points,
	// for a target to produce a suggestion. Zero means DefaultThreshold.
	Threshold Percent
	// MinAmount, when positive, drops suggestions whose trade amount is
	// below it. This is a separately-flagged refinement of the flat
	// threshold policy: small portfolios may see fewer suggestions with it
	// enabled. It is off (zero) by default.
	MinAmount Money
}

func (o SuggestOptions) threshold() Percent {
	if o.Threshold == 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

// Suggest compares the current weights of positions against the target
// allocations and returns trade suggestions for every target that drifted by
// at least the threshold, largest drift first (ties keep target order).
//
// An empty portfolio (zero total value) yields no suggestions: there is no
// value to cost a trade against. A target with no matching position yields a
// suggestion with quantity 0, since no price is available to convert the
// amount into units; the same guard applies to a non-positive price.
func Suggest(positions []Position, targets []Target, opts SuggestOptions) []Suggestion {
	totals := AggregateTotals(positions)
	if totals.TotalValue.IsZero() {
		return nil
	}
	currentWeights := ComputeWeights(positions)

	byID := make(map[string]Position, len(positions))
	for _, p := range positions {
		byID[Identify(p)] = p
	}

	threshold := opts.threshold()
	suggestions := make([]Suggestion, 0, len(targets))
	for _, target := range targets {
		id := Identify(target)
		currentWeight := currentWeights[id] // zero when unheld
		deviation := currentWeight - target.Weight()
		if deviation.Abs() < threshold {
			continue
		}

		targetValue := M(float64(target.Weight())/100*totals.TotalValue.AsFloat(), totals.TotalValue.Currency())
		var currentValue Money
		position, held := byID[id]
		if held {
			currentValue = position.MarketValue()
		}
		difference := targetValue.Sub(currentValue)

		action := Sell
		if difference.IsPositive() {
			action = Buy
		}
		amount := difference.Abs()
		if opts.MinAmount.IsPositive() && amount.LessThan(opts.MinAmount) {
			continue
		}

		var quantity int64
		if held && position.Price().IsPositive() {
			quantity = amount.DivPrice(position.Price()).Floor()
		}

		suggestions = append(suggestions, Suggestion{
			Identifier:    id,
			Action:        action,
			Quantity:      quantity,
			Amount:        amount,
			CurrentWeight: currentWeight,
			TargetWeight:  target.Weight(),
			Deviation:     deviation,
			Reason: fmt.Sprintf("current weight %.1f%% differs from target %.1f%% by %.1f%%",
				float64(currentWeight), float64(target.Weight()), float64(deviation.Abs())),
		})
	}

	// Largest drift first. SliceStable preserves target declaration order
	// between equal deviations.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Deviation.Abs() > suggestions[j].Deviation.Abs()
	})
	return suggestions
}
