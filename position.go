package rebalance

// Position represents a currently-owned quantity of a single asset, with its
// cost basis and latest known price.
//
// The valuation fields (market value, unrealized gain, gain percent) are
// derived: they are recomputed from quantity, average price, and current
// price on every mutation and on decode, and are never trusted as input.
type Position struct {
	ticker string
	name   string

	quantity Quantity
	avgPrice Money
	price    Money

	valuation Valuation
}

// NewPosition creates a position and computes its valuation.
func NewPosition(ticker, name string, quantity Quantity, avgPrice, price Money) Position {
	p := Position{
		ticker:   ticker,
		name:     name,
		quantity: quantity,
		avgPrice: avgPrice,
		price:    price,
	}
	p.valuation = Valuate(quantity, avgPrice, price)
	return p
}

func (p Position) Ticker() string       { return p.ticker }
func (p Position) Name() string         { return p.name }
func (p Position) Quantity() Quantity   { return p.quantity }
func (p Position) AvgPrice() Money      { return p.avgPrice }
func (p Position) Price() Money         { return p.price }
func (p Position) Valuation() Valuation { return p.valuation }

// MarketValue is a shortcut for the derived market value.
func (p Position) MarketValue() Money { return p.valuation.MarketValue }

// UnrealizedGain is a shortcut for the derived unrealized gain.
func (p Position) UnrealizedGain() Money { return p.valuation.UnrealizedGain }

// WithPrice returns a copy of the position at a new current price, with the
// valuation recomputed.
func (p Position) WithPrice(price Money) Position {
	return NewPosition(p.ticker, p.name, p.quantity, p.avgPrice, price)
}

// Valuation holds the derived monetary state of one position.
type Valuation struct {
	MarketValue       Money
	UnrealizedGain    Money
	UnrealizedGainPct Percent
}

// Valuate computes the valuation of a position from its three ground-truth
// numbers:
//
//	marketValue = quantity * currentPrice
//	unrealizedGain = marketValue - quantity * avgPrice
//	unrealizedGainPct = unrealizedGain / (quantity * avgPrice) * 100
//
// A zero cost basis yields a zero gain percent. Inputs are not validated
// here: negative numbers flow through arithmetically, rejecting them is the
// entry form's concern.
func Valuate(quantity Quantity, avgPrice, price Money) Valuation {
	marketValue := price.Mul(quantity)
	totalCost := avgPrice.Mul(quantity)
	gain := marketValue.Sub(totalCost)

	var pct Percent
	if totalCost.IsPositive() {
		pct = Percent(100 * gain.AsFloat() / totalCost.AsFloat())
	}
	return Valuation{
		MarketValue:       marketValue,
		UnrealizedGain:    gain,
		UnrealizedGainPct: pct,
	}
}
