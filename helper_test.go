package rebalance

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// pos is a helper for tests to build a position with a computed valuation.
func pos(ticker, name string, qty, avg, price float64) Position {
	return NewPosition(ticker, name, Q(qty), USD(avg), USD(price))
}
