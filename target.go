package rebalance

// Target represents a user-declared desired weight for an asset, declared
// independently of whether the asset is currently held.
type Target struct {
	ticker string
	name   string
	weight Percent // desired share of the total portfolio value, in (0, 100]
	group  string  // free-text grouping tag
}

// NewTarget creates a target allocation.
func NewTarget(ticker, name string, weight Percent, group string) Target {
	return Target{ticker: ticker, name: name, weight: weight, group: group}
}

func (t Target) Ticker() string  { return t.ticker }
func (t Target) Name() string    { return t.name }
func (t Target) Weight() Percent { return t.weight }
func (t Target) Group() string   { return t.group }
