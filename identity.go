package rebalance

import "strings"

// Asset is anything that carries an optional ticker symbol and a mandatory
// display name. Positions and targets are both assets; the canonical
// identifier returned by Identify is the only legitimate way to match one
// against the other.
type Asset interface {
	// Ticker returns the asset's ticker symbol, possibly empty.
	Ticker() string
	// Name returns the asset's display name.
	Name() string
}

// Identify resolves the canonical identifier of an asset: the uppercased
// ticker when one is present, otherwise the trimmed display name.
//
// The identifier is the join key between the position set and the target
// set. Renaming a ticker or a name changes identity and therefore breaks
// the join; that is accepted behavior, not silently repaired.
func Identify(a Asset) string {
	if t := strings.TrimSpace(a.Ticker()); t != "" {
		return strings.ToUpper(t)
	}
	return strings.TrimSpace(a.Name())
}
