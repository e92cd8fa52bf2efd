package rebalance

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/rebalance/date"
)

// DefaultCurrency is the reporting currency of a new book.
const DefaultCurrency = "USD"

// ErrDuplicateIdentity is returned when a mutation would leave two positions
// (or two targets) resolving to the same canonical identifier. The mutation
// is rejected and the book is left unchanged.
var ErrDuplicateIdentity = errors.New("duplicate identity")

// ErrNotFound is returned when a mutation names an identifier the book does
// not hold.
var ErrNotFound = errors.New("not found")

// Settings holds the book-level preferences.
type Settings struct {
	Currency    string    `json:"currency"`
	LastUpdated date.Date `json:"lastUpdated,omitzero"`
}

// Book is the caller-owned state the engine computes over: the manually
// entered positions, the declared target allocations, the snapshot history,
// and the settings.
//
// The book validates identity on every mutation so the pure calculation
// functions can assume canonical identifiers are unique. All accessors
// return copies; the engine never retains references to book internals.
type Book struct {
	positions []Position
	targets   []Target
	series    Series
	settings  Settings
}

// NewBook creates an empty book with default settings.
func NewBook() *Book {
	return &Book{settings: Settings{Currency: DefaultCurrency}}
}

// Settings returns the book settings.
func (b *Book) Settings() Settings { return b.settings }

// SetCurrency changes the reporting currency code.
func (b *Book) SetCurrency(currency string) {
	b.settings.Currency = currency
	b.touch()
}

// Positions returns a copy of the position list, in insertion order.
func (b *Book) Positions() []Position { return slices.Clone(b.positions) }

// Targets returns a copy of the target list, in insertion order.
func (b *Book) Targets() []Target { return slices.Clone(b.targets) }

// Series returns the snapshot history.
func (b *Book) Series() *Series { return &b.series }

func (b *Book) touch() { b.settings.LastUpdated = date.Today() }

// positionIndex returns the index of the position with the given
// identifier, or -1. The match folds case so CLI input like "aapl" finds
// the canonical "AAPL".
func (b *Book) positionIndex(id string) int {
	id = strings.TrimSpace(id)
	return slices.IndexFunc(b.positions, func(p Position) bool { return strings.EqualFold(Identify(p), id) })
}

func (b *Book) targetIndex(id string) int {
	id = strings.TrimSpace(id)
	return slices.IndexFunc(b.targets, func(t Target) bool { return strings.EqualFold(Identify(t), id) })
}

// Position returns the position with the given identifier.
func (b *Book) Position(id string) (Position, error) {
	i := b.positionIndex(id)
	if i < 0 {
		return Position{}, fmt.Errorf("position %q: %w", id, ErrNotFound)
	}
	return b.positions[i], nil
}

// Target returns the target with the given identifier.
func (b *Book) Target(id string) (Target, error) {
	i := b.targetIndex(id)
	if i < 0 {
		return Target{}, fmt.Errorf("target %q: %w", id, ErrNotFound)
	}
	return b.targets[i], nil
}

// AddPosition appends a position to the book.
func (b *Book) AddPosition(p Position) error {
	id := Identify(p)
	if b.positionIndex(id) >= 0 {
		return fmt.Errorf("position %q: %w", id, ErrDuplicateIdentity)
	}
	b.positions = append(b.positions, p)
	b.touch()
	return nil
}

// UpdatePosition replaces the position identified by id. Renaming onto an
// identifier already held by another position is rejected.
func (b *Book) UpdatePosition(id string, p Position) error {
	i := b.positionIndex(id)
	if i < 0 {
		return fmt.Errorf("position %q: %w", id, ErrNotFound)
	}
	if nid := Identify(p); b.positionIndex(nid) != i && b.positionIndex(nid) >= 0 {
		return fmt.Errorf("position %q: %w", nid, ErrDuplicateIdentity)
	}
	b.positions[i] = p
	b.touch()
	return nil
}

// DeletePosition removes the position identified by id.
func (b *Book) DeletePosition(id string) error {
	i := b.positionIndex(id)
	if i < 0 {
		return fmt.Errorf("position %q: %w", id, ErrNotFound)
	}
	b.positions = slices.Delete(b.positions, i, i+1)
	b.touch()
	return nil
}

// SetPrice updates the current price of the position identified by id and
// recomputes its valuation.
func (b *Book) SetPrice(id string, price Money) error {
	i := b.positionIndex(id)
	if i < 0 {
		return fmt.Errorf("position %q: %w", id, ErrNotFound)
	}
	b.positions[i] = b.positions[i].WithPrice(price)
	b.touch()
	return nil
}

// AddTarget appends a target allocation to the book.
func (b *Book) AddTarget(t Target) error {
	id := Identify(t)
	if b.targetIndex(id) >= 0 {
		return fmt.Errorf("target %q: %w", id, ErrDuplicateIdentity)
	}
	b.targets = append(b.targets, t)
	b.touch()
	return nil
}

// UpdateTarget replaces the target identified by id.
func (b *Book) UpdateTarget(id string, t Target) error {
	i := b.targetIndex(id)
	if i < 0 {
		return fmt.Errorf("target %q: %w", id, ErrNotFound)
	}
	if nid := Identify(t); b.targetIndex(nid) != i && b.targetIndex(nid) >= 0 {
		return fmt.Errorf("target %q: %w", nid, ErrDuplicateIdentity)
	}
	b.targets[i] = t
	b.touch()
	return nil
}

// DeleteTarget removes the target identified by id.
func (b *Book) DeleteTarget(id string) error {
	i := b.targetIndex(id)
	if i < 0 {
		return fmt.Errorf("target %q: %w", id, ErrNotFound)
	}
	b.targets = slices.Delete(b.targets, i, i+1)
	b.touch()
	return nil
}

// TakeSnapshot captures the current positions into the snapshot history.
// A snapshot already recorded on the same date is replaced.
func (b *Book) TakeSnapshot(on date.Date) Snapshot {
	snap := NewSnapshot(on, b.positions)
	b.series.Append(snap)
	b.touch()
	return snap
}

// Merged returns the display list: the real positions followed by a
// synthetic zero-quantity row for every target with no matching position.
// The synthetic rows are assembled here, outside any mutation path, so they
// can never be persisted as phantom positions.
func (b *Book) Merged() []Position {
	merged := slices.Clone(b.positions)
	for _, t := range b.targets {
		if b.positionIndex(Identify(t)) >= 0 {
			continue
		}
		zero := M(0, b.settings.Currency)
		merged = append(merged, NewPosition(t.Ticker(), t.Name(), Q(0), zero, zero))
	}
	return merged
}

// Totals aggregates the book's positions.
func (b *Book) Totals() Totals { return AggregateTotals(b.positions) }

// Weights returns the current weight of each position by identifier.
func (b *Book) Weights() map[string]Percent { return ComputeWeights(b.positions) }

// Suggest runs the rebalancing heuristic over the book.
func (b *Book) Suggest(opts SuggestOptions) []Suggestion {
	return Suggest(b.positions, b.targets, opts)
}
