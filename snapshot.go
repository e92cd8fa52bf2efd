package rebalance

import (
	"iter"
	"slices"

	"github.com/etnz/rebalance/date"
)

// Snapshot is an immutable point-in-time capture of the whole portfolio:
// its date, the position list as it stood, and the aggregate totals.
// Snapshots are only ever appended to a Series, never mutated.
type Snapshot struct {
	on        date.Date
	positions []Position
	totals    Totals
}

// NewSnapshot captures the given positions on a date. The position list is
// copied and the totals are recomputed, so later mutations of the caller's
// slice do not leak into the capture.
func NewSnapshot(on date.Date, positions []Position) Snapshot {
	captured := slices.Clone(positions)
	return Snapshot{on: on, positions: captured, totals: AggregateTotals(captured)}
}

// On returns the date of the snapshot.
func (s Snapshot) On() date.Date { return s.on }

// Totals returns the aggregate totals captured with the snapshot.
func (s Snapshot) Totals() Totals { return s.totals }

// Positions returns a copy of the captured position list.
func (s Snapshot) Positions() []Position { return slices.Clone(s.positions) }

// Series is a chronological sequence of snapshots, at most one per day.
type Series struct {
	snapshots []Snapshot
}

// Len returns the number of snapshots in the series.
func (s *Series) Len() int { return len(s.snapshots) }

// Append adds a snapshot to the series, keeping chronological order.
// An existing snapshot on the same date is replaced.
func (s *Series) Append(snap Snapshot) *Series {
	if i := slices.IndexFunc(s.snapshots, func(x Snapshot) bool { return x.on == snap.on }); i >= 0 {
		s.snapshots[i] = snap
		return s
	}
	s.snapshots = append(s.snapshots, snap)
	slices.SortStableFunc(s.snapshots, func(a, b Snapshot) int {
		switch {
		case a.on.Before(b.on):
			return -1
		case a.on.After(b.on):
			return 1
		default:
			return 0
		}
	})
	return s
}

// Latest returns the most recent snapshot and true, or a zero snapshot and
// false when the series is empty.
func (s *Series) Latest() (Snapshot, bool) {
	if len(s.snapshots) == 0 {
		return Snapshot{}, false
	}
	return s.snapshots[len(s.snapshots)-1], true
}

// Values returns an iterator over the snapshots in chronological order.
func (s *Series) Values() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, snap := range s.snapshots {
			if !yield(snap) {
				return
			}
		}
	}
}

// Since returns the snapshots on or after 'from', in chronological order.
func (s *Series) Since(from date.Date) []Snapshot {
	i := 0
	for i < len(s.snapshots) && s.snapshots[i].on.Before(from) {
		i++
	}
	return slices.Clone(s.snapshots[i:])
}
