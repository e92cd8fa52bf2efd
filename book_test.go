package rebalance

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/rebalance/date"
)

func TestBook_AddPosition_RejectsDuplicateIdentity(t *testing.T) {
	b := NewBook()
	if err := b.AddPosition(pos("AAPL", "Apple", 10, 100, 120)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	// Same ticker in a different case resolves to the same identity.
	err := b.AddPosition(pos("aapl", "Apple again", 5, 90, 100))
	if !errors.Is(err, ErrDuplicateIdentity) {
		t.Fatalf("AddPosition() error = %v, want ErrDuplicateIdentity", err)
	}
	// Prior state is preserved.
	if len(b.Positions()) != 1 {
		t.Errorf("len(Positions()) = %d, want 1", len(b.Positions()))
	}
}

func TestBook_UpdatePosition(t *testing.T) {
	b := NewBook()
	if err := b.AddPosition(pos("AAPL", "Apple", 10, 100, 120)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	if err := b.AddPosition(pos("GOOG", "Alphabet", 2, 1000, 1500)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}

	t.Run("edit in place", func(t *testing.T) {
		if err := b.UpdatePosition("AAPL", pos("AAPL", "Apple", 12, 105, 120)); err != nil {
			t.Fatalf("UpdatePosition() error = %v", err)
		}
		if got := b.Positions()[0].Quantity(); !got.Equal(Q(12)) {
			t.Errorf("Quantity = %v, want 12", got)
		}
	})

	t.Run("rename onto existing identity is rejected", func(t *testing.T) {
		err := b.UpdatePosition("AAPL", pos("GOOG", "Apple renamed", 12, 105, 120))
		if !errors.Is(err, ErrDuplicateIdentity) {
			t.Errorf("UpdatePosition() error = %v, want ErrDuplicateIdentity", err)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		err := b.UpdatePosition("TSLA", pos("TSLA", "Tesla", 1, 1, 1))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdatePosition() error = %v, want ErrNotFound", err)
		}
	})
}

func TestBook_SetPriceRecomputesValuation(t *testing.T) {
	b := NewBook()
	if err := b.AddPosition(pos("AAPL", "Apple", 10, 100, 120)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	if err := b.SetPrice("AAPL", USD(150)); err != nil {
		t.Fatalf("SetPrice() error = %v", err)
	}
	p := b.Positions()[0]
	if !p.MarketValue().Equal(USD(1500)) {
		t.Errorf("MarketValue = %v, want %v", p.MarketValue(), USD(1500))
	}
	if !p.UnrealizedGain().Equal(USD(500)) {
		t.Errorf("UnrealizedGain = %v, want %v", p.UnrealizedGain(), USD(500))
	}
}

func TestBook_DeletePosition(t *testing.T) {
	b := NewBook()
	if err := b.AddPosition(pos("AAPL", "Apple", 10, 100, 120)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	if err := b.DeletePosition("AAPL"); err != nil {
		t.Fatalf("DeletePosition() error = %v", err)
	}
	if len(b.Positions()) != 0 {
		t.Errorf("len(Positions()) = %d, want 0", len(b.Positions()))
	}
	if err := b.DeletePosition("AAPL"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeletePosition() error = %v, want ErrNotFound", err)
	}
}

func TestBook_Targets(t *testing.T) {
	b := NewBook()
	if err := b.AddTarget(NewTarget("AAPL", "Apple", 60, "stocks")); err != nil {
		t.Fatalf("AddTarget() error = %v", err)
	}
	if err := b.AddTarget(NewTarget("aapl", "Apple twice", 40, "")); !errors.Is(err, ErrDuplicateIdentity) {
		t.Errorf("AddTarget() error = %v, want ErrDuplicateIdentity", err)
	}
	if err := b.UpdateTarget("AAPL", NewTarget("AAPL", "Apple", 55, "tech")); err != nil {
		t.Fatalf("UpdateTarget() error = %v", err)
	}
	if got := b.Targets()[0].Weight(); !got.Equal(55) {
		t.Errorf("Weight = %v, want 55%%", got)
	}
	if err := b.DeleteTarget("AAPL"); err != nil {
		t.Fatalf("DeleteTarget() error = %v", err)
	}
	if len(b.Targets()) != 0 {
		t.Errorf("len(Targets()) = %d, want 0", len(b.Targets()))
	}
}

func TestBook_ToleratesOverallocatedTargets(t *testing.T) {
	// The sum-below-100 rule is a UI concern; the book and the suggester
	// must tolerate a violation without failing.
	b := NewBook()
	if err := b.AddTarget(NewTarget("", "A", 80, "")); err != nil {
		t.Fatalf("AddTarget() error = %v", err)
	}
	if err := b.AddTarget(NewTarget("", "B", 80, "")); err != nil {
		t.Fatalf("AddTarget() error = %v", err)
	}
	if err := b.AddPosition(pos("", "A", 1, 0, 100)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	if got := b.Suggest(SuggestOptions{}); len(got) != 2 {
		t.Errorf("len(Suggest()) = %d, want 2", len(got))
	}
}

func TestBook_Merged(t *testing.T) {
	b := NewBook()
	if err := b.AddPosition(pos("AAPL", "Apple", 10, 100, 120)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	if err := b.AddTarget(NewTarget("AAPL", "Apple", 60, "")); err != nil {
		t.Fatalf("AddTarget() error = %v", err)
	}
	if err := b.AddTarget(NewTarget("VOO", "Vanguard S&P 500", 40, "")); err != nil {
		t.Fatalf("AddTarget() error = %v", err)
	}

	merged := b.Merged()
	if len(merged) != 2 {
		t.Fatalf("len(Merged()) = %d, want 2", len(merged))
	}
	synthetic := merged[1]
	if got := Identify(synthetic); got != "VOO" {
		t.Errorf("synthetic identifier = %q, want VOO", got)
	}
	if !synthetic.Quantity().IsZero() || !synthetic.MarketValue().IsZero() {
		t.Errorf("synthetic row = %+v, want all-zero quantity and valuation", synthetic)
	}
	// Assembly only: the real position list is untouched.
	if len(b.Positions()) != 1 {
		t.Errorf("len(Positions()) = %d, want 1", len(b.Positions()))
	}
}

func TestBook_TakeSnapshot(t *testing.T) {
	b := NewBook()
	if err := b.AddPosition(pos("AAPL", "Apple", 10, 100, 120)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}

	on := date.New(2025, time.May, 1)
	b.TakeSnapshot(on)
	if b.Series().Len() != 1 {
		t.Fatalf("Series().Len() = %d, want 1", b.Series().Len())
	}

	// A later mutation does not alter the capture.
	if err := b.SetPrice("AAPL", USD(999)); err != nil {
		t.Fatalf("SetPrice() error = %v", err)
	}
	latest, _ := b.Series().Latest()
	if !latest.Totals().TotalValue.Equal(USD(1200)) {
		t.Errorf("snapshot TotalValue = %v, want %v", latest.Totals().TotalValue, USD(1200))
	}

	// Re-snapshotting the same day replaces, not duplicates.
	b.TakeSnapshot(on)
	if b.Series().Len() != 1 {
		t.Errorf("Series().Len() = %d, want 1 after same-day snapshot", b.Series().Len())
	}
	latest, _ = b.Series().Latest()
	if !latest.Totals().TotalValue.Equal(USD(9990)) {
		t.Errorf("snapshot TotalValue = %v, want %v after replacement", latest.Totals().TotalValue, USD(9990))
	}
}
