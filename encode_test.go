package rebalance

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/rebalance/date"
)

func testBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	if err := b.AddPosition(pos("AAPL", "Apple", 10, 100, 120)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	if err := b.AddPosition(pos("", "Samsung Electronics", 5, 200, 180)); err != nil {
		t.Fatalf("AddPosition() error = %v", err)
	}
	if err := b.AddTarget(NewTarget("AAPL", "Apple", 60, "stocks")); err != nil {
		t.Fatalf("AddTarget() error = %v", err)
	}
	if err := b.AddTarget(NewTarget("VOO", "Vanguard S&P 500", 40, "etf")); err != nil {
		t.Fatalf("AddTarget() error = %v", err)
	}
	b.TakeSnapshot(date.New(2025, time.April, 1))
	return b
}

func TestEncodeDecodeBook(t *testing.T) {
	b := testBook(t)

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}

	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}

	if len(got.Positions()) != 2 {
		t.Fatalf("len(Positions()) = %d, want 2", len(got.Positions()))
	}
	if len(got.Targets()) != 2 {
		t.Fatalf("len(Targets()) = %d, want 2", len(got.Targets()))
	}
	if got.Series().Len() != 1 {
		t.Fatalf("Series().Len() = %d, want 1", got.Series().Len())
	}

	// Derived values are recomputed on decode, not read from the stream.
	p := got.Positions()[0]
	if !p.MarketValue().Equal(USD(1200)) {
		t.Errorf("MarketValue = %v, want %v", p.MarketValue(), USD(1200))
	}
	if !got.Totals().TotalValue.Equal(USD(2100)) {
		t.Errorf("TotalValue = %v, want %v", got.Totals().TotalValue, USD(2100))
	}
	snap, _ := got.Series().Latest()
	if !snap.Totals().TotalValue.Equal(USD(2100)) {
		t.Errorf("snapshot TotalValue = %v, want %v", snap.Totals().TotalValue, USD(2100))
	}

	// Target declaration order survives: it is the suggestion tie-break.
	if id := Identify(got.Targets()[0]); id != "AAPL" {
		t.Errorf("first target = %q, want AAPL", id)
	}
}

func TestEncodeBook_OneFactPerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBook(&buf, testBook(t)); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// settings + 2 positions + 2 targets + 1 snapshot
	if len(lines) != 6 {
		t.Fatalf("len(lines) = %d, want 6:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], `{"row":"settings"`) {
		t.Errorf("first line = %q, want a settings row", lines[0])
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, `{"row":"`) {
			t.Errorf("line %q misses the row discriminator", line)
		}
	}
}

func TestDecodeBook_Empty(t *testing.T) {
	got, err := DecodeBook(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	if len(got.Positions()) != 0 || got.Settings().Currency != DefaultCurrency {
		t.Errorf("empty store decoded to %+v", got)
	}
}

func TestDecodeBook_RejectsDuplicates(t *testing.T) {
	store := `{"row":"position","ticker":"AAPL","name":"Apple","quantity":10,"avgPrice":100,"price":120}
{"row":"position","ticker":"aapl","name":"Apple again","quantity":1,"avgPrice":1,"price":1}
`
	if _, err := DecodeBook(strings.NewReader(store)); err == nil {
		t.Fatal("DecodeBook() error = nil, want duplicate identity error")
	}
}

func TestDecodeBook_UnknownRow(t *testing.T) {
	if _, err := DecodeBook(strings.NewReader(`{"row":"wat"}` + "\n")); err == nil {
		t.Fatal("DecodeBook() error = nil, want unknown row error")
	}
}
