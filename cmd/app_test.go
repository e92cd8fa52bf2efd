package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// useTempStore points the global store file at a fresh temp file and
// restores the previous value when the test ends.
func useTempStore(t *testing.T, content string) string {
	t.Helper()
	store := filepath.Join(t.TempDir(), "book.jsonl")
	if content != "" {
		if err := os.WriteFile(store, []byte(content), 0644); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
	}
	old := storeFile
	storeFile = &store
	t.Cleanup(func() { storeFile = old })
	return store
}

// run executes a subcommand the way the commander would.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse args %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddThenDecode(t *testing.T) {
	useTempStore(t, "")

	status := run(t, &addCmd{}, "-ticker", "aapl", "-q", "10", "-avg", "150", "-p", "170")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add: expected ExitSuccess, got %v", status)
	}

	b, err := DecodeStore()
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	p, err := b.Position("AAPL")
	if err != nil {
		t.Fatalf("position not found after add: %v", err)
	}
	if !p.MarketValue().Equal(rebalance.M(1700, "USD")) {
		t.Errorf("market value = %s, want $1,700.00", p.MarketValue())
	}
}

func TestAddDuplicateFails(t *testing.T) {
	useTempStore(t, "")

	if status := run(t, &addCmd{}, "-ticker", "AAPL", "-q", "10", "-avg", "150", "-p", "170"); status != subcommands.ExitSuccess {
		t.Fatalf("first add: expected ExitSuccess, got %v", status)
	}
	if status := run(t, &addCmd{}, "-ticker", "aapl", "-q", "1", "-avg", "1", "-p", "1"); status != subcommands.ExitFailure {
		t.Errorf("duplicate add: expected ExitFailure, got %v", status)
	}
}

func TestPriceFromArgument(t *testing.T) {
	useTempStore(t, "")
	run(t, &addCmd{}, "-ticker", "AAPL", "-q", "10", "-avg", "150", "-p", "170")

	if status := run(t, &priceCmd{}, "AAPL", "180"); status != subcommands.ExitSuccess {
		t.Fatalf("price: expected ExitSuccess, got %v", status)
	}

	b, _ := DecodeStore()
	p, err := b.Position("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Price().Equal(rebalance.M(180, "USD")) {
		t.Errorf("price = %s, want $180.00", p.Price())
	}
	if !p.MarketValue().Equal(rebalance.M(1800, "USD")) {
		t.Errorf("market value = %s, want $1,800.00", p.MarketValue())
	}
}

func TestPriceFromJSONDocument(t *testing.T) {
	useTempStore(t, "")
	run(t, &addCmd{}, "-ticker", "AAPL", "-q", "10", "-avg", "150", "-p", "170")

	quotes := filepath.Join(t.TempDir(), "quotes.json")
	if err := os.WriteFile(quotes, []byte(`{"quotes":{"AAPL":{"last":186.5}}}`), 0644); err != nil {
		t.Fatal(err)
	}

	status := run(t, &priceCmd{}, "-file", quotes, "-path", "$.quotes.AAPL.last", "AAPL")
	if status != subcommands.ExitSuccess {
		t.Fatalf("price -file: expected ExitSuccess, got %v", status)
	}

	b, _ := DecodeStore()
	p, err := b.Position("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Price().Equal(rebalance.M(186.5, "USD")) {
		t.Errorf("price = %s, want $186.50", p.Price())
	}
}

func TestTargetDeclareEditRemove(t *testing.T) {
	useTempStore(t, "")

	if status := run(t, &targetCmd{}, "-w", "60", "-g", "stocks", "AAPL"); status != subcommands.ExitSuccess {
		t.Fatalf("declare: expected ExitSuccess, got %v", status)
	}
	b, _ := DecodeStore()
	tgt, err := b.Target("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if !tgt.Weight().Equal(60) || tgt.Group() != "stocks" {
		t.Errorf("target = %s %s, want 60.00%% stocks", tgt.Weight(), tgt.Group())
	}

	// Re-declaring edits the weight in place and keeps the group.
	if status := run(t, &targetCmd{}, "-w", "55", "AAPL"); status != subcommands.ExitSuccess {
		t.Fatalf("edit: expected ExitSuccess, got %v", status)
	}
	b, _ = DecodeStore()
	tgt, _ = b.Target("AAPL")
	if !tgt.Weight().Equal(55) || tgt.Group() != "stocks" {
		t.Errorf("edited target = %s %s, want 55.00%% stocks", tgt.Weight(), tgt.Group())
	}

	if status := run(t, &targetCmd{}, "-rm", "AAPL"); status != subcommands.ExitSuccess {
		t.Fatalf("remove: expected ExitSuccess, got %v", status)
	}
	b, _ = DecodeStore()
	if _, err := b.Target("AAPL"); err == nil {
		t.Error("target still present after -rm")
	}
}

func TestSnapshotRecordsHistory(t *testing.T) {
	useTempStore(t, "")
	run(t, &addCmd{}, "-ticker", "AAPL", "-q", "10", "-avg", "150", "-p", "170")

	if status := run(t, &snapshotCmd{}, "-d", "2025-04-01"); status != subcommands.ExitSuccess {
		t.Fatalf("snapshot: expected ExitSuccess, got %v", status)
	}

	b, _ := DecodeStore()
	if b.Series().Len() != 1 {
		t.Fatalf("series length = %d, want 1", b.Series().Len())
	}
	snap, _ := b.Series().Latest()
	if snap.On().String() != "2025-04-01" {
		t.Errorf("snapshot date = %s, want 2025-04-01", snap.On())
	}
	if !snap.Totals().TotalValue.Equal(rebalance.M(1700, "USD")) {
		t.Errorf("snapshot total = %s, want $1,700.00", snap.Totals().TotalValue)
	}
}

func TestFmtCanonicalizes(t *testing.T) {
	// A hand-written store in scrambled order, with derived values absent.
	store := useTempStore(t, strings.Join([]string{
		`{"row":"target","ticker":"AAPL","name":"","weight":60,"group":"stocks"}`,
		`{"row":"settings","currency":"USD"}`,
		`{"row":"position","ticker":"AAPL","name":"","quantity":10,"avgPrice":150,"price":170}`,
	}, "\n") + "\n")

	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt: expected ExitSuccess, got %v", status)
	}

	content, err := os.ReadFile(store)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("canonical store has %d lines, want 3:\n%s", len(lines), content)
	}
	if !strings.Contains(lines[0], `"row":"settings"`) {
		t.Errorf("first canonical line is not the settings row: %s", lines[0])
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	useTempStore(t, "")
	run(t, &addCmd{}, "-ticker", "AAPL", "-q", "10", "-avg", "150", "-p", "170")
	run(t, &targetCmd{}, "-w", "60", "-g", "stocks", "AAPL")

	backup := filepath.Join(t.TempDir(), "backup.json")
	if status := run(t, &exportCmd{}, "-format", "json", "-o", backup); status != subcommands.ExitSuccess {
		t.Fatalf("export: expected ExitSuccess, got %v", status)
	}

	// Import into a fresh store.
	useTempStore(t, "")
	if status := run(t, &importCmd{}, backup); status != subcommands.ExitSuccess {
		t.Fatalf("import: expected ExitSuccess, got %v", status)
	}

	b, err := DecodeStore()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Position("AAPL"); err != nil {
		t.Errorf("position not restored: %v", err)
	}
	if _, err := b.Target("AAPL"); err != nil {
		t.Errorf("target not restored: %v", err)
	}
}
