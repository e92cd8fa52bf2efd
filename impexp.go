package rebalance

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/rebalance/date"
)

// This file handles the backup import/export format: a single, indented,
// human-readable JSON document for round-tripping a whole book, and a
// flattened CSV for spreadsheet analysis.

// jbook is the backup document shape.
type jbook struct {
	Positions []jposition `json:"positions"`
	Targets   []jtarget   `json:"targets"`
	History   []jsnapshot `json:"history,omitempty"`
	Settings  Settings    `json:"settings"`
}

// ExportJSON writes the whole book as one indented JSON document.
func ExportJSON(w io.Writer, b *Book) error {
	doc := jbook{Settings: b.settings}
	for _, p := range b.positions {
		doc.Positions = append(doc.Positions, encodablePosition(p))
	}
	for _, t := range b.targets {
		doc.Targets = append(doc.Targets, jtarget{Ticker: t.Ticker(), Name: t.Name(), Weight: t.Weight(), Group: t.Group()})
	}
	for snap := range b.series.Values() {
		js := jsnapshot{On: snap.On()}
		for _, p := range snap.positions {
			js.Positions = append(js.Positions, encodablePosition(p))
		}
		doc.History = append(doc.History, js)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot export book: %w", err)
	}
	return nil
}

// ImportJSON reads a backup document and rebuilds the book, recomputing all
// derived fields and enforcing identifier uniqueness.
func ImportJSON(r io.Reader) (*Book, error) {
	var doc jbook
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse backup document: %w", err)
	}

	book := NewBook()
	if doc.Settings.Currency != "" {
		book.settings = doc.Settings
	}
	for _, jp := range doc.Positions {
		p := jp.position(book.settings.Currency)
		if book.positionIndex(Identify(p)) >= 0 {
			return nil, fmt.Errorf("position %q: %w", Identify(p), ErrDuplicateIdentity)
		}
		book.positions = append(book.positions, p)
	}
	for _, jt := range doc.Targets {
		t := NewTarget(jt.Ticker, jt.Name, jt.Weight, jt.Group)
		if book.targetIndex(Identify(t)) >= 0 {
			return nil, fmt.Errorf("target %q: %w", Identify(t), ErrDuplicateIdentity)
		}
		book.targets = append(book.targets, t)
	}
	for _, js := range doc.History {
		positions := make([]Position, 0, len(js.Positions))
		for _, jp := range js.Positions {
			positions = append(positions, jp.position(book.settings.Currency))
		}
		book.series.Append(NewSnapshot(js.On, positions))
	}
	return book, nil
}

// csvHeader is the column layout of the flattened export.
var csvHeader = []string{
	"date", "identifier", "ticker", "name",
	"quantity", "avgPrice", "currentPrice",
	"marketValue", "unrealizedGain", "unrealizedGainPercent",
	"targetWeight", "tag",
}

// ExportCSV writes the snapshot history flattened to one row per
// snapshot-date and position, with the target weight and grouping tag joined
// in by canonical identifier. A book with no snapshot yet exports its
// current positions dated today.
func ExportCSV(w io.Writer, b *Book) error {
	targetByID := make(map[string]Target, len(b.targets))
	for _, t := range b.targets {
		targetByID[Identify(t)] = t
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}

	writeRow := func(on date.Date, p Position) error {
		id := Identify(p)
		var weight, tag string
		if t, ok := targetByID[id]; ok {
			weight = strconv.FormatFloat(float64(t.Weight()), 'f', -1, 64)
			tag = t.Group()
		}
		v := p.Valuation()
		return cw.Write([]string{
			on.String(), id, p.Ticker(), p.Name(),
			p.Quantity().String(),
			strconv.FormatFloat(p.AvgPrice().AsFloat(), 'f', -1, 64),
			strconv.FormatFloat(p.Price().AsFloat(), 'f', -1, 64),
			strconv.FormatFloat(v.MarketValue.AsFloat(), 'f', -1, 64),
			strconv.FormatFloat(v.UnrealizedGain.AsFloat(), 'f', -1, 64),
			strconv.FormatFloat(float64(v.UnrealizedGainPct), 'f', 2, 64),
			weight, tag,
		})
	}

	if b.series.Len() == 0 {
		for _, p := range b.positions {
			if err := writeRow(date.Today(), p); err != nil {
				return fmt.Errorf("cannot write csv row: %w", err)
			}
		}
	}
	for snap := range b.series.Values() {
		for _, p := range snap.positions {
			if err := writeRow(snap.On(), p); err != nil {
				return fmt.Errorf("cannot write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot flush csv: %w", err)
	}
	return nil
}
