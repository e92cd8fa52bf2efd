package rebalance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/rebalance/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a book as a JSONL stream: one JSON object per line,
// discriminated by a "row" property. The format is human readable and
// git-friendly, one fact per line. Derived values (market value, gains,
// snapshot totals) are deliberately absent from the stream: they are
// recomputed on decode, never trusted as input.

const (
	rowSettings = "settings"
	rowPosition = "position"
	rowTarget   = "target"
	rowSnapshot = "snapshot"
)

// jposition is the persisted shape of a position.
type jposition struct {
	Ticker   string   `json:"ticker,omitempty"`
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	AvgPrice Money    `json:"avgPrice"`
	Price    Money    `json:"price"`
}

func (j jposition) position(currency string) Position {
	return NewPosition(j.Ticker, j.Name, j.Quantity, j.AvgPrice.in(currency), j.Price.in(currency))
}

func encodablePosition(p Position) jposition {
	return jposition{
		Ticker:   p.Ticker(),
		Name:     p.Name(),
		Quantity: p.Quantity(),
		AvgPrice: p.AvgPrice(),
		Price:    p.Price(),
	}
}

// jtarget is the persisted shape of a target allocation.
type jtarget struct {
	Ticker string  `json:"ticker,omitempty"`
	Name   string  `json:"name"`
	Weight Percent `json:"weight"`
	Group  string  `json:"group,omitempty"`
}

// jsnapshot is the persisted shape of a snapshot. Totals are recomputed.
type jsnapshot struct {
	On        date.Date   `json:"on"`
	Positions []jposition `json:"positions"`
}

// EncodeBook writes the book to w in the JSONL store format: settings first,
// then positions and targets in their insertion order (target order is
// significant, it is the suggestion tie-break), then snapshots in
// chronological order.
func EncodeBook(w io.Writer, b *Book) error {
	write := func(row string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("cannot marshal %s row: %w", row, err)
		}
		// Splice the discriminator in front of the object's own fields.
		line := append([]byte(`{"row":"`+row+`",`), data[1:]...)
		if _, err := w.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("cannot write %s row: %w", row, err)
		}
		return nil
	}

	if err := write(rowSettings, b.settings); err != nil {
		return err
	}
	for _, p := range b.positions {
		if err := write(rowPosition, encodablePosition(p)); err != nil {
			return err
		}
	}
	for _, t := range b.targets {
		jt := jtarget{Ticker: t.Ticker(), Name: t.Name(), Weight: t.Weight(), Group: t.Group()}
		if err := write(rowTarget, jt); err != nil {
			return err
		}
	}
	for snap := range b.series.Values() {
		js := jsnapshot{On: snap.On()}
		for _, p := range snap.positions {
			js.Positions = append(js.Positions, encodablePosition(p))
		}
		if err := write(rowSnapshot, js); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBook reads a book from a JSONL stream produced by EncodeBook.
//
// All derived fields are recomputed. Duplicate canonical identifiers in the
// stream are a format error: the book's uniqueness invariant also holds for
// hand-edited files.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Row string `json:"row"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify row on line %d: %w", n, err)
		}

		switch identifier.Row {
		case rowSettings:
			var js Settings
			if err := json.Unmarshal(line, &js); err != nil {
				return nil, fmt.Errorf("invalid settings on line %d: %w", n, err)
			}
			if js.Currency == "" {
				js.Currency = DefaultCurrency
			}
			book.settings = js

		case rowPosition:
			var jp jposition
			if err := json.Unmarshal(line, &jp); err != nil {
				return nil, fmt.Errorf("invalid position on line %d: %w", n, err)
			}
			p := jp.position(book.settings.Currency)
			if book.positionIndex(Identify(p)) >= 0 {
				return nil, fmt.Errorf("line %d: position %q: %w", n, Identify(p), ErrDuplicateIdentity)
			}
			book.positions = append(book.positions, p)

		case rowTarget:
			var jt jtarget
			if err := json.Unmarshal(line, &jt); err != nil {
				return nil, fmt.Errorf("invalid target on line %d: %w", n, err)
			}
			t := NewTarget(jt.Ticker, jt.Name, jt.Weight, jt.Group)
			if book.targetIndex(Identify(t)) >= 0 {
				return nil, fmt.Errorf("line %d: target %q: %w", n, Identify(t), ErrDuplicateIdentity)
			}
			book.targets = append(book.targets, t)

		case rowSnapshot:
			var js jsnapshot
			if err := json.Unmarshal(line, &js); err != nil {
				return nil, fmt.Errorf("invalid snapshot on line %d: %w", n, err)
			}
			positions := make([]Position, 0, len(js.Positions))
			for _, jp := range js.Positions {
				positions = append(positions, jp.position(book.settings.Currency))
			}
			book.series.Append(NewSnapshot(js.On, positions))

		default:
			return nil, fmt.Errorf("unknown row type %q on line %d", identifier.Row, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read store: %w", err)
	}
	return book, nil
}
