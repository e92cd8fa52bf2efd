package rebalance

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Manual price updates can be fed from arbitrary JSON documents exported by
// a broker or a banking site: the user points at the document and supplies a
// JSONPath expression locating the quote. There is no fetching here, the
// document is already on disk.

// ExtractQuote extracts a price from a parsed JSON document at the given
// JSONPath expression.
//
// Real-world quote documents are messy: the expression may select a
// one-element list instead of a scalar, and the value may be a string with a
// decimal comma. Both are tolerated.
func ExtractQuote(doc any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return 0, fmt.Errorf("path %q matched nothing", path)
		}
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("path %q: invalid number %q: %w", path, v, err)
		}
		return f, nil
	case string:
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("path %q: value %q is not a number: %w", path, v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("path %q: value %v is neither a number nor a string", path, jval)
	}
}

// DecodeQuote parses a JSON document from r and extracts the price at the
// given JSONPath expression.
func DecodeQuote(r io.Reader, path string) (float64, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("cannot parse quote document: %w", err)
	}
	return ExtractQuote(doc, path)
}
