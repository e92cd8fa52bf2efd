package rebalance

import (
	"strings"
	"testing"
)

func TestExtractQuote(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    string
		want    float64
		wantErr bool
	}{
		{"scalar number", `{"last": 123.45}`, "$.last", 123.45, false},
		{"nested path", `{"quote": {"price": 42}}`, "$.quote.price", 42, false},
		{"one element list", `{"series": [[1,100],[2,101.5]]}`, "$.series[-1:][1]", 101.5, false},
		{"string value", `{"last": "99.95"}`, "$.last", 99.95, false},
		{"decimal comma string", `{"last": "1 234,5"}`, "$.last", 1234.5, false},
		{"missing path", `{"last": 1}`, "$.nope", 0, true},
		{"non numeric", `{"last": {"a": 1}}`, "$.last", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeQuote(strings.NewReader(tc.doc), tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("DecodeQuote() error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("DecodeQuote() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecodeQuote_MalformedDocument(t *testing.T) {
	if _, err := DecodeQuote(strings.NewReader("{oops"), "$.last"); err == nil {
		t.Fatal("DecodeQuote() error = nil, want parse error")
	}
}
