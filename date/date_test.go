package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025-13-01", wantErr: true},
		{in: "not a date", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalization(t *testing.T) {
	if got, want := New(2025, time.January, 32), New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
	if got, want := New(2025, time.March, 31).AddMonths(-1), New(2025, time.March, 3); got != want {
		// February has no 31st; time.Date normalization overflows into March.
		t.Errorf("AddMonths(-1) = %v, want %v", got, want)
	}
	if got, want := New(2024, time.February, 29).AddYears(1), New(2025, time.March, 1); got != want {
		t.Errorf("AddYears(1) = %v, want %v", got, want)
	}
}

func TestDaysUntil(t *testing.T) {
	from := New(2024, time.January, 1)
	to := New(2025, time.January, 1)
	if got := from.DaysUntil(to); got != 366 {
		// 2024 is a leap year.
		t.Errorf("DaysUntil() = %d, want 366", got)
	}
	if got := to.DaysUntil(from); got != -366 {
		t.Errorf("DaysUntil() reversed = %d, want -366", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.June, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2025-06-15"` {
		t.Errorf("Marshal() = %s, want %q", data, "2025-06-15")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
