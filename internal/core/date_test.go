package core

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 3 || d.Day() != 10 {
		t.Errorf("ParseDate = %v", d)
	}
	if _, err := ParseDate("10/03/2024"); err == nil {
		t.Error("expected error for non-ISO format")
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2024, 3, 10).String(); got != "2024-03-10" {
		t.Errorf("String() = %q, want 2024-03-10", got)
	}
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero date String() = %q, want empty", got)
	}
}

func TestDateUnmarshalMalformed(t *testing.T) {
	// A bad date in a snapshot must not fail the whole document; it loads
	// as the zero date and drops out of period-filtered views.
	var rec struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"not-a-date"}`), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !rec.Date.IsZero() {
		t.Errorf("malformed date = %v, want zero", rec.Date)
	}

	if err := json.Unmarshal([]byte(`{"date":"2024-03-10"}`), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Date.String() != "2024-03-10" {
		t.Errorf("date = %q, want 2024-03-10", rec.Date)
	}
}

func TestSameDay(t *testing.T) {
	a := NewDate(2024, 3, 10)
	if !a.SameDay(NewDate(2024, 3, 10)) {
		t.Error("same day should match")
	}
	if a.SameDay(NewDate(2024, 3, 11)) {
		t.Error("different days should not match")
	}
	if a.SameDay(NewDate(2023, 3, 10)) {
		t.Error("different years should not match")
	}
}
