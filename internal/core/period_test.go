package core

import "testing"

func TestPeriodContains(t *testing.T) {
	anchor := NewDate(2024, 3, 10)

	tests := []struct {
		name   string
		period Period
		date   Date
		want   bool
	}{
		{name: "daily matches anchor day", period: Daily, date: NewDate(2024, 3, 10), want: true},
		{name: "daily excludes day before", period: Daily, date: NewDate(2024, 3, 9), want: false},
		{name: "daily excludes day after", period: Daily, date: NewDate(2024, 3, 11), want: false},

		{name: "weekly includes anchor", period: Weekly, date: NewDate(2024, 3, 10), want: true},
		{name: "weekly includes lower bound", period: Weekly, date: NewDate(2024, 3, 3), want: true},
		{name: "weekly excludes eight days back", period: Weekly, date: NewDate(2024, 3, 2), want: false},
		{name: "weekly excludes future", period: Weekly, date: NewDate(2024, 3, 11), want: false},

		{name: "monthly includes first of month", period: Monthly, date: NewDate(2024, 3, 1), want: true},
		{name: "monthly excludes previous month", period: Monthly, date: NewDate(2024, 2, 29), want: false},
		{name: "monthly excludes after anchor", period: Monthly, date: NewDate(2024, 3, 11), want: false},

		{name: "yearly includes january first", period: Yearly, date: NewDate(2024, 1, 1), want: true},
		{name: "yearly excludes previous year", period: Yearly, date: NewDate(2023, 12, 31), want: false},

		{name: "unknown token matches everything", period: "quarterly", date: NewDate(1999, 1, 1), want: true},
		{name: "empty token matches everything", period: "", date: NewDate(1999, 1, 1), want: true},
		{name: "unknown token matches zero date", period: "quarterly", date: Date{}, want: true},

		{name: "zero date excluded from daily", period: Daily, date: Date{}, want: false},
		{name: "zero date excluded from yearly", period: Yearly, date: Date{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.Contains(tt.date, anchor); got != tt.want {
				t.Errorf("%s.Contains(%s, %s) = %v, want %v", tt.period, tt.date, anchor, got, tt.want)
			}
		})
	}
}

func TestPeriodKnown(t *testing.T) {
	for _, p := range []Period{Daily, Weekly, Monthly, Yearly} {
		if !p.Known() {
			t.Errorf("%s should be known", p)
		}
	}
	for _, p := range []Period{"", "quarterly", "DAILY"} {
		if p.Known() {
			t.Errorf("%s should not be known", p)
		}
	}
}
