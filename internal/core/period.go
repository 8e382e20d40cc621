package core

// Period selects a reporting window relative to an anchor date. Any token
// other than the four known ones acts as the identity filter and matches
// everything, which is how "show all" is expressed.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Known reports whether p is one of the four recognized period tokens.
func (p Period) Known() bool {
	switch p {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Contains reports whether d falls in the window p defines around anchor.
// All windows are inclusive of the anchor and use calendar-day
// granularity. Zero dates never match a known period.
func (p Period) Contains(d, anchor Date) bool {
	if !p.Known() {
		return true
	}
	if d.IsZero() {
		return false
	}
	switch p {
	case Daily:
		return d.SameDay(anchor)
	case Weekly:
		from := anchor.AddDays(-7)
		return !d.Before(from.Time) && !d.After(anchor.Time)
	case Monthly:
		from := NewDate(anchor.Year(), int(anchor.Month()), 1)
		return !d.Before(from.Time) && !d.After(anchor.Time)
	case Yearly:
		from := NewDate(anchor.Year(), 1, 1)
		return !d.Before(from.Time) && !d.After(anchor.Time)
	}
	return true
}
