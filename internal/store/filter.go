package store

import (
	"warsha/internal/core"
)

// FilterMaintenance returns maintenance records whose date falls in the
// period window around anchor. An unknown period returns everything.
func (s *Store) FilterMaintenance(p core.Period, anchor core.Date) []core.Maintenance {
	out := []core.Maintenance{}
	for _, m := range s.Maintenance {
		if p.Contains(m.Date, anchor) {
			out = append(out, m)
		}
	}
	return out
}

// FilterRevenue returns revenue records in the period window.
func (s *Store) FilterRevenue(p core.Period, anchor core.Date) []core.Revenue {
	out := []core.Revenue{}
	for _, r := range s.Revenue {
		if p.Contains(r.Date, anchor) {
			out = append(out, r)
		}
	}
	return out
}

// FilterExpenses returns expense records in the period window.
func (s *Store) FilterExpenses(p core.Period, anchor core.Date) []core.Expense {
	out := []core.Expense{}
	for _, e := range s.Expenses {
		if p.Contains(e.Date, anchor) {
			out = append(out, e)
		}
	}
	return out
}

// FilterClients returns clients with at least one maintenance record in
// the window, reached transitively through their cars. Clients carry no
// date of their own, so a client with no matching history is excluded from
// every known period.
func (s *Store) FilterClients(p core.Period, anchor core.Date) []core.Client {
	if !p.Known() {
		return append([]core.Client{}, s.Clients...)
	}
	active := s.activeCarIDs(p, anchor)
	out := []core.Client{}
	for _, c := range s.Clients {
		for _, car := range s.Cars {
			if car.ClientID == c.ID && active[car.ID] {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// FilterCars returns cars with at least one maintenance record in the
// window.
func (s *Store) FilterCars(p core.Period, anchor core.Date) []core.Car {
	if !p.Known() {
		return append([]core.Car{}, s.Cars...)
	}
	active := s.activeCarIDs(p, anchor)
	out := []core.Car{}
	for _, c := range s.Cars {
		if active[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// AccountingSlice pairs the revenue and expense subsets of one window, the
// input of the accounting summary.
type AccountingSlice struct {
	Revenue  []core.Revenue
	Expenses []core.Expense
}

// FilterAccounting returns both money-bearing collections for one window.
func (s *Store) FilterAccounting(p core.Period, anchor core.Date) AccountingSlice {
	return AccountingSlice{
		Revenue:  s.FilterRevenue(p, anchor),
		Expenses: s.FilterExpenses(p, anchor),
	}
}

func (s *Store) activeCarIDs(p core.Period, anchor core.Date) map[int64]bool {
	active := make(map[int64]bool)
	for _, m := range s.Maintenance {
		if p.Contains(m.Date, anchor) {
			active[m.CarID] = true
		}
	}
	return active
}
