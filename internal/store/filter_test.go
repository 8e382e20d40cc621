package store

import (
	"testing"

	"warsha/internal/core"
)

// fixtureStore builds two clients, two cars and maintenance spread across
// dates, for exercising the window filters.
func fixtureStore() *Store {
	s := New()
	s.Clients = []core.Client{
		{ID: 1, Name: "أحمد علي", Phone: "0100000001"},
		{ID: 2, Name: "محمد سمير", Phone: "0100000002"},
	}
	s.Cars = []core.Car{
		{ID: 1, ClientID: 1, Plate: "قنا 1234", Model: "i30"},
		{ID: 2, ClientID: 2, Plate: "قنا 5678", Model: "كورولا"},
	}
	s.Maintenance = []core.Maintenance{
		{ID: 1, CarID: 1, Date: core.NewDate(2024, 3, 10), Type: "فحص"},
		{ID: 2, CarID: 2, Date: core.NewDate(2024, 2, 1), Type: "تغيير زيت"},
		{ID: 3, CarID: 1, Date: core.Date{}, Type: "بدون تاريخ"},
	}
	s.Revenue = []core.Revenue{
		{ID: 1, ClientID: 1, CarID: 1, Amount: core.Money{Cents: 80000}, Date: core.NewDate(2024, 3, 10)},
		{ID: 2, ClientID: 2, CarID: 2, Amount: core.Money{Cents: 120000}, Date: core.NewDate(2024, 2, 1)},
	}
	s.Expenses = []core.Expense{
		{ID: 1, Amount: core.Money{Cents: 30000}, Date: core.NewDate(2024, 3, 9), Type: "قطع غيار"},
		{ID: 2, Amount: core.Money{Cents: 20000}, Date: core.NewDate(2023, 12, 31), Type: "أجور"},
	}
	return s
}

func TestFilterMaintenance(t *testing.T) {
	s := fixtureStore()
	anchor := core.NewDate(2024, 3, 10)

	daily := s.FilterMaintenance(core.Daily, anchor)
	if len(daily) != 1 || daily[0].ID != 1 {
		t.Errorf("daily = %+v, want record 1 only", daily)
	}

	// The zero-date record never matches a known period but survives the
	// identity filter.
	all := s.FilterMaintenance("", anchor)
	if len(all) != 3 {
		t.Errorf("identity filter = %d records, want 3", len(all))
	}

	yearly := s.FilterMaintenance(core.Yearly, anchor)
	if len(yearly) != 2 {
		t.Errorf("yearly = %d records, want 2", len(yearly))
	}
}

func TestFilterRevenueAndExpenses(t *testing.T) {
	s := fixtureStore()
	anchor := core.NewDate(2024, 3, 10)

	weekly := s.FilterRevenue(core.Weekly, anchor)
	if len(weekly) != 1 || weekly[0].ID != 1 {
		t.Errorf("weekly revenue = %+v", weekly)
	}

	monthlyExp := s.FilterExpenses(core.Monthly, anchor)
	if len(monthlyExp) != 1 || monthlyExp[0].ID != 1 {
		t.Errorf("monthly expenses = %+v", monthlyExp)
	}

	yearlyExp := s.FilterExpenses(core.Yearly, anchor)
	if len(yearlyExp) != 1 {
		t.Errorf("yearly expenses = %d, want 1 (previous year excluded)", len(yearlyExp))
	}
}

func TestFilterClientsTransitive(t *testing.T) {
	s := fixtureStore()
	anchor := core.NewDate(2024, 3, 10)

	// Only client 1 had a visit on the anchor day.
	daily := s.FilterClients(core.Daily, anchor)
	if len(daily) != 1 || daily[0].ID != 1 {
		t.Errorf("daily clients = %+v, want client 1", daily)
	}

	// Unknown period shows everyone, visits or not.
	all := s.FilterClients("", anchor)
	if len(all) != 2 {
		t.Errorf("identity clients = %d, want 2", len(all))
	}

	yearly := s.FilterClients(core.Yearly, anchor)
	if len(yearly) != 2 {
		t.Errorf("yearly clients = %d, want 2", len(yearly))
	}
}

func TestFilterCarsTransitive(t *testing.T) {
	s := fixtureStore()
	anchor := core.NewDate(2024, 3, 10)

	daily := s.FilterCars(core.Daily, anchor)
	if len(daily) != 1 || daily[0].ID != 1 {
		t.Errorf("daily cars = %+v, want car 1", daily)
	}

	all := s.FilterCars("unknown", anchor)
	if len(all) != 2 {
		t.Errorf("identity cars = %d, want 2", len(all))
	}
}

func TestFilterReturnsEmptyNotNil(t *testing.T) {
	s := New()
	anchor := core.NewDate(2024, 3, 10)
	if got := s.FilterMaintenance(core.Daily, anchor); got == nil {
		t.Error("FilterMaintenance must return an empty slice, not nil")
	}
	if got := s.FilterClients(core.Daily, anchor); got == nil {
		t.Error("FilterClients must return an empty slice, not nil")
	}
}

func TestFilterAccounting(t *testing.T) {
	s := fixtureStore()
	slice := s.FilterAccounting(core.Monthly, core.NewDate(2024, 3, 10))
	if len(slice.Revenue) != 1 || len(slice.Expenses) != 1 {
		t.Errorf("accounting slice = %d revenue %d expenses, want 1/1",
			len(slice.Revenue), len(slice.Expenses))
	}
}
