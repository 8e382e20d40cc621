package store

import (
	"testing"

	"warsha/internal/core"
)

func TestSummarizeRevenue(t *testing.T) {
	records := []core.Revenue{
		{ID: 1, Amount: core.Money{Cents: 80000}},
		{ID: 2, Amount: core.Money{Cents: 120000}},
	}
	sum := SummarizeRevenue(records)
	if sum.Count != 2 {
		t.Errorf("count = %d, want 2", sum.Count)
	}
	if sum.Total.Cents != 200000 {
		t.Errorf("total = %d, want 200000", sum.Total.Cents)
	}
	if sum.Average.Cents != 100000 {
		t.Errorf("average = %d, want 100000", sum.Average.Cents)
	}
}

func TestSummarizeRevenueEmpty(t *testing.T) {
	sum := SummarizeRevenue(nil)
	if sum.Count != 0 || sum.Total.Cents != 0 || sum.Average.Cents != 0 {
		t.Errorf("empty summary = %+v, want all zero", sum)
	}
}

func TestSummarizeMaintenance(t *testing.T) {
	records := []core.Maintenance{
		{ID: 1, CarID: 1, Type: "فحص"},
		{ID: 2, CarID: 1, Type: "تغيير زيت"},
		{ID: 3, CarID: 2, Type: "فحص"},
	}
	sum := SummarizeMaintenance(records)
	if sum.Count != 3 {
		t.Errorf("count = %d, want 3", sum.Count)
	}
	if sum.DistinctTypes != 2 {
		t.Errorf("distinct types = %d, want 2", sum.DistinctTypes)
	}
	if sum.DistinctCars != 2 {
		t.Errorf("distinct cars = %d, want 2", sum.DistinctCars)
	}
}

func TestSummarizeClientsJoinsFullStore(t *testing.T) {
	s := fixtureStore()
	s.Cars = append(s.Cars, core.Car{ID: 3, ClientID: 1, Plate: "قنا 9999", Model: "النترا"})

	// Client 1 filtered in by one visit still reports both their cars.
	sum := s.SummarizeClients([]core.Client{s.Clients[0]})
	if sum.Count != 1 {
		t.Errorf("count = %d, want 1", sum.Count)
	}
	if sum.TotalCars != 2 {
		t.Errorf("total cars = %d, want 2", sum.TotalCars)
	}
	if sum.AvgCars != 2 {
		t.Errorf("avg cars = %v, want 2", sum.AvgCars)
	}
}

func TestSummarizeCars(t *testing.T) {
	s := fixtureStore()
	sum := s.SummarizeCars(s.Cars)
	if sum.Count != 2 {
		t.Errorf("count = %d, want 2", sum.Count)
	}
	// Car 1 has two maintenance records (one undated), car 2 has one.
	if sum.TotalMaintenance != 3 {
		t.Errorf("total maintenance = %d, want 3", sum.TotalMaintenance)
	}
	if sum.AvgMaintenance != 1.5 {
		t.Errorf("avg maintenance = %v, want 1.5", sum.AvgMaintenance)
	}
}

func TestSummarizeAccounting(t *testing.T) {
	slice := AccountingSlice{
		Revenue: []core.Revenue{
			{Amount: core.Money{Cents: 200000}},
		},
		Expenses: []core.Expense{
			{Amount: core.Money{Cents: 50000}},
		},
	}
	sum := SummarizeAccounting(slice)
	if sum.TotalRevenue.Cents != 200000 || sum.TotalExpenses.Cents != 50000 {
		t.Errorf("totals = %+v", sum)
	}
	if sum.Net.Cents != 150000 {
		t.Errorf("net = %d, want 150000", sum.Net.Cents)
	}
	if !sum.Profitable {
		t.Error("positive net should be profitable")
	}

	// Losing window carries a negative net.
	slice.Revenue = nil
	sum = SummarizeAccounting(slice)
	if sum.Net.Cents != -50000 {
		t.Errorf("net = %d, want -50000", sum.Net.Cents)
	}
	if sum.Profitable {
		t.Error("negative net should not be profitable")
	}
}

func TestSeed(t *testing.T) {
	s := New()
	today := core.NewDate(2024, 3, 10)
	s.Seed(today)
	if len(s.Clients) != 3 || len(s.Cars) != 3 || len(s.Maintenance) != 2 {
		t.Errorf("seed counts = %d/%d/%d", len(s.Clients), len(s.Cars), len(s.Maintenance))
	}
	if len(s.Revenue) != 2 || len(s.Expenses) != 2 {
		t.Errorf("seed money counts = %d/%d", len(s.Revenue), len(s.Expenses))
	}
	// The demo data anchors on today so period filters show it.
	if got := s.FilterMaintenance(core.Daily, today); len(got) != 2 {
		t.Errorf("daily maintenance after seed = %d, want 2", len(got))
	}
}
