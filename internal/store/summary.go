package store

import (
	"warsha/internal/core"
)

// Summaries are recomputed from scratch on every view refresh. Joins go
// against the full store, not the filtered subset: a client filtered in by
// one recent visit still reports all their cars.

// ClientsSummary aggregates a filtered client subset.
type ClientsSummary struct {
	Count     int     `json:"count"`
	TotalCars int     `json:"totalCars"`
	AvgCars   float64 `json:"avgCars"`
}

func (s *Store) SummarizeClients(clients []core.Client) ClientsSummary {
	sum := ClientsSummary{Count: len(clients)}
	for _, c := range clients {
		sum.TotalCars += len(s.CarsOfClient(c.ID))
	}
	if sum.Count > 0 {
		sum.AvgCars = float64(sum.TotalCars) / float64(sum.Count)
	}
	return sum
}

// CarsSummary aggregates a filtered car subset.
type CarsSummary struct {
	Count            int     `json:"count"`
	TotalMaintenance int     `json:"totalMaintenance"`
	AvgMaintenance   float64 `json:"avgMaintenance"`
}

func (s *Store) SummarizeCars(cars []core.Car) CarsSummary {
	sum := CarsSummary{Count: len(cars)}
	for _, c := range cars {
		sum.TotalMaintenance += len(s.MaintenanceOfCar(c.ID))
	}
	if sum.Count > 0 {
		sum.AvgMaintenance = float64(sum.TotalMaintenance) / float64(sum.Count)
	}
	return sum
}

// MaintenanceSummary counts a filtered maintenance subset.
type MaintenanceSummary struct {
	Count         int `json:"count"`
	DistinctTypes int `json:"distinctTypes"`
	DistinctCars  int `json:"distinctCars"`
}

func SummarizeMaintenance(records []core.Maintenance) MaintenanceSummary {
	types := make(map[string]struct{})
	cars := make(map[int64]struct{})
	for _, m := range records {
		types[m.Type] = struct{}{}
		cars[m.CarID] = struct{}{}
	}
	return MaintenanceSummary{
		Count:         len(records),
		DistinctTypes: len(types),
		DistinctCars:  len(cars),
	}
}

// AmountSummary totals a money-bearing subset. Average is zero, not an
// error, for empty input.
type AmountSummary struct {
	Count   int        `json:"count"`
	Total   core.Money `json:"total"`
	Average core.Money `json:"average"`
}

func SummarizeRevenue(records []core.Revenue) AmountSummary {
	sum := AmountSummary{Count: len(records)}
	for _, r := range records {
		sum.Total.Cents += r.Amount.Cents
	}
	if sum.Count > 0 {
		sum.Average.Cents = sum.Total.Cents / int64(sum.Count)
	}
	return sum
}

func SummarizeExpenses(records []core.Expense) AmountSummary {
	sum := AmountSummary{Count: len(records)}
	for _, e := range records {
		sum.Total.Cents += e.Amount.Cents
	}
	if sum.Count > 0 {
		sum.Average.Cents = sum.Total.Cents / int64(sum.Count)
	}
	return sum
}

// AccountingSummary is the net figure for one window. Profitable is a
// presentational hint only; the net amount carries its own sign.
type AccountingSummary struct {
	TotalRevenue  core.Money `json:"totalRevenue"`
	TotalExpenses core.Money `json:"totalExpenses"`
	Net           core.Money `json:"net"`
	Profitable    bool       `json:"profitable"`
}

func SummarizeAccounting(slice AccountingSlice) AccountingSummary {
	rev := SummarizeRevenue(slice.Revenue)
	exp := SummarizeExpenses(slice.Expenses)
	net := core.Money{Cents: rev.Total.Cents - exp.Total.Cents}
	return AccountingSummary{
		TotalRevenue:  rev.Total,
		TotalExpenses: exp.Total,
		Net:           net,
		Profitable:    net.Cents >= 0,
	}
}
