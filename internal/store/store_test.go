package store

import (
	"errors"
	"testing"

	"warsha/internal/core"
)

func visitEvent(mutate func(*core.ServiceEvent)) core.ServiceEvent {
	ev := core.ServiceEvent{
		Name:  "أحمد علي",
		Phone: "0100000001",
		Plate: "قنا 1234",
		Model: "هيونداي i30",
		Date:  core.NewDate(2024, 3, 10),
		Type:  "فحص",
		Price: core.Money{Cents: 80000},
	}
	if mutate != nil {
		mutate(&ev)
	}
	return ev
}

func TestNextID(t *testing.T) {
	if got := NextID([]core.Client{}); got != 1 {
		t.Errorf("NextID(empty) = %d, want 1", got)
	}
	items := []core.Client{{ID: 1}, {ID: 3}, {ID: 5}}
	if got := NextID(items); got != 6 {
		t.Errorf("NextID({1,3,5}) = %d, want 6", got)
	}
}

func TestRecordServiceEvent_NewEverything(t *testing.T) {
	s := New()
	res, err := s.RecordServiceEvent(visitEvent(nil))
	if err != nil {
		t.Fatalf("RecordServiceEvent: %v", err)
	}

	if len(s.Clients) != 1 || len(s.Cars) != 1 || len(s.Maintenance) != 1 || len(s.Revenue) != 1 {
		t.Fatalf("counts = %d/%d/%d/%d, want 1/1/1/1",
			len(s.Clients), len(s.Cars), len(s.Maintenance), len(s.Revenue))
	}
	if res.Client.ID != 1 || res.Client.Name != "أحمد علي" {
		t.Errorf("client = %+v", res.Client)
	}
	if res.Car.ClientID != res.Client.ID {
		t.Errorf("car not linked to client: %+v", res.Car)
	}
	if res.Maintenance.CarID != res.Car.ID {
		t.Errorf("maintenance not linked to car: %+v", res.Maintenance)
	}
	if res.Revenue == nil {
		t.Fatal("priced visit should produce revenue")
	}
	if res.Revenue.ClientID != res.Client.ID || res.Revenue.CarID != res.Car.ID {
		t.Errorf("revenue links = %+v", res.Revenue)
	}
	if res.Revenue.Amount.Cents != 80000 {
		t.Errorf("revenue amount = %d, want 80000", res.Revenue.Amount.Cents)
	}
}

func TestRecordServiceEvent_SecondVisitReusesEntities(t *testing.T) {
	s := New()
	if _, err := s.RecordServiceEvent(visitEvent(nil)); err != nil {
		t.Fatal(err)
	}

	// Same phone and plate, no price this time.
	res, err := s.RecordServiceEvent(visitEvent(func(e *core.ServiceEvent) {
		e.Type = "تغيير زيت"
		e.Price = core.Money{}
	}))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Clients) != 1 || len(s.Cars) != 1 {
		t.Errorf("expected entity reuse, got %d clients %d cars", len(s.Clients), len(s.Cars))
	}
	if len(s.Maintenance) != 2 {
		t.Errorf("maintenance count = %d, want 2", len(s.Maintenance))
	}
	if len(s.Revenue) != 1 {
		t.Errorf("unpriced visit must not add revenue, count = %d", len(s.Revenue))
	}
	if res.Revenue != nil {
		t.Error("unpriced visit should return nil revenue")
	}
}

func TestRecordServiceEvent_NameUpdateRules(t *testing.T) {
	tests := []struct {
		name     string
		newName  string
		wantName string
	}{
		{name: "longer name wins", newName: "أحمد علي حسن", wantName: "أحمد علي حسن"},
		{name: "single character ignored", newName: "أ", wantName: "أحمد علي"},
		{name: "two characters accepted", newName: "عز", wantName: "عز"},
		{name: "identical name keeps record", newName: "أحمد علي", wantName: "أحمد علي"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if _, err := s.RecordServiceEvent(visitEvent(nil)); err != nil {
				t.Fatal(err)
			}
			if _, err := s.RecordServiceEvent(visitEvent(func(e *core.ServiceEvent) {
				e.Name = tt.newName
			})); err != nil {
				t.Fatal(err)
			}
			if len(s.Clients) != 1 {
				t.Fatalf("clients = %d, want 1", len(s.Clients))
			}
			if got := s.Clients[0].Name; got != tt.wantName {
				t.Errorf("name = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestRecordServiceEvent_ModelUpdate(t *testing.T) {
	s := New()
	if _, err := s.RecordServiceEvent(visitEvent(nil)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordServiceEvent(visitEvent(func(e *core.ServiceEvent) {
		e.Model = "هيونداي النترا"
	})); err != nil {
		t.Fatal(err)
	}
	if len(s.Cars) != 1 {
		t.Fatalf("cars = %d, want 1", len(s.Cars))
	}
	if got := s.Cars[0].Model; got != "هيونداي النترا" {
		t.Errorf("model = %q, want updated model", got)
	}
}

func TestRecordServiceEvent_OwnershipTransfer(t *testing.T) {
	s := New()
	if _, err := s.RecordServiceEvent(visitEvent(nil)); err != nil {
		t.Fatal(err)
	}

	// Same plate arrives under a different phone: the car re-points to the
	// new client, silently.
	res, err := s.RecordServiceEvent(visitEvent(func(e *core.ServiceEvent) {
		e.Name = "محمد سمير"
		e.Phone = "0100000002"
	}))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Clients) != 2 {
		t.Fatalf("clients = %d, want 2", len(s.Clients))
	}
	if len(s.Cars) != 1 {
		t.Fatalf("cars = %d, want 1 after transfer", len(s.Cars))
	}
	if s.Cars[0].ClientID != res.Client.ID {
		t.Errorf("car owner = %d, want %d", s.Cars[0].ClientID, res.Client.ID)
	}
}

func TestRecordServiceEvent_ValidationLeavesStoreUntouched(t *testing.T) {
	s := New()
	_, err := s.RecordServiceEvent(visitEvent(func(e *core.ServiceEvent) {
		e.Plate = "   "
	}))
	if !errors.Is(err, core.ErrEmptyPlate) {
		t.Fatalf("err = %v, want ErrEmptyPlate", err)
	}
	if len(s.Clients) != 0 || len(s.Cars) != 0 || len(s.Maintenance) != 0 {
		t.Error("failed event must not mutate the store")
	}
}

func TestRecordExpense(t *testing.T) {
	s := New()
	exp, err := s.RecordExpense(core.ExpenseEntry{
		Amount: core.Money{Cents: 30000},
		Date:   core.NewDate(2024, 3, 10),
		Type:   "قطع غيار",
		Notes:  "تيل فرامل",
	})
	if err != nil {
		t.Fatal(err)
	}
	if exp.ID != 1 || exp.Amount.Cents != 30000 {
		t.Errorf("expense = %+v", exp)
	}

	_, err = s.RecordExpense(core.ExpenseEntry{Date: core.NewDate(2024, 3, 10)})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("zero amount err = %v, want ErrInvalidAmount", err)
	}
}

func TestRevenueForVisit(t *testing.T) {
	s := New()
	if _, err := s.RecordServiceEvent(visitEvent(nil)); err != nil {
		t.Fatal(err)
	}
	rev, ok := s.RevenueForVisit(1, core.NewDate(2024, 3, 10))
	if !ok {
		t.Fatal("expected revenue for visit")
	}
	if rev.Amount.Cents != 80000 {
		t.Errorf("amount = %d, want 80000", rev.Amount.Cents)
	}
	if _, ok := s.RevenueForVisit(1, core.NewDate(2024, 3, 11)); ok {
		t.Error("wrong date should not match")
	}
}
