package store

import (
	"warsha/internal/core"
)

// Seed replaces the store contents with a small demo data set anchored on
// the given date, matching what the shop uses to try the tool out.
func (s *Store) Seed(today core.Date) {
	s.Clients = []core.Client{
		{ID: 1, Name: "أحمد علي", Phone: "0100000001"},
		{ID: 2, Name: "محمد سمير", Phone: "0100000002"},
		{ID: 3, Name: "شيماء عبد الله", Phone: "0100000003"},
	}
	s.Cars = []core.Car{
		{ID: 1, ClientID: 1, Plate: "قنا 1234", Model: "هيونداي i30"},
		{ID: 2, ClientID: 1, Plate: "قنا 5678", Model: "كيا سيراتو"},
		{ID: 3, ClientID: 2, Plate: "قنا 2468", Model: "تويوتا كورولا"},
	}
	s.Maintenance = []core.Maintenance{
		{ID: 1, CarID: 1, Date: today, Type: "فحص", Notes: "فحص زوايا"},
		{ID: 2, CarID: 2, Date: today, Type: "تغيير قطع", Notes: "مساعدين أمامي"},
	}
	s.Revenue = []core.Revenue{
		{ID: 1, ClientID: 1, CarID: 1, Amount: core.Money{Cents: 80000}, Date: today, Desc: "ضبط زوايا وتوازن"},
		{ID: 2, ClientID: 2, CarID: 3, Amount: core.Money{Cents: 120000}, Date: today, Desc: "تغيير تيل + خرط"},
	}
	s.Expenses = []core.Expense{
		{ID: 1, Amount: core.Money{Cents: 30000}, Date: today, Type: "قطع غيار", Notes: "تيل فرامل"},
		{ID: 2, Amount: core.Money{Cents: 20000}, Date: today, Type: "أجور", Notes: "يومية صنايعي"},
	}
}
