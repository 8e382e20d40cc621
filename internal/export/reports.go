package export

import (
	"fmt"
	"sort"
	"strings"

	"warsha/internal/core"
	"warsha/internal/store"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const unknown = "غير محدد"

// RevenueReport flattens a filtered revenue subset, joining client name
// and car plate from the full store.
func RevenueReport(st *store.Store, records []core.Revenue) []byte {
	headers := []string{"العميل", "رقم السيارة", "المبلغ", "التاريخ", "الوصف"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		clientName := unknown
		if c, ok := st.ClientByID(r.ClientID); ok {
			clientName = c.Name
		}
		plate := unknown
		if c, ok := st.CarByID(r.CarID); ok {
			plate = c.Plate
		}
		rows = append(rows, []string{clientName, plate, r.Amount.String(), r.Date.String(), r.Desc})
	}
	return MarshalCSV(headers, rows)
}

// ExpenseReport flattens a filtered expense subset.
func ExpenseReport(records []core.Expense) []byte {
	headers := []string{"المبلغ", "التاريخ", "النوع", "الملاحظات"}
	rows := make([][]string, 0, len(records))
	for _, e := range records {
		rows = append(rows, []string{e.Amount.String(), e.Date.String(), e.Type, e.Notes})
	}
	return MarshalCSV(headers, rows)
}

// AccountingReport renders the full accounting view: three summary rows,
// a blank separator, then one row per revenue and per expense with
// expense amounts negated.
func AccountingReport(st *store.Store, slice store.AccountingSlice) []byte {
	headers := []string{"نوع البيانات", "التفاصيل", "القيمة", "التاريخ"}
	summary := store.SummarizeAccounting(slice)

	rows := [][]string{
		{"ملخص", "إجمالي الأرباح", summary.TotalRevenue.String(), ""},
		{"ملخص", "إجمالي المصروفات", summary.TotalExpenses.String(), ""},
		{"ملخص", "صافي الربح", summary.Net.String(), ""},
		{"", "", "", ""},
	}
	for _, r := range slice.Revenue {
		clientName, plate := unknown, unknown
		if c, ok := st.ClientByID(r.ClientID); ok {
			clientName = c.Name
		}
		if c, ok := st.CarByID(r.CarID); ok {
			plate = c.Plate
		}
		detail := clientName + " - " + plate
		rows = append(rows, []string{"إيراد", detail, r.Amount.String(), r.Date.String()})
	}
	for _, e := range slice.Expenses {
		negated := core.Money{Cents: -e.Amount.Cents}
		rows = append(rows, []string{"مصروف", e.Type, negated.String(), e.Date.String()})
	}
	return MarshalCSV(headers, rows)
}

// CarDetailsReport lists a car's full maintenance history with owner
// context, one row per service.
func CarDetailsReport(st *store.Store, carID int64) ([]byte, error) {
	car, ok := st.CarByID(carID)
	if !ok {
		return nil, fmt.Errorf("car %d not found", carID)
	}
	ownerName := unknown
	if c, ok := st.ClientByID(car.ClientID); ok {
		ownerName = c.Name
	}

	headers := []string{"رقم السيارة", "المالك", "الموديل", "التاريخ", "نوع الصيانة", "الملاحظات"}
	history := st.MaintenanceOfCar(car.ID)
	rows := make([][]string, 0, len(history))
	for _, m := range history {
		rows = append(rows, []string{car.Plate, ownerName, car.Model, m.Date.String(), m.Type, m.Notes})
	}
	return MarshalCSV(headers, rows), nil
}

// clientRow is one flattened line of the full client report.
type clientRow struct {
	clientID    int64
	clientName  string
	phone       string
	plate       string
	model       string
	maintType   string
	maintDate   core.Date
	maintNotes  string
	visitAmount string
	carCount    int
}

// ClientsFullReport walks every client, car and maintenance record and
// emits one row per combination, padding with empty fields for clients
// without cars and cars without history, so no client disappears from the
// report. Revenue is joined on (car, date) since that pair is the only
// link between a visit and its payment.
func ClientsFullReport(st *store.Store) []byte {
	var flat []clientRow
	for _, client := range st.Clients {
		cars := st.CarsOfClient(client.ID)
		if len(cars) == 0 {
			flat = append(flat, clientRow{
				clientID:   client.ID,
				clientName: client.Name,
				phone:      client.Phone,
			})
			continue
		}
		for _, car := range cars {
			history := st.MaintenanceOfCar(car.ID)
			if len(history) == 0 {
				flat = append(flat, clientRow{
					clientID:   client.ID,
					clientName: client.Name,
					phone:      client.Phone,
					plate:      car.Plate,
					model:      car.Model,
					carCount:   len(cars),
				})
				continue
			}
			for _, m := range history {
				row := clientRow{
					clientID:   client.ID,
					clientName: client.Name,
					phone:      client.Phone,
					plate:      car.Plate,
					model:      car.Model,
					maintType:  m.Type,
					maintDate:  m.Date,
					maintNotes: m.Notes,
					carCount:   len(cars),
				}
				if rev, ok := st.RevenueForVisit(car.ID, m.Date); ok {
					row.visitAmount = rev.Amount.String()
				}
				flat = append(flat, row)
			}
		}
	}

	// Client name ascending in Arabic collation order, then maintenance
	// date descending. The collator is not safe for concurrent use, so
	// each report builds its own.
	coll := collate.New(language.Arabic)
	sort.SliceStable(flat, func(i, j int) bool {
		if c := coll.CompareString(flat[i].clientName, flat[j].clientName); c != 0 {
			return c < 0
		}
		if !flat[i].maintDate.IsZero() && !flat[j].maintDate.IsZero() {
			return flat[j].maintDate.Before(flat[i].maintDate.Time)
		}
		return false
	})

	headers := []string{
		"رقم العميل", "اسم العميل", "رقم الهاتف",
		"رقم السيارة", "موديل السيارة",
		"نوع الصيانة", "تاريخ الصيانة", "ملاحظات الصيانة", "مبلغ الصيانة",
		"عدد السيارات",
	}
	rows := make([][]string, 0, len(flat))
	for _, r := range flat {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.clientID),
			r.clientName,
			r.phone,
			r.plate,
			r.model,
			r.maintType,
			r.maintDate.String(),
			r.maintNotes,
			r.visitAmount,
			fmt.Sprintf("%d", r.carCount),
		})
	}
	return MarshalCSV(headers, rows)
}

// Filename builds a dated report filename like the shop is used to.
func Filename(base string, period core.Period, anchor core.Date) string {
	label := "كلي"
	switch period {
	case core.Daily:
		label = "يومي"
	case core.Weekly:
		label = "أسبوعي"
	case core.Monthly:
		label = "شهري"
	case core.Yearly:
		label = "سنوي"
	}
	return strings.Join([]string{base, label, anchor.String()}, "_") + ".csv"
}
