// Package sheets defines the outbound mirror ports. Every local write is
// mirrored, best effort, to a named target sheet in an external
// spreadsheet; the mirror is advisory and never authoritative.
package sheets

import (
	"context"

	"warsha/internal/core"
)

// Record is one mirrored row: a flat mapping of field name to scalar.
type Record map[string]any

// Appender sends one record to a target sheet. Implementations must treat
// any transport or remote failure as an ordinary error; callers log it and
// move on without touching the committed local write.
type Appender interface {
	Append(ctx context.Context, target string, rec Record) error
}

// Target sheet names, as they appear in the shop's spreadsheet.
const (
	TargetClients     = "العملاء"
	TargetCars        = "السيارات"
	TargetMaintenance = "الصيانة"
	TargetRevenue     = "الإيرادات"
	TargetExpenses    = "المصروفات"
)

// ClientRecord flattens the client slice of a visit.
func ClientRecord(name, phone string, date core.Date) Record {
	return Record{"name": name, "phone": phone, "date": date.String()}
}

// CarRecord flattens the car slice of a visit, with owner context.
func CarRecord(plate, model, clientName, clientPhone string, date core.Date) Record {
	return Record{
		"plate":       plate,
		"model":       model,
		"clientName":  clientName,
		"clientPhone": clientPhone,
		"date":        date.String(),
	}
}

// MaintenanceRecord flattens the maintenance slice of a visit.
func MaintenanceRecord(typ, notes, carPlate, carModel, clientName string, date core.Date) Record {
	return Record{
		"type":       typ,
		"notes":      notes,
		"carPlate":   carPlate,
		"carModel":   carModel,
		"clientName": clientName,
		"date":       date.String(),
	}
}

// RevenueRecord flattens the revenue slice of a priced visit.
func RevenueRecord(amount core.Money, date core.Date, desc, clientName, carPlate, carModel string) Record {
	return Record{
		"amount":     amount.Pounds(),
		"date":       date.String(),
		"desc":       desc,
		"clientName": clientName,
		"carPlate":   carPlate,
		"carModel":   carModel,
	}
}

// ExpenseRecord flattens a standalone expense.
func ExpenseRecord(amount core.Money, date core.Date, typ, notes string) Record {
	return Record{
		"amount": amount.Pounds(),
		"date":   date.String(),
		"type":   typ,
		"notes":  notes,
	}
}
