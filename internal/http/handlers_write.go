package http

import (
	"log/slog"
	"net/http"
	"strings"

	"warsha/internal/core"
	applog "warsha/internal/log"
	"warsha/internal/services"
)

type visitResponse struct {
	Client      core.Client      `json:"client"`
	Car         core.Car         `json:"car"`
	Maintenance core.Maintenance `json:"maintenance"`
	Revenue     *core.Revenue    `json:"revenue,omitempty"`
	Ack         services.Ack     `json:"ack"`
}

// handleRecordVisit records one service event from raw form fields. The
// date defaults to today when absent, matching how the form is used at
// the counter.
func (s *Server) handleRecordVisit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	date := core.Today()
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			date = d
		}
	}

	ev := core.ServiceEvent{
		Name:  r.Form.Get("name"),
		Phone: r.Form.Get("phone"),
		Plate: r.Form.Get("plate"),
		Model: r.Form.Get("model"),
		Date:  date,
		Type:  r.Form.Get("type"),
		Notes: r.Form.Get("notes"),
		Price: core.ParsePrice(r.Form.Get("price")),
	}

	res, ack, err := s.visits.RecordVisit(r.Context(), ev)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Visit recorded",
		applog.FieldClientPhone, res.Client.Phone,
		applog.FieldCarPlate, res.Car.Plate,
		applog.FieldVisitDate, res.Maintenance.Date.String(),
		"priced", res.Revenue != nil)

	writeJSON(w, http.StatusCreated, visitResponse{
		Client:      res.Client,
		Car:         res.Car,
		Maintenance: res.Maintenance,
		Revenue:     res.Revenue,
		Ack:         ack,
	})
}

type expenseResponse struct {
	Expense core.Expense `json:"expense"`
	Ack     services.Ack `json:"ack"`
}

func (s *Server) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil || cents <= 0 {
		writeError(w, http.StatusUnprocessableEntity, core.ErrInvalidAmount.Error())
		return
	}

	date := core.Today()
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		if d, perr := core.ParseDate(v); perr == nil {
			date = d
		}
	}

	entry := core.ExpenseEntry{
		Amount: core.Money{Cents: cents},
		Date:   date,
		Type:   r.Form.Get("type"),
		Notes:  r.Form.Get("notes"),
	}

	exp, ack, err := s.visits.RecordExpense(r.Context(), entry)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Expense recorded",
		applog.FieldAmountCents, exp.Amount.Cents,
		"expense_type", exp.Type,
		"date", exp.Date.String())

	writeJSON(w, http.StatusCreated, expenseResponse{Expense: exp, Ack: ack})
}
