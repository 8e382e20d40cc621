package http

import (
	"net/http"

	"warsha/internal/core"
	"warsha/internal/store"
)

// The list handlers all follow one shape: filter by the requested window,
// summarize, return both. Summaries are recomputed on every call.

type clientsView struct {
	Items   []core.Client        `json:"items"`
	Summary store.ClientsSummary `json:"summary"`
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var view clientsView
	s.visits.Read(func(st *store.Store) {
		view.Items = st.FilterClients(period, anchor)
		view.Summary = st.SummarizeClients(view.Items)
	})
	writeJSON(w, http.StatusOK, view)
}

type carsView struct {
	Items   []core.Car        `json:"items"`
	Summary store.CarsSummary `json:"summary"`
}

func (s *Server) handleListCars(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var view carsView
	s.visits.Read(func(st *store.Store) {
		view.Items = st.FilterCars(period, anchor)
		view.Summary = st.SummarizeCars(view.Items)
	})
	writeJSON(w, http.StatusOK, view)
}

type carDetailsView struct {
	Car     core.Car           `json:"car"`
	Owner   *core.Client       `json:"owner,omitempty"`
	History []core.Maintenance `json:"history"`
}

func (s *Server) handleCarDetails(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid car id")
		return
	}
	var (
		view  carDetailsView
		found bool
	)
	s.visits.Read(func(st *store.Store) {
		car, ok := st.CarByID(id)
		if !ok {
			return
		}
		found = true
		view = carDetailsView{Car: car, History: st.MaintenanceOfCar(car.ID)}
		if view.History == nil {
			view.History = []core.Maintenance{}
		}
		if owner, ok := st.ClientByID(car.ClientID); ok {
			view.Owner = &owner
		}
	})
	if !found {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type maintenanceView struct {
	Items   []core.Maintenance       `json:"items"`
	Summary store.MaintenanceSummary `json:"summary"`
}

func (s *Server) handleListMaintenance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var view maintenanceView
	s.visits.Read(func(st *store.Store) {
		view.Items = st.FilterMaintenance(period, anchor)
		view.Summary = store.SummarizeMaintenance(view.Items)
	})
	writeJSON(w, http.StatusOK, view)
}

type revenueView struct {
	Items   []core.Revenue      `json:"items"`
	Summary store.AmountSummary `json:"summary"`
}

func (s *Server) handleListRevenue(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var view revenueView
	s.visits.Read(func(st *store.Store) {
		view.Items = st.FilterRevenue(period, anchor)
		view.Summary = store.SummarizeRevenue(view.Items)
	})
	writeJSON(w, http.StatusOK, view)
}

type expensesView struct {
	Items   []core.Expense      `json:"items"`
	Summary store.AmountSummary `json:"summary"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var view expensesView
	s.visits.Read(func(st *store.Store) {
		view.Items = st.FilterExpenses(period, anchor)
		view.Summary = store.SummarizeExpenses(view.Items)
	})
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAccounting(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var sum store.AccountingSummary
	s.visits.Read(func(st *store.Store) {
		sum = store.SummarizeAccounting(st.FilterAccounting(period, anchor))
	})
	writeJSON(w, http.StatusOK, sum)
}
