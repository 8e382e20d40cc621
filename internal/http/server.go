// Package http exposes the shop's record-keeping operations as a small
// JSON API. Handlers are thin adapters: parse the raw field values, call
// the service, render the result. All domain rules live below.
package http

import (
	"net/http"

	applog "warsha/internal/log"
	"warsha/internal/services"
)

type Server struct {
	http.Server
	visits *services.VisitService
}

func NewServer(addr string, visits *services.VisitService, logger *applog.Logger) *Server {
	s := &Server{visits: visits}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)

	mux.HandleFunc("/api/visits", s.handleRecordVisit)
	mux.HandleFunc("/api/expenses/new", s.handleRecordExpense)

	mux.HandleFunc("/api/clients", s.handleListClients)
	mux.HandleFunc("/api/cars", s.handleListCars)
	mux.HandleFunc("/api/cars/details", s.handleCarDetails)
	mux.HandleFunc("/api/maintenance", s.handleListMaintenance)
	mux.HandleFunc("/api/revenue", s.handleListRevenue)
	mux.HandleFunc("/api/expenses", s.handleListExpenses)
	mux.HandleFunc("/api/accounting", s.handleAccounting)

	mux.HandleFunc("/api/export/revenue", s.handleExportRevenue)
	mux.HandleFunc("/api/export/expenses", s.handleExportExpenses)
	mux.HandleFunc("/api/export/accounting", s.handleExportAccounting)
	mux.HandleFunc("/api/export/clients", s.handleExportClients)
	mux.HandleFunc("/api/export/car", s.handleExportCar)

	mux.HandleFunc("/api/backup", s.handleBackup)
	mux.HandleFunc("/api/restore", s.handleRestore)
	mux.HandleFunc("/api/seed", s.handleSeed)

	var handler http.Handler = mux
	if logger != nil {
		handler = applog.RequestMiddleware(logger)(mux)
	}

	s.Addr = addr
	s.Handler = handler
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
