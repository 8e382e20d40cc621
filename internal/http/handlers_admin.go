package http

import (
	"io"
	"log/slog"
	"net/http"

	"warsha/internal/core"
	"warsha/internal/export"
	"warsha/internal/storage"
	"warsha/internal/store"
)

func (s *Server) handleExportRevenue(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var data []byte
	s.visits.Read(func(st *store.Store) {
		data = export.RevenueReport(st, st.FilterRevenue(period, anchor))
	})
	writeCSV(w, export.Filename("الإيرادات", period, anchor), data)
}

func (s *Server) handleExportExpenses(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var data []byte
	s.visits.Read(func(st *store.Store) {
		data = export.ExpenseReport(st.FilterExpenses(period, anchor))
	})
	writeCSV(w, export.Filename("المصروفات", period, anchor), data)
}

func (s *Server) handleExportAccounting(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period, anchor := parseWindow(r)
	var data []byte
	s.visits.Read(func(st *store.Store) {
		data = export.AccountingReport(st, st.FilterAccounting(period, anchor))
	})
	writeCSV(w, export.Filename("الحسابات", period, anchor), data)
}

func (s *Server) handleExportClients(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	var data []byte
	s.visits.Read(func(st *store.Store) {
		data = export.ClientsFullReport(st)
	})
	writeCSV(w, export.Filename("العملاء", "", core.Today()), data)
}

func (s *Server) handleExportCar(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid car id")
		return
	}
	var (
		data []byte
		err  error
	)
	s.visits.Read(func(st *store.Store) {
		data, err = export.CarDetailsReport(st, id)
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}
	writeCSV(w, export.Filename("تفاصيل_السيارة", "", core.Today()), data)
}

// handleBackup serves the entire store as a JSON document the client can
// keep and later feed to the restore endpoint.
func (s *Server) handleBackup(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	var (
		data []byte
		err  error
	)
	s.visits.Read(func(st *store.Store) {
		data, err = storage.Encode(st)
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode backup")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="warsha-backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleRestore replaces the whole store with the posted backup. A rejected
// backup leaves current data untouched.
func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRestoreBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	restored, err := storage.ParseBackup(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.visits.Restore(r.Context(), restored)
	slog.InfoContext(r.Context(), "Store restored from backup",
		"clients", len(restored.Clients),
		"cars", len(restored.Cars),
		"maintenance", len(restored.Maintenance),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"restored": true,
		"clients":  len(restored.Clients),
		"cars":     len(restored.Cars),
	})
}

const maxRestoreBytes = 32 << 20

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	s.visits.SeedDemo(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"seeded": true})
}
