package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"warsha/internal/core"
)

// parseWindow extracts the period token and anchor date from query
// parameters. An unrecognized period is passed through unchanged: the
// filter engine treats it as "show all". The anchor defaults to today.
func parseWindow(r *http.Request) (core.Period, core.Date) {
	period := core.Period(strings.TrimSpace(r.URL.Query().Get("period")))
	anchor := core.Today()
	if v := strings.TrimSpace(r.URL.Query().Get("anchor")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			anchor = d
		}
	}
	return period, anchor
}

func parseID(r *http.Request) (int64, bool) {
	v := strings.TrimSpace(r.URL.Query().Get("id"))
	if v == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}
