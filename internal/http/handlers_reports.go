package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/dubemjesse/Coinflow/internal/aggregate"
	"github.com/dubemjesse/Coinflow/internal/export"
	"github.com/dubemjesse/Coinflow/internal/report"
)

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.facade.Dashboard(time.Now()))
}

// handleReports drives the filter-based report view. Query parameters:
// range (all, a day count, or custom), start/end (custom dates),
// categories (comma-separated or "all"), granularity (daily/weekly/monthly).
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := time.Now()

	var categories []string
	if raw := strings.TrimSpace(q.Get("categories")); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	view := s.facade.Report(now, report.Query{
		Window:      report.ParseWindow(q.Get("range"), q.Get("start"), q.Get("end"), now.Location()),
		Categories:  categories,
		Granularity: aggregate.Granularity(q.Get("granularity")),
	})
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(now)+`"`)

	if err := export.WriteCSV(w, s.store.Transactions()); err != nil {
		s.logger.ErrorContext(r.Context(), "csv export failed", "error", err)
	}
}
