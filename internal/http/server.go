// Package http exposes the dashboard, reports, transaction and reminder
// operations over a JSON API, plus the embedded static page and the CSV
// download. Handlers recompute views in full on every request; nothing is
// cached between calls.
package http

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dubemjesse/Coinflow/internal/log"
	"github.com/dubemjesse/Coinflow/internal/reminder"
	"github.com/dubemjesse/Coinflow/internal/report"
	"github.com/dubemjesse/Coinflow/internal/store"
	appweb "github.com/dubemjesse/Coinflow/web"
)

// Server wires the facade, store and reminder service behind the router.
type Server struct {
	http.Server

	store     *store.Store
	facade    *report.Facade
	reminders *reminder.Service
	logger    *log.Logger
	limiter   *rateLimiter
}

func NewServer(addr string, st *store.Store, f *report.Facade, rem *reminder.Service, logger *log.Logger) *Server {
	s := &Server{
		store:     st,
		facade:    f,
		reminders: rem,
		logger:    logger,
		limiter:   newRateLimiter(writeLimit),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(securityHeaders)
	r.Use(s.limitWrites)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/reports", s.handleReports)
		r.Get("/export/transactions.csv", s.handleExportCSV)

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleListTransactions)
			r.Post("/", s.handleCreateTransaction)
			r.Put("/{id}", s.handleUpdateTransaction)
			r.Delete("/{id}", s.handleDeleteTransaction)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", s.handleListReminders)
			r.Post("/", s.handleCreateReminder)
			r.Put("/{id}", s.handleUpdateReminder)
			r.Post("/{id}/complete", s.handleCompleteReminder)
			r.Delete("/{id}", s.handleDeleteReminder)
		})
	})

	// Embedded static page at the root.
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		r.Handle("/*", http.FileServer(http.FS(sub)))
	} else {
		logger.Warn("failed to mount embedded static assets", "error", err)
	}

	s.Server = http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
	s.RegisterOnShutdown(s.limiter.stop)
	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
