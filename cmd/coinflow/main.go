package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dubemjesse/Coinflow/internal/config"
	apphttp "github.com/dubemjesse/Coinflow/internal/http"
	"github.com/dubemjesse/Coinflow/internal/log"
	"github.com/dubemjesse/Coinflow/internal/reminder"
	"github.com/dubemjesse/Coinflow/internal/report"
	"github.com/dubemjesse/Coinflow/internal/store"
)

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.New("error", "main").Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel, "main")
	log.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, err := store.NewSQLiteKV(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open database", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer kv.Close()

	st := store.New(ctx, kv, logger.WithComponent("store"),
		store.WithSaveDebounce(cfg.SaveDebounce))
	facade := report.New(st, cfg.MonthlyIncome, cfg.RecentLimit)
	reminders := reminder.New(st)

	srv := apphttp.NewServer(":"+cfg.Port, st, facade, reminders, logger.WithComponent("http"))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting coinflow server", "port", cfg.Port, "db", cfg.SQLiteDBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		// Pending debounced writes go out before the database closes.
		st.Flush(shutdownCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
