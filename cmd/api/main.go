package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	gk "pet-daycare-calendar/internal/adapters/auth/gatekeeper"
	pg "pet-daycare-calendar/internal/adapters/storage/postgres"
	"pet-daycare-calendar/internal/config"
	"pet-daycare-calendar/internal/jobs"
	"pet-daycare-calendar/internal/platform/logger"
	"pet-daycare-calendar/internal/ports/auth"
	"pet-daycare-calendar/internal/router"
)

// @title Pet Daycare Calendar API
// @version 1.0
// @description Agenda general de la guardería: salud, estadías, ocupación y finanzas.
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "pet-daycare-calendar",
	})

	var verifier auth.AuthVerifier
	if !cfg.Auth.DevMode {
		client, err := gk.NewClient(gk.Config{
			BaseURL:      cfg.Auth.BaseURL,
			APIKey:       cfg.Auth.APIKey,
			APIKeyHeader: cfg.Auth.APIKeyHeader,
		})
		if err != nil {
			log.Error("gatekeeper client init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = gk.NewVerifier(client)
	}

	// Con DSN configurado la DB es obligatoria: mejor no arrancar que
	// servir silenciosamente el store de demo en memoria.
	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		opened, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Error("database open failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		db = opened
		defer db.Close()
	}

	r, calendarSvc := router.NewRouter(router.Options{
		AuthVerifier:       verifier,
		DB:                 db,
		UpcomingWindowDays: cfg.UpcomingWindowDays,
	})

	if cfg.ReminderCron != "" {
		job := jobs.NewReminderJob(calendarSvc, log, cfg.UpcomingWindowDays)
		if err := job.Start(cfg.ReminderCron); err != nil {
			log.Error("reminder job start failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer job.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Listen})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
