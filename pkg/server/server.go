package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	goalhandlers "github.com/mk-tools/brand-atlas/pkg/handlers/goal"
	reporthandlers "github.com/mk-tools/brand-atlas/pkg/handlers/report"
	brandatlasmiddleware "github.com/mk-tools/brand-atlas/pkg/server/middleware"
	goalsvc "github.com/mk-tools/brand-atlas/pkg/services/goal"
	reportsvc "github.com/mk-tools/brand-atlas/pkg/services/report"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Compiler *reportsvc.Compiler
	Reports  reportsvc.Store
	Tracker  *goalsvc.Tracker
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	reportHandler := reporthandlers.NewHandler(config.Dependencies.Compiler, config.Dependencies.Reports)
	goalHandler := goalhandlers.NewHandler(config.Dependencies.Tracker)

	router := chi.NewRouter()

	router.Use(brandatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/entities/{entity}/reports", reportHandler.CompileReport)
		r.Get("/entities/{entity}/reports/latest", reportHandler.GetLatestReport)
		r.Get("/entities/{entity}/checkin", reportHandler.GetCheckin)
		r.Get("/entities/{entity}/objectives", goalHandler.ListObjectiveStatuses)
		r.Get("/objectives/{objective}/status", goalHandler.GetObjectiveStatus)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the configured mux; handler tests mount it directly.
func (w *WebAPI) Router() *chi.Mux {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
