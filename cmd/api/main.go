package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucasferreira/fintrack/internal/bootstrap"
	"github.com/lucasferreira/fintrack/internal/controller"
	"github.com/lucasferreira/fintrack/internal/repository/postgres"
	"github.com/lucasferreira/fintrack/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, "fintrack-api", "fintrack")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	// --- Repositories ---
	transactionRepo := postgres.NewTransactionRepository(app.Pool)
	goalRepo := postgres.NewGoalRepository(app.Pool)
	analyticsRepo := postgres.NewAnalyticsRepository(app.Pool)

	// --- Services ---
	transactionService := service.NewTransactionService(transactionRepo, app.Metrics)
	goalService := service.NewGoalService(goalRepo, app.Metrics)
	analyticsService := service.NewAnalyticsService(analyticsRepo, app.Metrics)
	categoryService := service.NewCategoryService(app.Config.Categories)

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		Pool:               app.Pool,
		TransactionService: transactionService,
		GoalService:        goalService,
		AnalyticsService:   analyticsService,
		CategoryService:    categoryService,
		Metrics:            app.Metrics,
		Logger:             app.Logger,
		CORSConfig:         app.Config.Server.CORS,
		EnableTracing:      app.Config.Observability.EnableTracing,
	})

	// --- HTTP server ---
	addr := fmt.Sprintf(":%d", app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Logger.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		app.Logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
	app.Logger.Info().Msg("Server exited")
}
