package controller

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferreira/fintrack/internal/infrastructure/config"
	"github.com/lucasferreira/fintrack/internal/infrastructure/observability"
	customMW "github.com/lucasferreira/fintrack/internal/middleware"
	"github.com/lucasferreira/fintrack/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type RouterDeps struct {
	Pool               *pgxpool.Pool
	TransactionService *service.TransactionService
	GoalService        *service.GoalService
	AnalyticsService   *service.AnalyticsService
	CategoryService    *service.CategoryService
	Metrics            *observability.Metrics
	Logger             zerolog.Logger
	CORSConfig         config.CORSConfig
	EnableTracing      bool
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	if deps.EnableTracing {
		r.Use(customMW.Tracing())
	}
	r.Use(customMW.RequestLogger(deps.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(customMW.Metrics(deps.Metrics))

	healthH := NewHealthController(deps.Pool)
	transactionH := NewTransactionController(deps.TransactionService)
	goalH := NewGoalController(deps.GoalService)
	analyticsH := NewAnalyticsController(deps.AnalyticsService)
	categoryH := NewCategoryController(deps.CategoryService)

	r.Get("/health", healthH.Health)
	r.Get("/health/live", healthH.Liveness)
	r.Get("/health/ready", healthH.Readiness)

	r.Handle("/metrics", promhttp.Handler())

	// Transactions
	r.Get("/transactions", transactionH.List)
	r.Post("/transactions", transactionH.Create)
	r.Put("/transactions/{id}", transactionH.Update)
	r.Delete("/transactions/{id}", transactionH.Delete)

	// Goals
	r.Get("/goals", goalH.List)
	r.Post("/goals", goalH.Create)
	r.Put("/goals/{id}", goalH.Update)
	r.Delete("/goals/{id}", goalH.Delete)
	r.Post("/goals/{id}/contribute", goalH.Contribute)

	// Analytics
	r.Get("/analytics/summary", analyticsH.Summary)
	r.Get("/analytics/by-category", analyticsH.ByCategory)
	r.Get("/analytics/monthly", analyticsH.Monthly)

	// Categories
	r.Get("/categories", categoryH.List)

	return r
}
