package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/fitnova/central/internal/agent"
	"github.com/fitnova/central/internal/api/handlers"
	mw "github.com/fitnova/central/internal/api/middleware"
	"github.com/fitnova/central/internal/buildconfig"
	"github.com/fitnova/central/internal/config"
	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/embedding"
	"github.com/fitnova/central/internal/llm"
	"github.com/fitnova/central/internal/service"
	"github.com/fitnova/central/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router    *chi.Mux
	Scheduler *service.AdaptationScheduler

	stopCh       chan struct{}
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
	serverErrors atomic.Int64
}

// NewApp wires stores, services and handlers. The agent registry is built
// by the caller so deployments choose which agents exist.
func NewApp(db *pgxpool.Pool, registry *agent.Registry, logger *zap.Logger) *App {
	// Stores
	userStore := store.NewUserStore(db)
	activityStore := store.NewActivityStore(db)
	taskStore := store.NewTaskStore(db)
	exerciseStore := store.NewExerciseStore(db)
	memoryStore := store.NewHealthMemoryStore(db)

	embeddingProvider := config.EmbeddingProvider()
	embeddingClient, err := embedding.NewClient(embeddingProvider, config.EmbeddingAPIKey())
	if err != nil {
		logger.Warn("embedding client initialization failed, recall disabled",
			zap.String("provider", embeddingProvider), zap.Error(err))
		embeddingClient = nil
	} else {
		logger.Info("embedding client initialized", zap.String("provider", embeddingProvider))
	}

	clock := service.NewSystemClock(config.Timezone())

	// Services
	userSvc := service.NewUserService(userStore)
	memorySvc := service.NewMemoryService(memoryStore, embeddingClient, logger)
	activitySvc := service.NewActivityService(activityStore, memorySvc)
	taskSvc := service.NewTaskService(taskStore, clock)
	summarySvc := service.NewSummaryService(activityStore, clock, logger)
	insightSvc := service.NewInsightService(summarySvc, taskStore, memorySvc, clock, logger)
	adaptationSvc := service.NewAdaptationService(taskStore, exerciseStore, memorySvc, clock, logger)
	reflectionSvc := service.NewReflectionService(memoryStore, memorySvc)
	orchestrator := service.NewOrchestrator(registry, reflectionSvc, clock, logger)

	scheduler := service.NewAdaptationScheduler(adaptationSvc, taskStore, clock, logger)
	scheduler.SetInterval(config.AdaptationInterval())

	// Handlers
	userHandler := handlers.NewUserHandler(userSvc)
	centralHandler := handlers.NewCentralHandler(summarySvc, insightSvc, orchestrator, logger)
	adaptationHandler := handlers.NewAdaptationHandler(adaptationSvc, logger)
	activityHandler := handlers.NewActivityHandler(activitySvc)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	exerciseHandler := handlers.NewExerciseHandler(exerciseStore)
	memoryHandler := handlers.NewMemoryHandler(memorySvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Scheduler: scheduler,
		stopCh:    make(chan struct{}),
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount, &app.serverErrors)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst(), app.stopCh))

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	// User creation (no auth, bootstrap endpoint)
	r.Post("/v1/users", userHandler.Create)

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(userSvc))

		r.Route("/central", func(r chi.Router) {
			r.Post("/summary", centralHandler.Summary)
			r.Post("/reasoning", centralHandler.Reasoning)
			r.Post("/insight", centralHandler.Insight)
			r.Post("/orchestrate", centralHandler.Orchestrate)
			r.Post("/curate", centralHandler.Curate)
		})

		r.Route("/adaptations", func(r chi.Router) {
			r.Get("/preview", adaptationHandler.Preview)
			r.Post("/apply", adaptationHandler.Apply)
		})

		r.Post("/workouts", activityHandler.LogWorkout)
		r.Post("/nutrition", activityHandler.LogNutrition)

		r.Route("/reminders", func(r chi.Router) {
			r.Post("/", activityHandler.CreateReminder)
			r.Post("/{id}/ack", activityHandler.AcknowledgeReminder)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.List)
			r.Patch("/{id}/status", taskHandler.UpdateStatus)
		})

		r.Get("/exercises", exerciseHandler.List)
		r.Get("/memories/recall", memoryHandler.Recall)
	})

	return app
}

// Shutdown stops the background work owned by the router.
func (app *App) Shutdown() {
	close(app.stopCh)
}

// NewRegistry builds the default agent set. A nil generator leaves the
// coach on canned replies.
func NewRegistry(generator domain.TextGenerator, logger *zap.Logger) (*agent.Registry, error) {
	return agent.NewRegistry(
		agent.NewCoachAgent(generator, logger),
		agent.NewDieticianAgent(),
		agent.NewReminderReasoningAgent(),
		agent.NewFallbackAgent(),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "error", "error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildconfig.VersionInfo()})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		writeJSON(w, http.StatusOK, map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"server_errors":  app.serverErrors.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"build": buildconfig.VersionInfo(),
		})
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.UserStore         = (*store.UserStore)(nil)
	_ domain.ActivityStore     = (*store.ActivityStore)(nil)
	_ domain.TaskStore         = (*store.TaskStore)(nil)
	_ domain.ExerciseStore     = (*store.ExerciseStore)(nil)
	_ domain.HealthMemoryStore = (*store.HealthMemoryStore)(nil)
	_ domain.EmbeddingClient   = (*embedding.OpenAIClient)(nil)
	_ domain.EmbeddingClient   = (*embedding.MockClient)(nil)
	_ domain.TextGenerator     = (*llm.OpenAIClient)(nil)
	_ domain.TextGenerator     = (*llm.AnthropicClient)(nil)
	_ domain.TextGenerator     = (*llm.MockClient)(nil)
	_ mw.Authenticator         = (*service.UserService)(nil)
)
