package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/msaleh/fairsplit/internal/assistant"
	"github.com/msaleh/fairsplit/internal/config"
	"github.com/msaleh/fairsplit/internal/database"
	"github.com/msaleh/fairsplit/internal/expense"
	"github.com/msaleh/fairsplit/internal/group"
	"github.com/msaleh/fairsplit/internal/notification"
	"github.com/msaleh/fairsplit/internal/payment"
	"github.com/msaleh/fairsplit/internal/report"
	"github.com/msaleh/fairsplit/internal/user"
	"github.com/msaleh/fairsplit/pkg/logger"
	"github.com/msaleh/fairsplit/pkg/middleware"
	"github.com/msaleh/fairsplit/pkg/response"
)

func main() {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to database")

	// Repositories
	userRepo := user.NewRepository(db)
	groupRepo := group.NewRepository(db)
	expenseRepo := expense.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	// Services
	userService := user.NewService(userRepo)
	groupService := group.NewService(groupRepo)
	expenseService := expense.NewService(expenseRepo)
	notificationService := notification.NewService(notificationRepo)
	paymentService := payment.NewService(paymentRepo, notificationService, log)
	reportService := report.NewService(groupService, expenseService, paymentService, log)
	assistantService := assistant.NewService(reportService, log)

	// Handlers
	userHandler := user.NewHandler(userService)
	groupHandler := group.NewHandler(groupService)
	expenseHandler := expense.NewHandler(expenseService)
	paymentHandler := payment.NewHandler(paymentService)
	notificationHandler := notification.NewHandler(notificationService)
	reportHandler := report.NewHandler(reportService, groupRepo)
	assistantHandler := assistant.NewHandler(assistantService, groupRepo)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.IdentityMiddleware)

		r.Mount("/users", userHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/payments", paymentHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/assistant", assistantHandler.Routes())
	})

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", chimiddleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
