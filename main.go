package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nightOutAPI/handlers"
	"nightOutAPI/internal/storage"
	"nightOutAPI/middleware"
	"nightOutAPI/services"

	_ "net/http/pprof"
)

var (
	dbPool *pgxpool.Pool
	store  storage.Storage

	clubService    *services.ClubService
	eventService   *services.EventService
	reviewService  *services.ReviewService
	userService    *services.UserService
	partnerService *services.PartnerService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// DATABASE_URL selects the Postgres backing; without it the app
	// runs on the seeded in-memory store.
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		poolConfig, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			log.Fatal("Failed to parse database URL:", err)
		}

		poolConfig.MaxConns = 25
		poolConfig.MinConns = 5
		poolConfig.MaxConnLifetime = time.Hour
		poolConfig.MaxConnIdleTime = 30 * time.Minute
		poolConfig.HealthCheckPeriod = time.Minute

		dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Fatal("Failed to create connection pool:", err)
		}

		if err := dbPool.Ping(ctx); err != nil {
			log.Fatal("Failed to ping database:", err)
		}

		pg := storage.NewPostgresStorage(dbPool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure database schema:", err)
		}
		store = pg

		log.Println("Successfully connected to Postgres")
	} else {
		store = storage.NewSeededMemStorage()
		log.Println("DATABASE_URL not set, using seeded in-memory storage")
	}

	clubService = services.NewClubService(store)
	eventService = services.NewEventService(store)
	reviewService = services.NewReviewService(store)
	userService = services.NewUserService(store)
	partnerService = services.NewPartnerService(store)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		if dbPool != nil {
			log.Println("Closing database connection pool...")
			dbPool.Close()
		}
	}()

	// Initialize handlers
	clubHandler := handlers.NewClubHandler(clubService)
	eventHandler := handlers.NewEventHandler(eventService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if dbPool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := dbPool.Ping(ctx); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "nightout-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/clubs", clubHandler.GetAllClubs).Methods("GET")
	api.HandleFunc("/clubs/featured", clubHandler.GetFeaturedClubs).Methods("GET")
	api.HandleFunc("/clubs/featured/{limit:[0-9]+}", clubHandler.GetFeaturedClubs).Methods("GET")
	api.HandleFunc("/clubs/search/{query}", clubHandler.SearchClubs).Methods("GET")
	api.HandleFunc("/clubs/{id:[0-9]+}", clubHandler.GetClub).Methods("GET")

	api.HandleFunc("/events", eventHandler.GetAllEvents).Methods("GET")
	api.HandleFunc("/events/featured", eventHandler.GetFeaturedEvents).Methods("GET")
	api.HandleFunc("/events/featured/{limit:[0-9]+}", eventHandler.GetFeaturedEvents).Methods("GET")
	api.HandleFunc("/events/upcoming", eventHandler.GetUpcomingEvents).Methods("GET")
	api.HandleFunc("/events/upcoming/{limit:[0-9]+}", eventHandler.GetUpcomingEvents).Methods("GET")
	api.HandleFunc("/events/club/{clubId:[0-9]+}", eventHandler.GetEventsByClub).Methods("GET")
	api.HandleFunc("/events/{id:[0-9]+}", eventHandler.GetEvent).Methods("GET")

	api.HandleFunc("/reviews", reviewHandler.CreateReview).Methods("POST")
	api.HandleFunc("/reviews/{clubId:[0-9]+}", reviewHandler.GetReviews).Methods("GET")

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/partners", partnerHandler.GetPartners).Methods("GET")

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE AUTH HEADER)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("/users").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/me", userHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/me", userHandler.UpdateProfile).Methods("PUT")

	// CORS configuration
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
