package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"caderneta-backend/internal/auth"
	"caderneta-backend/internal/cep"
	"caderneta-backend/internal/config"
	"caderneta-backend/internal/database"
	"caderneta-backend/internal/db"
	"caderneta-backend/internal/handlers"
	"caderneta-backend/internal/health"
	h "caderneta-backend/internal/http"
	"caderneta-backend/internal/middleware"
	"caderneta-backend/internal/repositories"
	"caderneta-backend/internal/services"
	"caderneta-backend/internal/session"
	"caderneta-backend/migrations"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	configHandler := handlers.NewConfigHandler(cfg)
	pageHandler := handlers.NewPageHandler(cfg)
	corsMiddleware := middleware.NewCORS(cfg)

	// Without store credentials the server still boots, but only serves
	// pages and /api/config; every authenticated flow answers 503.
	if !cfg.Configured() {
		log.Println("Starting UNCONFIGURED:", cfg.MissingConfigWarning())
		router := h.NewUnconfiguredRouter(configHandler, pageHandler)
		serve(cfg.Server.Port, corsMiddleware(router))
		return
	}

	// Connect to database and apply pending migrations
	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager and session broker
	jwtManager := auth.NewJWTManager(cfg)
	broker := session.NewBroker()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	revokedRepo := repositories.NewRevokedTokenRepository(pool)
	personRepo := repositories.NewPersonRepository(pool)
	purchaseRepo := repositories.NewPurchaseRepository(pool)

	// Initialize services
	authService := services.NewAuthService(userRepo, revokedRepo, jwtManager, broker)
	personService := services.NewPersonService(personRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo, personRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, authService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(broker)
	personHandler := handlers.NewPersonHandler(personService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	cepHandler := handlers.NewCEPHandler(cep.NewClient(cfg.ViaCEP.BaseURL))
	healthHandler := handlers.NewHealthHandler(health.NewChecker(pool))

	router := h.NewRouter(
		authHandler,
		sessionHandler,
		personHandler,
		purchaseHandler,
		cepHandler,
		healthHandler,
		configHandler,
		pageHandler,
		authMiddleware,
	)
	serve(cfg.Server.Port, corsMiddleware(router))
}

func serve(port int, handler http.Handler) {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
