package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/config"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/handlers"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/middleware"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/service"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/session"
	"github.com/JoseAngelVirgenEslava/proyecto/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories: MongoDB when configured, in-memory seed otherwise
	var (
		productRepo repository.ProductRepository
		userRepo    repository.UserRepository
	)
	if cfg.Mongo.URI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
		}
		cancel()
		if err != nil {
			log.Error("failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}()

		db := client.Database(cfg.Mongo.Database)
		productRepo = repository.NewMongoProductRepository(db)
		userRepo = repository.NewMongoUserRepository(db)
		log.Info("using MongoDB backing store", "database", cfg.Mongo.Database)
	} else {
		productRepo = repository.NewInMemoryProductRepository()
		userRepo = repository.NewInMemoryUserRepository()
		log.Info("using in-memory backing store with seed catalog")
	}

	// Initialize sessions and services
	sessions := session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	catalogService := service.NewCatalogService(productRepo)
	checkoutService := service.NewCheckoutService(productRepo)
	authService := service.NewAuthService(userRepo, sessions)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(catalogService, cfg.Catalog.DefaultPageSize, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, log)
	authHandler := handlers.NewAuthHandler(authService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Session(sessions))
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/categories", productHandler.ListCategories)
		r.Get("/search", productHandler.SearchProduct)

		// Checkout endpoint
		r.Post("/checkout", checkoutHandler.Checkout)

		// Account endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
