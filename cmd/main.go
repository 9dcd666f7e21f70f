package main

import (
	"MigrantHealth/config"
	"MigrantHealth/database"
	"MigrantHealth/routes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
)

func main() {
	// Load configuration from environment variables
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), config.DBURL, config.AdminUsername, config.AdminPassword)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis for the session store
	redisClient, err := database.InitializeRedis()
	if err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Build the router
	handler, err := routes.SetupRoutes(config, db, redisClient)
	if err != nil {
		log.Fatalf("failed to set up routes: %v", err)
	}

	// Configure and start the server
	srv := &http.Server{
		Addr:           config.ListenAddress,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", config.ListenAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	// The session token key must be exactly 32 bytes for PASETO v2
	symmetricKey := os.Getenv("SYMMETRIC_KEY")
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("SYMMETRIC_KEY must be 32 bytes long, got %d", len(symmetricKey))
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		return nil, errors.New("missing ADMIN_USERNAME environment variable")
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		return nil, errors.New("missing ADMIN_PASSWORD environment variable")
	}

	listenAddress := os.Getenv("LISTEN_ADDR")
	if listenAddress == "" {
		listenAddress = ":8080"
	}

	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = allowedOrigins[:0]
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	return &config.AppConfig{
		DBURL:          dbURL,
		RedisAddress:   redisAddress,
		ListenAddress:  listenAddress,
		SymmetricKey:   []byte(symmetricKey),
		AdminUsername:  adminUsername,
		AdminPassword:  adminPassword,
		AllowedOrigins: allowedOrigins,
	}, nil
}
