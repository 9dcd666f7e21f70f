package routes

import (
	"net/http"

	"MigrantHealth/config"
	"MigrantHealth/controllers"
	"MigrantHealth/handlers"
	"MigrantHealth/middlewares"
	"MigrantHealth/repositories"
	"MigrantHealth/services"
	"MigrantHealth/sessions"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, db *gorm.DB, redisClient *redis.Client) (http.Handler, error) {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Session manager backed by Redis
	sessionStore, err := sessions.NewRedisStore(redisClient)
	if err != nil {
		return nil, err
	}
	sessionManager := sessions.NewManager(sessionStore, config.GetSymmetricKey())

	// Initialize repositories, services, and handlers
	userRepo := repositories.NewUserRepository(db)
	recordRepo := repositories.NewRecordRepository(db)

	authService := services.NewAuthService(userRepo)
	recordService := services.NewRecordService(recordRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService, sessionManager)
	recordHandler := handlers.NewRecordHandler(recordService)

	// Register routes
	authController := controllers.NewAuthController(authHandler, sessionManager)
	authController.RegisterRoutes(router)

	controllers.SetupRecordRoutes(router, recordHandler, sessionManager)
	controllers.SetupRootRoute(router, sessionManager)

	return router, nil
}
