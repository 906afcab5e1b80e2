// main.go - Entry point for the air pollution tracker backend

package main // Declares the package name

import ( // Import required packages
	"log"      // Logging
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"go-pollution-backend/auth"
	"go-pollution-backend/config"
	"go-pollution-backend/database"
	"go-pollution-backend/handlers"
	"go-pollution-backend/ingest"
	"go-pollution-backend/middleware"
	"go-pollution-backend/repository"
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and connect storage
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}

	// STEP 2: Build the repositories, resolver and handlers explicitly;
	// everything is passed by reference, nothing lives in package globals.
	users := repository.NewUsers(db)
	readings := repository.NewReadings(db)

	resolver := &auth.Resolver{Secret: cfg.JWTSecret, Users: users}

	authHandler := &handlers.AuthHandler{
		Users:      users,
		JWTSecret:  cfg.JWTSecret,
		BcryptCost: cfg.BcryptCost,
	}
	pollutionHandler := &handlers.PollutionHandler{Readings: readings}

	// STEP 3: Optional MQTT sensor ingest (disabled unless a broker is set)
	if cfg.MQTTBroker != "" {
		ingestor := &ingest.Ingestor{Readings: readings}
		if _, err := ingestor.Connect(cfg.MQTTBroker, cfg.MQTTTopic); err != nil {
			log.Fatal("MQTT connection error: ", err)
		}
	}

	// STEP 4: Create Gin router and configure routes
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authLimiter := middleware.NewRateLimiter(0.1, 5)   // ~5 auth attempts, slow refill
	generalLimiter := middleware.NewRateLimiter(2, 60) // Permissive API limit

	api := r.Group("/api")

	authRoutes := api.Group("/auth", authLimiter.Middleware())
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", middleware.AuthMiddleware(resolver), authHandler.Me)
	}

	pollution := api.Group("/pollution", generalLimiter.Middleware())
	{
		// Guests may read the list and per-city latest; everything else
		// requires a registered user.
		pollution.GET("", middleware.GuestAuthMiddleware(resolver), pollutionHandler.List)
		pollution.GET("/latest", middleware.GuestAuthMiddleware(resolver), pollutionHandler.GetLatest)
		pollution.GET("/:id", middleware.AuthMiddleware(resolver), pollutionHandler.GetByID)
		pollution.POST("", middleware.AuthMiddleware(resolver), pollutionHandler.Create)
		pollution.PUT("/:id", middleware.AuthMiddleware(resolver), pollutionHandler.Update)
		pollution.DELETE("/:id", middleware.AuthMiddleware(resolver), pollutionHandler.Delete)
	}

	// STEP 5: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
