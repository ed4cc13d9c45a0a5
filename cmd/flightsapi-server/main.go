package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/flightsapi/flightsapi/api/swagger"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/apikeys"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/auth"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/config"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/database"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/flights"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/users"
)

// @title Flights API
// @version 1.0
// @description Paginated flight registry queries gated by role-tiered API keys.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-KEY
// @description Opaque API key with CLIENT or ADMIN role

func main() {
	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.AppEnv == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("database migrations completed")

	// Explicit construction, leaves first: store handle into services,
	// services into handlers.
	keyService := apikeys.NewService(db)
	flightService := flights.NewService(db, log)
	userService := users.NewService(db, keyService, log)

	// A fresh store gets a bootstrap ADMIN key, printed once.
	adminToken, err := keyService.EnsureAdminKey()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ensure admin key exists")
	}
	if adminToken != "" {
		log.Info().Str("key", adminToken).Msg("created bootstrap ADMIN api key")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	keyAuth := auth.APIKeyAuth(db, log)

	// Flight and account routes. The key filter itself lets the public
	// paths (register, accountInfo) through.
	api := r.Group("/api/v1")
	api.Use(keyAuth)
	{
		flightsHandler := flights.NewHandler(flightService)
		flightsHandler.RegisterRoutes(api)
		flightsHandler.RegisterAdminRoutes(api.Group("", auth.RequireAdmin()))

		usersHandler := users.NewHandler(userService)
		usersHandler.RegisterRoutes(api)
	}

	// Key administration (ADMIN keys only)
	keysGroup := r.Group("/api-keys")
	keysGroup.Use(keyAuth, auth.RequireAdmin())
	apikeys.NewHandler(keyService).RegisterRoutes(keysGroup)

	log.Info().Str("port", cfg.Port).Msg("starting flights API server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// corsMiddleware allows browser clients from any origin, mirroring the
// permissive policy the API has always shipped with.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "*")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
