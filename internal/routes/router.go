package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-match/internal/config"
	"freight-match/internal/delivery/http/handler"
	"freight-match/internal/infrastructure/database/postgres"
	"freight-match/internal/logger"
	"freight-match/internal/middleware"
	"freight-match/internal/notification"
	"freight-match/internal/usecase/alert"
	"freight-match/internal/usecase/freight"
	"freight-match/internal/usecase/user"
	"freight-match/internal/usecase/vehicle"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	vehicleRepository := postgres.NewVehicleRepository(db)
	freightRepository := postgres.NewFreightRepository(db)
	alertRepository := postgres.NewAlertRepository(db)

	pushClient := notification.NewPushClient(&cfg.Push)
	fanout := notification.NewFanout(pushClient, userRepository, cfg.Push.Workers, cfg.Push.QueueSize)

	userService := user.NewService(userRepository, cfg)
	vehicleService := vehicle.NewService(vehicleRepository, freightRepository)
	freightService := freight.NewService(freightRepository, userRepository, vehicleRepository, alertRepository, fanout)
	alertService := alert.NewService(alertRepository)

	userHandler := handler.NewUserHandler(userService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	freightHandler := handler.NewFreightHandler(freightService)
	alertHandler := handler.NewAlertHandler(alertService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)
			alertHandler.RegisterProfileRoutes(protected)

			driver := protected.Group("")
			driver.Use(middleware.DriverOnly())
			{
				vehicleHandler.RegisterDriverRoutes(driver)
				freightHandler.RegisterDriverRoutes(driver)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
				freightHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
