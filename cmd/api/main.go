package main

import (
	"fmt"
	"os"

	"bill-forecast/internal/api/handlers"
	"bill-forecast/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(&logger))
	router.Use(middleware.ErrorHandler())

	projectionHandler := handlers.NewProjectionHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/project", projectionHandler.RunProjection)
		api.POST("/project/compare", projectionHandler.CompareProjections)

		api.GET("/carriers", handlers.ListCarriers)
		api.GET("/scenarios", handlers.ListPresets)
	}

	addr := fmt.Sprintf(":%s", port)
	logger.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
