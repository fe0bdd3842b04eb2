package api

import (
	"localevents-backend/internal/auth"
	"localevents-backend/internal/config"
	"localevents-backend/internal/database"
	"localevents-backend/internal/events"
	"localevents-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, repo *events.Repository, db *database.Database, cfg *config.Config) {
	server := NewServer(repo, db, cfg)
	jwtManager := auth.NewJWTManager(cfg)

	// CORS middleware
	router.Use(middleware.CORSSpecific(cfg.GetCORSOrigins()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "localevents-backend",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (no authentication required)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", server.Register)
			authGroup.POST("/login", server.Login)
		}

		// Event routes: browsing is public, mutations need a token
		eventsGroup := v1.Group("/events")
		{
			eventsGroup.GET("", server.GetEvents)

			protected := eventsGroup.Group("")
			protected.Use(middleware.AuthMiddleware(jwtManager))
			{
				protected.POST("", server.CreateEvent)
				protected.PUT("/:id", server.UpdateEvent)
				protected.DELETE("/:id", server.DeleteEvent)
			}
		}
	}
}
