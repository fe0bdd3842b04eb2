package main

import (
	"log"
	"os"

	"localevents-backend/internal/api"
	"localevents-backend/internal/config"
	"localevents-backend/internal/database"
	"localevents-backend/internal/events"
	"localevents-backend/internal/geo"
	"localevents-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	var db *database.Database
	var eventStore store.EventStore

	if cfg.StoreBackend == "supabase" {
		// Talk to the events table through the Supabase REST API,
		// no direct Postgres connection needed.
		log.Println("Using Supabase REST event store")
		eventStore = store.NewRESTStore(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey)
	} else {
		var err error
		db, err = database.NewConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		// Run database migrations
		if err := database.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}

		eventStore = store.NewPGStore(db)
	}

	home := geo.Point{Lat: cfg.Home.Lat, Lng: cfg.Home.Lng}
	repo := events.NewRepository(eventStore, home)

	// Initialize Gin router
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, repo, db, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
