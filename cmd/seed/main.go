package main

import (
	"context"
	"log"
	"time"

	"localevents-backend/internal/config"
	"localevents-backend/internal/database"
	"localevents-backend/internal/models"
	"localevents-backend/internal/store"

	"github.com/joho/godotenv"
)

func floatPtr(v float64) *float64 { return &v }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()

	var eventStore store.EventStore
	if cfg.StoreBackend == "supabase" {
		eventStore = store.NewRESTStore(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey)
	} else {
		db, err := database.NewConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := database.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		eventStore = store.NewPGStore(db)
	}

	now := time.Now()
	nextWeek := models.NewDate(now.Year(), now.Month(), now.Day()+7)
	nextMonth := models.NewDate(now.Year(), now.Month(), now.Day()+30)

	samples := []models.CreateEventRequest{
		{
			EventName:             "Chepstow Castle Family Day",
			EventDate:             nextWeek,
			Location:              "Chepstow Castle, Bridge Street, Chepstow",
			Latitude:              floatPtr(51.6428),
			Longitude:             floatPtr(-2.6751),
			Description:           "Medieval reenactments, crafts and castle tours for all ages.",
			CostText:              "Adults 8 pounds, children free",
			CostNumeric:           floatPtr(8),
			Rating:                floatPtr(4.5),
			URL:                   "https://cadw.gov.wales/visit/places-to-visit/chepstow-castle",
			ChildFriendlyFeatures: "Baby changing, pushchair access, activity trail",
			Source:                "Cadw",
		},
		{
			EventName:           "Bristol Harbour Festival",
			EventDate:           nextMonth,
			Location:            "Bristol Harbourside, Bristol",
			Latitude:            floatPtr(51.4494),
			Longitude:           floatPtr(-2.5980),
			Description:         "Boats, music and street food around the floating harbour.",
			CostText:            "Free entry",
			Rating:              floatPtr(4.2),
			CarerDisabilityInfo: "Accessible viewing platforms along the quayside",
			Source:              "Visit Bristol",
		},
		{
			EventName:   "Wye Valley Storytelling Evening",
			EventDate:   nextWeek,
			Location:    "Tintern Village Hall, Tintern",
			Description: "An evening of local legends. Venue location to be confirmed.",
			CostText:    "Donations welcome",
		},
	}

	ctx := context.Background()
	for _, draft := range samples {
		created, err := eventStore.Insert(ctx, draft)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", draft.EventName, err)
		}
		log.Printf("Seeded event %s (%s)", created.EventName, created.ID)
	}

	log.Println("Seeding completed")
}
