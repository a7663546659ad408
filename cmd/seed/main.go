package main

import (
	"log"
	"os"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/model"
	"ai-stylist-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Migrating schema...")
	if err := db.AutoMigrate(
		&model.User{},
		&model.SubscriptionPlan{},
		&model.UserSubscription{},
		&model.CreditTransaction{},
		&model.WardrobeItem{},
	); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Seeding Subscription Plans...")

	plans := []model.SubscriptionPlan{
		{
			Name:             "Free",
			Slug:             "free",
			Tagline:          "Try the stylist on your next outfit",
			Price:            0,
			BillingPeriod:    "monthly",
			ScanLimit:        3,
			WardrobeAddLimit: 10,
			IsActive:         true,
			SortOrder:        1,
		},
		{
			Name:             "Stylist Pro",
			Slug:             "pro-monthly",
			Tagline:          "Unlimited scans and a wardrobe that never fills up",
			Price:            6.99,
			BillingPeriod:    "monthly",
			ScanLimit:        entity.LimitUnlimited,
			WardrobeAddLimit: entity.LimitUnlimited,
			Unlimited:        true,
			IsMostPopular:    true,
			IsActive:         true,
			SortOrder:        2,
		},
		{
			Name:             "Stylist Pro Yearly",
			Slug:             "pro-yearly",
			Tagline:          "Two months free on the yearly plan",
			Price:            59.99,
			BillingPeriod:    "yearly",
			ScanLimit:        entity.LimitUnlimited,
			WardrobeAddLimit: entity.LimitUnlimited,
			Unlimited:        true,
			IsActive:         true,
			SortOrder:        3,
		},
	}

	for _, p := range plans {
		// Check if a plan with this slug already exists
		var existing model.SubscriptionPlan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			log.Printf("Plan '%s' already exists, skipping...", p.Slug)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", p.Slug, err)
		} else {
			log.Printf("Created plan: %s (%s)", p.Name, p.Slug)
		}
	}

	log.Println("Plan seeding completed!")
}
