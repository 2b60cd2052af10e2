package main

import (
	"log"
	"os"
	"time"

	"membership-be/internal/model"
	"membership-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the plan catalog, feature catalog, and a couple of launch promo
// codes. Idempotent: rerunning upserts by slug/code.
func main() {
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

	seedFeatures(db)
	seedPlans(db)
	seedPromoCodes(db)

	log.Println("✅ Success: Seeding completed.")
}

func seedFeatures(db *gorm.DB) {
	features := []model.Feature{
		{Slug: "hd-streaming", Name: "HD Streaming", Description: "Watch in full HD quality", SortOrder: 1},
		{Slug: "downloads", Name: "Offline Downloads", Description: "Download content for offline viewing", SortOrder: 2},
		{Slug: "early-access", Name: "Early Access", Description: "Watch new releases before everyone else", SortOrder: 3},
		{Slug: "community", Name: "Members Community", Description: "Access to the members-only community", SortOrder: 4},
	}

	for i := range features {
		features[i].IsActive = true
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "sort_order"}),
		}).Create(&features[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed feature %s: %v", features[i].Slug, err)
		}
	}
	log.Printf("Seeded %d features", len(features))
}

func seedPlans(db *gorm.DB) {
	val := func(s string) *string { return &s }

	// Whole-unit prices: the payment gateway charges int64 amounts.

	plans := []struct {
		plan     model.Plan
		features map[string]*string // feature slug -> plan-specific value
	}{
		{
			plan: model.Plan{
				Name:            "Basic",
				Slug:            "basic",
				Description:     "Membership essentials",
				Price:           decimal.NewFromInt(10),
				Currency:        "USD",
				BillingInterval: "month",
				SortOrder:       1,
			},
			features: map[string]*string{
				"community": nil,
			},
		},
		{
			plan: model.Plan{
				Name:            "Pro",
				Slug:            "pro",
				Description:     "Everything in Basic plus HD and downloads",
				Price:           decimal.NewFromInt(20),
				Currency:        "USD",
				BillingInterval: "month",
				TrialDays:       14,
				SortOrder:       2,
			},
			features: map[string]*string{
				"community":    nil,
				"hd-streaming": nil,
				"downloads":    val("20"),
			},
		},
		{
			plan: model.Plan{
				Name:            "Pro Yearly",
				Slug:            "pro-yearly",
				Description:     "Pro, billed once a year",
				Price:           decimal.NewFromInt(200),
				Currency:        "USD",
				BillingInterval: "year",
				SortOrder:       3,
			},
			features: map[string]*string{
				"community":    nil,
				"hd-streaming": nil,
				"downloads":    val("50"),
				"early-access": nil,
			},
		},
	}

	for i := range plans {
		p := &plans[i].plan
		p.IsActive = true
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "price", "currency", "billing_interval", "trial_days", "sort_order"}),
		}).Create(p).Error; err != nil {
			log.Fatalf("Error: Failed to seed plan %s: %v", p.Slug, err)
		}

		for slug, value := range plans[i].features {
			var feature model.Feature
			if err := db.Where("slug = ?", slug).First(&feature).Error; err != nil {
				log.Fatalf("Error: Feature %s not found: %v", slug, err)
			}
			pf := model.PlanFeature{PlanId: p.Id, FeatureId: feature.Id, Value: value}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "plan_id"}, {Name: "feature_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&pf).Error; err != nil {
				log.Fatalf("Error: Failed to link feature %s to plan %s: %v", slug, p.Slug, err)
			}
		}
	}
	log.Printf("Seeded %d plans", len(plans))
}

func seedPromoCodes(db *gorm.DB) {
	maxDiscount := decimal.NewFromInt(50)
	maxUses := 1000
	until := time.Now().AddDate(0, 3, 0)

	codes := []model.PromoCode{
		{
			Code:          "WELCOME10",
			DiscountType:  "percentage",
			DiscountValue: decimal.NewFromInt(10),
			MaxDiscount:   &maxDiscount,
			ValidFrom:     time.Now(),
			ValidUntil:    &until,
			MaxUses:       &maxUses,
			IsActive:      true,
		},
		{
			Code:          "LAUNCH5",
			DiscountType:  "fixed",
			DiscountValue: decimal.NewFromInt(5),
			ValidFrom:     time.Now(),
			IsActive:      true,
		},
	}

	for i := range codes {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&codes[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed promo code %s: %v", codes[i].Code, err)
		}
	}
	log.Printf("Seeded %d promo codes", len(codes))
}
