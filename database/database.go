package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rideready-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RideCategory{},
		&models.Ride{},
		&models.Document{},
		&models.TechnicalBulletin{},
		&models.MaintenanceRecord{},
		&models.InspectionSchedule{},
		&models.InspectionCheck{},
		&models.NDTSchedule{},
		&models.RiskAssessment{},
		&models.RiskAssessmentItem{},
		&models.Notification{},
		&models.SupportMessage{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Version chain lookups group by owner, ride and logical name
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_version_chain ON documents(user_id, ride_id, document_name, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for documents version chain: %v\n", err)
	}

	// Expiry sweeps scan latest versions only
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_expiry ON documents(is_latest_version, expires_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for documents expiry: %v\n", err)
	}

	// Bulletin listings are newest first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bulletins_issue_date ON technical_bulletins(issue_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for technical_bulletins issue_date: %v\n", err)
	}

	// Duplicate detection during scraping matches on number or title
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bulletins_number ON technical_bulletins(bulletin_number)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for technical_bulletins bulletin_number: %v\n", err)
	}

	// Calendar month queries hit each source by user and date
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_checks_user_date ON inspection_checks(user_id, check_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for inspection_checks: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_maintenance_user_due ON maintenance_records(user_id, next_due_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for maintenance_records: %v\n", err)
	}

	// Notification list and dedup queries
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_user_created ON notifications(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for notifications: %v\n", err)
	}

	return nil
}

// SeedData populates the default ride categories on first boot.
func SeedData(db *gorm.DB) error {
	var categoryCount int64
	db.Model(&models.RideCategory{}).Count(&categoryCount)

	if categoryCount > 0 {
		fmt.Println("Ride categories already present, skipping seed")
		return nil
	}

	defaultCategories := []models.RideCategory{
		{Name: "Waltzer", Description: "Spinning platform rides with free-rotating cars"},
		{Name: "Dodgems", Description: "Bumper car tracks"},
		{Name: "Chair-o-Plane", Description: "Suspended swing chair rides"},
		{Name: "Carousel", Description: "Gallopers and roundabouts"},
		{Name: "Ferris Wheel", Description: "Big and observation wheels"},
		{Name: "Helter Skelter", Description: "Tower slide rides"},
		{Name: "Ghost Train", Description: "Dark rides"},
		{Name: "Fun House", Description: "Walk-through attractions"},
		{Name: "Miami", Description: "Miami trip style platform rides"},
		{Name: "Twist", Description: "Twist and sizzler rides"},
		{Name: "Super Bob", Description: "Bobsleigh style circuit rides"},
		{Name: "Paratrooper", Description: "Lifting umbrella rides"},
		{Name: "Octopus", Description: "Multi-arm spinning rides"},
		{Name: "Skydiver", Description: "Rotating wheel rides with pilot-controlled cars"},
	}

	for i := range defaultCategories {
		defaultCategories[i].ID = uuid.New().String()
		if err := db.Create(&defaultCategories[i]).Error; err != nil {
			fmt.Printf("Warning: Could not create category %s: %v\n", defaultCategories[i].Name, err)
		}
	}

	fmt.Println("Database seeded with default ride categories")
	return nil
}
