package database

import (
	"fmt"
	"log"
	"os"

	"soundwave-app/internal/domain/artists"
	"soundwave-app/internal/domain/dropevents"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	// TranslateError maps driver-specific failures onto gorm's sentinel
	// errors, so handlers can match gorm.ErrDuplicatedKey on slug collisions.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&artists.Artist{},
		&dropevents.DropEvent{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
