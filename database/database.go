package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/config"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	// ----- AutoMigrate โครงสร้างทั้งหมดของเรา -----
	if err := DB.AutoMigrate(
		&models.Inspection{},
		&models.User{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
