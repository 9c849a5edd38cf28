// scripts/create_admin.go
package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/config"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/database"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

func main() {
	// โหลด config และเชื่อม DB ตามที่ main.go ใช้จริง
	_ = godotenv.Load()
	cfg := config.Load()
	database.Connect(cfg)

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "Admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "1234"
	}

	// แฮชรหัสผ่าน
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	// ตรวจว่ามีผู้ใช้งานชื่อเดียวกันอยู่หรือไม่
	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		color.Yellow("Admin user already exists with username: %s", username)
		os.Exit(0)
	}

	// สร้าง user ใหม่ role=admin
	u := models.User{
		Username: username,
		Password: string(hashed),
		Role:     "admin",
		Name:     "ผู้ดูแลระบบ",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	color.Green("Admin user created successfully!")
	color.White("   Username: %s", username)
	color.White("   Password: %s (plain, remember to change later!)", password)
}
