package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/config"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/constants"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/database"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/handlers"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/routes"
)

func main() {
	// .env (ถ้ามี) — production ตั้ง env ตรงๆ
	_ = godotenv.Load()

	cfg := config.Load()
	loc := cfg.Location()

	// เชื่อมต่อฐานข้อมูล (ถ้า DB ยังไม่ขึ้น โปรแกรมจะ error ทันที — เหมาะสำหรับ early fail)
	database.Connect(cfg)

	// roster รหัสครูจากไฟล์ ถ้าโรงเรียนหมุนรหัสใหม่
	if cfg.RosterFile != "" {
		if err := constants.LoadRoster(cfg.RosterFile); err != nil {
			log.Fatalf("load roster: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg, loc)

	// export รายงานรายวันอัตโนมัติ เช่น AUTO_EXPORT_CRON="0 18 * * *"
	if cfg.AutoExportCron != "" {
		cr := cron.New(cron.WithLocation(loc))
		_, err := cr.AddFunc(cfg.AutoExportCron, func() {
			path, err := handlers.WriteDailyReport(cfg.ExportDir, loc)
			if err != nil {
				log.Printf("[export] daily report failed: %v", err)
				return
			}
			log.Printf("[export] daily report written: %s", path)
		})
		if err != nil {
			log.Fatalf("invalid AUTO_EXPORT_CRON: %v", err)
		}
		cr.Start()
	}

	e.Logger.Fatal(e.Start(":" + cfg.AppPort))
}
