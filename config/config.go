package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	AppPort string
	AppEnv  string

	// เขตเวลาที่ใช้คำนวณช่วงเวลา (รายวัน/รายสัปดาห์/เทอม)
	AppTZ string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	// ไฟล์ roster รหัสครูผู้ตรวจ (YAML) — ว่าง = ใช้ชุด default ใน constants
	RosterFile string

	// export รายงานอัตโนมัติ (cron spec ว่าง = ปิด)
	ExportDir      string
	AutoExportCron string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),
		AppTZ:   get("APP_TZ", "Asia/Bangkok"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "fives_kohsamui"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),

		RosterFile: get("ROSTER_FILE", ""),

		ExportDir:      get("EXPORT_DIR", "exports"),
		AutoExportCron: get("AUTO_EXPORT_CRON", ""),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

// Location คืน *time.Location ตาม APP_TZ; ถ้าโหลดไม่ได้ fallback เป็น Local
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTZ)
	if err != nil {
		return time.Local
	}
	return loc
}
