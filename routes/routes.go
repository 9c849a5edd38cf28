package routes

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/config"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/handlers"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, loc *time.Location) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	insp := handlers.NewInspectionHandler(loc)
	dash := handlers.NewDashboardHandler(loc)
	exp := handlers.NewExportHandler(loc)
	info := handlers.NewInfoHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/teacher/login", auth.TeacherLogin)
	e.POST("/admin/login", auth.AdminLogin)

	// ข้อมูลคงที่ของแอป (ฟอร์มตรวจ + หน้าแผนที่)
	e.GET("/info/criteria", info.Criteria)
	e.GET("/info/classrooms", info.Classrooms)
	e.GET("/info/buildings", info.Buildings)

	// dashboard เปิดดูได้โดยไม่ต้อง login (เหมือนจอทีวีหน้าห้องกิจการ)
	e.GET("/inspections", insp.List)
	e.GET("/inspections/stream", insp.Stream)
	e.GET("/dashboard/report", dash.Report)
	e.GET("/dashboard/export", exp.Export)

	// ===== Protected =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	teacher := e.Group("/teacher", authMW, middlewares.RequireRole("teacher", "admin"))
	teacher.POST("/inspections", insp.Submit)
	teacher.GET("/inspections/current", insp.Current)
}
