package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/database"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/report"
)

type ExportHandler struct {
	Loc *time.Location

	// กันกด export ซ้อนกัน — ตัวเก่าต้องเสร็จ (หรือพัง) ก่อน
	inFlight atomic.Bool
}

func NewExportHandler(loc *time.Location) *ExportHandler {
	return &ExportHandler{Loc: loc}
}

// GET /dashboard/export?period=...&date=...&month=...&slot=...&format=md|csv
// render รายงานช่วงเดียวกับหน้า dashboard เป็นไฟล์ดาวน์โหลด
func (h *ExportHandler) Export(c echo.Context) error {
	if !h.inFlight.CompareAndSwap(false, true) {
		return echo.NewHTTPError(http.StatusTooManyRequests, map[string]any{"error": "EXPORT_IN_PROGRESS"})
	}
	defer h.inFlight.Store(false)

	dash := DashboardHandler{Loc: h.Loc}
	p, slot, err := dash.resolvePeriod(c)
	if err != nil {
		return err
	}

	format := strings.TrimSpace(c.QueryParam("format"))
	if format == "" {
		format = "md"
	}
	if format != "md" && format != "csv" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_FORMAT"})
	}

	var rows []models.Inspection
	if err := database.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	view := report.Generate(rows, p, slot)

	filename := report.ExportFilename(p.Kind, time.Now().In(h.Loc), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	switch format {
	case "csv":
		body, err := report.RenderCSV(view)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "EXPORT_FAILED"})
		}
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
	default:
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(report.RenderMarkdown(view)))
	}
}

// WriteDailyReport สร้างรายงานรายวันของวันนี้ลง dir (ใช้โดย cron ตอนเย็น)
func WriteDailyReport(dir string, loc *time.Location) (string, error) {
	now := time.Now().In(loc)
	p := report.Resolve(report.PeriodDaily, now, now, report.SlotAll, loc)

	var rows []models.Inspection
	if err := database.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return "", err
	}
	view := report.Generate(rows, p, report.SlotAll)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, report.ExportFilename(report.PeriodDaily, now, "md"))
	if err := os.WriteFile(path, []byte(report.RenderMarkdown(view)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
