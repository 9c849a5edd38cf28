package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/database"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/report"
)

type DashboardHandler struct {
	Loc *time.Location
}

func NewDashboardHandler(loc *time.Location) *DashboardHandler {
	return &DashboardHandler{Loc: loc}
}

// อ่านตัวเลือกช่วงเวลาจาก query string:
// period=daily|weekly|monthly|term1|term2 (default daily)
// date=YYYY-MM-DD (daily/weekly), month=YYYY-MM (monthly), slot=all|morning|evening
func (h *DashboardHandler) resolvePeriod(c echo.Context) (report.Period, report.TimeSlotFilter, error) {
	kind := report.PeriodKind(strings.TrimSpace(c.QueryParam("period")))
	if kind == "" {
		kind = report.PeriodDaily
	}
	if !kind.Valid() {
		return report.Period{}, "", echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PERIOD"})
	}

	slot := report.TimeSlotFilter(strings.TrimSpace(c.QueryParam("slot")))
	if slot == "" {
		slot = report.SlotAll
	}
	if !slot.Valid() {
		return report.Period{}, "", echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_SLOT"})
	}

	now := time.Now().In(h.Loc)
	anchor := now

	switch kind {
	case report.PeriodDaily, report.PeriodWeekly:
		if ds := strings.TrimSpace(c.QueryParam("date")); ds != "" {
			t, err := time.ParseInLocation("2006-01-02", ds, h.Loc)
			if err != nil {
				return report.Period{}, "", echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
			}
			anchor = t
		}
	case report.PeriodMonthly:
		if ms := strings.TrimSpace(c.QueryParam("month")); ms != "" {
			t, err := time.ParseInLocation("2006-01", ms, h.Loc)
			if err != nil {
				return report.Period{}, "", echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_MONTH"})
			}
			anchor = t
		}
	}

	return report.Resolve(kind, anchor, now, slot, h.Loc), slot, nil
}

// GET /dashboard/report
// โหลด snapshot ทั้งหมดแล้วรัน pipeline: filter → aggregate → rank → view model
// ไม่มีข้อมูลในช่วง = list ว่าง ไม่ใช่ error
func (h *DashboardHandler) Report(c echo.Context) error {
	p, slot, err := h.resolvePeriod(c)
	if err != nil {
		return err
	}

	var rows []models.Inspection
	if err := database.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, report.Generate(rows, p, slot))
}
