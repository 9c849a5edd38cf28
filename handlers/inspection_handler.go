package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/constants"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/database"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

type InspectionHandler struct {
	Loc *time.Location
}

func NewInspectionHandler(loc *time.Location) *InspectionHandler {
	return &InspectionHandler{Loc: loc}
}

type SubmitScoreReq struct {
	CriterionID string `json:"criterionId" validate:"required"`
	Score       int    `json:"score" validate:"min=0,max=5"`
}

type SubmitInspectionReq struct {
	Classroom string           `json:"classroom" validate:"required"`
	TimeSlot  string           `json:"timeSlot" validate:"required,oneof=morning evening"`
	Scores    []SubmitScoreReq `json:"scores" validate:"required,len=5,dive"`
}

// POST /teacher/inspections
// บันทึกผลตรวจ — ห้อง/วัน/รอบเดิมมีอยู่แล้วจะทับของเก่า (upsert ด้วย doc_key)
func (h *InspectionHandler) Submit(c echo.Context) error {
	var req SubmitInspectionReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	classroom := strings.TrimSpace(req.Classroom)
	if !validClassroom(classroom) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "UNKNOWN_CLASSROOM"})
	}

	// เติมชื่อเกณฑ์จากชุดกลาง — FE ส่งมาแค่ id + คะแนน
	scores := make(models.ScoreList, 0, len(req.Scores))
	total := 0
	for _, s := range req.Scores {
		criterion, ok := findCriterion(s.CriterionID)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "UNKNOWN_CRITERION"})
		}
		scores = append(scores, models.CriterionScore{
			CriterionID:   criterion.ID,
			CriterionName: criterion.Name,
			Score:         s.Score,
		})
		total += s.Score
	}

	// provenance จาก token ของครูที่ login อยู่
	inspector, _ := c.Get("name").(string)
	inspectorID, _ := c.Get("user_code").(string)

	now := time.Now().In(h.Loc)
	rec := models.Inspection{
		DocKey:      models.BuildDocKey(now, classroom, req.TimeSlot),
		Date:        now,
		TimeSlot:    req.TimeSlot,
		Classroom:   classroom,
		Inspector:   inspector,
		InspectorID: inspectorID,
		Scores:      scores,
		TotalScore:  total,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"date", "inspector", "inspector_id", "scores", "total_score", "updated_at",
		}),
	}).Create(&rec).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	inspectionChanges.notify()
	return c.JSON(http.StatusOK, rec)
}

// GET /inspections
// snapshot ทั้งหมด เรียงวันที่ล่าสุดก่อน (แบบเดียวกับที่หน้า dashboard subscribe)
func (h *InspectionHandler) List(c echo.Context) error {
	var rows []models.Inspection
	if err := database.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /teacher/inspections/current?classroom=ม.1/3&slot=morning
// ผลตรวจของวันนี้ในห้อง/รอบนั้น ถ้ามี — ให้ฟอร์มขึ้นเตือนว่าตรวจไปแล้ว
func (h *InspectionHandler) Current(c echo.Context) error {
	classroom := strings.TrimSpace(c.QueryParam("classroom"))
	slot := strings.TrimSpace(c.QueryParam("slot"))
	if classroom == "" || slot == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	docKey := models.BuildDocKey(time.Now().In(h.Loc), classroom, slot)
	var rec models.Inspection
	if err := database.DB.Where("doc_key = ?", docKey).First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rec)
}

func validClassroom(room string) bool {
	for _, r := range constants.Classrooms {
		if r == room {
			return true
		}
	}
	return false
}

func findCriterion(id string) (constants.Criterion, bool) {
	for _, cr := range constants.FiveSCriteria {
		if cr.ID == id {
			return cr, true
		}
	}
	return constants.Criterion{}, false
}
