package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// BuildDocKey สร้าง key เอกสารแบบ deterministic: วัน + ห้อง + รอบ
// แทน "/" ในชื่อห้องด้วย "-" ให้ใช้เป็น id ได้ เช่น "2024-06-17_ม.1-3_morning"
func BuildDocKey(date time.Time, classroom, timeSlot string) string {
	safeRoom := strings.ReplaceAll(classroom, "/", "-")
	return fmt.Sprintf("%s_%s_%s", date.Format("2006-01-02"), safeRoom, timeSlot)
}

// คะแนนรายเกณฑ์ (5ส) หนึ่งรายการ — เก็บรวมใน inspections.scores (jsonb)
type CriterionScore struct {
	CriterionID   string `json:"criterionId"`
	CriterionName string `json:"criterionName"`
	Score         int    `json:"score"` // 0–5 (0 = ยังไม่ให้คะแนน)
}

type ScoreList []CriterionScore

func (s ScoreList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ScoreList) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("scores: unsupported column type")
	}
	return json.Unmarshal(b, s)
}

// ผลตรวจ 5ส ของห้องเรียน 1 ห้อง ต่อ 1 วัน ต่อ 1 รอบ (เช้า/เย็น)
// DocKey = "YYYY-MM-DD_<ห้องแทน / ด้วย ->_<รอบ>" — บันทึกซ้ำวัน/ห้อง/รอบเดิมจะทับของเก่า
type Inspection struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	DocKey      string    `json:"id" gorm:"size:60;uniqueIndex;not null"`
	Date        time.Time `json:"date" gorm:"index;not null"`
	TimeSlot    string    `json:"timeSlot" gorm:"size:10;not null"` // morning|evening
	Classroom   string    `json:"classroom" gorm:"size:20;index;not null"`
	Inspector   string    `json:"inspector" gorm:"size:120"`
	InspectorID string    `json:"inspectorId" gorm:"size:20"`
	Scores      ScoreList `json:"scores" gorm:"type:jsonb"`
	TotalScore  int       `json:"totalScore" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
