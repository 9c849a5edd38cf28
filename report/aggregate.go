package report

import (
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

// คะแนนเฉลี่ยของห้องหนึ่งในช่วงเวลาที่เลือก — คำนวณใหม่ทุกครั้ง ไม่เก็บลง DB
type ClassroomScore struct {
	Classroom string      `json:"classroom"`
	Score     float64     `json:"score"`
	Level     SchoolLevel `json:"level"`
}

// Filter คัดเฉพาะผลตรวจที่อยู่ในช่วงเวลา และ (เฉพาะรายวัน) ตรงรอบที่เลือก
func Filter(records []models.Inspection, p Period, slot TimeSlotFilter) []models.Inspection {
	out := make([]models.Inspection, 0, len(records))
	for _, r := range records {
		if !p.Contains(r.Date) {
			continue
		}
		if p.Kind == PeriodDaily && slot != "" && slot != SlotAll && r.TimeSlot != string(slot) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Aggregate จัดกลุ่มผลตรวจตามห้อง แล้วเฉลี่ย totalScore ที่บันทึกไว้ตอน save
// ลำดับผลลัพธ์ = ลำดับที่เจอห้องครั้งแรกใน records (ทำให้ผลเท่ากันเรียงคงที่)
func Aggregate(records []models.Inspection) []ClassroomScore {
	type bucket struct {
		total int
		count int
	}
	sums := make(map[string]*bucket)
	order := make([]string, 0)

	for _, r := range records {
		b, ok := sums[r.Classroom]
		if !ok {
			b = &bucket{}
			sums[r.Classroom] = b
			order = append(order, r.Classroom)
		}
		b.total += r.TotalScore
		b.count++
	}

	out := make([]ClassroomScore, 0, len(order))
	for _, room := range order {
		b := sums[room]
		out = append(out, ClassroomScore{
			Classroom: room,
			Score:     float64(b.total) / float64(b.count),
			Level:     ClassifyLevel(room),
		})
	}
	return out
}
