package report

import (
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

// PodiumSize จำนวนแท่นรางวัลต่อระดับ
const PodiumSize = 5

// ช่องบนแท่นรางวัล — ช่องที่ยังไม่มีข้อมูลแสดงแค่เลขอันดับ (Entry = nil)
type PodiumSlot struct {
	Rank  int             `json:"rank"`
	Entry *ClassroomScore `json:"entry,omitempty"`
}

// แถวในตาราง "อันดับถัดไป" เริ่มนับจากอันดับ 6
type RankedScore struct {
	Rank      int     `json:"rank"`
	Classroom string  `json:"classroom"`
	Score     float64 `json:"score"`
}

type LevelReport struct {
	Top  []PodiumSlot  `json:"top"`
	Rest []RankedScore `json:"rest"`
}

// View คือ view model ของหน้ารายงาน — ส่งให้ FE และตัว export ใช้ตรงๆ
type View struct {
	Label  string      `json:"label"`
	Junior LevelReport `json:"junior"`
	Senior LevelReport `json:"senior"`
}

func buildLevel(ranked []ClassroomScore) LevelReport {
	top := make([]PodiumSlot, PodiumSize)
	for i := range top {
		top[i].Rank = i + 1
		if i < len(ranked) {
			entry := ranked[i]
			top[i].Entry = &entry
		}
	}

	rest := make([]RankedScore, 0)
	for i := PodiumSize; i < len(ranked); i++ {
		rest = append(rest, RankedScore{
			Rank:      i + 1,
			Classroom: ranked[i].Classroom,
			Score:     ranked[i].Score,
		})
	}
	return LevelReport{Top: top, Rest: rest}
}

// Build ประกอบ view model จากลิสต์ที่เรียงอันดับแล้วของแต่ละระดับ
func Build(label string, juniorRanked, seniorRanked []ClassroomScore) View {
	return View{
		Label:  label,
		Junior: buildLevel(juniorRanked),
		Senior: buildLevel(seniorRanked),
	}
}

// Generate รัน pipeline ทั้งเส้น: filter → aggregate → split → rank → build
// pure function ของ (records, period, slot) — ข้อมูลชุดเดิมได้ผลเดิมเสมอ
func Generate(records []models.Inspection, p Period, slot TimeSlotFilter) View {
	filtered := Filter(records, p, slot)
	scores := Aggregate(filtered)
	junior, senior := SplitByLevel(scores)
	return Build(p.Label, Rank(junior), Rank(senior))
}
