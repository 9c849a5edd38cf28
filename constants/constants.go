package constants

import "fmt"

const AppVersion = "1.2.23"

// เกณฑ์ 5ส ทั้งห้าข้อ — ลำดับคงที่ ใช้ชุดเดียวกันทุกการตรวจ
type Criterion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var FiveSCriteria = []Criterion{
	{ID: "seiri", Name: "สะสาง (Seiri)", Description: "การแยกของที่จำเป็นออกจากของที่ไม่จำเป็น"},
	{ID: "seiton", Name: "สะดวก (Seiton)", Description: "การจัดวางของที่จำเป็นให้เป็นระเบียบและง่ายต่อการใช้งาน"},
	{ID: "seiso", Name: "สะอาด (Seiso)", Description: "การทำความสะอาดสถานที่ อุปกรณ์ และสิ่งของต่างๆ"},
	{ID: "seiketsu", Name: "สุขลักษณะ (Seiketsu)", Description: "การรักษาสภาพแวดล้อมให้ถูกสุขลักษณะและปลอดภัย"},
	{ID: "shitsuke", Name: "สร้างนิสัย (Shitsuke)", Description: "การปฏิบัติตามหลัก 4ส แรกอย่างสม่ำเสมอจนเป็นนิสัย"},
}

// จำนวนห้องต่อระดับชั้น ม.1–ม.6
var roomsPerGrade = [6]int{10, 10, 9, 6, 6, 6}

// Classrooms คือรายชื่อห้องทั้งหมด "ม.<ชั้น>/<ห้อง>" เรียงตามชั้นแล้วตามห้อง
var Classrooms = buildClassrooms()

func buildClassrooms() []string {
	var out []string
	for grade, n := range roomsPerGrade {
		for room := 1; room <= n; room++ {
			out = append(out, fmt.Sprintf("ม.%d/%d", grade+1, room))
		}
	}
	return out
}

// ผังอาคาร → ห้องเรียน ตามแผนผังโรงเรียน
type Building struct {
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}

var BuildingRoomMapping = []Building{
	{
		Name:  "อาคาร 4",
		Rooms: []string{"ม.1/9", "ม.1/10", "ม.2/3", "ม.2/4", "ม.2/5", "ม.2/6", "ม.2/7", "ม.2/8", "ม.2/9", "ม.2/10"},
	},
	{
		Name:  "อาคาร 9",
		Rooms: []string{"ม.1/2", "ม.2/2", "ม.3/2"},
	},
	{
		Name:  "อาคาร 10",
		Rooms: []string{"ม.3/3", "ม.3/4", "ม.3/5", "ม.4/6", "ม.5/6", "ม.6/6"},
	},
	{
		Name:  "อาคาร 11",
		Rooms: []string{"ม.1/3", "ม.1/4", "ม.1/5", "ม.1/6", "ม.1/7", "ม.1/8"},
	},
	{
		Name: "อาคาร 12",
		Rooms: []string{
			"ม.1/1", "ม.2/1", "ม.3/1",
			"ม.4/1", "ม.4/2", "ม.4/3", "ม.4/4", "ม.4/5",
			"ม.5/1", "ม.5/2", "ม.5/3", "ม.5/4", "ม.5/5",
			"ม.6/1", "ม.6/2", "ม.6/3", "ม.6/4", "ม.6/5",
		},
	},
	{
		Name:  "อาคารนักกีฬา",
		Rooms: []string{"ม.3/6", "ม.3/7", "ม.3/8", "ม.3/9"},
	},
}

// prefix สำหรับแยกระดับ ม.ต้น / ม.ปลาย
var (
	JuniorHighPrefixes = []string{"ม.1", "ม.2", "ม.3"}
	SeniorHighPrefixes = []string{"ม.4", "ม.5", "ม.6"}
)
