package report

import (
	"strings"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/constants"
)

type SchoolLevel string

const (
	LevelJunior SchoolLevel = "junior"
	LevelSenior SchoolLevel = "senior"
)

// ClassifyLevel แยกระดับจาก prefix ชื่อห้อง
// ห้องที่ไม่ขึ้นต้นด้วย ม.1–ม.3 นับเป็น ม.ปลายทั้งหมด รวมถึงชื่อห้องที่
// สะกดผิดรูปแบบ (พฤติกรรมเดิมของระบบ — ห้ามเปลี่ยนโดยไม่เคลียร์กับฝ่ายกิจการ)
func ClassifyLevel(classroom string) SchoolLevel {
	for _, prefix := range constants.JuniorHighPrefixes {
		if strings.HasPrefix(classroom, prefix) {
			return LevelJunior
		}
	}
	return LevelSenior
}
