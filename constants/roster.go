package constants

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ครูผู้ตรวจ — login ด้วยรหัสอย่างเดียว ไม่มีรหัสผ่าน
type Teacher struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// รายชื่อรหัสครูชุด default (override ได้ด้วย ROSTER_FILE)
var TeacherCodes = []Teacher{
	{Code: "KS01", Name: "เจ้าหน้าที่ 5ส"},
	{Code: "KS02", Name: "เจ้าหน้าที่ 5ส"},
	{Code: "KS03", Name: "ภคพร"},
	{Code: "KS04", Name: "ภัทรกร"},
	{Code: "KS05", Name: "เจ้าหน้าที่ 5ส"},
	{Code: "KS06", Name: "วรัญญู"},
	{Code: "KS07", Name: "มนรดา"},
	{Code: "KS08", Name: "อภิญญา"},
	{Code: "KS09", Name: "ณิชกมล"},
	{Code: "KS10", Name: "กัลย์กมล"},
	{Code: "KS11", Name: "สุพัดตรา"},
	{Code: "KS12", Name: "อรรจน์ชนก"},
	{Code: "KS13", Name: "ปฐมพร"},
	{Code: "KS14", Name: "ฐิติมา"},
	{Code: "KS15", Name: "ขวัญหทัย"},
	{Code: "KS16", Name: "ปริยาภัทร"},
	{Code: "KS17", Name: "ไอแซค"},
	{Code: "KS18", Name: "เคธี่"},
	{Code: "KS19", Name: "พรทิวา"},
	{Code: "KS20", Name: "รามิล"},
	{Code: "KS21", Name: "วรัทยา"},
	{Code: "KS22", Name: "ชลกร"},
	{Code: "KS23", Name: "นัณทวรรณ"},
	{Code: "KS24", Name: "ณัฏฐากร"},
	{Code: "KS25", Name: "ชุติมา"},
	{Code: "KS26", Name: "ศรัณยา"},
	{Code: "KS27", Name: "ฐิติวรดา"},
	{Code: "KS28", Name: "สุพิชา"},
	{Code: "KS29", Name: "เขมิกา"},
	{Code: "KS30", Name: "อารดี"},
	{Code: "KS31", Name: "โกสินทร์"},
	{Code: "KS32", Name: "ณัฐพร"},
	{Code: "KS33", Name: "ปาริชาติ"},
	{Code: "KS34", Name: "เมธิรา ณรงค์ฤทธิ์"},
	{Code: "KS35", Name: "ฟานไลร์ อัญชลี อุมันดับ"},
	// หัวหน้าโครงการ / ผู้ดูแล ที่ต้อง login ได้ด้วย
	{Code: "ADM01", Name: "รองฯ ปฏิพัทธ์ ใจดี"},
	{Code: "ADM02", Name: "คุณครูภานุวัฒน์ ทองจันทร์"},
	{Code: "ADM03", Name: "มัลลิกา ไชยวิก"},
}

// LoadRoster อ่าน roster จากไฟล์ YAML แทนชุด default
// รูปแบบไฟล์: รายการของ {code, name}
func LoadRoster(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read roster file: %w", err)
	}
	var roster []Teacher
	if err := yaml.Unmarshal(b, &roster); err != nil {
		return fmt.Errorf("parse roster file: %w", err)
	}
	if len(roster) == 0 {
		return fmt.Errorf("roster file %s is empty", path)
	}
	for i, t := range roster {
		if strings.TrimSpace(t.Code) == "" {
			return fmt.Errorf("roster entry %d has no code", i)
		}
	}
	TeacherCodes = roster
	return nil
}

// FindTeacher หา teacher จากรหัส (ตัดช่องว่าง + ตัวพิมพ์ใหญ่ก่อนเทียบ)
func FindTeacher(code string) (Teacher, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, t := range TeacherCodes {
		if strings.ToUpper(t.Code) == normalized {
			return t, true
		}
	}
	return Teacher{}, false
}
