package report

import (
	"fmt"
	"time"
)

var thaiMonths = []string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var thaiMonthsAbbr = []string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var thaiWeekdays = []string{
	"อาทิตย์", "จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "ศุกร์", "เสาร์",
}

// BuddhistYear แปลง ค.ศ. → พ.ศ.
func BuddhistYear(year int) int { return year + 543 }

// ThaiFullDate เช่น "วันจันทร์ที่ 17 มิถุนายน พ.ศ. 2567"
func ThaiFullDate(t time.Time) string {
	return fmt.Sprintf("วัน%sที่ %d %s พ.ศ. %d",
		thaiWeekdays[int(t.Weekday())], t.Day(), thaiMonths[int(t.Month())-1], BuddhistYear(t.Year()))
}

// ThaiShortDate เช่น "17 มิ.ย."
func ThaiShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), thaiMonthsAbbr[int(t.Month())-1])
}

// ThaiShortDateYear เช่น "23 มิ.ย. 2567"
func ThaiShortDateYear(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonthsAbbr[int(t.Month())-1], BuddhistYear(t.Year()))
}

// ThaiMonthYear เช่น "มิถุนายน 2567"
func ThaiMonthYear(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", thaiMonths[int(month)-1], BuddhistYear(year))
}
