package report

import (
	"fmt"
	"time"
)

type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodTerm1   PeriodKind = "term1"
	PeriodTerm2   PeriodKind = "term2"
)

func (k PeriodKind) Valid() bool {
	switch k {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodTerm1, PeriodTerm2:
		return true
	}
	return false
}

type TimeSlotFilter string

const (
	SlotAll     TimeSlotFilter = "all"
	SlotMorning TimeSlotFilter = "morning"
	SlotEvening TimeSlotFilter = "evening"
)

func (s TimeSlotFilter) Valid() bool {
	return s == SlotAll || s == SlotMorning || s == SlotEvening
}

// Period คือช่วงเวลาที่ resolve แล้วจากตัวเลือกบน dashboard
//
// daily/weekly ใช้ช่วงเวลาแบบ [Start, End] (รวมปลายทั้งสองข้าง)
// monthly เทียบเดือน+ปีตรงกัน (Year/Month)
// term1/term2 เทียบช่วงเดือนของปีการศึกษา (AcademicYear)
type Period struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time

	Year  int
	Month time.Month

	AcademicYear int

	Label string

	loc *time.Location
}

func (p Period) location() *time.Location {
	if p.loc != nil {
		return p.loc
	}
	return time.Local
}

// academicYearOf ปีการศึกษาปัจจุบัน: ม.ค.–เม.ย. ยังนับเป็นปีการศึกษาของปีก่อน
// (เปิดเทอม 1 เดือนพฤษภาคม)
func academicYearOf(now time.Time) int {
	year := now.Year()
	if now.Month() < time.May {
		year--
	}
	return year
}

// Resolve แปลง (ชนิดช่วงเวลา, วัน/เดือนที่เลือก) เป็นช่วงเวลาพร้อม label ภาษาไทย
//
// anchor ใช้กับ daily/weekly (วันที่เลือก) และ monthly (เอาเฉพาะเดือน+ปี)
// now ใช้เฉพาะหาปีการศึกษาปัจจุบันของ term1/term2
// slot มีผลเฉพาะ label ของ daily
func Resolve(kind PeriodKind, anchor, now time.Time, slot TimeSlotFilter, loc *time.Location) Period {
	if loc == nil {
		loc = time.Local
	}
	p := Period{Kind: kind, loc: loc}

	switch kind {
	case PeriodDaily:
		y, m, d := anchor.In(loc).Date()
		p.Start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		p.End = time.Date(y, m, d, 23, 59, 59, 0, loc)

		slotLabel := ""
		switch slot {
		case SlotMorning:
			slotLabel = " (รอบเช้า)"
		case SlotEvening:
			slotLabel = " (รอบเย็น)"
		}
		p.Label = fmt.Sprintf("รายวัน%s (%s)", slotLabel, ThaiFullDate(p.Start))

	case PeriodWeekly:
		y, m, d := anchor.In(loc).Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		// สัปดาห์เริ่มวันจันทร์ — อาทิตย์นับเป็นวันที่ 7 ของสัปดาห์ก่อนหน้า
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		p.Start = day.AddDate(0, 0, -(weekday - 1))
		endDay := p.Start.AddDate(0, 0, 6)
		p.End = time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 0, loc)
		p.Label = fmt.Sprintf("รายสัปดาห์ (%s - %s)", ThaiShortDate(p.Start), ThaiShortDateYear(p.End))

	case PeriodMonthly:
		a := anchor.In(loc)
		p.Year = a.Year()
		p.Month = a.Month()
		p.Label = fmt.Sprintf("รายเดือน (%s)", ThaiMonthYear(p.Year, p.Month))

	case PeriodTerm1:
		p.AcademicYear = academicYearOf(now.In(loc))
		p.Label = fmt.Sprintf("เทอม 1 ปีการศึกษา %d", BuddhistYear(p.AcademicYear))

	case PeriodTerm2:
		p.AcademicYear = academicYearOf(now.In(loc))
		p.Label = fmt.Sprintf("เทอม 2 ปีการศึกษา %d", BuddhistYear(p.AcademicYear))
	}

	return p
}

// Contains ตรวจว่า timestamp หนึ่งอยู่ในช่วงเวลานี้หรือไม่
// ค่า zero (วันที่เสีย/ไม่มี) ไม่อยู่ในช่วงไหนทั้งสิ้น
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	d := t.In(p.location())

	switch p.Kind {
	case PeriodDaily, PeriodWeekly:
		return !d.Before(p.Start) && !d.After(p.End)
	case PeriodMonthly:
		return d.Month() == p.Month && d.Year() == p.Year
	case PeriodTerm1:
		// พ.ค.–ก.ย. ของปีการศึกษา
		return d.Year() == p.AcademicYear && d.Month() >= time.May && d.Month() <= time.September
	case PeriodTerm2:
		// พ.ย.–ธ.ค. ของปีการศึกษา + ม.ค.–มี.ค. ของปีถัดไป
		return (d.Year() == p.AcademicYear && d.Month() >= time.November) ||
			(d.Year() == p.AcademicYear+1 && d.Month() <= time.March)
	}
	return false
}
