package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// ExportFilename ตั้งชื่อไฟล์รายงานตามช่วงเวลาและวันที่สร้าง
// เช่น "5s-kohsamui-weekly-2024-06-17.md"
func ExportFilename(kind PeriodKind, now time.Time, ext string) string {
	return fmt.Sprintf("5s-kohsamui-%s-%s.%s", kind, now.Format("2006-01-02"), ext)
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func writeLevelTable(buf *bytes.Buffer, title string, lv LevelReport) {
	buf.WriteString("## " + title + "\n\n")

	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"อันดับ", "ห้องเรียน", "คะแนนเฉลี่ย"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)

	rows := 0
	for _, slot := range lv.Top {
		if slot.Entry == nil {
			continue
		}
		table.Append([]string{strconv.Itoa(slot.Rank), slot.Entry.Classroom, formatScore(slot.Entry.Score)})
		rows++
	}
	for _, r := range lv.Rest {
		table.Append([]string{strconv.Itoa(r.Rank), r.Classroom, formatScore(r.Score)})
		rows++
	}

	if rows == 0 {
		buf.WriteString("ไม่มีข้อมูลสำหรับช่วงเวลานี้\n\n")
		return
	}
	table.Render()
	buf.WriteString("\n")
}

// RenderMarkdown แปลง view model เป็นรายงาน markdown (หัวข้อ + ตารางต่อระดับ)
func RenderMarkdown(v View) string {
	var buf bytes.Buffer
	buf.WriteString("# ผลการประเมิน 5ส โรงเรียนเกาะสมุย\n\n")
	buf.WriteString(v.Label + "\n\n")
	writeLevelTable(&buf, "ระดับมัธยมศึกษาตอนต้น", v.Junior)
	writeLevelTable(&buf, "ระดับมัธยมศึกษาตอนปลาย", v.Senior)
	return buf.String()
}

// RenderCSV แปลง view model เป็น CSV (level,rank,classroom,score)
func RenderCSV(v View) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"level", "rank", "classroom", "score"}); err != nil {
		return "", err
	}
	writeLevel := func(level string, lv LevelReport) error {
		for _, slot := range lv.Top {
			if slot.Entry == nil {
				continue
			}
			if err := w.Write([]string{level, strconv.Itoa(slot.Rank), slot.Entry.Classroom, formatScore(slot.Entry.Score)}); err != nil {
				return err
			}
		}
		for _, r := range lv.Rest {
			if err := w.Write([]string{level, strconv.Itoa(r.Rank), r.Classroom, formatScore(r.Score)}); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeLevel("junior", v.Junior); err != nil {
		return "", err
	}
	if err := writeLevel("senior", v.Senior); err != nil {
		return "", err
	}
	w.Flush()
	return buf.String(), w.Error()
}
