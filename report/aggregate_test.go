package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

func TestAggregateMean(t *testing.T) {
	records := []models.Inspection{
		inspection(date(2024, time.June, 17, 8, 0, 0), "ม.1/3", "morning", 20),
		inspection(date(2024, time.June, 17, 16, 0, 0), "ม.1/3", "evening", 25),
		inspection(date(2024, time.June, 17, 8, 30, 0), "ม.4/1", "morning", 18),
	}

	got := Aggregate(records)
	assert.Len(t, got, 2)

	assert.Equal(t, "ม.1/3", got[0].Classroom)
	assert.InDelta(t, 22.5, got[0].Score, 1e-9)
	assert.Equal(t, LevelJunior, got[0].Level)

	assert.Equal(t, "ม.4/1", got[1].Classroom)
	assert.InDelta(t, 18.0, got[1].Score, 1e-9)
	assert.Equal(t, LevelSenior, got[1].Level)
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	records := []models.Inspection{
		inspection(date(2024, time.June, 17, 8, 0, 0), "ม.2/5", "morning", 20),
		inspection(date(2024, time.June, 17, 8, 5, 0), "ม.1/1", "morning", 20),
		inspection(date(2024, time.June, 17, 8, 10, 0), "ม.2/5", "evening", 20),
		inspection(date(2024, time.June, 17, 8, 15, 0), "ม.3/9", "morning", 20),
	}

	got := Aggregate(records)
	rooms := []string{got[0].Classroom, got[1].Classroom, got[2].Classroom}
	assert.Equal(t, []string{"ม.2/5", "ม.1/1", "ม.3/9"}, rooms)
}

func TestAggregateDeterministic(t *testing.T) {
	records := []models.Inspection{
		inspection(date(2024, time.June, 17, 8, 0, 0), "ม.1/3", "morning", 20),
		inspection(date(2024, time.June, 17, 8, 5, 0), "ม.5/2", "morning", 23),
		inspection(date(2024, time.June, 17, 16, 0, 0), "ม.1/3", "evening", 24),
		inspection(date(2024, time.June, 17, 8, 10, 0), "ม.2/7", "morning", 19),
	}

	first := Aggregate(records)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Aggregate(records))
	}
}

func TestAggregatePartitionComplete(t *testing.T) {
	records := []models.Inspection{
		inspection(date(2024, time.June, 17, 8, 0, 0), "ม.1/1", "morning", 20),
		inspection(date(2024, time.June, 17, 8, 0, 0), "ม.3/2", "morning", 21),
		inspection(date(2024, time.June, 17, 8, 0, 0), "ม.4/1", "morning", 22),
		inspection(date(2024, time.June, 17, 8, 0, 0), "ม.6/6", "morning", 23),
		inspection(date(2024, time.June, 17, 16, 0, 0), "ม.1/1", "evening", 24),
	}

	scores := Aggregate(records)
	junior, senior := SplitByLevel(scores)

	distinct := map[string]struct{}{}
	for _, r := range records {
		distinct[r.Classroom] = struct{}{}
	}
	assert.Equal(t, len(distinct), len(junior)+len(senior))

	for _, s := range junior {
		assert.Equal(t, LevelJunior, s.Level)
	}
	for _, s := range senior {
		assert.Equal(t, LevelSenior, s.Level)
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]models.Inspection{}))
}

func TestClassifyLevel(t *testing.T) {
	cases := []struct {
		classroom string
		want      SchoolLevel
	}{
		{"ม.1/1", LevelJunior},
		{"ม.2/10", LevelJunior},
		{"ม.3/9", LevelJunior},
		{"ม.4/1", LevelSenior},
		{"ม.5/6", LevelSenior},
		{"ม.6/6", LevelSenior},
		// ห้องนอก prefix ม.ต้น ทุกแบบตกเป็น ม.ปลาย — พฤติกรรมเดิมที่ต้องคงไว้
		{"ป.6/1", LevelSenior},
		{"ห้องพยาบาล", LevelSenior},
		{"", LevelSenior},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyLevel(tc.classroom), "classroom %q", tc.classroom)
	}
}
