package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankDescending(t *testing.T) {
	scores := []ClassroomScore{
		{Classroom: "ม.1/1", Score: 18.5, Level: LevelJunior},
		{Classroom: "ม.1/2", Score: 24.0, Level: LevelJunior},
		{Classroom: "ม.1/3", Score: 21.25, Level: LevelJunior},
		{Classroom: "ม.1/4", Score: 25.0, Level: LevelJunior},
	}

	ranked := Rank(scores)
	for i := 0; i+1 < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i].Score, ranked[i+1].Score)
	}
	assert.Equal(t, "ม.1/4", ranked[0].Classroom)
	assert.Equal(t, "ม.1/1", ranked[len(ranked)-1].Classroom)
}

func TestRankStableTies(t *testing.T) {
	// คะแนนเท่ากันต้องคงลำดับที่ห้องโผล่ครั้งแรกใน Aggregate
	scores := []ClassroomScore{
		{Classroom: "ม.2/1", Score: 20, Level: LevelJunior},
		{Classroom: "ม.2/2", Score: 25, Level: LevelJunior},
		{Classroom: "ม.2/3", Score: 20, Level: LevelJunior},
		{Classroom: "ม.2/4", Score: 20, Level: LevelJunior},
	}

	ranked := Rank(scores)
	assert.Equal(t, "ม.2/2", ranked[0].Classroom)
	assert.Equal(t, "ม.2/1", ranked[1].Classroom)
	assert.Equal(t, "ม.2/3", ranked[2].Classroom)
	assert.Equal(t, "ม.2/4", ranked[3].Classroom)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	scores := []ClassroomScore{
		{Classroom: "ม.1/1", Score: 10},
		{Classroom: "ม.1/2", Score: 30},
	}
	_ = Rank(scores)
	assert.Equal(t, "ม.1/1", scores[0].Classroom)
}
