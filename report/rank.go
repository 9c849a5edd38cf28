package report

import "sort"

// Rank เรียงคะแนนมาก → น้อย แบบ stable: คะแนนเท่ากันคงลำดับเดิมจาก Aggregate
func Rank(scores []ClassroomScore) []ClassroomScore {
	ranked := make([]ClassroomScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// SplitByLevel แยก ม.ต้น / ม.ปลาย (คงลำดับเดิม)
func SplitByLevel(scores []ClassroomScore) (junior, senior []ClassroomScore) {
	junior = make([]ClassroomScore, 0, len(scores))
	senior = make([]ClassroomScore, 0, len(scores))
	for _, s := range scores {
		if s.Level == LevelJunior {
			junior = append(junior, s)
		} else {
			senior = append(senior, s)
		}
	}
	return junior, senior
}
