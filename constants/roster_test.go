package constants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindTeacher(t *testing.T) {
	teacher, ok := FindTeacher("KS03")
	assert.True(t, ok)
	assert.Equal(t, "ภคพร", teacher.Name)

	// รหัสพิมพ์เล็ก/มีช่องว่างต้องเจอเหมือนกัน
	teacher, ok = FindTeacher("  ks03 ")
	assert.True(t, ok)
	assert.Equal(t, "KS03", teacher.Code)

	_, ok = FindTeacher("KS99")
	assert.False(t, ok)

	_, ok = FindTeacher("")
	assert.False(t, ok)
}

func TestLoadRoster(t *testing.T) {
	orig := TeacherCodes
	defer func() { TeacherCodes = orig }()

	path := filepath.Join(t.TempDir(), "roster.yaml")
	body := "- code: TT01\n  name: ครูทดสอบ\n- code: TT02\n  name: ครูสอง\n"
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	assert.NoError(t, LoadRoster(path))
	assert.Len(t, TeacherCodes, 2)

	teacher, ok := FindTeacher("tt01")
	assert.True(t, ok)
	assert.Equal(t, "ครูทดสอบ", teacher.Name)

	// ชุดเดิมถูกแทนทั้งชุด
	_, ok = FindTeacher("KS01")
	assert.False(t, ok)
}

func TestLoadRosterErrors(t *testing.T) {
	orig := TeacherCodes
	defer func() { TeacherCodes = orig }()

	assert.Error(t, LoadRoster(filepath.Join(t.TempDir(), "missing.yaml")))

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	assert.NoError(t, os.WriteFile(empty, []byte("[]\n"), 0o644))
	assert.Error(t, LoadRoster(empty))

	noCode := filepath.Join(t.TempDir(), "nocode.yaml")
	assert.NoError(t, os.WriteFile(noCode, []byte("- name: ไม่มีรหัส\n"), 0o644))
	assert.Error(t, LoadRoster(noCode))
}

func TestClassroomsGenerated(t *testing.T) {
	// 10+10+9+6+6+6 ห้อง
	assert.Len(t, Classrooms, 47)
	assert.Equal(t, "ม.1/1", Classrooms[0])
	assert.Contains(t, Classrooms, "ม.3/9")
	assert.Contains(t, Classrooms, "ม.6/6")
	assert.NotContains(t, Classrooms, "ม.3/10")
	assert.NotContains(t, Classrooms, "ม.4/7")
}
