package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacultySchedule_AddCourse(t *testing.T) {
	schedule := NewFacultySchedule("jdyoung2")

	require.NoError(t, schedule.AddCourse(timed("CSC216", "001", "MW", 1330, 1445)))
	require.NoError(t, schedule.AddCourse(NewArrangedCourse("CSC230", "C and Software Tools", "601", 3, "", 10)))

	err := schedule.AddCourse(timed("CSC216", "002", "TH", 800, 915))
	assert.ErrorIs(t, err, ErrAlreadyScheduled)

	err = schedule.AddCourse(timed("CSC316", "001", "W", 1400, 1515))
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, CourseKey{"CSC316", "001"}, conflict.Course)
	assert.Equal(t, CourseKey{"CSC216", "001"}, conflict.Existing)

	assert.Equal(t, 2, schedule.Len())
}

func TestFacultySchedule_RemoveAndReset(t *testing.T) {
	schedule := NewFacultySchedule("jdyoung2")
	require.NoError(t, schedule.AddCourse(timed("CSC216", "001", "MW", 1330, 1445)))
	require.NoError(t, schedule.AddCourse(timed("CSC316", "001", "TH", 1330, 1445)))

	assert.True(t, schedule.RemoveCourse(CourseKey{"CSC216", "001"}))
	assert.False(t, schedule.RemoveCourse(CourseKey{"CSC216", "001"}))
	assert.Equal(t, 1, schedule.Len())

	schedule.Reset()
	assert.Zero(t, schedule.Len())
}

func TestFaculty_IsOverloaded(t *testing.T) {
	f := &Faculty{ID: "jdyoung2", MaxCourses: 1}
	assert.False(t, f.IsOverloaded())

	require.NoError(t, f.Schedule().AddCourse(timed("CSC216", "001", "MW", 1330, 1445)))
	assert.False(t, f.IsOverloaded())

	require.NoError(t, f.Schedule().AddCourse(timed("CSC316", "001", "TH", 1330, 1445)))
	assert.True(t, f.IsOverloaded())
	assert.Equal(t, "jdyoung2", f.Schedule().FacultyID)
}

func TestFacultyDirectory(t *testing.T) {
	directory := NewFacultyDirectory()

	require.NoError(t, directory.Add(&Faculty{ID: "jdyoung2", FirstName: "Jeff", LastName: "Young"}))
	require.NoError(t, directory.Add(&Faculty{ID: "bbrown", FirstName: "Bob", LastName: "Brown"}))
	require.NoError(t, directory.Add(&Faculty{ID: "abrown", FirstName: "Bob", LastName: "Brown"}))

	assert.ErrorIs(t, directory.Add(&Faculty{ID: "jdyoung2"}), ErrDuplicateFacultyID)
	assert.ErrorIs(t, directory.Add(&Faculty{}), ErrEmptyFacultyID)

	assert.Equal(t, 3, directory.Len())
	assert.Nil(t, directory.FacultyByID("nobody"))
	assert.Equal(t, "Jeff Young", directory.FacultyByID("jdyoung2").FullName())

	var ids []string
	for _, f := range directory.Faculty() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"abrown", "bbrown", "jdyoung2"}, ids)

	require.NoError(t, directory.FacultyByID("jdyoung2").Schedule().AddCourse(timed("CSC216", "001", "MW", 1330, 1445)))
	directory.ResetSchedules()
	assert.Zero(t, directory.FacultyByID("jdyoung2").Schedule().Len())
}
