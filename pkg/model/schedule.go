package model

import (
	"errors"
	"fmt"
	"slices"
)

var ErrAlreadyScheduled = errors.New("course already on schedule")

// ConflictError is returned when a course overlaps one already on the schedule.
type ConflictError struct {
	Course   CourseKey
	Existing CourseKey
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s-%s conflicts with scheduled %s-%s",
		e.Course.Name, e.Course.Section, e.Existing.Name, e.Existing.Section)
}

// FacultySchedule is the list of courses a faculty member teaches.
type FacultySchedule struct {
	FacultyID string
	courses   []*Course
}

/* NewFacultySchedule creates an empty schedule. */
func NewFacultySchedule(facultyID string) *FacultySchedule {
	return &FacultySchedule{FacultyID: facultyID}
}

// AddCourse appends the course unless a course with the same name is already
// scheduled or the course overlaps a scheduled one.
func (s *FacultySchedule) AddCourse(course *Course) error {
	for _, c := range s.courses {
		if c.Name == course.Name {
			return fmt.Errorf("%w: %s", ErrAlreadyScheduled, course.Name)
		}
		if c.Overlaps(course) {
			return &ConflictError{Course: course.Key(), Existing: c.Key()}
		}
	}
	s.courses = append(s.courses, course)
	return nil
}

// RemoveCourse drops the course with the given key. Returns false if it was not scheduled.
func (s *FacultySchedule) RemoveCourse(key CourseKey) bool {
	i := slices.IndexFunc(s.courses, func(c *Course) bool { return c.Key() == key })
	if i < 0 {
		return false
	}
	s.courses = slices.Delete(s.courses, i, i+1)
	return true
}

func (s *FacultySchedule) Len() int {
	return len(s.courses)
}

// Courses returns the scheduled courses in the order they were added.
func (s *FacultySchedule) Courses() []*Course {
	return slices.Clone(s.courses)
}

func (s *FacultySchedule) Reset() {
	s.courses = nil
}
