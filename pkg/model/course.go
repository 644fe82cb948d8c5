package model

import (
	"strconv"
	"strings"
)

// Arranged is the meeting days code of a section without a fixed class time.
const Arranged = "A"

// CourseKey identifies a course record. Two records with the same key are the same section.
type CourseKey struct {
	Name    string
	Section string
}

type Course struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Section       string `json:"section"`
	CreditHours   int    `json:"credit_hours"`
	InstructorID  string `json:"instructor_id,omitempty"`
	EnrollmentCap int    `json:"enrollment_cap"`
	MeetingDays   string `json:"meeting_days"`
	StartTime     int    `json:"start_time,omitempty"`
	EndTime       int    `json:"end_time,omitempty"`
}

// NewArrangedCourse creates a course that has no start and end time.
func NewArrangedCourse(name, title, section string, credits int, instructorID string, enrollmentCap int) *Course {
	return &Course{
		Name:          name,
		Title:         title,
		Section:       section,
		CreditHours:   credits,
		InstructorID:  instructorID,
		EnrollmentCap: enrollmentCap,
		MeetingDays:   Arranged,
	}
}

// Key returns the (name, section) pair of the course.
func (c *Course) Key() CourseKey {
	return CourseKey{Name: c.Name, Section: c.Section}
}

// IsArranged reports whether the course meets at arranged times.
func (c *Course) IsArranged() bool {
	return c.MeetingDays == Arranged
}

// IsLinked reports whether the course carries an instructor.
func (c *Course) IsLinked() bool {
	return c.InstructorID != ""
}

// String returns the course as a comma separated record line.
// Start and end time are only written for courses with fixed meeting times.
func (c *Course) String() string {
	fields := []string{
		c.Name,
		c.Title,
		c.Section,
		strconv.Itoa(c.CreditHours),
		c.InstructorID,
		strconv.Itoa(c.EnrollmentCap),
		c.MeetingDays,
	}
	if !c.IsArranged() {
		fields = append(fields, strconv.Itoa(c.StartTime), strconv.Itoa(c.EndTime))
	}
	return strings.Join(fields, ",")
}

// Compare orders courses by name, then section.
func (c *Course) Compare(other *Course) int {
	if n := strings.Compare(c.Name, other.Name); n != 0 {
		return n
	}
	return strings.Compare(c.Section, other.Section)
}

// Overlaps reports whether two courses meet on a shared day at overlapping times.
// Arranged courses never overlap. Time ranges are inclusive at both ends.
func (c *Course) Overlaps(other *Course) bool {
	if c.IsArranged() || other.IsArranged() {
		return false
	}
	if !strings.ContainsAny(c.MeetingDays, other.MeetingDays) {
		return false
	}
	return c.StartTime <= other.EndTime && other.StartTime <= c.EndTime
}
