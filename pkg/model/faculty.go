package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyFacultyID     = errors.New("faculty id must not be empty")
	ErrDuplicateFacultyID = errors.New("faculty id already in directory")
)

type Faculty struct {
	ID         string           `csv:"id" json:"id"`
	FirstName  string           `csv:"first_name" json:"first_name"`
	LastName   string           `csv:"last_name" json:"last_name"`
	Email      string           `csv:"email" json:"email"`
	MaxCourses int              `csv:"max_courses" json:"max_courses"`
	schedule   *FacultySchedule `csv:"-"`
}

// Schedule returns the faculty member's schedule, creating it on first use.
func (f *Faculty) Schedule() *FacultySchedule {
	if f.schedule == nil {
		f.schedule = NewFacultySchedule(f.ID)
	}
	return f.schedule
}

// IsOverloaded reports whether more courses are scheduled than MaxCourses allows.
func (f *Faculty) IsOverloaded() bool {
	return f.Schedule().Len() > f.MaxCourses
}

func (f *Faculty) FullName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

// FacultyDirectory holds faculty members by id.
type FacultyDirectory struct {
	byID map[string]*Faculty
}

func NewFacultyDirectory() *FacultyDirectory {
	return &FacultyDirectory{byID: make(map[string]*Faculty)}
}

// Add registers a faculty member. Ids are unique within a directory.
func (d *FacultyDirectory) Add(f *Faculty) error {
	if f.ID == "" {
		return ErrEmptyFacultyID
	}
	if _, exists := d.byID[f.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFacultyID, f.ID)
	}
	d.byID[f.ID] = f
	return nil
}

// FacultyByID returns nil for unknown ids.
func (d *FacultyDirectory) FacultyByID(id string) *Faculty {
	return d.byID[id]
}

func (d *FacultyDirectory) Len() int {
	return len(d.byID)
}

// Faculty lists all members sorted by last name, first name and id.
func (d *FacultyDirectory) Faculty() []*Faculty {
	list := make([]*Faculty, 0, len(d.byID))
	for _, f := range d.byID {
		list = append(list, f)
	}
	slices.SortFunc(list, func(f1, f2 *Faculty) int {
		if last := strings.Compare(f1.LastName, f2.LastName); last != 0 {
			return last
		}
		if first := strings.Compare(f1.FirstName, f2.FirstName); first != 0 {
			return first
		}
		return strings.Compare(f1.ID, f2.ID)
	})
	return list
}

// ResetSchedules empties every faculty schedule. Use before importing a catalog again.
func (d *FacultyDirectory) ResetSchedules() {
	for _, f := range d.byID {
		f.Schedule().Reset()
	}
}
