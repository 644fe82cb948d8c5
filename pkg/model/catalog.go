package model

import "slices"

// Catalog keeps courses sorted by name and section.
// Duplicate keys are not rejected; callers that need uniqueness check Key themselves.
type Catalog struct {
	courses []*Course
}

func NewCatalog() *Catalog {
	return &Catalog{courses: []*Course{}}
}

// Add inserts the course at its sorted position, after any course with an equal key.
func (c *Catalog) Add(course *Course) {
	i, _ := slices.BinarySearchFunc(c.courses, course, func(e, t *Course) int {
		if cmp := e.Compare(t); cmp != 0 {
			return cmp
		}
		return -1
	})
	c.courses = slices.Insert(c.courses, i, course)
}

func (c *Catalog) Len() int {
	return len(c.courses)
}

// Get returns the course at index i. It panics when i is out of range.
func (c *Catalog) Get(i int) *Course {
	return c.courses[i]
}

// Courses returns a copy of the sorted course list.
func (c *Catalog) Courses() []*Course {
	return slices.Clone(c.courses)
}
