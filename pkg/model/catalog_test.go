package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddKeepsOrder(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(timed("CSC316", "001", "MW", 800, 900))
	catalog.Add(timed("CSC116", "003", "MW", 800, 900))
	catalog.Add(timed("CSC216", "001", "MW", 800, 900))
	catalog.Add(timed("CSC116", "001", "MW", 800, 900))

	require.Equal(t, 4, catalog.Len())

	var keys []CourseKey
	for i := 0; i < catalog.Len(); i++ {
		keys = append(keys, catalog.Get(i).Key())
	}
	assert.Equal(t, []CourseKey{
		{"CSC116", "001"},
		{"CSC116", "003"},
		{"CSC216", "001"},
		{"CSC316", "001"},
	}, keys)
}

func TestCatalog_AddEqualKeyGoesAfterExisting(t *testing.T) {
	catalog := NewCatalog()
	first := timed("CSC216", "001", "MW", 800, 900)
	second := timed("CSC216", "001", "TH", 1000, 1100)

	catalog.Add(first)
	catalog.Add(second)

	require.Equal(t, 2, catalog.Len())
	assert.Same(t, first, catalog.Get(0))
	assert.Same(t, second, catalog.Get(1))
}

func TestCatalog_CoursesIsCopy(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(timed("CSC216", "001", "MW", 800, 900))

	courses := catalog.Courses()
	courses[0] = nil

	assert.NotNil(t, catalog.Get(0))
}
