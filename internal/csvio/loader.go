package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/pack-scheduler/pkg/model"
)

// LoadFaculty reads and parses given csv file for faculty data.
// The file needs a header row with id, first_name, last_name, email and max_courses.
// Rows without an id or repeating an id are skipped.
func LoadFaculty(path string, delim rune) (*model.FacultyDirectory, error) {
	facultyFile, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Op: "open", Path: path, Err: err}
	}
	defer facultyFile.Close()

	r := csv.NewReader(facultyFile)
	r.Comma = delim
	r.TrimLeadingSpace = true

	_faculty := []*model.Faculty{}
	if err := gocsv.UnmarshalCSV(r, &_faculty); err != nil {
		return nil, fmt.Errorf("parse faculty data from %s: %w", path, err)
	}

	directory := model.NewFacultyDirectory()
	for i, f := range _faculty {
		f.ID = strings.TrimSpace(f.ID)
		if err := directory.Add(f); err != nil {
			if !errors.Is(err, model.ErrEmptyFacultyID) && !errors.Is(err, model.ErrDuplicateFacultyID) {
				return nil, err
			}
			// Row numbers count the header as row 1.
			slog.Warn("skipping faculty row", "path", path, "row", i+2, "error", err)
		}
	}

	return directory, nil
}
