package main

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/rhyrak/pack-scheduler/internal/csvio"
	"github.com/rhyrak/pack-scheduler/internal/scheduler"
	"github.com/rhyrak/pack-scheduler/pkg/model"
)

// catalogState is the catalog and faculty directory shared by all handlers.
// Course records mutate faculty schedules, so every access goes through mu.
type catalogState struct {
	mu        sync.Mutex
	directory *model.FacultyDirectory
	catalog   *model.Catalog
	records   *csvio.CourseRecords
	logger    *slog.Logger
}

func newCatalogState(directory *model.FacultyDirectory, logger *slog.Logger) *catalogState {
	return &catalogState{
		directory: directory,
		catalog:   model.NewCatalog(),
		records:   csvio.NewCourseRecords(directory, csvio.WithLogger(logger)),
		logger:    logger,
	}
}

// load imports the course file at path and replaces the catalog.
func (s *catalogState) load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory.ResetSchedules()
	catalog, err := s.records.Read(path)
	if err != nil {
		s.relink()
		return err
	}
	s.catalog = catalog
	return nil
}

// replace imports course records from r. Faculty schedules are rebuilt from scratch.
func (s *catalogState) replace(r io.Reader) (csvio.ImportReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory.ResetSchedules()
	catalog, report, err := s.records.ReadFrom(r)
	if err != nil {
		s.relink()
		return report, err
	}
	s.catalog = catalog
	return report, nil
}

// relink rebuilds faculty schedules from the catalog being served, undoing a
// partial import. Callers hold mu.
func (s *catalogState) relink() {
	s.directory.ResetSchedules()
	for _, c := range s.catalog.Courses() {
		if !c.IsLinked() {
			continue
		}
		f := s.directory.FacultyByID(c.InstructorID)
		if f == nil {
			continue
		}
		if err := f.Schedule().AddCourse(c); err != nil {
			s.logger.Warn("course not restored to schedule", "name", c.Name, "section", c.Section, "error", err)
		}
	}
}

func (s *catalogState) courses() []*model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Courses()
}

// export writes the catalog to path and returns the written bytes, read back
// before another export can truncate the file.
func (s *catalogState) export(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.records.Write(path, s.catalog); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// schedule returns a nil faculty when id is unknown.
func (s *catalogState) schedule(id string) (*model.Faculty, []*model.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.directory.FacultyByID(id)
	if f == nil {
		return nil, nil, false
	}
	return f, f.Schedule().Courses(), f.IsOverloaded()
}

func (s *catalogState) validate() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scheduler.Validate(s.directory)
}
