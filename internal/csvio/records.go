package csvio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rhyrak/pack-scheduler/pkg/model"
)

// ErrFileAccess matches errors raised when an input or output file cannot be opened or created.
var ErrFileAccess = errors.New("file not accessible")

// AccessError wraps the underlying file system error.
type AccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

func (e *AccessError) Is(target error) bool {
	return target == ErrFileAccess
}

// Directory resolves instructor ids. *model.FacultyDirectory satisfies it.
type Directory interface {
	FacultyByID(id string) *model.Faculty
}

// ImportReport summarizes one import run.
type ImportReport struct {
	ImportID   string `json:"import_id"`
	Lines      int    `json:"lines"`
	Accepted   int    `json:"accepted"`
	Skipped    int    `json:"skipped"`
	Duplicates int    `json:"duplicates"`
	Linked     int    `json:"linked"`
}

// CourseRecords reads and writes course record files.
// Calls on the same instance, or on instances sharing a directory, must not run concurrently.
type CourseRecords struct {
	directory Directory
	logger    *slog.Logger
}

// Option configures CourseRecords.
type Option func(*CourseRecords)

// WithLogger sets the logger used for import and export diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cr *CourseRecords) {
		cr.logger = logger
	}
}

// NewCourseRecords creates a reader/writer that links imported courses through directory.
// A nil directory disables linking; every instructor id is then dropped.
func NewCourseRecords(directory Directory, opts ...Option) *CourseRecords {
	cr := &CourseRecords{
		directory: directory,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(cr)
	}
	return cr
}

// Read imports the course records stored at path.
// Malformed lines and repeated (name, section) keys are skipped.
func (cr *CourseRecords) Read(path string) (*model.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	catalog, report, err := cr.ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cr.logger.Info("course records imported",
		"path", path,
		"import_id", report.ImportID,
		"accepted", report.Accepted,
		"skipped", report.Skipped,
		"duplicates", report.Duplicates,
	)
	return catalog, nil
}

// ReadFrom imports course records from r, one record per line.
// Lines have no length limit; a trailing "\r" is dropped.
func (cr *CourseRecords) ReadFrom(r io.Reader) (*model.Catalog, ImportReport, error) {
	report := ImportReport{ImportID: uuid.New().String()}
	logger := cr.logger.With("import_id", report.ImportID)

	catalog := model.NewCatalog()
	seen := make(map[model.CourseKey]struct{})

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, report, err
		}
		report.Lines++

		course, err := ParseCourse(trimLineEnd(line))
		if err != nil {
			report.Skipped++
			logger.Debug("skipping course record", "line", report.Lines, "reason", err)
			continue
		}
		if _, dup := seen[course.Key()]; dup {
			report.Duplicates++
			logger.Debug("skipping duplicate course", "line", report.Lines, "name", course.Name, "section", course.Section)
			continue
		}

		linked, err := cr.link(course)
		if err != nil {
			report.Skipped++
			logger.Warn("skipping course record", "line", report.Lines, "reason", err)
			continue
		}
		if linked {
			report.Linked++
		}
		seen[course.Key()] = struct{}{}
		catalog.Add(course)
		report.Accepted++
	}
	return catalog, report, nil
}

func trimLineEnd(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}

// link resolves the course instructor and puts the course on their schedule.
// An id that does not resolve is cleared. A schedule that refuses the course
// fails the whole record, so accepted records always keep their instructor id.
func (cr *CourseRecords) link(course *model.Course) (bool, error) {
	if !course.IsLinked() {
		return false, nil
	}
	var instructor *model.Faculty
	if cr.directory != nil {
		instructor = cr.directory.FacultyByID(course.InstructorID)
	}
	if instructor == nil {
		course.InstructorID = ""
		return false, nil
	}

	if err := instructor.Schedule().AddCourse(course); err != nil {
		return false, &RecordError{
			Reason: ReasonScheduleRejected,
			Field:  "instructor_id",
			Value:  course.InstructorID,
			Err:    err,
		}
	}
	return true, nil
}

// Write stores the catalog at path, one record line per course in catalog order.
// An existing file is truncated.
func (cr *CourseRecords) Write(path string, catalog *model.Catalog) error {
	file, err := os.Create(path)
	if err != nil {
		return &AccessError{Op: "create", Path: path, Err: err}
	}
	defer file.Close()

	if err := WriteCourses(file, catalog); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	cr.logger.Info("course records exported", "path", path, "courses", catalog.Len())
	return nil
}

// WriteCourses writes one record line per course.
func WriteCourses(w io.Writer, catalog *model.Catalog) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < catalog.Len(); i++ {
		if _, err := fmt.Fprintln(bw, catalog.Get(i).String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
