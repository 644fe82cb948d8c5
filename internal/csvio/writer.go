package csvio

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/rhyrak/pack-scheduler/pkg/model"
)

// ScheduleCSVRow is one course of an exported faculty schedule.
type ScheduleCSVRow struct {
	Name        string `csv:"name"`
	Section     string `csv:"section"`
	Title       string `csv:"title"`
	MeetingDays string `csv:"meeting_days"`
	StartTime   string `csv:"start_time"`
	EndTime     string `csv:"end_time"`
}

// ExportFacultySchedule writes the faculty member's schedule to the CSV file
// specified by the given path. An existing file is replaced.
func ExportFacultySchedule(faculty *model.Faculty, path string) error {
	rows := formatSchedule(faculty.Schedule())

	out, err := os.Create(path)
	if err != nil {
		return &AccessError{Op: "create", Path: path, Err: err}
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write schedule of %s: %w", faculty.ID, err)
	}
	return nil
}

// ExportFacultyScheduleString returns the schedule in the same CSV format as ExportFacultySchedule.
func ExportFacultyScheduleString(faculty *model.Faculty) (string, error) {
	rows := formatSchedule(faculty.Schedule())
	return gocsv.MarshalString(&rows)
}

func formatSchedule(schedule *model.FacultySchedule) []*ScheduleCSVRow {
	formatted := []*ScheduleCSVRow{}
	for _, c := range schedule.Courses() {
		row := &ScheduleCSVRow{
			Name:        c.Name,
			Section:     c.Section,
			Title:       c.Title,
			MeetingDays: c.MeetingDays,
		}
		if !c.IsArranged() {
			row.StartTime = strconv.Itoa(c.StartTime)
			row.EndTime = strconv.Itoa(c.EndTime)
		}
		formatted = append(formatted, row)
	}
	return formatted
}

// PrintCatalog prints the catalog as a table, one course per row.
func PrintCatalog(w io.Writer, catalog *model.Catalog) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Section", "Title", "Credits", "Instructor", "Cap", "Meets"})
	for _, c := range catalog.Courses() {
		table.Append([]string{
			c.Name,
			c.Section,
			c.Title,
			strconv.Itoa(c.CreditHours),
			c.InstructorID,
			strconv.Itoa(c.EnrollmentCap),
			meetingString(c),
		})
	}
	table.Render()
}

func meetingString(c *model.Course) string {
	if c.IsArranged() {
		return "Arranged"
	}
	return fmt.Sprintf("%s %04d-%04d", c.MeetingDays, c.StartTime, c.EndTime)
}
