package csvio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rhyrak/pack-scheduler/pkg/model"
)

// Field counts of the two record shapes.
const (
	arrangedFieldCount = 7
	timedFieldCount    = 9
)

// ErrInvalidRecord matches every error returned by ParseCourse.
var ErrInvalidRecord = errors.New("invalid course record")

// Reason tells why a record line was rejected.
type Reason int

const (
	ReasonMissingField Reason = iota + 1
	ReasonEmptyField
	ReasonBadInteger
	ReasonTrailingFields
	ReasonScheduleRejected
)

func (r Reason) String() string {
	switch r {
	case ReasonMissingField:
		return "missing field"
	case ReasonEmptyField:
		return "empty required field"
	case ReasonBadInteger:
		return "bad integer"
	case ReasonTrailingFields:
		return "trailing fields"
	case ReasonScheduleRejected:
		return "rejected by instructor schedule"
	default:
		return "unknown"
	}
}

// RecordError describes a rejected record line.
// Err is set when the line was well-formed but a collaborator refused it.
type RecordError struct {
	Reason Reason
	Field  string
	Value  string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %q: %v", e.Reason, e.Field, e.Value, e.Err)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q", e.Reason, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Field)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

var fieldNames = [timedFieldCount]string{
	"name", "title", "section", "credit_hours", "instructor_id",
	"enrollment_cap", "meeting_days", "start_time", "end_time",
}

// ParseCourse turns one record line into a course.
//
//	name,title,section,creditHours,instructorId,enrollmentCap,meetingDays[,startTime,endTime]
//
// Start and end time are present if and only if meeting days is not "A".
// The instructor id is copied as is; resolving it is up to the caller.
func ParseCourse(line string) (*model.Course, error) {
	fields := strings.Split(line, ",")
	if len(fields) < arrangedFieldCount {
		return nil, &RecordError{Reason: ReasonMissingField, Field: fieldNames[len(fields)]}
	}

	for _, i := range []int{0, 1, 2, 6} {
		if fields[i] == "" {
			return nil, &RecordError{Reason: ReasonEmptyField, Field: fieldNames[i]}
		}
	}

	credits, err := parseInt(fields, 3)
	if err != nil {
		return nil, err
	}
	enrollmentCap, err := parseInt(fields, 5)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		Name:          fields[0],
		Title:         fields[1],
		Section:       fields[2],
		CreditHours:   credits,
		InstructorID:  fields[4],
		EnrollmentCap: enrollmentCap,
		MeetingDays:   fields[6],
	}

	if course.IsArranged() {
		if len(fields) > arrangedFieldCount {
			return nil, &RecordError{Reason: ReasonTrailingFields, Field: "meeting_days", Value: fields[arrangedFieldCount]}
		}
		return course, nil
	}

	if len(fields) < timedFieldCount {
		return nil, &RecordError{Reason: ReasonMissingField, Field: fieldNames[len(fields)]}
	}
	if len(fields) > timedFieldCount {
		return nil, &RecordError{Reason: ReasonTrailingFields, Field: "end_time", Value: fields[timedFieldCount]}
	}
	if course.StartTime, err = parseInt(fields, 7); err != nil {
		return nil, err
	}
	if course.EndTime, err = parseInt(fields, 8); err != nil {
		return nil, err
	}
	return course, nil
}

func parseInt(fields []string, i int) (int, error) {
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, &RecordError{Reason: ReasonBadInteger, Field: fieldNames[i], Value: fields[i]}
	}
	return n, nil
}
