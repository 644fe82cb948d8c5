package scheduler

import (
	"fmt"

	"github.com/rhyrak/pack-scheduler/pkg/model"
)

// Validate checks that no faculty member teaches more courses than allowed.
// Overlapping courses never reach a schedule, AddCourse refuses them.
// Returns false and a message for invalid schedules.
func Validate(directory *model.FacultyDirectory) (bool, string) {
	var message string
	var valid bool = true

	for _, f := range directory.Faculty() {
		if f.IsOverloaded() {
			valid = false
			message += fmt.Sprintf("- %s (%s) teaches %d courses, limit is %d\n",
				f.FullName(), f.ID, f.Schedule().Len(), f.MaxCourses)
		}
	}

	if valid {
		message = "[  OK]: Faculty load check.\n" + message
	} else {
		message = "[FAIL]: Faculty load check.\n" + message
	}

	return valid, message
}
