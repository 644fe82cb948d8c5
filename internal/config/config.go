// Package config loads program parameters from environment variables.
// Every setting has a default so the commands run without any environment.
package config

// Configuration holds the file locations and runtime settings of the commands.
type Configuration struct {
	Files   FilesConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// FilesConfig holds the record file locations.
type FilesConfig struct {
	// CoursesFile is the course record file to import
	CoursesFile string `env:"COURSES_FILE" default:"./res/course_records.txt"`

	// FacultyFile is the faculty directory CSV
	FacultyFile string `env:"FACULTY_FILE" default:"./res/faculty.csv"`

	// ExportFile is where the catalog is written back
	ExportFile string `env:"EXPORT_FILE" default:"course_records_out.txt"`

	// ScheduleExportDir receives one <faculty id>-schedule.csv per instructor
	ScheduleExportDir string `env:"SCHEDULE_EXPORT_DIR" default:"./schedules"`

	// UploadDir stores course files uploaded to the server
	UploadDir string `env:"UPLOAD_DIR" default:"./db/uploads"`

	// Delimiter separates the faculty CSV columns
	Delimiter string `env:"CSV_DELIMITER" default:","`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (default: :3001)
	Addr string `env:"SERVER_ADDR" default:":3001"`

	// MaxUploadSize caps multipart uploads in bytes (default: 8MB)
	MaxUploadSize int64 `env:"SERVER_MAX_UPLOAD_SIZE" default:"8388608"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// DelimiterRune returns the first rune of the configured delimiter.
func (c *FilesConfig) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
