package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rhyrak/pack-scheduler/internal/config"
	"github.com/rhyrak/pack-scheduler/internal/csvio"
	"github.com/rhyrak/pack-scheduler/internal/logging"
	"github.com/rhyrak/pack-scheduler/internal/scheduler"
	"github.com/rhyrak/pack-scheduler/pkg/model"
)

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	// Program parameters, flags win over environment
	coursesFile := flag.String("courses", cfg.Files.CoursesFile, "course record file to import")
	facultyFile := flag.String("faculty", cfg.Files.FacultyFile, "faculty directory csv, empty to skip")
	exportFile := flag.String("export", cfg.Files.ExportFile, "where to write the imported catalog")
	scheduleDir := flag.String("schedules", cfg.Files.ScheduleExportDir, "directory for faculty schedule exports, empty to skip")
	flag.Parse()

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	directory := model.NewFacultyDirectory()
	if *facultyFile != "" {
		loaded, err := csvio.LoadFaculty(*facultyFile, cfg.Files.DelimiterRune())
		switch {
		case errors.Is(err, csvio.ErrFileAccess):
			color.Yellow("No faculty directory at %s, courses will not be linked", *facultyFile)
		case err != nil:
			color.Red("Failed to load faculty: %v", err)
			os.Exit(1)
		default:
			directory = loaded
			fmt.Printf("Loaded %d faculty members\n", directory.Len())
		}
	}

	records := csvio.NewCourseRecords(directory)
	catalog, err := records.Read(*coursesFile)
	if err != nil {
		if errors.Is(err, csvio.ErrFileAccess) {
			color.Red("Cannot open %s. Please make sure the file exists.", *coursesFile)
		} else {
			color.Red("Import failed: %v", err)
		}
		os.Exit(1)
	}

	color.Cyan("\n=== Course Catalog (%d courses) ===", catalog.Len())
	csvio.PrintCatalog(os.Stdout, catalog)

	valid, msg := scheduler.Validate(directory)
	if !valid {
		color.Yellow("\nInvalid faculty schedules:")
	} else {
		color.Green("\nPassed all schedule checks")
	}
	fmt.Print(msg)

	if err := records.Write(*exportFile, catalog); err != nil {
		color.Red("Export failed: %v", err)
		os.Exit(1)
	}
	fmt.Println("Exported catalog to: " + *exportFile)

	if *scheduleDir == "" {
		return
	}
	if err := os.MkdirAll(*scheduleDir, 0o755); err != nil {
		color.Red("Cannot create %s: %v", *scheduleDir, err)
		os.Exit(1)
	}
	for _, f := range directory.Faculty() {
		if f.Schedule().Len() == 0 {
			continue
		}
		path := filepath.Join(*scheduleDir, f.ID+"-schedule.csv")
		if err := csvio.ExportFacultySchedule(f, path); err != nil {
			color.Red("Schedule export for %s failed: %v", f.ID, err)
			continue
		}
		fmt.Println("Exported schedule to: " + path)
	}
}
