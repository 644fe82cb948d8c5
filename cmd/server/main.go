package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rhyrak/pack-scheduler/internal/config"
	"github.com/rhyrak/pack-scheduler/internal/csvio"
	"github.com/rhyrak/pack-scheduler/internal/logging"
	"github.com/rhyrak/pack-scheduler/pkg/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.WithFields("component", "server")

	directory := model.NewFacultyDirectory()
	if cfg.Files.FacultyFile != "" {
		loaded, err := csvio.LoadFaculty(cfg.Files.FacultyFile, cfg.Files.DelimiterRune())
		switch {
		case errors.Is(err, csvio.ErrFileAccess):
			logger.Warn("no faculty directory, courses will not be linked", "error", err)
		case err != nil:
			logger.Error("failed to load faculty", "path", cfg.Files.FacultyFile, "error", err)
			os.Exit(1)
		default:
			directory = loaded
		}
	}
	logger.Info("faculty loaded", "count", directory.Len())

	state := newCatalogState(directory, logger)
	if err := state.load(cfg.Files.CoursesFile); err != nil {
		if !errors.Is(err, csvio.ErrFileAccess) {
			logger.Error("failed to import courses", "error", err)
			os.Exit(1)
		}
		logger.Warn("starting with an empty catalog", "error", err)
	}

	r := newRouter(&api{
		state:         state,
		uploadDir:     cfg.Files.UploadDir,
		exportFile:    cfg.Files.ExportFile,
		maxUploadSize: cfg.Server.MaxUploadSize,
	})

	logger.Info("server starting", "addr", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newRouter(a *api) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	a.routes(r)
	return r
}
