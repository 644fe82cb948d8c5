package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type api struct {
	state         *catalogState
	uploadDir     string
	exportFile    string
	maxUploadSize int64
}

func (a *api) routes(r *gin.Engine) {
	r.GET("/courses", a.handleGetCourses)
	r.POST("/courses", a.handlePostCourses)
	r.GET("/courses/export", a.handleExportCourses)
	r.GET("/faculty/validate", a.handleValidate)
	r.GET("/faculty/:id/schedule", a.handleGetSchedule)
}

func (a *api) handleGetCourses(ctx *gin.Context) {
	courses := a.state.courses()
	ctx.JSON(http.StatusOK, gin.H{
		"count":   len(courses),
		"courses": courses,
	})
}

func (a *api) handlePostCourses(ctx *gin.Context) {
	if a.maxUploadSize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, a.maxUploadSize)
	}
	coursesFile, err := ctx.FormFile("courses")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing courses file"})
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "upload directory not available"})
		return
	}
	coursesPath := filepath.Join(a.uploadDir, uuid.New().String()+"-"+filepath.Base(coursesFile.Filename))
	if err := ctx.SaveUploadedFile(coursesFile, coursesPath); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
		return
	}
	defer os.Remove(coursesPath)

	in, err := os.Open(coursesPath)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer in.Close()

	report, err := a.state.replace(in)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

func (a *api) handleExportCourses(ctx *gin.Context) {
	data, err := a.state.export(a.exportFile)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(a.exportFile)))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

func (a *api) handleGetSchedule(ctx *gin.Context) {
	faculty, courses, overloaded := a.state.schedule(ctx.Param("id"))
	if faculty == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown faculty id"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"faculty":    faculty,
		"overloaded": overloaded,
		"courses":    courses,
	})
}

func (a *api) handleValidate(ctx *gin.Context) {
	valid, report := a.state.validate()
	ctx.JSON(http.StatusOK, gin.H{
		"valid":  valid,
		"report": report,
	})
}
