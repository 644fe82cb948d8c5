package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/pack-scheduler/internal/csvio"
	"github.com/rhyrak/pack-scheduler/pkg/model"
)

const testRecords = "CSC216,Software Engineering,001,3,jdyoung2,20,MW,1330,1445\n" +
	"CSC216,Software Engineering,601,3,,20,A\n" +
	"CSC216,Software Engineering,002,3,jdyoung2,20,MW,1330\n" +
	"CSC116,Intro to Programming - Java,001,3,,10,MW,910,1100\n"

func givenRouter(t *testing.T) (*gin.Engine, *api) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	directory := model.NewFacultyDirectory()
	require.NoError(t, directory.Add(&model.Faculty{ID: "jdyoung2", FirstName: "Jeff", LastName: "Young", MaxCourses: 2}))

	dir := t.TempDir()
	a := &api{
		state:         newCatalogState(directory, slog.New(slog.NewTextHandler(io.Discard, nil))),
		uploadDir:     filepath.Join(dir, "uploads"),
		exportFile:    filepath.Join(dir, "export.txt"),
		maxUploadSize: 1 << 20,
	}
	return newRouter(a), a
}

func uploadRequest(t *testing.T, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("courses", "course_records.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/courses", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostCourses_ImportsUpload(t *testing.T) {
	r, _ := givenRouter(t)

	w := serve(r, uploadRequest(t, testRecords))

	require.Equal(t, http.StatusOK, w.Code)
	var report csvio.ImportReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 4, report.Lines)
	assert.Equal(t, 3, report.Accepted)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Linked)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/courses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Count   int            `json:"count"`
		Courses []model.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 3, listing.Count)
	assert.Equal(t, "CSC116", listing.Courses[0].Name)
}

func TestPostCourses_ReimportDoesNotGrowSchedule(t *testing.T) {
	r, a := givenRouter(t)

	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)
	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)

	f, courses, overloaded := a.state.schedule("jdyoung2")
	require.NotNil(t, f)
	assert.Len(t, courses, 1)
	assert.False(t, overloaded)
}

func TestPostCourses_RemovesUpload(t *testing.T) {
	r, a := givenRouter(t)

	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)

	entries, err := os.ReadDir(a.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPostCourses_TooLargeKeepsCatalog(t *testing.T) {
	r, a := givenRouter(t)
	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)

	a.maxUploadSize = 64
	w := serve(r, uploadRequest(t, strings.Repeat(testRecords, 10)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, a.state.courses(), 3)
	_, courses, _ := a.state.schedule("jdyoung2")
	assert.Len(t, courses, 1)
}

func TestReplace_FailedImportRestoresSchedules(t *testing.T) {
	r, a := givenRouter(t)
	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)

	broken := io.MultiReader(
		strings.NewReader("CSC316,Data Structures,001,3,jdyoung2,20,TH,800,915\n"),
		iotest.ErrReader(errors.New("connection reset")),
	)
	_, err := a.state.replace(broken)
	require.Error(t, err)

	assert.Len(t, a.state.courses(), 3)
	_, courses, _ := a.state.schedule("jdyoung2")
	require.Len(t, courses, 1)
	assert.Equal(t, model.CourseKey{Name: "CSC216", Section: "001"}, courses[0].Key())

	valid, _ := a.state.validate()
	assert.True(t, valid)
}

func TestPostCourses_MissingFile(t *testing.T) {
	r, _ := givenRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(""))
	w := serve(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCourses(t *testing.T) {
	r, a := givenRouter(t)
	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/courses/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	want := "CSC116,Intro to Programming - Java,001,3,,10,MW,910,1100\n" +
		"CSC216,Software Engineering,001,3,jdyoung2,20,MW,1330,1445\n" +
		"CSC216,Software Engineering,601,3,,20,A\n"
	assert.Equal(t, want, w.Body.String())

	assert.Equal(t, `attachment; filename="export.txt"`, w.Header().Get("Content-Disposition"))

	written, err := os.ReadFile(a.exportFile)
	require.NoError(t, err)
	assert.Equal(t, want, string(written))
}

func TestExportCourses_Concurrent(t *testing.T) {
	r, _ := givenRouter(t)
	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)
	want := serve(r, httptest.NewRequest(http.MethodGet, "/courses/export", nil)).Body.String()
	require.NotEmpty(t, want)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := serve(r, httptest.NewRequest(http.MethodGet, "/courses/export", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, want, w.Body.String())
		}()
	}
	wg.Wait()
}

func TestGetSchedule(t *testing.T) {
	r, _ := givenRouter(t)
	require.Equal(t, http.StatusOK, serve(r, uploadRequest(t, testRecords)).Code)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/faculty/jdyoung2/schedule", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Faculty    model.Faculty  `json:"faculty"`
		Overloaded bool           `json:"overloaded"`
		Courses    []model.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "jdyoung2", body.Faculty.ID)
	require.Len(t, body.Courses, 1)
	assert.Equal(t, "001", body.Courses[0].Section)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/faculty/nobody/schedule", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	r, _ := givenRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/faculty/validate", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Valid  bool   `json:"valid"`
		Report string `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.Contains(t, body.Report, "[  OK]: Faculty load check.")
}
