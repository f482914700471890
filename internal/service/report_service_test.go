package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/models"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

type mockExportStorage struct {
	saved   map[string][]byte
	cleaned []string
}

func (m *mockExportStorage) Save(filename string, data []byte) (string, error) {
	if m.saved == nil {
		m.saved = make(map[string][]byte)
	}
	m.saved[filename] = data
	return filename, nil
}

func (m *mockExportStorage) CleanupOlderThan(ttl time.Duration) ([]string, error) {
	return m.cleaned, nil
}

func TestToTableFixedColumnOrder(t *testing.T) {
	table := ToTable([]models.SelectionRow{{
		ID:          "r1",
		EmployeeID:  "E100",
		FacultyName: "A. Kumar",
		Cohort:      "Y23",
		Department:  "CSE",
		CourseCode:  "CS101",
		CourseName:  "Algorithms",
		Category:    "Core",
		Semester:    models.SemesterOdd,
		Priority:    models.PriorityFirst,
	}})

	assert.Equal(t, []string{
		"ID", "Employee ID", "Faculty Name", "Cohort", "Department",
		"Course Code", "Course Name", "Category", "Semester", "Priority",
	}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"r1", "E100", "A. Kumar", "Y23", "CSE", "CS101", "Algorithms", "Core", "ODD", "1"}, table.Rows[0])
}

func TestExportCSV(t *testing.T) {
	repo := &mockSelectionRepo{rows: map[string][]models.SelectionRow{
		"E100": existingRows(),
	}}
	storage := &mockExportStorage{}
	svc := NewReportService(repo, storage, time.Hour, nil, nil, nil)

	result, err := svc.Export(context.Background(), ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	content := string(result.Payload)
	assert.True(t, strings.HasPrefix(content, "ID,Employee ID,Faculty Name"))
	assert.Contains(t, content, "CS101")
	assert.Len(t, storage.saved, 1)
}

func TestExportCSVWithEmbeddedQuotes(t *testing.T) {
	repo := &mockSelectionRepo{rows: map[string][]models.SelectionRow{
		"E100": {{ID: "r1", EmployeeID: "E100", CourseCode: "CS101", CourseName: `Intro to "Systems", Part I`}},
	}}
	svc := NewReportService(repo, nil, time.Hour, nil, nil, nil)

	result, err := svc.Export(context.Background(), ReportFormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(result.Payload), `"Intro to ""Systems"", Part I"`)
}

func TestExportPDF(t *testing.T) {
	repo := &mockSelectionRepo{rows: map[string][]models.SelectionRow{
		"E100": existingRows(),
	}}
	svc := NewReportService(repo, nil, time.Hour, nil, nil, nil)

	result, err := svc.Export(context.Background(), ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Payload), "%PDF"))
}

func TestExportUnknownFormat(t *testing.T) {
	repo := &mockSelectionRepo{rows: map[string][]models.SelectionRow{}}
	svc := NewReportService(repo, nil, time.Hour, nil, nil, nil)

	_, err := svc.Export(context.Background(), ReportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportEmptyStoreStillRenders(t *testing.T) {
	repo := &mockSelectionRepo{rows: map[string][]models.SelectionRow{}}
	svc := NewReportService(repo, nil, time.Hour, nil, nil, nil)

	result, err := svc.Export(context.Background(), ReportFormatCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(result.Payload)), "\n")
	assert.Len(t, lines, 1)
}
