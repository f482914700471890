package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/klcse/faculty-option-api/internal/models"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
	"github.com/klcse/faculty-option-api/pkg/export"
)

// ReportFormat selects the rendered report encoding.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type exportStorage interface {
	Save(filename string, data []byte) (string, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

// ExportResult carries one rendered submissions report.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ReportService turns persisted selection rows into flat tabular exports.
// The table is recomputed from the row list on every call; there is no
// internal cursor.
type ReportService struct {
	rows      selectionRepository
	csv       csvRenderer
	pdf       pdfRenderer
	storage   exportStorage
	resultTTL time.Duration
	logger    *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(rows selectionRepository, storage exportStorage, resultTTL time.Duration, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if resultTTL <= 0 {
		resultTTL = 24 * time.Hour
	}
	return &ReportService{
		rows:      rows,
		csv:       csv,
		pdf:       pdf,
		storage:   storage,
		resultTTL: resultTTL,
		logger:    logger,
	}
}

// reportHeaders is the fixed export column order.
var reportHeaders = []string{
	"ID", "Employee ID", "Faculty Name", "Cohort", "Department",
	"Course Code", "Course Name", "Category", "Semester", "Priority",
}

// ToTable flattens persisted rows into the fixed-column dataset.
func ToTable(rows []models.SelectionRow) export.Dataset {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			row.ID,
			row.EmployeeID,
			row.FacultyName,
			row.Cohort,
			row.Department,
			row.CourseCode,
			row.CourseName,
			row.Category,
			string(row.Semester),
			strconv.Itoa(int(row.Priority)),
		})
	}
	return export.Dataset{Headers: reportHeaders, Rows: data}
}

// Export renders the full submissions report in the requested format and
// stores a copy under the exports directory.
func (s *ReportService) Export(ctx context.Context, format ReportFormat) (*ExportResult, error) {
	rows, err := s.rows.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submissions")
	}

	dataset := ToTable(rows)

	var payload []byte
	var contentType string
	switch format {
	case ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ReportFormatPDF:
		payload, err = s.pdf.Render(dataset, "Faculty Course Selections")
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	filename := fmt.Sprintf("selections_%s.%s", time.Now().UTC().Format("20060102_150405"), strings.ToLower(string(format)))
	if s.storage != nil {
		if _, err := s.storage.Save(filename, payload); err != nil {
			s.logger.Warn("failed to store rendered report", zap.String("filename", filename), zap.Error(err))
		}
	}

	return &ExportResult{Filename: filename, ContentType: contentType, Payload: payload}, nil
}

// Cleanup deletes stored reports older than the configured TTL.
func (s *ReportService) Cleanup() ([]string, error) {
	if s.storage == nil {
		return nil, nil
	}
	return s.storage.CleanupOlderThan(s.resultTTL)
}
