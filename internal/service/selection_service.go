package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/selection"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

type directoryRepository interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*models.FacultyIdentity, error)
}

type selectionRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]models.SelectionRow, error)
	ListAll(ctx context.Context) ([]models.SelectionRow, error)
	FindByID(ctx context.Context, id string) (*models.SelectionRow, error)
	CreateAll(ctx context.Context, rows []models.SelectionRow) error
	UpdatePriority(ctx context.Context, id string, priority models.Priority) error
	Delete(ctx context.Context, id string) error
	DeleteAllForEmployee(ctx context.Context, employeeID string) (int64, error)
}

type cohortCatalog interface {
	LoadCohort(ctx context.Context, cohort string) ([]models.CourseRecord, error)
}

// SubmitEntry is one picked course inside a submit payload. Priority accepts
// either a tier number or the display label the selection screen uses.
type SubmitEntry struct {
	CourseCode string `json:"course_code" validate:"required"`
	Priority   string `json:"priority"`
}

// SubmitRequest captures a full submission attempt.
type SubmitRequest struct {
	EmployeeID string        `json:"employee_id" validate:"required"`
	Entries    []SubmitEntry `json:"entries" validate:"required,min=1,dive"`
}

// UpdateRowRequest edits the priority of one persisted row.
type UpdateRowRequest struct {
	Priority string `json:"priority" validate:"required"`
}

// SelectionService orchestrates submission flows around the eligibility
// validator: every submit and every edit re-runs the same rules before
// anything is persisted.
type SelectionService struct {
	directory directoryRepository
	rows      selectionRepository
	catalog   cohortCatalog
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewSelectionService builds the service. metrics may be nil.
func NewSelectionService(directory directoryRepository, rows selectionRepository, catalog cohortCatalog, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *SelectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SelectionService{
		directory: directory,
		rows:      rows,
		catalog:   catalog,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
	}
}

// ListByEmployee returns the persisted rows for one faculty member, possibly
// empty.
func (s *SelectionService) ListByEmployee(ctx context.Context, employeeID string) ([]models.SelectionRow, error) {
	rows, err := s.rows.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submissions")
	}
	return rows, nil
}

// ListAll returns every persisted row across faculty.
func (s *SelectionService) ListAll(ctx context.Context) ([]models.SelectionRow, error) {
	rows, err := s.rows.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submissions")
	}
	return rows, nil
}

// Submit validates and persists a fresh submission. A faculty member with an
// existing submission must edit or delete it instead.
func (s *SelectionService) Submit(ctx context.Context, req SubmitRequest) ([]models.SelectionRow, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	identity, err := s.directory.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	existing, err := s.rows.ListByEmployee(ctx, identity.EmployeeID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing submission")
	}
	if len(existing) > 0 {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a submission already exists for this employee ID; edit or delete it instead")
	}

	courses, err := s.catalog.LoadCohort(ctx, identity.Cohort)
	if err != nil {
		return nil, err
	}

	state := selection.NewState()
	for _, entry := range req.Entries {
		if !state.Has(entry.CourseCode) {
			state = state.Toggle(entry.CourseCode)
		}
		if tier, ok := models.ParsePriority(entry.Priority); ok {
			state = state.SetPriority(entry.CourseCode, tier)
		}
	}

	if verdict := selection.Validate(courses, state); !verdict.OK {
		s.metrics.RecordValidation(string(verdict.FailedRule))
		return nil, verdictError(verdict)
	}
	s.metrics.RecordValidation("ok")

	record := selection.BuildSubmission(*identity, courses, state)
	if len(record.Entries) != state.Len() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "submission contains a course code outside the cohort catalog")
	}

	rows := rowsFromRecord(record)
	if err := s.rows.CreateAll(ctx, rows); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist submission")
	}

	s.logger.Info("submission stored",
		zap.String("employee_id", identity.EmployeeID),
		zap.Int("courses", len(rows)))

	return rows, nil
}

// UpdateRow edits one persisted row's priority. The edit re-derives the full
// selection from the stored rows, applies the change, and re-validates before
// anything is written. Non-admin actors may only touch their own rows.
func (s *SelectionService) UpdateRow(ctx context.Context, id string, req UpdateRowRequest, actor *models.JWTClaims) (*models.SelectionRow, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid update payload")
	}

	tier, ok := models.ParsePriority(req.Priority)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown priority %q", req.Priority))
	}

	row, err := s.rows.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "submission row not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission row")
	}
	if err := s.authorizeRowAccess(row, actor); err != nil {
		return nil, err
	}

	siblings, err := s.rows.ListByEmployee(ctx, row.EmployeeID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission")
	}

	courses, err := s.catalog.LoadCohort(ctx, row.Cohort)
	if err != nil {
		return nil, err
	}

	state := selection.RowsToSelection(siblings).SetPriority(row.CourseCode, tier)
	if verdict := selection.Validate(courses, state); !verdict.OK {
		s.metrics.RecordValidation(string(verdict.FailedRule))
		return nil, verdictError(verdict)
	}
	s.metrics.RecordValidation("ok")

	if err := s.rows.UpdatePriority(ctx, id, tier); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update submission row")
	}

	updated := *row
	updated.Priority = tier
	return &updated, nil
}

// DeleteRow removes one persisted row after explicit confirmation. Non-admin
// actors may only delete their own rows.
func (s *SelectionService) DeleteRow(ctx context.Context, id string, confirmed bool, actor *models.JWTClaims) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "")
	}

	row, err := s.rows.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "submission row not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission row")
	}
	if err := s.authorizeRowAccess(row, actor); err != nil {
		return err
	}

	if err := s.rows.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete submission row")
	}
	return nil
}

// DeleteAll removes a faculty member's whole submission after explicit
// confirmation and reports how many rows were removed.
func (s *SelectionService) DeleteAll(ctx context.Context, employeeID string, confirmed bool) (int64, error) {
	if !confirmed {
		return 0, appErrors.Clone(appErrors.ErrConfirmationRequired, "")
	}

	deleted, err := s.rows.DeleteAllForEmployee(ctx, employeeID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete submission")
	}
	return deleted, nil
}

func (s *SelectionService) authorizeRowAccess(row *models.SelectionRow, actor *models.JWTClaims) error {
	if actor == nil || actor.Role == models.RoleAdmin {
		return nil
	}
	if row.EmployeeID != actor.EmployeeID {
		return appErrors.Clone(appErrors.ErrForbidden, "cannot modify another faculty member's submission")
	}
	return nil
}

// verdictError maps a failed verdict to its typed error, keeping the
// rule-specific message.
func verdictError(verdict selection.Verdict) *appErrors.Error {
	var base *appErrors.Error
	switch verdict.FailedRule {
	case selection.RuleMissingPriority:
		base = appErrors.ErrMissingPriority
	case selection.RuleInsufficientSelection:
		base = appErrors.ErrInsufficientSelection
	case selection.RuleCategoryUncovered:
		base = appErrors.ErrCategoryUncovered
	case selection.RuleNoTopPriority:
		base = appErrors.ErrNoTopPriority
	default:
		base = appErrors.ErrValidation
	}
	return appErrors.Clone(base, verdict.Message)
}

func rowsFromRecord(record models.SubmissionRecord) []models.SelectionRow {
	rows := make([]models.SelectionRow, 0, len(record.Entries))
	for _, entry := range record.Entries {
		rows = append(rows, models.SelectionRow{
			EmployeeID:  record.EmployeeID,
			FacultyName: record.FacultyName,
			Cohort:      record.Cohort,
			Department:  record.Department,
			CourseCode:  entry.CourseCode,
			CourseName:  entry.CourseName,
			Category:    entry.Category,
			Semester:    entry.Semester,
			Priority:    entry.Priority,
		})
	}
	return rows
}
