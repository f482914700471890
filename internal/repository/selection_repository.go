package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/klcse/faculty-option-api/internal/models"
)

// SelectionRepository persists submitted selection rows.
type SelectionRepository struct {
	db *sqlx.DB
}

// NewSelectionRepository constructs the repository.
func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

const selectionColumns = `id, employee_id, faculty_name, cohort, department, course_code, course_name, category, semester, priority, created_at, updated_at`

// ListByEmployee returns every persisted row for one faculty member.
func (r *SelectionRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.SelectionRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM selection_rows WHERE employee_id = $1 ORDER BY created_at, course_code`, selectionColumns)
	rows := []models.SelectionRow{}
	if err := r.db.SelectContext(ctx, &rows, query, employeeID); err != nil {
		return nil, fmt.Errorf("list selections for %s: %w", employeeID, err)
	}
	return rows, nil
}

// ListAll returns every persisted row across all faculty.
func (r *SelectionRepository) ListAll(ctx context.Context) ([]models.SelectionRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM selection_rows ORDER BY employee_id, course_code`, selectionColumns)
	rows := []models.SelectionRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list all selections: %w", err)
	}
	return rows, nil
}

// FindByID returns one persisted row.
func (r *SelectionRepository) FindByID(ctx context.Context, id string) (*models.SelectionRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM selection_rows WHERE id = $1`, selectionColumns)
	var row models.SelectionRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateAll inserts every row of one submission atomically.
func (r *SelectionRepository) CreateAll(ctx context.Context, rows []models.SelectionRow) error {
	if len(rows) == 0 {
		return nil
	}

	const query = `INSERT INTO selection_rows (id, employee_id, faculty_name, cohort, department, course_code, course_name, category, semester, priority, created_at, updated_at)
		VALUES (:id, :employee_id, :faculty_name, :cohort, :department, :course_code, :course_name, :category, :semester, :priority, :created_at, :updated_at)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submission insert: %w", err)
	}

	now := time.Now().UTC()
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
		rows[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, query, rows[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert selection row %s: %w", rows[i].CourseCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit submission insert: %w", err)
	}
	return nil
}

// UpdatePriority rewrites the priority of one persisted row.
func (r *SelectionRepository) UpdatePriority(ctx context.Context, id string, priority models.Priority) error {
	const query = `UPDATE selection_rows SET priority = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, priority, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update selection row %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("update selection row %s: no such row", id)
	}
	return nil
}

// Delete removes one persisted row.
func (r *SelectionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM selection_rows WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete selection row %s: %w", id, err)
	}
	return nil
}

// DeleteAllForEmployee removes every row belonging to one faculty member and
// reports how many rows went away.
func (r *SelectionRepository) DeleteAllForEmployee(ctx context.Context, employeeID string) (int64, error) {
	const query = `DELETE FROM selection_rows WHERE employee_id = $1`
	result, err := r.db.ExecContext(ctx, query, employeeID)
	if err != nil {
		return 0, fmt.Errorf("delete selections for %s: %w", employeeID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return affected, nil
}
