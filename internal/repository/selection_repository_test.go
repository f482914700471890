package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/models"
)

func newSelectionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func selectionMockRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "employee_id", "faculty_name", "cohort", "department",
		"course_code", "course_name", "category", "semester", "priority",
		"created_at", "updated_at",
	}).AddRow("r1", "E100", "A. Kumar", "Y23", "CSE", "CS101", "Algorithms", "Core", "ODD", 1, now, now)
}

func TestSelectionRepositoryListByEmployee(t *testing.T) {
	db, mock, cleanup := newSelectionRepoMock(t)
	defer cleanup()
	repo := NewSelectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+selectionColumns+" FROM selection_rows WHERE employee_id = $1 ORDER BY created_at, course_code")).
		WithArgs("E100").
		WillReturnRows(selectionMockRows())

	rows, err := repo.ListByEmployee(context.Background(), "E100")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS101", rows[0].CourseCode)
	assert.Equal(t, models.PriorityFirst, rows[0].Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newSelectionRepoMock(t)
	defer cleanup()
	repo := NewSelectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + selectionColumns + " FROM selection_rows ORDER BY employee_id, course_code")).
		WillReturnRows(selectionMockRows())

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRepositoryCreateAllIsTransactional(t *testing.T) {
	db, mock, cleanup := newSelectionRepoMock(t)
	defer cleanup()
	repo := NewSelectionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO selection_rows").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO selection_rows").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rows := []models.SelectionRow{
		{EmployeeID: "E100", CourseCode: "CS101", Priority: models.PriorityFirst},
		{EmployeeID: "E100", CourseCode: "CS201", Priority: models.PrioritySecond},
	}
	require.NoError(t, repo.CreateAll(context.Background(), rows))

	// IDs and timestamps filled in on the way down.
	assert.NotEmpty(t, rows[0].ID)
	assert.False(t, rows[0].CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRepositoryCreateAllRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newSelectionRepoMock(t)
	defer cleanup()
	repo := NewSelectionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO selection_rows").
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	err := repo.CreateAll(context.Background(), []models.SelectionRow{
		{EmployeeID: "E100", CourseCode: "CS101"},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRepositoryUpdatePriority(t *testing.T) {
	db, mock, cleanup := newSelectionRepoMock(t)
	defer cleanup()
	repo := NewSelectionRepository(db)

	mock.ExpectExec("UPDATE selection_rows SET priority").
		WithArgs(models.PrioritySecond, sqlmock.AnyArg(), "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePriority(context.Background(), "r1", models.PrioritySecond))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRepositoryUpdatePriorityMissingRow(t *testing.T) {
	db, mock, cleanup := newSelectionRepoMock(t)
	defer cleanup()
	repo := NewSelectionRepository(db)

	mock.ExpectExec("UPDATE selection_rows SET priority").
		WithArgs(models.PrioritySecond, sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePriority(context.Background(), "missing", models.PrioritySecond)
	assert.Error(t, err)
}

func TestSelectionRepositoryDeleteAllForEmployee(t *testing.T) {
	db, mock, cleanup := newSelectionRepoMock(t)
	defer cleanup()
	repo := NewSelectionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM selection_rows WHERE employee_id = $1")).
		WithArgs("E100").
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteAllForEmployee(context.Background(), "E100")
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
