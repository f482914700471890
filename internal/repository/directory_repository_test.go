package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/source"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDirectoryRepositoryFindByEmployeeID(t *testing.T) {
	src := writeSource(t, "directory.csv",
		"S.No,Employee ID,Name,Cohort,Department\n"+
			"1, E100 ,A. Kumar,Y23,CSE\n"+
			"2,E200,B. Rao,Y24,CSE\n")

	repo := NewDirectoryRepository(source.NewFetcher(time.Second), src)

	identity, err := repo.FindByEmployeeID(context.Background(), "E100")
	require.NoError(t, err)
	assert.Equal(t, "E100", identity.EmployeeID)
	assert.Equal(t, "A. Kumar", identity.Name)
	assert.Equal(t, "Y23", identity.Cohort)
	assert.Equal(t, "CSE", identity.Department)
}

func TestDirectoryRepositoryUnknownEmployee(t *testing.T) {
	src := writeSource(t, "directory.csv",
		"S.No,Employee ID,Name,Cohort,Department\n1,E100,A. Kumar,Y23,CSE\n")

	repo := NewDirectoryRepository(source.NewFetcher(time.Second), src)

	_, err := repo.FindByEmployeeID(context.Background(), "E999")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "employee ID not found")
}

func TestDirectoryRepositoryUnreachableSource(t *testing.T) {
	repo := NewDirectoryRepository(source.NewFetcher(time.Second), filepath.Join(t.TempDir(), "missing.csv"))

	_, err := repo.FindByEmployeeID(context.Background(), "E100")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCollaboratorUnavailable.Code, appErrors.FromError(err).Code)
}
