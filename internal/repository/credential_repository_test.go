package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/source"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

func TestCredentialRepositoryFindCredential(t *testing.T) {
	credSrc := writeSource(t, "login.csv", "ID,Password\nE100,secret\nE200,hunter2\n")
	repo := NewCredentialRepository(source.NewFetcher(time.Second), credSrc, "")

	cred, err := repo.FindCredential(context.Background(), "E200")
	require.NoError(t, err)
	assert.Equal(t, "E200", cred.ID)
	assert.Equal(t, "hunter2", cred.Password)
}

func TestCredentialRepositoryUnknownID(t *testing.T) {
	credSrc := writeSource(t, "login.csv", "ID,Password\nE100,secret\n")
	repo := NewCredentialRepository(source.NewFetcher(time.Second), credSrc, "")

	_, err := repo.FindCredential(context.Background(), "E999")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCredentialRepositoryRoleOf(t *testing.T) {
	credSrc := writeSource(t, "login.csv", "ID,Password\nE100,secret\n")
	rolesSrc := writeSource(t, "roles.csv", "ID,Role\nE100,admin\nE200,faculty\n")
	repo := NewCredentialRepository(source.NewFetcher(time.Second), credSrc, rolesSrc)

	role, err := repo.RoleOf(context.Background(), "E100")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	role, err = repo.RoleOf(context.Background(), "E200")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, role)

	// IDs absent from the role source default to FACULTY.
	role, err = repo.RoleOf(context.Background(), "E999")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, role)
}

func TestCredentialRepositoryNoRoleSource(t *testing.T) {
	repo := NewCredentialRepository(source.NewFetcher(time.Second), "unused", "")

	role, err := repo.RoleOf(context.Background(), "E100")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, role)
}
