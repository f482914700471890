package repository

import (
	"context"
	"strings"

	"github.com/klcse/faculty-option-api/internal/catalog"
	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/source"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

// CredentialRepository resolves login credentials and role assignments from
// their flat sources. Roles live in a separate id,role source so that admin
// status is data, not a hard-coded ID list.
type CredentialRepository struct {
	fetcher        *source.Fetcher
	credentialsSrc string
	rolesSrc       string
}

// NewCredentialRepository constructs the repository.
func NewCredentialRepository(fetcher *source.Fetcher, credentialsSrc, rolesSrc string) *CredentialRepository {
	return &CredentialRepository{fetcher: fetcher, credentialsSrc: credentialsSrc, rolesSrc: rolesSrc}
}

// FindCredential scans the id,password source for the given ID.
func (r *CredentialRepository) FindCredential(ctx context.Context, id string) (*models.Credential, error) {
	raw, err := r.fetcher.Fetch(ctx, r.credentialsSrc)
	if err != nil {
		return nil, err
	}

	wanted := strings.TrimSpace(id)
	lines := strings.Split(raw, "\n")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		fields := catalog.SplitFields(line)
		if fieldTrimmed(fields, 0) != wanted {
			continue
		}
		return &models.Credential{
			ID:       fieldTrimmed(fields, 0),
			Password: fieldTrimmed(fields, 1),
		}, nil
	}

	return nil, appErrors.ErrNotFound
}

// RoleOf resolves the role assigned to an ID. IDs absent from the role source
// default to FACULTY.
func (r *CredentialRepository) RoleOf(ctx context.Context, id string) (models.UserRole, error) {
	if r.rolesSrc == "" {
		return models.RoleFaculty, nil
	}

	raw, err := r.fetcher.Fetch(ctx, r.rolesSrc)
	if err != nil {
		return "", err
	}

	wanted := strings.TrimSpace(id)
	lines := strings.Split(raw, "\n")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		fields := catalog.SplitFields(line)
		if fieldTrimmed(fields, 0) != wanted {
			continue
		}
		if strings.EqualFold(fieldTrimmed(fields, 1), string(models.RoleAdmin)) {
			return models.RoleAdmin, nil
		}
		return models.RoleFaculty, nil
	}

	return models.RoleFaculty, nil
}
