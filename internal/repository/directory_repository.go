package repository

import (
	"context"
	"strings"

	"github.com/klcse/faculty-option-api/internal/catalog"
	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/source"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

// Directory source column layout: [seq, employeeId, name, cohort, department].
const (
	dirColSequence = iota
	dirColEmployeeID
	dirColName
	dirColCohort
	dirColDepartment
)

// DirectoryRepository resolves faculty identities from the flat directory
// source.
type DirectoryRepository struct {
	fetcher *source.Fetcher
	src     string
}

// NewDirectoryRepository constructs the repository.
func NewDirectoryRepository(fetcher *source.Fetcher, src string) *DirectoryRepository {
	return &DirectoryRepository{fetcher: fetcher, src: src}
}

// FindByEmployeeID scans the directory source for a matching employee ID.
func (r *DirectoryRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*models.FacultyIdentity, error) {
	raw, err := r.fetcher.Fetch(ctx, r.src)
	if err != nil {
		return nil, err
	}

	wanted := strings.TrimSpace(employeeID)
	lines := strings.Split(raw, "\n")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		fields := catalog.SplitFields(line)
		if fieldTrimmed(fields, dirColEmployeeID) != wanted {
			continue
		}
		return &models.FacultyIdentity{
			EmployeeID: fieldTrimmed(fields, dirColEmployeeID),
			Name:       fieldTrimmed(fields, dirColName),
			Cohort:     fieldTrimmed(fields, dirColCohort),
			Department: fieldTrimmed(fields, dirColDepartment),
		}, nil
	}

	return nil, appErrors.Clone(appErrors.ErrNotFound, "employee ID not found, please check and try again")
}

func fieldTrimmed(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
