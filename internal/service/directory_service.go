package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/klcse/faculty-option-api/internal/models"
)

// DirectoryService resolves faculty identities for the search and dashboard
// flows.
type DirectoryService struct {
	repo   directoryRepository
	logger *zap.Logger
}

// NewDirectoryService builds the service.
func NewDirectoryService(repo directoryRepository, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{repo: repo, logger: logger}
}

// Lookup resolves one employee ID to a faculty identity.
func (s *DirectoryService) Lookup(ctx context.Context, employeeID string) (*models.FacultyIdentity, error) {
	return s.repo.FindByEmployeeID(ctx, employeeID)
}
