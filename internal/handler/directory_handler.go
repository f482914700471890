package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klcse/faculty-option-api/internal/models"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
	"github.com/klcse/faculty-option-api/pkg/response"
)

type directoryService interface {
	Lookup(ctx context.Context, employeeID string) (*models.FacultyIdentity, error)
}

// DirectoryHandler exposes the faculty lookup used by the dashboard and the
// admin search.
type DirectoryHandler struct {
	service directoryService
}

// NewDirectoryHandler constructs the handler.
func NewDirectoryHandler(svc directoryService) *DirectoryHandler {
	return &DirectoryHandler{service: svc}
}

// Lookup godoc
// @Summary Resolve a faculty identity by employee ID
// @Tags Directory
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /directory/{employeeId} [get]
func (h *DirectoryHandler) Lookup(c *gin.Context) {
	employeeID := strings.TrimSpace(c.Param("employeeId"))
	if employeeID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "employee ID is required"))
		return
	}

	identity, err := h.service.Lookup(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, identity, nil)
}
