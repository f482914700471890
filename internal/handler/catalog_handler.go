package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/service"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
	"github.com/klcse/faculty-option-api/pkg/response"
)

type catalogViewService interface {
	View(ctx context.Context, cohort string, semesterFilter *models.Semester) (*service.CatalogView, error)
}

// CatalogHandler serves the grouped course catalog for the selection screen.
type CatalogHandler struct {
	catalog   catalogViewService
	directory directoryService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog catalogViewService, directory directoryService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, directory: directory}
}

// View godoc
// @Summary Grouped course catalog for a cohort
// @Description Faculty are scoped to their own cohort; admins may pass any cohort
// @Tags Catalog
// @Produce json
// @Param cohort query string false "Cohort (admin only)"
// @Param semester query string false "Semester filter (ODD or EVEN)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog [get]
func (h *CatalogHandler) View(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	cohort := strings.TrimSpace(c.Query("cohort"))
	if claims.Role != models.RoleAdmin {
		identity, err := h.directory.Lookup(c.Request.Context(), claims.EmployeeID)
		if err != nil {
			response.Error(c, err)
			return
		}
		cohort = identity.Cohort
	}
	if cohort == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "cohort is required"))
		return
	}

	var semesterFilter *models.Semester
	if raw := strings.TrimSpace(c.Query("semester")); raw != "" {
		semester := models.ParseSemester(raw)
		if semester == models.SemesterOther {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester must be ODD or EVEN"))
			return
		}
		semesterFilter = &semester
	}

	view, err := h.catalog.View(c.Request.Context(), cohort, semesterFilter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view, nil)
}
