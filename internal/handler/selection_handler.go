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

type selectionService interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]models.SelectionRow, error)
	ListAll(ctx context.Context) ([]models.SelectionRow, error)
	Submit(ctx context.Context, req service.SubmitRequest) ([]models.SelectionRow, error)
	UpdateRow(ctx context.Context, id string, req service.UpdateRowRequest, actor *models.JWTClaims) (*models.SelectionRow, error)
	DeleteRow(ctx context.Context, id string, confirmed bool, actor *models.JWTClaims) error
	DeleteAll(ctx context.Context, employeeID string, confirmed bool) (int64, error)
}

// SelectionHandler exposes the submission CRUD surface for faculty and the
// full listing for admins.
type SelectionHandler struct {
	service selectionService
}

// NewSelectionHandler constructs the handler.
func NewSelectionHandler(svc selectionService) *SelectionHandler {
	return &SelectionHandler{service: svc}
}

// ListByEmployee godoc
// @Summary Saved selection rows for one faculty member
// @Tags Selections
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} response.Envelope
// @Router /faculty/{employeeId} [get]
func (h *SelectionHandler) ListByEmployee(c *gin.Context) {
	employeeID := strings.TrimSpace(c.Param("employeeId"))
	if employeeID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "employee ID is required"))
		return
	}

	rows, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rows, nil)
}

// ListAll godoc
// @Summary Every saved selection row across all faculty
// @Tags Selections
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /faculty/all [get]
func (h *SelectionHandler) ListAll(c *gin.Context) {
	rows, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rows, nil)
}

// Submit godoc
// @Summary Validate and persist a complete course selection
// @Tags Selections
// @Accept json
// @Produce json
// @Param payload body service.SubmitRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /faculty/submit [post]
func (h *SelectionHandler) Submit(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, "VALIDATION_ERROR", http.StatusBadRequest, "invalid request body"))
		return
	}

	claims := claimsFromContext(c)
	if claims != nil && claims.Role != models.RoleAdmin && req.EmployeeID != claims.EmployeeID {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "cannot submit selections for another faculty member"))
		return
	}

	rows, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, rows)
}

// UpdateRow godoc
// @Summary Change the priority of one saved selection row
// @Tags Selections
// @Accept json
// @Produce json
// @Param id path string true "Selection row ID"
// @Param payload body service.UpdateRowRequest true "New priority"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /faculty/update/{id} [put]
func (h *SelectionHandler) UpdateRow(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "selection ID is required"))
		return
	}

	var req service.UpdateRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, "VALIDATION_ERROR", http.StatusBadRequest, "invalid request body"))
		return
	}

	row, err := h.service.UpdateRow(c.Request.Context(), id, req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, row, nil)
}

// DeleteRow godoc
// @Summary Delete one saved selection row
// @Description Requires confirm=true; without it the API answers 428
// @Tags Selections
// @Produce json
// @Param id path string true "Selection row ID"
// @Param confirm query bool false "Must be true to proceed"
// @Success 204
// @Failure 428 {object} response.Envelope
// @Router /faculty/delete/{id} [delete]
func (h *SelectionHandler) DeleteRow(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "selection ID is required"))
		return
	}

	if err := h.service.DeleteRow(c.Request.Context(), id, confirmed(c), claimsFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteAll godoc
// @Summary Delete every saved selection row for one faculty member
// @Description Requires confirm=true; without it the API answers 428
// @Tags Selections
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Param confirm query bool false "Must be true to proceed"
// @Success 200 {object} response.Envelope
// @Failure 428 {object} response.Envelope
// @Router /faculty/delete-all/{employeeId} [delete]
func (h *SelectionHandler) DeleteAll(c *gin.Context) {
	employeeID := strings.TrimSpace(c.Param("employeeId"))
	if employeeID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "employee ID is required"))
		return
	}

	deleted, err := h.service.DeleteAll(c.Request.Context(), employeeID, confirmed(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"deleted": deleted}, nil)
}

func confirmed(c *gin.Context) bool {
	return strings.EqualFold(c.Query("confirm"), "true")
}
