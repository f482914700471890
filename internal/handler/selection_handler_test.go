package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/middleware"
	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/service"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

type selectionServiceMock struct {
	listResp      []models.SelectionRow
	listErr       error
	submitResp    []models.SelectionRow
	submitErr     error
	updateResp    *models.SelectionRow
	updateErr     error
	deleteErr     error
	deleteAllN    int64
	deleteAllErr  error
	lastSubmit    service.SubmitRequest
	lastConfirmed bool
	submitCalled  bool
}

func (m *selectionServiceMock) ListByEmployee(ctx context.Context, employeeID string) ([]models.SelectionRow, error) {
	return m.listResp, m.listErr
}

func (m *selectionServiceMock) ListAll(ctx context.Context) ([]models.SelectionRow, error) {
	return m.listResp, m.listErr
}

func (m *selectionServiceMock) Submit(ctx context.Context, req service.SubmitRequest) ([]models.SelectionRow, error) {
	m.submitCalled = true
	m.lastSubmit = req
	return m.submitResp, m.submitErr
}

func (m *selectionServiceMock) UpdateRow(ctx context.Context, id string, req service.UpdateRowRequest, actor *models.JWTClaims) (*models.SelectionRow, error) {
	return m.updateResp, m.updateErr
}

func (m *selectionServiceMock) DeleteRow(ctx context.Context, id string, confirmed bool, actor *models.JWTClaims) error {
	m.lastConfirmed = confirmed
	if !confirmed {
		return appErrors.ErrConfirmationRequired
	}
	return m.deleteErr
}

func (m *selectionServiceMock) DeleteAll(ctx context.Context, employeeID string, confirmed bool) (int64, error) {
	m.lastConfirmed = confirmed
	if !confirmed {
		return 0, appErrors.ErrConfirmationRequired
	}
	return m.deleteAllN, m.deleteAllErr
}

func testContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, target, nil)
	}
	c.Request = req
	return c, w
}

func facultyClaims(employeeID string) *models.JWTClaims {
	return &models.JWTClaims{EmployeeID: employeeID, Role: models.RoleFaculty}
}

func TestSelectionHandlerSubmit(t *testing.T) {
	mockSvc := &selectionServiceMock{
		submitResp: []models.SelectionRow{{ID: "r1", EmployeeID: "E100", CourseCode: "CS101"}},
	}
	h := NewSelectionHandler(mockSvc)

	payload, _ := json.Marshal(service.SubmitRequest{
		EmployeeID: "E100",
		Entries:    []service.SubmitEntry{{CourseCode: "CS101", Priority: "Option 1"}},
	})
	c, w := testContext(t, http.MethodPost, "/faculty/submit", payload)
	c.Set(middleware.ContextUserKey, facultyClaims("E100"))

	h.Submit(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.submitCalled)
	assert.Equal(t, "E100", mockSvc.lastSubmit.EmployeeID)
}

func TestSelectionHandlerSubmitForAnotherFaculty(t *testing.T) {
	mockSvc := &selectionServiceMock{}
	h := NewSelectionHandler(mockSvc)

	payload, _ := json.Marshal(service.SubmitRequest{
		EmployeeID: "E200",
		Entries:    []service.SubmitEntry{{CourseCode: "CS101"}},
	})
	c, w := testContext(t, http.MethodPost, "/faculty/submit", payload)
	c.Set(middleware.ContextUserKey, facultyClaims("E100"))

	h.Submit(c)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, mockSvc.submitCalled)
}

func TestSelectionHandlerSubmitInvalidBody(t *testing.T) {
	h := NewSelectionHandler(&selectionServiceMock{})

	c, w := testContext(t, http.MethodPost, "/faculty/submit", []byte(`{"employee_id":`))
	c.Set(middleware.ContextUserKey, facultyClaims("E100"))

	h.Submit(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectionHandlerSubmitRuleFailure(t *testing.T) {
	mockSvc := &selectionServiceMock{submitErr: appErrors.ErrNoTopPriority}
	h := NewSelectionHandler(mockSvc)

	payload, _ := json.Marshal(service.SubmitRequest{
		EmployeeID: "E100",
		Entries:    []service.SubmitEntry{{CourseCode: "CS101", Priority: "Option 2"}},
	})
	c, w := testContext(t, http.MethodPost, "/faculty/submit", payload)
	c.Set(middleware.ContextUserKey, facultyClaims("E100"))

	h.Submit(c)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "NO_TOP_PRIORITY_IN_SEMESTER")
}

func TestSelectionHandlerListByEmployee(t *testing.T) {
	mockSvc := &selectionServiceMock{
		listResp: []models.SelectionRow{{ID: "r1", CourseCode: "CS101"}},
	}
	h := NewSelectionHandler(mockSvc)

	c, w := testContext(t, http.MethodGet, "/faculty/E100", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: "E100"}}

	h.ListByEmployee(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CS101")
}

func TestSelectionHandlerDeleteRowWithoutConfirm(t *testing.T) {
	mockSvc := &selectionServiceMock{}
	h := NewSelectionHandler(mockSvc)

	c, w := testContext(t, http.MethodDelete, "/faculty/delete/r1", nil)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	h.DeleteRow(c)
	require.Equal(t, http.StatusPreconditionRequired, w.Code)
	assert.False(t, mockSvc.lastConfirmed)
}

func TestSelectionHandlerDeleteRowConfirmed(t *testing.T) {
	mockSvc := &selectionServiceMock{}
	h := NewSelectionHandler(mockSvc)

	c, w := testContext(t, http.MethodDelete, "/faculty/delete/r1?confirm=true", nil)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	h.DeleteRow(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, mockSvc.lastConfirmed)
}

func TestSelectionHandlerDeleteAllConfirmed(t *testing.T) {
	mockSvc := &selectionServiceMock{deleteAllN: 4}
	h := NewSelectionHandler(mockSvc)

	c, w := testContext(t, http.MethodDelete, "/faculty/delete-all/E100?confirm=true", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: "E100"}}

	h.DeleteAll(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":4`)
}

func TestSelectionHandlerUpdateRow(t *testing.T) {
	mockSvc := &selectionServiceMock{
		updateResp: &models.SelectionRow{ID: "r1", Priority: models.PrioritySecond},
	}
	h := NewSelectionHandler(mockSvc)

	payload, _ := json.Marshal(service.UpdateRowRequest{Priority: "Option 2"})
	c, w := testContext(t, http.MethodPut, "/faculty/update/r1", payload)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	h.UpdateRow(c)
	require.Equal(t, http.StatusOK, w.Code)
}
