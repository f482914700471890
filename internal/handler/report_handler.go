package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klcse/faculty-option-api/internal/service"
	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
	"github.com/klcse/faculty-option-api/pkg/response"
)

type reportService interface {
	Export(ctx context.Context, format service.ReportFormat) (*service.ExportResult, error)
}

// ReportHandler streams rendered submission reports to admins.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Export godoc
// @Summary Download the full submissions report
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /reports/selections/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	format := service.ReportFormat(strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv"))))
	if format != service.ReportFormatCSV && format != service.ReportFormatPDF {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}

	result, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
