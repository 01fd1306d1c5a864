package http

import (
	"net/http"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/report"
	"github.com/shiftlog/duty-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Generate writes the four report CSV artifacts
	Generate(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Generate handles POST /reports/generate
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GenerateAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reports generated", result)
}
