package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/wfm-backend-go/internal/domain/report"
	"github.com/staffhub/wfm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	DepartmentSummary(w http.ResponseWriter, r *http.Request)
	DailyTrend(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MonthlySummary implements ReportHandler.
func (h *reportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlySummaryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
	}

	var err error
	req.Year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}
	req.Month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}

	result, err := h.reportService.GetMonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentSummary implements ReportHandler.
func (h *reportHandlerImpl) DepartmentSummary(w http.ResponseWriter, r *http.Request) {
	var req report.DepartmentSummaryRequest

	var err error
	req.Year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}
	req.Month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}

	result, err := h.reportService.GetDepartmentSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailyTrend implements ReportHandler.
func (h *reportHandlerImpl) DailyTrend(w http.ResponseWriter, r *http.Request) {
	days := 7
	if d := r.URL.Query().Get("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			response.BadRequest(w, "days must be an integer", nil)
			return
		}
		days = parsed
	}

	result, err := h.reportService.GetDailyTrend(r.Context(), days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
