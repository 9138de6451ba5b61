package http

import (
	"net/http"

	"github.com/nzdigital/capdev-backend-go/internal/domain/report"
	"github.com/nzdigital/capdev-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetTimeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) GetTimeReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.TimeReportRequest{
		From:   query.Get("from"),
		To:     query.Get("to"),
		Team:   query.Get("team"),
		Role:   query.Get("role"),
		Search: query.Get("search"),
	}

	data, err := h.reportService.GetTimeReportData(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
