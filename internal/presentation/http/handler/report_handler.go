package handler

import (
	"strconv"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/application/report"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/dto/response"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles accounting report HTTP requests
type ReportHandler struct {
	reportService *report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Get handles building one accounting book for a month
func (h *ReportHandler) Get(c *gin.Context) {
	storeID := middleware.GetStoreID(c)

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	book := enum.BookType(c.DefaultQuery("book", string(enum.BookRevenue)))

	rpt, err := h.reportService.BuildReport(c.Request.Context(), storeID, month, year, book)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, book.Name()+" built successfully", rpt)
}

// GetSummary handles building the monthly tax summary header
func (h *ReportHandler) GetSummary(c *gin.Context) {
	storeID := middleware.GetStoreID(c)

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	summary, err := h.reportService.BuildSummary(c.Request.Context(), storeID, month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report summary built successfully", summary)
}
