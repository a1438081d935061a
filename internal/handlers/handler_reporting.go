package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
	"github.com/SscSPs/savings_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived views over the ledger
type reportingHandler struct {
	reportingService portssvc.ReportingService
	statisticsMonths int
}

func newReportingHandler(rs portssvc.ReportingService, statisticsMonths int) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		statisticsMonths: statisticsMonths,
	}
}

// RegisterReportingRoutes registers the summary and statistics routes.
// statisticsMonths is the timeline length used when a request omits it.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, statisticsMonths int) {
	RegisterValidators()
	h := newReportingHandler(reportingService, statisticsMonths)

	summary := rg.Group("/summary")
	{
		summary.GET("", h.getSummary)
		summary.GET("/monthly", h.getMonthlySummary)
	}
	rg.GET("/statistics", h.getStatistics)
}

// getSummary godoc
// @Summary Period report
// @Description Income, expense and per-category totals between two inclusive dates. Missing bounds are open.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Router /summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	var start, end time.Time
	var err error
	if params.StartDate != "" {
		if start, err = domain.ParseCalendarDate("startDate", params.StartDate); err != nil {
			respondError(c, logger, err, "Failed to generate report")
			return
		}
	}
	if params.EndDate != "" {
		if end, err = domain.ParseCalendarDate("endDate", params.EndDate); err != nil {
			respondError(c, logger, err, "Failed to generate report")
			return
		}
	}

	report, err := h.reportingService.PeriodReport(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(report))
}

// getMonthlySummary godoc
// @Summary Monthly summary
// @Description Income, expense and net for one month. Defaults to the current month.
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid month"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate summary"
// @Router /summary/monthly [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthlySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	var month time.Time
	if params.Month != "" {
		var err error
		if month, err = domain.ParseMonth(params.Month); err != nil {
			respondError(c, logger, err, "Failed to generate summary")
			return
		}
	}

	summary, err := h.reportingService.MonthlySummary(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "Failed to generate summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(*summary))
}

// getStatistics godoc
// @Summary Dashboard statistics
// @Description Balance, current month, a monthly timeline and category breakdowns
// @Tags reports
// @Produce json
// @Param months query int false "Timeline length in months (1-24)"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate statistics"
// @Router /statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	months := params.Months
	if months == 0 {
		months = h.statisticsMonths
	}

	stats, err := h.reportingService.Statistics(c.Request.Context(), months)
	if err != nil {
		respondError(c, logger, err, "Failed to generate statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}
