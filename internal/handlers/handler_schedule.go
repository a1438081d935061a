package handlers

import (
	"errors"
	"io"
	"net/http"

	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
	"github.com/SscSPs/savings_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// scheduleHandler handles HTTP requests related to recurring-transaction schedules.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newScheduleHandler(ss portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{
		scheduleService: ss,
	}
}

// RegisterScheduleRoutes registers routes related to schedule entries.
func RegisterScheduleRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	RegisterValidators()
	h := newScheduleHandler(scheduleService)

	schedule := rg.Group("/schedule")
	{
		schedule.POST("", h.createSchedule)
		schedule.GET("", h.listSchedules)
		schedule.PUT("/:id/toggle", h.toggleSchedule)
	}
}

// createSchedule godoc
// @Summary Declare a recurring transaction
// @Description Stores the declaration only; nothing executes it.
// @Tags schedule
// @Accept json
// @Produce json
// @Param schedule body dto.CreateScheduleRequest true "Schedule details"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create schedule entry"
// @Router /schedule [post]
func (h *scheduleHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entry, err := h.scheduleService.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create schedule entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToScheduleResponse(entry))
}

// listSchedules godoc
// @Summary List schedule entries
// @Tags schedule
// @Produce json
// @Param active query bool false "Only active (true) or inactive (false) entries"
// @Success 200 {array} dto.ScheduleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Failed to list schedule entries"
// @Router /schedule [get]
func (h *scheduleHandler) listSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSchedulesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entries, err := h.scheduleService.ListSchedules(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list schedule entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponses(entries))
}

// toggleSchedule godoc
// @Summary Activate or deactivate a schedule entry
// @Description Sets isActive when given, otherwise flips the current value.
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param toggle body dto.ToggleScheduleRequest false "Desired state"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Schedule entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update schedule entry"
// @Router /schedule/{id}/toggle [put]
func (h *scheduleHandler) toggleSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Failed to update schedule entry")
		return
	}

	// The body is optional.
	var req dto.ToggleScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, logger, err)
		return
	}

	entry, err := h.scheduleService.SetActive(c.Request.Context(), scheduleID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update schedule entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(entry))
}
