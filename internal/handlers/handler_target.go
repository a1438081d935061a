package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
	"github.com/SscSPs/savings_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// targetHandler handles HTTP requests related to savings targets.
type targetHandler struct {
	targetService portssvc.TargetSvcFacade
}

func newTargetHandler(ts portssvc.TargetSvcFacade) *targetHandler {
	return &targetHandler{
		targetService: ts,
	}
}

// RegisterTargetRoutes registers routes related to savings targets.
func RegisterTargetRoutes(rg *gin.RouterGroup, targetService portssvc.TargetSvcFacade) {
	RegisterValidators()
	h := newTargetHandler(targetService)

	targets := rg.Group("/targets")
	{
		targets.POST("", h.createTarget)
		targets.GET("", h.listTargets)
		targets.GET("/:id", h.getTarget)
		targets.PUT("/:id", h.contribute)
	}
}

// createTarget godoc
// @Summary Create a savings target
// @Tags targets
// @Accept json
// @Produce json
// @Param target body dto.CreateTargetRequest true "Target details"
// @Success 201 {object} dto.TargetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create target"
// @Router /targets [post]
func (h *targetHandler) createTarget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	target, err := h.targetService.CreateTarget(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create target")
		return
	}

	logger.Info("Target created successfully", slog.Int64("target_id", target.TargetID))
	c.JSON(http.StatusCreated, dto.ToTargetResponse(target))
}

// listTargets godoc
// @Summary List savings targets
// @Tags targets
// @Produce json
// @Param status query string false "ongoing or completed"
// @Success 200 {array} dto.TargetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Failed to list targets"
// @Router /targets [get]
func (h *targetHandler) listTargets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTargetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	targets, err := h.targetService.ListTargets(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list targets")
		return
	}
	c.JSON(http.StatusOK, dto.ToTargetResponses(targets))
}

// getTarget godoc
// @Summary Get a savings target
// @Tags targets
// @Produce json
// @Param id path int true "Target ID"
// @Success 200 {object} dto.TargetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Target not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get target"
// @Router /targets/{id} [get]
func (h *targetHandler) getTarget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Failed to get target")
		return
	}

	target, err := h.targetService.GetTarget(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, logger, err, "Failed to get target")
		return
	}
	c.JSON(http.StatusOK, dto.ToTargetResponse(target))
}

// contribute godoc
// @Summary Contribute to a savings target
// @Description Adds the amount to the target's progress. The target completes once the goal is reached; further contributions are still accepted.
// @Tags targets
// @Accept json
// @Produce json
// @Param id path int true "Target ID"
// @Param contribution body dto.ContributeRequest true "Contribution"
// @Success 200 {object} dto.TargetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Target not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to contribute"
// @Router /targets/{id} [put]
func (h *targetHandler) contribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Failed to contribute")
		return
	}

	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	target, err := h.targetService.Contribute(c.Request.Context(), targetID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to contribute")
		return
	}

	logger.Info("Contribution recorded",
		slog.Int64("target_id", targetID),
		slog.String("status", string(target.Status)))
	c.JSON(http.StatusOK, dto.ToTargetResponse(target))
}
