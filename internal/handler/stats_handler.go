package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/walktrack-backend-go/internal/models"
	"github.com/jengzang/walktrack-backend-go/internal/service"
	"github.com/jengzang/walktrack-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for step statistics and history.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetSessions handles GET /api/v1/sessions
func (h *StatsHandler) GetSessions(c *gin.Context) {
	var filter models.WalkSessionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.statsService.GetSessions(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetHourly handles GET /api/v1/steps/hourly
func (h *StatsHandler) GetHourly(c *gin.Context) {
	result, err := h.statsService.GetHourly(c.Query("date"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetSummary handles GET /api/v1/steps/summary
func (h *StatsHandler) GetSummary(c *gin.Context) {
	result, err := h.statsService.GetSummary()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
